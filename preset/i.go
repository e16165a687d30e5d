package preset

import "context"

// Storage keeps named configurations. Load and Delete of an unknown name fail
// with commerr.ErrNotFound.
type Storage interface {
	Save(ctx context.Context, name string, cfg Config) error
	Load(ctx context.Context, name string) (Config, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]string, error)
}
