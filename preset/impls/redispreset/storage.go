package redispreset

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libfeather/preset"
	"gopkg.in/yaml.v3"
)

const (
	cacheExpiration = 5 * time.Minute
	cacheCleanup    = 10 * time.Minute
)

// NewRedisPresetStorage keeps presets as yaml documents in one redis hash.
// Loaded presets are cached in process; writes through this storage
// invalidate the cache.
func NewRedisPresetStorage(preKey string, redisCli *redis.Client, logger l.Wrapper) preset.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "redisPresetStorage"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &presetStorage{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
		cached:   cache.New(cacheExpiration, cacheCleanup),
	}
}

type presetStorage struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
	cached   *cache.Cache
}

func (impl *presetStorage) presetsKey() string {
	return impl.preKey + ":presets"
}

func (impl *presetStorage) Save(ctx context.Context, name string, cfg preset.Config) error {
	if name == "" {
		return preset.ErrNoName
	}

	d, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	impl.cached.Delete(name)

	return impl.redisCli.HSet(ctx, impl.presetsKey(), name, d).Err()
}

func (impl *presetStorage) Load(ctx context.Context, name string) (cfg preset.Config, err error) {
	if i, ok := impl.cached.Get(name); ok {
		if c, ok := i.(preset.Config); ok {
			return c.Clone(), nil
		}
	}

	d, err := impl.redisCli.HGet(ctx, impl.presetsKey(), name).Bytes()
	if errors.Is(err, redis.Nil) {
		err = commerr.ErrNotFound

		return
	}

	if err != nil {
		return
	}

	err = yaml.Unmarshal(d, &cfg)
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.StringField("name", name)).Error("bad preset data")

		return
	}

	impl.cached.Set(name, cfg.Clone(), cache.DefaultExpiration)

	return
}

func (impl *presetStorage) Delete(ctx context.Context, name string) error {
	impl.cached.Delete(name)

	n, err := impl.redisCli.HDel(ctx, impl.presetsKey(), name).Result()
	if err != nil {
		return err
	}

	if n == 0 {
		return commerr.ErrNotFound
	}

	return nil
}

func (impl *presetStorage) List(ctx context.Context) ([]string, error) {
	names, err := impl.redisCli.HKeys(ctx, impl.presetsKey()).Result()
	if err != nil {
		return nil, err
	}

	sort.Strings(names)

	return names, nil
}
