package sampler

import (
	"fmt"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libfeather/lerp"
	"github.com/sgostarter/libfeather/ramp"
)

// Config is everything a Driver needs to resolve anchors. It is passed by
// value; the graph is cloned when a Driver is built.
type Config[T lerp.Lerpable[T]] struct {
	Graph  *ramp.Graph[T]
	Mirror bool
}

type Driver[A any, T lerp.Lerpable[T]] struct {
	logger l.Wrapper
	cfg    Config[T]
}

func NewDriver[A any, T lerp.Lerpable[T]](cfg Config[T], logger l.Wrapper) *Driver[A, T] {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	cfg.Graph = cfg.Graph.Clone()

	return &Driver[A, T]{
		logger: logger.WithFields(l.StringField(l.ClsKey, "samplerDriver")),
		cfg:    cfg,
	}
}

func (d *Driver[A, T]) Config() Config[T] {
	return d.cfg
}

func (d *Driver[A, T]) Resolve(anchors []A) ([]Resolved[A, T], error) {
	rs, err := ResolveAll(anchors, d.cfg.Graph)
	if err != nil {
		d.logger.WithFields(l.ErrorField(err), l.IntField("anchors", len(anchors))).Error("resolve failed")

		return nil, err
	}

	for _, r := range rs {
		d.logger.WithFields(l.IntField("index", r.Index), l.StringField("position", fmt.Sprint(r.Position)),
			l.StringField("value", fmt.Sprint(r.Value))).Debug("resolved")
	}

	return rs, nil
}
