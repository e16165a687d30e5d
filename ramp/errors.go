package ramp

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

var (
	// ErrInvalidParameter is returned when a ramp position outside [0, 1] is set.
	ErrInvalidParameter = fmt.Errorf("invalid ramp position: %w", commerr.ErrInvalidArgument)
	// ErrUnresolvableParameter is returned when a value cannot be resolved at a
	// ramp position.
	ErrUnresolvableParameter = fmt.Errorf("unresolvable ramp position: %w", commerr.ErrOutOfRange)
	// ErrNilGraph is returned when a control point is set on a nil graph.
	ErrNilGraph = fmt.Errorf("nil ramp graph: %w", commerr.ErrInvalidArgument)
)
