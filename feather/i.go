package feather

import (
	"context"

	"github.com/sgostarter/libfeather/vec3"
)

type ComponentMode int

const (
	ComponentModeEdge ComponentMode = iota
	ComponentModeFace
)

func (m ComponentMode) String() string {
	if m == ComponentModeFace {
		return "face"
	}

	return "edge"
}

type CurveSpec struct {
	Name   string
	Points []vec3.Vec3
	Degree int
}

type BoxSpec struct {
	Name          string
	Width         float64
	Height        float64
	Depth         float64
	SubdivisionsX int
	SubdivisionsY int
	SubdivisionsZ int
}

// ExtrudeSpec extrudes the listed components of Target along the Path curve.
type ExtrudeSpec struct {
	Target       string
	Mode         ComponentMode
	Components   []int
	Path         string
	Divisions    int
	Taper        float64
	KeepTogether bool
}

// Host is the 3D content-creation application that owns the scene. All names
// are host object names; the host may rename objects it creates, so callers
// always use the returned names.
type Host interface {
	PointPosition(ctx context.Context, anchor string) (vec3.Vec3, error)

	CreateCurve(ctx context.Context, spec CurveSpec) (string, error)
	FitCurve(ctx context.Context, curve, name string, tolerance float64) (string, error)
	ReverseCurve(ctx context.Context, curve string) error
	CurveStart(ctx context.Context, curve string) (vec3.Vec3, error)

	CreateBox(ctx context.Context, spec BoxSpec) (string, error)
	Extrude(ctx context.Context, spec ExtrudeSpec) error
	ScaleVertices(ctx context.Context, name string, factor vec3.Vec3) error
	MergeVertices(ctx context.Context, name string, distance float64) error
	FaceCount(ctx context.Context, name string) (int, error)

	Duplicate(ctx context.Context, name string) (string, error)
	Delete(ctx context.Context, names ...string) error
	Group(ctx context.Context, name string, members []string) (string, error)

	Move(ctx context.Context, name string, to vec3.Vec3) error
	Pivot(ctx context.Context, name string) (vec3.Vec3, error)
	SetPivot(ctx context.Context, name string, to vec3.Vec3) error
	Scale(ctx context.Context, name string) (vec3.Vec3, error)
	SetScale(ctx context.Context, name string, scale vec3.Vec3) error

	AssignMaterial(ctx context.Context, material string, names []string) error
	PlanarProject(ctx context.Context, name string, firstFace, lastFace int) error
}
