package recorder

import "github.com/sgostarter/libfeather/vec3"

type Kind int

const (
	KindCurve Kind = iota
	KindMesh
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindCurve:
		return "curve"
	case KindMesh:
		return "mesh"
	case KindGroup:
		return "group"
	}

	return "unknown"
}

type Object struct {
	Name        string
	Base        string
	Kind        Kind
	Points      []vec3.Vec3
	Translate   vec3.Vec3
	Pivot       vec3.Vec3
	Scale       vec3.Vec3
	VertexScale vec3.Vec3
	Faces       int
	Members     []string
	Material    string
	Projected   bool
	Merged      bool
}

func (o *Object) clone() *Object {
	c := *o
	c.Points = append([]vec3.Vec3(nil), o.Points...)
	c.Members = append([]string(nil), o.Members...)

	return &c
}

// Op is one recorded host call.
type Op struct {
	Name   string
	Target string
	Detail string
}
