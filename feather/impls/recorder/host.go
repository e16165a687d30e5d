package recorder

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libfeather/feather"
	"github.com/sgostarter/libfeather/vec3"
)

var (
	ErrNotCurve = errors.New("not a curve")
	ErrNotMesh  = errors.New("not a mesh")
)

var _ feather.Host = (*Host)(nil)

// Host is an in-memory feather.Host. It keeps a flat object table and a log
// of every call, which makes it usable for dry runs and tests.
type Host struct {
	logger l.Wrapper

	lock    sync.Mutex
	anchors map[string]vec3.Vec3
	objects map[string]*Object
	ops     []Op
}

func NewHost(anchors map[string]vec3.Vec3, logger l.Wrapper) *Host {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	h := &Host{
		logger:  logger.WithFields(l.StringField(l.ClsKey, "recorderHost")),
		anchors: make(map[string]vec3.Vec3, len(anchors)),
		objects: make(map[string]*Object),
	}

	for name, at := range anchors {
		h.anchors[name] = at
	}

	return h
}

func (h *Host) SetAnchor(name string, at vec3.Vec3) {
	h.lock.Lock()
	defer h.lock.Unlock()

	h.anchors[name] = at
}

func (h *Host) Ops() []Op {
	h.lock.Lock()
	defer h.lock.Unlock()

	return append([]Op(nil), h.ops...)
}

func (h *Host) Object(name string) (Object, bool) {
	h.lock.Lock()
	defer h.lock.Unlock()

	o, ok := h.objects[name]
	if !ok {
		return Object{}, false
	}

	return *o.clone(), true
}

// Names returns the names of all objects of kind, sorted.
func (h *Host) Names(kind Kind) []string {
	h.lock.Lock()
	defer h.lock.Unlock()

	var names []string

	for name, o := range h.objects {
		if o.Kind == kind {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names
}

func (h *Host) record(name, target, detail string) {
	h.ops = append(h.ops, Op{Name: name, Target: target, Detail: detail})

	h.logger.WithFields(l.StringField("op", name), l.StringField("target", target),
		l.StringField("detail", detail)).Debug("host op")
}

func (h *Host) newName(base string) string {
	return fmt.Sprintf("%s_%d", base, snowflake.ID())
}

func (h *Host) add(base string, kind Kind) *Object {
	o := &Object{
		Name:        h.newName(base),
		Base:        base,
		Kind:        kind,
		Scale:       vec3.New(1, 1, 1),
		VertexScale: vec3.New(1, 1, 1),
	}

	h.objects[o.Name] = o

	return o
}

func (h *Host) get(name string) (*Object, error) {
	o, ok := h.objects[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, commerr.ErrNotFound)
	}

	return o, nil
}

func (h *Host) getKind(name string, kind Kind) (*Object, error) {
	o, err := h.get(name)
	if err != nil {
		return nil, err
	}

	if o.Kind != kind {
		switch kind {
		case KindCurve:
			return nil, fmt.Errorf("%s: %w", name, ErrNotCurve)
		default:
			return nil, fmt.Errorf("%s: %w", name, ErrNotMesh)
		}
	}

	return o, nil
}

func (h *Host) PointPosition(_ context.Context, anchor string) (vec3.Vec3, error) {
	h.lock.Lock()
	defer h.lock.Unlock()

	h.record("pointPosition", anchor, "")

	if at, ok := h.anchors[anchor]; ok {
		return at, nil
	}

	o, err := h.get(anchor)
	if err != nil {
		return vec3.Vec3{}, err
	}

	return o.Translate, nil
}

func (h *Host) CreateCurve(_ context.Context, spec feather.CurveSpec) (string, error) {
	h.lock.Lock()
	defer h.lock.Unlock()

	if len(spec.Points) < 2 {
		return "", fmt.Errorf("%w: a curve needs at least two points", feather.ErrBadSpec)
	}

	base := spec.Name
	if base == "" {
		base = "curve"
	}

	o := h.add(base, KindCurve)
	o.Points = append([]vec3.Vec3(nil), spec.Points...)

	h.record("createCurve", o.Name, fmt.Sprintf("degree=%d points=%d", spec.Degree, len(spec.Points)))

	return o.Name, nil
}

func (h *Host) FitCurve(_ context.Context, curve, name string, tolerance float64) (string, error) {
	h.lock.Lock()
	defer h.lock.Unlock()

	src, err := h.getKind(curve, KindCurve)
	if err != nil {
		return "", err
	}

	o := h.add(name, KindCurve)
	o.Points = append([]vec3.Vec3(nil), src.Points...)
	o.Translate = src.Translate

	h.record("fitCurve", o.Name, fmt.Sprintf("from=%s tolerance=%g", curve, tolerance))

	return o.Name, nil
}

func (h *Host) ReverseCurve(_ context.Context, curve string) error {
	h.lock.Lock()
	defer h.lock.Unlock()

	o, err := h.getKind(curve, KindCurve)
	if err != nil {
		return err
	}

	for i, j := 0, len(o.Points)-1; i < j; i, j = i+1, j-1 {
		o.Points[i], o.Points[j] = o.Points[j], o.Points[i]
	}

	h.record("reverseCurve", curve, "")

	return nil
}

func (h *Host) CurveStart(_ context.Context, curve string) (vec3.Vec3, error) {
	h.lock.Lock()
	defer h.lock.Unlock()

	o, err := h.getKind(curve, KindCurve)
	if err != nil {
		return vec3.Vec3{}, err
	}

	h.record("curveStart", curve, "")

	return o.Points[0].Add(o.Translate), nil
}

func (h *Host) CreateBox(_ context.Context, spec feather.BoxSpec) (string, error) {
	h.lock.Lock()
	defer h.lock.Unlock()

	base := spec.Name
	if base == "" {
		base = "box"
	}

	sx, sy, sz := max(spec.SubdivisionsX, 1), max(spec.SubdivisionsY, 1), max(spec.SubdivisionsZ, 1)

	o := h.add(base, KindMesh)
	o.Faces = 2 * (sx*sy + sy*sz + sx*sz)

	h.record("createBox", o.Name, fmt.Sprintf("size=%gx%gx%g", spec.Width, spec.Height, spec.Depth))

	return o.Name, nil
}

func (h *Host) Extrude(_ context.Context, spec feather.ExtrudeSpec) error {
	h.lock.Lock()
	defer h.lock.Unlock()

	o, err := h.getKind(spec.Target, KindMesh)
	if err != nil {
		return err
	}

	if _, err = h.getKind(spec.Path, KindCurve); err != nil {
		return err
	}

	if len(spec.Components) == 0 {
		return fmt.Errorf("%w: nothing to extrude", feather.ErrBadSpec)
	}

	o.Faces += len(spec.Components) * spec.Divisions * 4

	h.record("extrude", spec.Target, fmt.Sprintf("mode=%s components=%v path=%s divisions=%d taper=%g",
		spec.Mode, spec.Components, spec.Path, spec.Divisions, spec.Taper))

	return nil
}

func (h *Host) ScaleVertices(_ context.Context, name string, factor vec3.Vec3) error {
	h.lock.Lock()
	defer h.lock.Unlock()

	o, err := h.getKind(name, KindMesh)
	if err != nil {
		return err
	}

	o.VertexScale = o.VertexScale.MulComponents(factor)

	h.record("scaleVertices", name, factor.String())

	return nil
}

func (h *Host) MergeVertices(_ context.Context, name string, distance float64) error {
	h.lock.Lock()
	defer h.lock.Unlock()

	o, err := h.getKind(name, KindMesh)
	if err != nil {
		return err
	}

	o.Merged = true

	h.record("mergeVertices", name, fmt.Sprintf("distance=%g", distance))

	return nil
}

func (h *Host) FaceCount(_ context.Context, name string) (int, error) {
	h.lock.Lock()
	defer h.lock.Unlock()

	o, err := h.getKind(name, KindMesh)
	if err != nil {
		return 0, err
	}

	return o.Faces, nil
}

func (h *Host) Duplicate(_ context.Context, name string) (string, error) {
	h.lock.Lock()
	defer h.lock.Unlock()

	src, err := h.get(name)
	if err != nil {
		return "", err
	}

	o := src.clone()
	o.Name = h.newName(src.Base)
	h.objects[o.Name] = o

	h.record("duplicate", o.Name, "from="+name)

	return o.Name, nil
}

func (h *Host) Delete(_ context.Context, names ...string) error {
	h.lock.Lock()
	defer h.lock.Unlock()

	for _, name := range names {
		if _, err := h.get(name); err != nil {
			return err
		}
	}

	for _, name := range names {
		delete(h.objects, name)
		h.record("delete", name, "")
	}

	return nil
}

func (h *Host) Group(_ context.Context, name string, members []string) (string, error) {
	h.lock.Lock()
	defer h.lock.Unlock()

	for _, member := range members {
		if _, err := h.get(member); err != nil {
			return "", err
		}
	}

	o := h.add(name, KindGroup)
	o.Members = append([]string(nil), members...)

	h.record("group", o.Name, fmt.Sprintf("members=%d", len(members)))

	return o.Name, nil
}

func (h *Host) Move(_ context.Context, name string, to vec3.Vec3) error {
	h.lock.Lock()
	defer h.lock.Unlock()

	o, err := h.get(name)
	if err != nil {
		return err
	}

	o.Translate = to

	h.record("move", name, to.String())

	return nil
}

func (h *Host) Pivot(_ context.Context, name string) (vec3.Vec3, error) {
	h.lock.Lock()
	defer h.lock.Unlock()

	o, err := h.get(name)
	if err != nil {
		return vec3.Vec3{}, err
	}

	return o.Pivot, nil
}

func (h *Host) SetPivot(_ context.Context, name string, to vec3.Vec3) error {
	h.lock.Lock()
	defer h.lock.Unlock()

	o, err := h.get(name)
	if err != nil {
		return err
	}

	o.Pivot = to

	h.record("setPivot", name, to.String())

	return nil
}

func (h *Host) Scale(_ context.Context, name string) (vec3.Vec3, error) {
	h.lock.Lock()
	defer h.lock.Unlock()

	o, err := h.get(name)
	if err != nil {
		return vec3.Vec3{}, err
	}

	return o.Scale, nil
}

func (h *Host) SetScale(_ context.Context, name string, scale vec3.Vec3) error {
	h.lock.Lock()
	defer h.lock.Unlock()

	o, err := h.get(name)
	if err != nil {
		return err
	}

	o.Scale = scale

	h.record("setScale", name, scale.String())

	return nil
}

func (h *Host) AssignMaterial(_ context.Context, material string, names []string) error {
	h.lock.Lock()
	defer h.lock.Unlock()

	for _, name := range names {
		if _, err := h.get(name); err != nil {
			return err
		}
	}

	for _, name := range names {
		h.objects[name].Material = material
		h.record("assignMaterial", name, material)
	}

	return nil
}

func (h *Host) PlanarProject(_ context.Context, name string, firstFace, lastFace int) error {
	h.lock.Lock()
	defer h.lock.Unlock()

	o, err := h.getKind(name, KindMesh)
	if err != nil {
		return err
	}

	if firstFace < 0 || lastFace >= o.Faces || firstFace > lastFace {
		return fmt.Errorf("%s: faces %d..%d: %w", name, firstFace, lastFace, commerr.ErrOutOfRange)
	}

	o.Projected = true

	h.record("planarProject", name, fmt.Sprintf("faces=%d..%d", firstFace, lastFace))

	return nil
}
