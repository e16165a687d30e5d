package feather

import (
	"context"
	"fmt"
	"math"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libfeather/barb"
	"github.com/sgostarter/libfeather/ramp"
	"github.com/sgostarter/libfeather/sampler"
	"github.com/sgostarter/libfeather/vec3"
)

// Builder turns resolved parameters into host geometry. It holds no scene
// state of its own; every call goes straight to the host.
type Builder struct {
	logger l.Wrapper
	host   Host
}

func NewBuilder(host Host, logger l.Wrapper) *Builder {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "featherBuilder"))

	if host == nil {
		logger.Fatal("no host")
	}

	return &Builder{
		logger: logger,
		host:   host,
	}
}

// MakeRachis builds the feather shaft: a box extruded along a straight path on
// +Z, with one division per barb.
func (b *Builder) MakeRachis(ctx context.Context, spec RachisSpec) (name string, err error) {
	if err = spec.Check(); err != nil {
		return
	}

	path, err := b.host.CreateCurve(ctx, CurveSpec{
		Points: []vec3.Vec3{{}, vec3.New(0, 0, spec.Length)},
		Degree: 1,
	})
	if err != nil {
		return
	}

	name, err = b.host.CreateBox(ctx, BoxSpec{
		Name:          RachisName,
		Width:         spec.Radius * 2,
		Height:        spec.Radius * 2,
		Depth:         1 / float64(spec.BarbDensity),
		SubdivisionsX: 1,
		SubdivisionsY: 2,
		SubdivisionsZ: 1,
	})
	if err != nil {
		return
	}

	err = b.host.Extrude(ctx, ExtrudeSpec{
		Target:     name,
		Mode:       ComponentModeFace,
		Components: []int{0, 1},
		Path:       path,
		Divisions:  int(math.Floor(float64(spec.BarbDensity) * spec.Length)),
		Taper:      spec.Taper,
	})
	if err != nil {
		return
	}

	err = b.host.Delete(ctx, path)

	return
}

// MakeBarbCurves draws one barb curve per anchor, in anchor order, shaped by
// the parameters graph resolves for it. The barbs are grouped; with mirror the
// group is duplicated and flipped on X. The returned names are the groups.
func (b *Builder) MakeBarbCurves(ctx context.Context, anchors []string,
	graph *ramp.Graph[barb.Parameters], mirror bool) ([]string, error) {
	return b.BuildBarbs(ctx, anchors, sampler.Config[barb.Parameters]{Graph: graph, Mirror: mirror})
}

func (b *Builder) BuildBarbs(ctx context.Context, anchors []string, cfg sampler.Config[barb.Parameters]) (
	[]string, error) {
	group, _, err := b.drawBarbs(ctx, anchors, cfg)
	if err != nil {
		return nil, err
	}

	if !cfg.Mirror {
		return []string{group}, nil
	}

	mirrored, err := b.mirror(ctx, group)
	if err != nil {
		return nil, err
	}

	return []string{group, mirrored}, nil
}

// drawBarbs returns the barb group and the barb curves in it.
func (b *Builder) drawBarbs(ctx context.Context, anchors []string, cfg sampler.Config[barb.Parameters]) (
	group string, barbs []string, err error) {
	if len(anchors) == 0 {
		err = fmt.Errorf("%w: no anchors", ErrBadSpec)

		return
	}

	rs, err := sampler.NewDriver[string](cfg, b.logger).Resolve(anchors)
	if err != nil {
		return
	}

	barbs = make([]string, 0, len(rs))

	for _, r := range rs {
		name, e := b.drawBarb(ctx, r.Anchor, r.Value)
		if e != nil {
			b.logger.WithFields(l.ErrorField(e), l.StringField("anchor", r.Anchor)).Error("draw barb failed")

			return "", nil, e
		}

		barbs = append(barbs, name)
	}

	group, err = b.host.Group(ctx, BarbGroupName, barbs)
	if err != nil {
		return "", nil, err
	}

	if err = b.host.SetPivot(ctx, group, vec3.Vec3{}); err != nil {
		return "", nil, err
	}

	return
}

// mirror duplicates name and flips the duplicate on X.
func (b *Builder) mirror(ctx context.Context, name string) (mirrored string, err error) {
	mirrored, err = b.host.Duplicate(ctx, name)
	if err != nil {
		return
	}

	scale, err := b.host.Scale(ctx, mirrored)
	if err != nil {
		return
	}

	scale.X = -1

	err = b.host.SetScale(ctx, mirrored, scale)

	return
}

func (b *Builder) drawBarb(ctx context.Context, anchor string, p barb.Parameters) (name string, err error) {
	origin, err := b.host.PointPosition(ctx, anchor)
	if err != nil {
		return
	}

	points := barb.CurvePoints(origin, p)

	linear, err := b.host.CreateCurve(ctx, CurveSpec{Points: points[:], Degree: 1})
	if err != nil {
		return
	}

	name, err = b.host.FitCurve(ctx, linear, BarbName, BarbFitTolerance)
	if err != nil {
		return
	}

	if err = b.host.SetPivot(ctx, name, origin); err != nil {
		return
	}

	err = b.host.Delete(ctx, linear)

	return
}

// MakeFeathers duplicates source onto every curve and extrudes the listed
// components of each duplicate along its curve, then flattens the result.
func (b *Builder) MakeFeathers(ctx context.Context, curves []string, source string, spec FillSpec) (
	[]string, error) {
	_, duplicates, err := b.fillCurves(ctx, curves, source, spec)
	if err != nil {
		return nil, err
	}

	return duplicates, nil
}

func (b *Builder) fillCurves(ctx context.Context, curves []string, source string, spec FillSpec) (
	group string, duplicates []string, err error) {
	components, err := spec.components()
	if err != nil {
		return
	}

	duplicates = make([]string, 0, len(curves))

	for _, curve := range curves {
		duplicate, e := b.fillCurve(ctx, curve, source, components, spec)
		if e != nil {
			b.logger.WithFields(l.ErrorField(e), l.StringField("curve", curve)).Error("fill curve failed")

			return "", nil, e
		}

		duplicates = append(duplicates, duplicate)
	}

	group, err = b.host.Group(ctx, FeatherGroupName, duplicates)
	if err != nil {
		return "", nil, err
	}

	return
}

func (b *Builder) fillCurve(ctx context.Context, curve, source string, components []int, spec FillSpec) (
	duplicate string, err error) {
	duplicate, err = b.host.Duplicate(ctx, source)
	if err != nil {
		return
	}

	oldPivot, err := b.host.Pivot(ctx, curve)
	if err != nil {
		return
	}

	if err = b.host.ReverseCurve(ctx, curve); err != nil {
		return
	}

	start, err := b.host.CurveStart(ctx, curve)
	if err != nil {
		return
	}

	if err = b.host.Move(ctx, duplicate, start); err != nil {
		return
	}

	err = b.host.Extrude(ctx, ExtrudeSpec{
		Target:       duplicate,
		Mode:         spec.Mode,
		Components:   components,
		Path:         curve,
		Divisions:    spec.Subdivisions,
		Taper:        spec.Taper,
		KeepTogether: true,
	})
	if err != nil {
		return
	}

	if err = b.host.ScaleVertices(ctx, duplicate, vec3.New(1, FlattenFactor, 1)); err != nil {
		return
	}

	if err = b.host.MergeVertices(ctx, duplicate, MergeVertexDistance); err != nil {
		return
	}

	err = b.host.SetPivot(ctx, duplicate, oldPivot)

	return
}

// DupeGroup places a duplicate of source at every anchor and groups them.
func (b *Builder) DupeGroup(ctx context.Context, anchors []string, source, groupName string) (
	group string, err error) {
	group, _, err = b.placeDuplicates(ctx, anchors, source, groupName)

	return
}

func (b *Builder) placeDuplicates(ctx context.Context, anchors []string, source, groupName string) (
	group string, duplicates []string, err error) {
	if groupName == "" {
		groupName = DefaultDupeGroup
	}

	duplicates = make([]string, 0, len(anchors))

	for _, anchor := range anchors {
		var (
			duplicate string
			at        vec3.Vec3
		)

		duplicate, err = b.host.Duplicate(ctx, source)
		if err != nil {
			return "", nil, err
		}

		at, err = b.host.PointPosition(ctx, anchor)
		if err != nil {
			return "", nil, err
		}

		if err = b.host.Move(ctx, duplicate, at); err != nil {
			return "", nil, err
		}

		duplicates = append(duplicates, duplicate)
	}

	group, err = b.host.Group(ctx, groupName, duplicates)
	if err != nil {
		return "", nil, err
	}

	return
}

// ScaleFeathers scales each object by Factor on the primary axis and by the
// square root of Factor on the secondary axis, keeping rough proportions.
func (b *Builder) ScaleFeathers(ctx context.Context, names []string, spec ScaleSpec) error {
	primary, secondary, err := spec.axes()
	if err != nil {
		return err
	}

	secondaryFactor := math.Sqrt(spec.Factor)

	for _, name := range names {
		scale, err := b.host.Scale(ctx, name)
		if err != nil {
			return err
		}

		scale = primary.apply(scale, spec.Factor)
		scale = secondary.apply(scale, secondaryFactor)

		if err = b.host.SetScale(ctx, name, scale); err != nil {
			return err
		}
	}

	return nil
}

// TextureFeathers assigns material to the objects and gives each one planar
// texture coordinates. Objects without faces, or whose face count the host
// cannot report, are skipped.
func (b *Builder) TextureFeathers(ctx context.Context, names []string, material string) error {
	if material == "" {
		return fmt.Errorf("%w: no material", ErrBadSpec)
	}

	if err := b.host.AssignMaterial(ctx, material, names); err != nil {
		return err
	}

	for _, name := range names {
		count, err := b.host.FaceCount(ctx, name)
		if err != nil {
			b.logger.WithFields(l.ErrorField(err), l.StringField("name", name)).Debug("skip projection")

			continue
		}

		if count == 0 {
			continue
		}

		if err = b.host.PlanarProject(ctx, name, 0, count-1); err != nil {
			b.logger.WithFields(l.ErrorField(err), l.StringField("name", name)).Error("planar projection failed")

			return err
		}
	}

	return nil
}
