package feather

import (
	"context"
	"fmt"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libfeather/barb"
	"github.com/sgostarter/libfeather/sampler"
)

const (
	VaneName    = "barb_vane_geo"
	FeatherName = "feather_grp"
)

// Plan drives one Build from rachis to placed feathers.
type Plan struct {
	Rachis    RachisSpec
	Barbs     sampler.Config[barb.Parameters]
	Fill      FillSpec
	Material  string
	Scale     ScaleSpec
	GroupName string
}

func (p Plan) Check() error {
	if err := p.Rachis.Check(); err != nil {
		return err
	}

	if _, err := p.Fill.components(); err != nil {
		return err
	}

	if _, _, err := p.Scale.axes(); err != nil {
		return err
	}

	if p.Material == "" {
		return fmt.Errorf("%w: no material", ErrBadSpec)
	}

	return nil
}

// Sources names the host objects a Build starts from.
//
// Anchors are the rachis vertices the barbs grow from, base first. Vane is the
// profile swept along every barb; when empty Build makes a box vane sized to
// the rachis and deletes it afterwards. Placements are the vertices the
// finished feather is copied onto. Without placements the feather itself is
// scaled.
type Sources struct {
	Anchors    []string
	Vane       string
	Placements []string
}

type Result struct {
	Rachis     string
	BarbGroups []string
	Barbs      []string
	VaneGroups []string
	Vanes      []string
	Feather    string
	Placed     string
	Feathers   []string
}

// Build runs the whole feather: rachis, barb curves, filled and textured vanes,
// the mirrored half, then placement and scaling of the grouped feather.
func (b *Builder) Build(ctx context.Context, plan Plan, src Sources) (*Result, error) {
	if err := plan.Check(); err != nil {
		return nil, err
	}

	if len(src.Anchors) == 0 {
		return nil, fmt.Errorf("%w: no anchors", ErrBadSpec)
	}

	r := &Result{}

	rachis, err := b.MakeRachis(ctx, plan.Rachis)
	if err != nil {
		return nil, err
	}

	r.Rachis = rachis

	barbGroup, barbs, err := b.drawBarbs(ctx, src.Anchors, plan.Barbs)
	if err != nil {
		return nil, err
	}

	r.BarbGroups = []string{barbGroup}
	r.Barbs = barbs

	vane := src.Vane
	if vane == "" {
		vane, err = b.host.CreateBox(ctx, BoxSpec{
			Name:          VaneName,
			Width:         plan.Rachis.Radius,
			Height:        plan.Rachis.Radius,
			Depth:         plan.Rachis.Radius,
			SubdivisionsX: 1,
			SubdivisionsY: 1,
			SubdivisionsZ: 1,
		})
		if err != nil {
			return nil, err
		}
	}

	vaneGroup, vanes, err := b.fillCurves(ctx, barbs, vane, plan.Fill)
	if err != nil {
		return nil, err
	}

	r.VaneGroups = []string{vaneGroup}
	r.Vanes = vanes

	if src.Vane == "" {
		if err = b.host.Delete(ctx, vane); err != nil {
			return nil, err
		}
	}

	if err = b.TextureFeathers(ctx, append([]string{rachis}, vanes...), plan.Material); err != nil {
		return nil, err
	}

	if plan.Barbs.Mirror {
		mirroredBarbs, e := b.mirror(ctx, barbGroup)
		if e != nil {
			return nil, e
		}

		mirroredVanes, e := b.mirror(ctx, vaneGroup)
		if e != nil {
			return nil, e
		}

		r.BarbGroups = append(r.BarbGroups, mirroredBarbs)
		r.VaneGroups = append(r.VaneGroups, mirroredVanes)
	}

	members := append([]string{rachis}, r.BarbGroups...)
	members = append(members, r.VaneGroups...)

	r.Feather, err = b.host.Group(ctx, FeatherName, members)
	if err != nil {
		return nil, err
	}

	r.Feathers = []string{r.Feather}

	if len(src.Placements) > 0 {
		r.Placed, r.Feathers, err = b.placeDuplicates(ctx, src.Placements, r.Feather, plan.GroupName)
		if err != nil {
			return nil, err
		}
	}

	if err = b.ScaleFeathers(ctx, r.Feathers, plan.Scale); err != nil {
		return nil, err
	}

	b.logger.WithFields(l.StringField("feather", r.Feather), l.IntField("barbs", len(r.Barbs)),
		l.IntField("placed", len(src.Placements))).Info("feather built")

	return r, nil
}
