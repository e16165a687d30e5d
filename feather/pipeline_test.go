// nolint
package feather_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libfeather/barb"
	"github.com/sgostarter/libfeather/feather"
	"github.com/sgostarter/libfeather/feather/impls/recorder"
	"github.com/sgostarter/libfeather/ramp"
	"github.com/sgostarter/libfeather/sampler"
	"github.com/sgostarter/libfeather/vec3"
	"github.com/stretchr/testify/assert"
)

func testPlan(t *testing.T) feather.Plan {
	t.Helper()

	g, err := ramp.New(map[float64]barb.Parameters{
		0: barb.NewParameters(0, 1, 30, 45),
		1: barb.NewParameters(1, 0, 60, 80),
	})
	assert.Nil(t, err)

	return feather.Plan{
		Rachis:    feather.RachisSpec{Length: 1, Radius: 0.5, BarbDensity: 4},
		Barbs:     sampler.Config[barb.Parameters]{Graph: g, Mirror: true},
		Fill:      feather.FillSpec{Edges: "0, 2", Subdivisions: 3, Taper: 1},
		Material:  "lambert1",
		Scale:     feather.ScaleSpec{Factor: 4, Primary: "z", Secondary: "x"},
		GroupName: "wing_grp",
	}
}

func bodyPlacements(anchors map[string]vec3.Vec3, n int) []string {
	names := make([]string, 0, n)

	for i := 0; i < n; i++ {
		name := fmt.Sprintf("body.vtx[%d]", i)
		names = append(names, name)
		anchors[name] = vec3.New(float64(i)*3, 1, 0)
	}

	return names
}

func countOps(ops []recorder.Op, name string) (n int) {
	for _, op := range ops {
		if op.Name == name {
			n++
		}
	}

	return
}

func TestBuild(t *testing.T) {
	ctx := context.Background()
	names, anchors := rachisAnchors(5)
	placements := bodyPlacements(anchors, 3)
	host := recorder.NewHost(anchors, nil)
	b := feather.NewBuilder(host, l.NewConsoleLoggerWrapper())

	r, err := b.Build(ctx, testPlan(t), feather.Sources{Anchors: names, Placements: placements})
	assert.Nil(t, err)

	rachis, ok := host.Object(r.Rachis)
	assert.True(t, ok)
	assert.Equal(t, "lambert1", rachis.Material)
	assert.True(t, rachis.Projected)

	assert.Len(t, r.Barbs, 5)

	for _, name := range r.Barbs {
		o, ok := host.Object(name)
		assert.True(t, ok)
		assert.Equal(t, recorder.KindCurve, o.Kind)
	}

	assert.Len(t, r.Vanes, 5)

	for _, name := range r.Vanes {
		o, ok := host.Object(name)
		assert.True(t, ok)
		assert.Equal(t, feather.VaneName, o.Base)
		assert.Equal(t, vec3.New(1, feather.FlattenFactor, 1), o.VertexScale)
		assert.True(t, o.Merged)
		assert.Equal(t, "lambert1", o.Material)
		assert.True(t, o.Projected)
	}

	// the generated vane template is removed once the barbs are filled
	assert.Equal(t, 2, countOps(host.Ops(), "createBox"))
	assert.Len(t, host.Names(recorder.KindMesh), 1+5)

	assert.Len(t, r.BarbGroups, 2)
	assert.Len(t, r.VaneGroups, 2)

	for _, groups := range [][]string{r.BarbGroups, r.VaneGroups} {
		mirrored, _ := host.Object(groups[1])
		assert.EqualValues(t, -1, mirrored.Scale.X)
	}

	f, ok := host.Object(r.Feather)
	assert.True(t, ok)
	assert.Equal(t, feather.FeatherName, f.Base)
	assert.Len(t, f.Members, 5)
	assert.Equal(t, vec3.New(1, 1, 1), f.Scale)

	placed, ok := host.Object(r.Placed)
	assert.True(t, ok)
	assert.Equal(t, "wing_grp", placed.Base)
	assert.Equal(t, r.Feathers, placed.Members)
	assert.Len(t, r.Feathers, 3)

	for i, name := range r.Feathers {
		o, ok := host.Object(name)
		assert.True(t, ok)
		assert.Equal(t, anchors[placements[i]], o.Translate)
		assert.Equal(t, vec3.New(2, 1, 4), o.Scale)
	}
}

func TestBuildWithoutPlacements(t *testing.T) {
	ctx := context.Background()
	names, anchors := rachisAnchors(3)
	host := recorder.NewHost(anchors, nil)
	b := feather.NewBuilder(host, nil)

	plan := testPlan(t)
	plan.Barbs.Mirror = false

	vane, err := host.CreateBox(ctx, feather.BoxSpec{Name: "plane", SubdivisionsX: 1, SubdivisionsY: 1, SubdivisionsZ: 1})
	assert.Nil(t, err)

	r, err := b.Build(ctx, plan, feather.Sources{Anchors: names, Vane: vane})
	assert.Nil(t, err)

	assert.Empty(t, r.Placed)
	assert.Equal(t, []string{r.Feather}, r.Feathers)
	assert.Len(t, r.BarbGroups, 1)
	assert.Len(t, r.VaneGroups, 1)

	f, _ := host.Object(r.Feather)
	assert.Equal(t, vec3.New(2, 1, 4), f.Scale)
	assert.Len(t, f.Members, 3)

	// a caller supplied vane is left in place
	_, ok := host.Object(vane)
	assert.True(t, ok)

	for _, name := range r.Vanes {
		o, _ := host.Object(name)
		assert.Equal(t, "plane", o.Base)
	}
}

func TestBuildErrors(t *testing.T) {
	ctx := context.Background()
	names, anchors := rachisAnchors(3)

	for _, mutate := range []func(p *feather.Plan){
		func(p *feather.Plan) { p.Material = "" },
		func(p *feather.Plan) { p.Fill.Edges = "" },
		func(p *feather.Plan) { p.Scale.Secondary = "w" },
		func(p *feather.Plan) { p.Rachis.Radius = 0 },
	} {
		host := recorder.NewHost(anchors, nil)
		b := feather.NewBuilder(host, nil)

		plan := testPlan(t)
		mutate(&plan)

		r, err := b.Build(ctx, plan, feather.Sources{Anchors: names})
		assert.Nil(t, r)
		assert.NotNil(t, err)
		// nothing reaches the host when the plan is rejected
		assert.Empty(t, host.Ops())
	}

	host := recorder.NewHost(anchors, nil)
	b := feather.NewBuilder(host, nil)

	_, err := b.Build(ctx, testPlan(t), feather.Sources{})
	assert.True(t, errors.Is(err, feather.ErrBadSpec))

	r, err := b.Build(ctx, testPlan(t), feather.Sources{Anchors: names, Placements: []string{"nowhere"}})
	assert.Nil(t, r)
	assert.True(t, errors.Is(err, commerr.ErrNotFound))
}
