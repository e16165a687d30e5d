// nolint
package preset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/sgostarter/libfeather/barb"
	"github.com/sgostarter/libfeather/feather"
	"github.com/sgostarter/libfeather/ramp"
	"github.com/stretchr/testify/assert"
)

const (
	utRoot = "ut-data"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(utRoot)
	_ = pathutils.MustDirExists(utRoot)

	code := m.Run()

	_ = os.RemoveAll(utRoot)

	os.Exit(code)
}

func TestDefaultGraph(t *testing.T) {
	cfg := Default()
	assert.Nil(t, cfg.Check())

	g, err := cfg.Graph()
	assert.Nil(t, err)
	assert.Equal(t, []float64{0, 0.1, 0.5, 0.95, 1}, g.PointLocations())

	initial, err := g.Get(0)
	assert.Nil(t, err)
	assert.EqualValues(t, 30+InitialStartAngleOffset, initial.StartAngle())
	assert.EqualValues(t, 45, initial.EndAngle())

	tip, err := g.Get(1)
	assert.Nil(t, err)
	assert.Equal(t, barb.NewParameters(1, 0, 75, 85), tip)

	// the configuration itself is left alone
	assert.EqualValues(t, 30, cfg.Barbs[0].StartAngle)
}

func TestDefaultPanelValues(t *testing.T) {
	cfg := Default()

	positions := make([]float64, 0, len(cfg.Barbs))
	for _, key := range cfg.Barbs {
		positions = append(positions, key.Position)
	}

	assert.Equal(t, []float64{0, 0.1, 0.5, 0.95}, positions)
	assert.True(t, cfg.Mirror)
	assert.Equal(t, feather.FillSpec{Edges: "0, 2", Subdivisions: 10, Taper: 1}, cfg.Fill)
	assert.Equal(t, feather.ScaleSpec{Factor: 1, Primary: "z", Secondary: "x"}, cfg.Scale)
	assert.Equal(t, "lambert1", cfg.Material)
	assert.Equal(t, "feathers_grp", cfg.GroupName)
}

func TestGraphKeepsExplicitTip(t *testing.T) {
	cfg := Default()
	cfg.Barbs = append(cfg.Barbs, BarbKey{Name: "tip", Spec: barb.Spec{Position: 1, Length: 0.5, StartAngle: 1, EndAngle: 2}})

	g, err := cfg.Graph()
	assert.Nil(t, err)

	tip, err := g.Get(1)
	assert.Nil(t, err)
	assert.Equal(t, barb.NewParameters(1, 0.5, 1, 2), tip)
}

func TestGraphErrors(t *testing.T) {
	cfg := Default()
	cfg.Barbs = nil

	_, err := cfg.Graph()
	assert.True(t, errors.Is(err, ErrBadConfig))

	cfg = Default()
	cfg.Barbs = append(cfg.Barbs, cfg.Barbs[1])

	_, err = cfg.Graph()
	assert.True(t, errors.Is(err, ErrBadConfig))

	cfg = Default()
	cfg.Barbs[1].Position = 1.5

	_, err = cfg.Graph()
	assert.True(t, errors.Is(err, ramp.ErrInvalidParameter))

	cfg = Default()
	cfg.Scale.Primary = "w"
	assert.True(t, errors.Is(cfg.Check(), feather.ErrBadAxis))
}

func TestSamplerConfig(t *testing.T) {
	cfg := Default()
	cfg.Mirror = false

	sc, err := cfg.SamplerConfig()
	assert.Nil(t, err)
	assert.False(t, sc.Mirror)
	assert.Equal(t, 5, sc.Graph.Len())
}

func TestPlan(t *testing.T) {
	cfg := Default()
	cfg.GroupName = "wing_grp"

	plan, err := cfg.Plan()
	assert.Nil(t, err)
	assert.Nil(t, plan.Check())
	assert.Equal(t, cfg.Rachis, plan.Rachis)
	assert.Equal(t, cfg.Fill, plan.Fill)
	assert.Equal(t, cfg.Scale, plan.Scale)
	assert.Equal(t, "lambert1", plan.Material)
	assert.Equal(t, "wing_grp", plan.GroupName)
	assert.True(t, plan.Barbs.Mirror)
	assert.Equal(t, 5, plan.Barbs.Graph.Len())

	cfg.Material = ""
	assert.True(t, errors.Is(cfg.Check(), feather.ErrBadSpec))

	cfg = Default()
	cfg.Fill.Edges = "a, b"
	assert.True(t, errors.Is(cfg.Check(), feather.ErrBadSpec))

	cfg = Default()
	cfg.Barbs = nil

	_, err = cfg.Plan()
	assert.True(t, errors.Is(err, ErrBadConfig))
}

func TestFileRoundTrip(t *testing.T) {
	file := filepath.Join(utRoot, "cfg", "feather.yaml")

	cfg := Default()
	cfg.Material = "blinn2"

	err := SaveFile(file, cfg)
	assert.Nil(t, err)

	loaded, err := LoadFile(file)
	assert.Nil(t, err)
	assert.Equal(t, cfg, loaded)

	_, err = LoadFile(filepath.Join(utRoot, "missing.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestClone(t *testing.T) {
	cfg := Default()
	c := cfg.Clone()
	c.Barbs[0].Length = 100

	assert.EqualValues(t, 1, cfg.Barbs[0].Length)
}
