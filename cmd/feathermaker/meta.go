package main

import (
	"context"
	"fmt"
	"io"

	"github.com/mitchellh/cli"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libfeather/preset"
	"github.com/sgostarter/libfeather/preset/impls/fmpreset"
	"github.com/sgostarter/libfeather/sampler"
	"github.com/sgostarter/libfeather/vec3"
	"github.com/spf13/pflag"
)

// Meta holds what every command shares.
type Meta struct {
	Ui     cli.Ui
	Logger l.Wrapper

	configFile string
	presetRoot string
	presetName string
}

func (m *Meta) flagSet(name string) *pflag.FlagSet {
	f := pflag.NewFlagSet(name, pflag.ContinueOnError)
	f.SetOutput(io.Discard)
	f.StringVar(&m.configFile, "config", "", "yaml configuration file")
	f.StringVar(&m.presetRoot, "presets", "", "preset directory")
	f.StringVar(&m.presetName, "preset", "", "preset name")

	return f
}

// loadConfig picks the configuration: a preset when --preset is given, then a
// file when --config is given, else the built-in defaults.
func (m *Meta) loadConfig() (preset.Config, error) {
	if m.presetName != "" {
		return fmpreset.NewFMPresetStorage(m.presetRoot, nil).Load(context.Background(), m.presetName)
	}

	if m.configFile != "" {
		return preset.LoadFile(m.configFile)
	}

	return preset.Default(), nil
}

func (m *Meta) errorf(format string, args ...interface{}) int {
	m.Ui.Error(fmt.Sprintf(format, args...))

	return 1
}

// rachisAnchors spreads n anchors evenly along a rachis of the given length,
// named the way a host names the rachis vertices.
func rachisAnchors(n int, length float64) ([]string, map[string]vec3.Vec3) {
	names := make([]string, 0, n)
	positions := make(map[string]vec3.Vec3, n)

	for i, p := range sampler.Positions(n) {
		name := fmt.Sprintf("rachis_geo.vtx[%d]", i)
		names = append(names, name)
		positions[name] = vec3.New(0, 0, p*length)
	}

	return names, positions
}

// placementAnchors lines n placement points up along +X, spaced so the
// feathers do not overlap, and adds them to positions.
func placementAnchors(n int, spacing float64, positions map[string]vec3.Vec3) []string {
	names := make([]string, 0, n)

	for i := 0; i < n; i++ {
		name := fmt.Sprintf("body.vtx[%d]", i)
		names = append(names, name)
		positions[name] = vec3.New(float64(i)*spacing, 0, 0)
	}

	return names
}
