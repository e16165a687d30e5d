package main

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/mitchellh/cli"
	"github.com/sgostarter/libfeather/feather"
	"github.com/sgostarter/libfeather/feather/impls/recorder"
	"github.com/sgostarter/libfeather/preset/impls/fmpreset"
	"github.com/sgostarter/libfeather/sampler"
	"gopkg.in/yaml.v3"
)

type ResolveCommand struct {
	Meta
}

func (c *ResolveCommand) Run(args []string) int {
	var anchors int

	f := c.flagSet("resolve")
	f.IntVar(&anchors, "anchors", 0, "number of anchors")

	if err := f.Parse(args); err != nil {
		return c.errorf("Failed to parse arguments: %s", err)
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return c.errorf("Failed to load configuration: %s", err)
	}

	sc, err := cfg.SamplerConfig()
	if err != nil {
		return c.errorf("Invalid barb configuration: %s", err)
	}

	if anchors <= 0 {
		anchors = defaultAnchorCount(cfg.Rachis)
	}

	rs, err := sampler.NewDriver[int](sc, c.Logger).Resolve(make([]int, anchors))
	if err != nil {
		return c.errorf("Failed to resolve barbs: %s", err)
	}

	for _, r := range rs {
		c.Ui.Output(fmt.Sprintf("%d\t%g\t%s", r.Index, r.Position, r.Value))
	}

	return 0
}

func (c *ResolveCommand) Help() string {
	return strings.TrimSpace(`
Usage: feathermaker resolve [options]

  Prints the barb parameters resolved for every anchor along the rachis.

Options:

  --anchors=n       Number of anchors. Defaults to one per rachis division.
  --config=path     Read the configuration from a yaml file.
  --preset=name     Use a saved preset instead.
  --presets=dir     Directory holding saved presets.
`)
}

func (c *ResolveCommand) Synopsis() string {
	return "Resolve barb parameters for each anchor"
}

type BuildCommand struct {
	Meta
}

func (c *BuildCommand) Run(args []string) int {
	var placements int

	f := c.flagSet("build")
	f.IntVar(&placements, "placements", 3, "number of places the feather is copied to")

	if err := f.Parse(args); err != nil {
		return c.errorf("Failed to parse arguments: %s", err)
	}

	if placements < 0 {
		return c.errorf("Negative placement count %d", placements)
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return c.errorf("Failed to load configuration: %s", err)
	}

	plan, err := cfg.Plan()
	if err != nil {
		return c.errorf("Invalid configuration: %s", err)
	}

	anchors, positions := rachisAnchors(defaultAnchorCount(cfg.Rachis), cfg.Rachis.Length)
	targets := placementAnchors(placements, cfg.Rachis.Length, positions)

	host := recorder.NewHost(positions, c.Logger)

	r, err := feather.NewBuilder(host, c.Logger).Build(context.Background(), plan, feather.Sources{
		Anchors:    anchors,
		Placements: targets,
	})
	if err != nil {
		return c.errorf("Failed to build feather: %s", err)
	}

	c.Ui.Output(fmt.Sprintf("rachis: %s", r.Rachis))
	c.Ui.Output(fmt.Sprintf("barb groups: %s", strings.Join(r.BarbGroups, ", ")))
	c.Ui.Output(fmt.Sprintf("barbs: %d", len(r.Barbs)))
	c.Ui.Output(fmt.Sprintf("vane groups: %s", strings.Join(r.VaneGroups, ", ")))
	c.Ui.Output(fmt.Sprintf("vanes: %d", len(r.Vanes)))
	c.Ui.Output(fmt.Sprintf("feather: %s", r.Feather))

	if r.Placed != "" {
		c.Ui.Output(fmt.Sprintf("placed: %s (%d)", r.Placed, len(r.Feathers)))
	}

	c.Ui.Output(fmt.Sprintf("host operations: %d", len(host.Ops())))

	return 0
}

func (c *BuildCommand) Help() string {
	return strings.TrimSpace(`
Usage: feathermaker build [options]

  Builds a whole feather against an in-memory host: rachis, barb curves,
  filled and textured vanes, the mirrored half, then copies the feather onto
  placement points and scales the copies. Prints a summary of the objects.

Options:

  --placements=n      Number of placement points. 0 scales the feather itself.
  --config=path       Read the configuration from a yaml file.
  --preset=name       Use a saved preset instead.
  --presets=dir       Directory holding saved presets.
`)
}

func (c *BuildCommand) Synopsis() string {
	return "Dry-run a feather build"
}

func defaultAnchorCount(spec feather.RachisSpec) int {
	return max(int(math.Floor(float64(spec.BarbDensity)*spec.Length))+1, 1)
}

type PresetsCommand struct {
	Meta
}

func (c *PresetsCommand) Run(_ []string) int {
	return cli.RunResultHelp
}

func (c *PresetsCommand) Help() string {
	return strings.TrimSpace(`
Usage: feathermaker presets <subcommand> [options] [args]

  Manages saved feather configurations.
`)
}

func (c *PresetsCommand) Synopsis() string {
	return "Manage saved configurations"
}

type PresetsListCommand struct {
	Meta
}

func (c *PresetsListCommand) Run(args []string) int {
	f := c.flagSet("presets list")

	if err := f.Parse(args); err != nil {
		return c.errorf("Failed to parse arguments: %s", err)
	}

	names, err := fmpreset.NewFMPresetStorage(c.presetRoot, nil).List(context.Background())
	if err != nil {
		return c.errorf("Failed to list presets: %s", err)
	}

	for _, name := range names {
		c.Ui.Output(name)
	}

	return 0
}

func (c *PresetsListCommand) Help() string {
	return strings.TrimSpace(`
Usage: feathermaker presets list --presets=dir
`)
}

func (c *PresetsListCommand) Synopsis() string {
	return "List saved presets"
}

type PresetsSaveCommand struct {
	Meta
}

func (c *PresetsSaveCommand) Run(args []string) int {
	f := c.flagSet("presets save")

	if err := f.Parse(args); err != nil {
		return c.errorf("Failed to parse arguments: %s", err)
	}

	if f.NArg() != 1 {
		return c.errorf("Expected exactly one preset name")
	}

	// --preset names the source, so read the configuration before saving
	cfg, err := c.loadConfig()
	if err != nil {
		return c.errorf("Failed to load configuration: %s", err)
	}

	if err = cfg.Check(); err != nil {
		return c.errorf("Invalid configuration: %s", err)
	}

	err = fmpreset.NewFMPresetStorage(c.presetRoot, nil).Save(context.Background(), f.Arg(0), cfg)
	if err != nil {
		return c.errorf("Failed to save preset: %s", err)
	}

	c.Ui.Output(fmt.Sprintf("saved %s", f.Arg(0)))

	return 0
}

func (c *PresetsSaveCommand) Help() string {
	return strings.TrimSpace(`
Usage: feathermaker presets save [--config=path] --presets=dir NAME

  Saves the configuration (or the defaults) under NAME.
`)
}

func (c *PresetsSaveCommand) Synopsis() string {
	return "Save a configuration as a preset"
}

type PresetsShowCommand struct {
	Meta
}

func (c *PresetsShowCommand) Run(args []string) int {
	f := c.flagSet("presets show")

	if err := f.Parse(args); err != nil {
		return c.errorf("Failed to parse arguments: %s", err)
	}

	if f.NArg() != 1 {
		return c.errorf("Expected exactly one preset name")
	}

	cfg, err := fmpreset.NewFMPresetStorage(c.presetRoot, nil).Load(context.Background(), f.Arg(0))
	if err != nil {
		return c.errorf("Failed to load preset %s: %s", f.Arg(0), err)
	}

	d, err := yaml.Marshal(&cfg)
	if err != nil {
		return c.errorf("Failed to encode preset: %s", err)
	}

	c.Ui.Output(strings.TrimSpace(string(d)))

	return 0
}

func (c *PresetsShowCommand) Help() string {
	return strings.TrimSpace(`
Usage: feathermaker presets show --presets=dir NAME
`)
}

func (c *PresetsShowCommand) Synopsis() string {
	return "Print a saved preset as yaml"
}
