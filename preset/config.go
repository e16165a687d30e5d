package preset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/sgostarter/libfeather/barb"
	"github.com/sgostarter/libfeather/feather"
	"github.com/sgostarter/libfeather/ramp"
	"github.com/sgostarter/libfeather/sampler"
	"gopkg.in/yaml.v3"
)

// InitialStartAngleOffset is added to the start angle of the barb key at
// position 0 so the first barb leans slightly away from the rachis.
const InitialStartAngleOffset = 5.0

type BarbKey struct {
	Name      string `yaml:"name,omitempty" json:"name,omitempty"`
	barb.Spec `yaml:",inline"`
}

// Config is the complete input of one feather build.
type Config struct {
	Rachis    feather.RachisSpec `yaml:"rachis" json:"rachis"`
	Barbs     []BarbKey          `yaml:"barbs" json:"barbs"`
	Mirror    bool               `yaml:"mirror" json:"mirror"`
	Fill      feather.FillSpec   `yaml:"fill" json:"fill"`
	Scale     feather.ScaleSpec  `yaml:"scale" json:"scale"`
	Material  string             `yaml:"material" json:"material"`
	GroupName string             `yaml:"groupName" json:"groupName"`
}

// Default returns a usable starting configuration. Key positions, the fill,
// scale, material and group values follow the feather tool's panel. Barb
// lengths and angles have no panel value, so these are picked to give a
// plausible contour feather.
func Default() Config {
	return Config{
		Rachis: feather.RachisSpec{
			Length:      10,
			Radius:      0.5,
			BarbDensity: 10,
			Taper:       0,
		},
		Barbs: []BarbKey{
			{Name: "initial", Spec: barb.Spec{Position: 0, Length: 1, StartAngle: 30, EndAngle: 45}},
			{Name: "start", Spec: barb.Spec{Position: 0.1, Length: 3, StartAngle: 45, EndAngle: 60}},
			{Name: "middle", Spec: barb.Spec{Position: 0.5, Length: 4, StartAngle: 60, EndAngle: 75}},
			{Name: "end", Spec: barb.Spec{Position: 0.95, Length: 1.5, StartAngle: 75, EndAngle: 85}},
		},
		Mirror: true,
		Fill: feather.FillSpec{
			Edges:        "0, 2",
			Subdivisions: 10,
			Taper:        1,
		},
		Scale: feather.ScaleSpec{
			Factor:    1,
			Primary:   "z",
			Secondary: "x",
		},
		Material:  "lambert1",
		GroupName: "feathers_grp",
	}
}

func (cfg Config) Clone() Config {
	cfg.Barbs = append([]BarbKey(nil), cfg.Barbs...)

	return cfg
}

func (cfg Config) Check() error {
	plan, err := cfg.Plan()
	if err != nil {
		return err
	}

	return plan.Check()
}

// Graph builds the barb parameter graph. The key at position 0 gets
// InitialStartAngleOffset. When no key sits at position 1, a tip key with zero
// length and the angles of the last key is added so barbs taper to nothing.
func (cfg Config) Graph() (*ramp.Graph[barb.Parameters], error) {
	if len(cfg.Barbs) == 0 {
		return nil, fmt.Errorf("%w: no barb keys", ErrBadConfig)
	}

	keys := append([]BarbKey(nil), cfg.Barbs...)
	sort.SliceStable(keys, func(i, j int) bool {
		return keys[i].Position < keys[j].Position
	})

	points := make(map[float64]barb.Parameters, len(keys)+1)

	for _, key := range keys {
		if _, ok := points[key.Position]; ok {
			return nil, fmt.Errorf("%w: duplicate barb key at %g", ErrBadConfig, key.Position)
		}

		spec := key.Spec
		if spec.Position == 0 {
			spec.StartAngle += InitialStartAngleOffset
		}

		points[key.Position] = barb.FromSpec(spec)
	}

	if _, ok := points[1]; !ok {
		last := keys[len(keys)-1]
		points[1] = barb.NewParameters(1, 0, last.StartAngle, last.EndAngle)
	}

	return ramp.New(points)
}

func (cfg Config) SamplerConfig() (sampler.Config[barb.Parameters], error) {
	g, err := cfg.Graph()
	if err != nil {
		return sampler.Config[barb.Parameters]{}, err
	}

	return sampler.Config[barb.Parameters]{Graph: g, Mirror: cfg.Mirror}, nil
}

// Plan turns the configuration into the input of feather.Builder.Build.
func (cfg Config) Plan() (plan feather.Plan, err error) {
	sc, err := cfg.SamplerConfig()
	if err != nil {
		return
	}

	plan = feather.Plan{
		Rachis:    cfg.Rachis,
		Barbs:     sc,
		Fill:      cfg.Fill,
		Material:  cfg.Material,
		Scale:     cfg.Scale,
		GroupName: cfg.GroupName,
	}

	return
}

func LoadFile(file string) (cfg Config, err error) {
	d, err := os.ReadFile(file)
	if err != nil {
		return
	}

	err = yaml.Unmarshal(d, &cfg)

	return
}

func SaveFile(file string, cfg Config) (err error) {
	_ = os.MkdirAll(filepath.Dir(file), 0700)

	d, err := yaml.Marshal(&cfg)
	if err != nil {
		return
	}

	err = os.WriteFile(file, d, 0600)

	return
}
