// Package config loads the arm configuration from a YAML file. Lengths are in
// meters, and angles are in degrees.
package config

import (
	"bytes"
	"io"
	"math"
	"os"
	"time"

	"github.com/adammck/arm/ik"
	"github.com/adammck/arm/linkage"
	"github.com/adammck/arm/math3d"
	"github.com/adammck/arm/utils"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Arm     Arm     `yaml:"arm"`
	Gripper Gripper `yaml:"gripper"`

	// Where the arm starts, before the first target arrives.
	Home math3d.Vector3 `yaml:"home"`

	FPS             int           `yaml:"fps"`
	CommandInterval time.Duration `yaml:"command_interval"`

	Sweep Sweep `yaml:"sweep"`
}

// Arm is a sparse set of changes to the default arm geometry and limits.
// Fields which are missing from the file keep their defaults.
type Arm struct {
	ShoulderPosition    *math3d.Vector3 `yaml:"shoulder_position"`
	ShoulderLength      *float64        `yaml:"shoulder_length"`
	ElbowLength         *float64        `yaml:"elbow_length"`
	WristLength         *float64        `yaml:"wrist_length"`
	MaximumSpeed        *float64        `yaml:"maximum_speed"`
	MaximumAngularSpeed *float64        `yaml:"maximum_angular_speed"`
	LerpAmount          *float64        `yaml:"lerp_amount"`
	RejectNaN           *bool           `yaml:"reject_nan"`
	ScaleByDt           *bool           `yaml:"scale_by_dt"`

	// Keyed by joint name. When present, joints which are missing are
	// unconstrained.
	Constraints map[string]Limit `yaml:"constraints"`
}

type Limit struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Gripper is the offset of each pivot of the right jaw linkage from the one
// before it, starting from the drive pivot.
type Gripper struct {
	P2 math3d.Vector3 `yaml:"p2"`
	P3 math3d.Vector3 `yaml:"p3"`
	P4 math3d.Vector3 `yaml:"p4"`
	P5 math3d.Vector3 `yaml:"p5"`
}

type Sweep struct {
	Center    math3d.Vector3 `yaml:"center"`
	Radius    float64        `yaml:"radius"`
	Period    time.Duration  `yaml:"period"`
	Actuation float64        `yaml:"actuation"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	home := math3d.Vector3{X: 0, Y: 1.0, Z: 2.0}

	return Config{
		Gripper: Gripper{
			P2: math3d.Vector3{X: 0, Y: 0, Z: 0.03},
			P3: math3d.Vector3{X: 0.02, Y: 0, Z: 0},
			P4: math3d.Vector3{X: 0, Y: 0, Z: -0.03},
			P5: math3d.Vector3{X: -0.02, Y: 0, Z: 0},
		},
		Home:            home,
		FPS:             60,
		CommandInterval: 10 * time.Millisecond,
		Sweep: Sweep{
			Center:    home,
			Radius:    0.25,
			Period:    8 * time.Second,
			Actuation: 0.5,
		},
	}
}

// Load reads the file at path over the defaults, and validates the result.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config")
	}

	return Parse(b)
}

// Parse is like Load, but reads from a byte slice. Unknown keys are an error,
// since they're usually typos.
func Parse(b []byte) (Config, error) {
	c := Default()

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "parsing config")
	}

	if err := c.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}

	return c, nil
}

// Validate returns an error describing every problem with the config.
func (c Config) Validate() error {
	var err error

	if c.FPS <= 0 {
		err = multierr.Append(err, errors.Errorf("fps must be positive, got %d", c.FPS))
	}

	if c.CommandInterval < 0 {
		err = multierr.Append(err, errors.Errorf("command interval must not be negative, got %s", c.CommandInterval))
	}

	if c.Sweep.Period <= 0 {
		err = multierr.Append(err, errors.Errorf("sweep period must be positive, got %s", c.Sweep.Period))
	}

	if math.IsNaN(c.Gripper.Linkage().Right(0).Coupler) {
		err = multierr.Append(err, errors.New("gripper linkage can't close at rest"))
	}

	o, oErr := c.Overrides()
	if oErr != nil {
		return multierr.Append(err, oErr)
	}

	return multierr.Append(err, o.Apply(ik.DefaultSettings()).Validate())
}

// Overrides converts the arm section into solver overrides, in radians.
func (c Config) Overrides() (ik.Overrides, error) {
	a := c.Arm
	o := ik.Overrides{
		ShoulderAbsolutePosition: a.ShoulderPosition,
		ShoulderLength:           a.ShoulderLength,
		ElbowLength:              a.ElbowLength,
		WristLength:              a.WristLength,
		MaximumSpeed:             a.MaximumSpeed,
		LerpAmount:               a.LerpAmount,
		RejectNaN:                a.RejectNaN,
		ScaleByDt:                a.ScaleByDt,
	}

	if a.MaximumAngularSpeed != nil {
		o.MaximumAngularSpeed = ik.Float(utils.Rad(*a.MaximumAngularSpeed))
	}

	if a.Constraints != nil {
		cs, err := constraints(a.Constraints)
		if err != nil {
			return ik.Overrides{}, err
		}

		o.Constraints = &cs
	}

	return o, nil
}

func constraints(limits map[string]Limit) (ik.Constraints, error) {
	cs := ik.Constraints{}

	for name, l := range limits {
		c := ik.Degrees(l.Min, l.Max)

		switch name {
		case ik.Rotunda.String():
			cs.Rotunda = c
		case ik.Shoulder.String():
			cs.Shoulder = c
		case ik.Elbow.String():
			cs.Elbow = c
		case ik.WristPitch.String():
			cs.WristPitch = c
		case ik.WristRoll.String():
			cs.WristRoll = c
		case ik.EffectorPosition.String():
			cs.EffectorPosition = c
		default:
			return ik.Constraints{}, errors.Errorf("unknown joint in constraints: %q", name)
		}
	}

	return cs, nil
}

// Linkage returns the gripper linkage described by the config.
func (g Gripper) Linkage() linkage.Gripper {
	return linkage.NewGripper(g.P2, g.P3, g.P4, g.P5)
}
