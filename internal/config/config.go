package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/oliverbestmann/frustum/glm"
	"github.com/oliverbestmann/frustum/projection"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to the variables read by Load.
const EnvPrefix = "FRUSTUM_"

// File mirrors projection.Config with yaml and env bindings.
type File struct {
	Near   float32 `yaml:"near" env:"NEAR"`
	Far    float32 `yaml:"far" env:"FAR"`
	Fov    float32 `yaml:"fov" env:"FOV"`
	Width  uint    `yaml:"width" env:"WIDTH"`
	Height uint    `yaml:"height" env:"HEIGHT"`
}

func fromProjection(c projection.Config) File {
	return File{
		Near:   c.Near,
		Far:    c.Far,
		Fov:    float32(c.Fov),
		Width:  c.Width,
		Height: c.Height,
	}
}

func (f File) Projection() projection.Config {
	return projection.Config{
		Near:   f.Near,
		Far:    f.Far,
		Fov:    glm.Deg(f.Fov),
		Width:  f.Width,
		Height: f.Height,
	}
}

// Resolve merges the projection parameters without validating them.
// Defaults are overridden by the yaml file at path, if path is not empty,
// and then by FRUSTUM_* environment variables.
func Resolve(path string) (projection.Config, error) {
	file := fromProjection(projection.DefaultConfig())

	if path != "" {
		buf, err := os.ReadFile(path)
		if err != nil {
			return projection.Config{}, fmt.Errorf("read config file: %w", err)
		}

		if err := DecodeYAML(bytes.NewReader(buf), &file); err != nil {
			return projection.Config{}, fmt.Errorf("decode config file %q: %w", path, err)
		}
	}

	if err := ParseEnv(&file); err != nil {
		return projection.Config{}, err
	}

	return file.Projection(), nil
}

// Load is Resolve followed by Validate.
func Load(path string) (projection.Config, error) {
	c, err := Resolve(path)
	if err != nil {
		return projection.Config{}, err
	}

	if err := c.Validate(); err != nil {
		return projection.Config{}, fmt.Errorf("invalid projection: %w", err)
	}

	return c, nil
}

// DecodeYAML decodes a yaml document into target. Fields missing from the
// document keep their value, unknown fields are rejected.
func DecodeYAML(r io.Reader, target *File) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// ParseEnv applies FRUSTUM_* environment variables to target.
func ParseEnv(target *File) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}
