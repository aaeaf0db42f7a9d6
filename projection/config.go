package projection

import (
	"errors"
	"fmt"

	"github.com/oliverbestmann/frustum/glm"
)

const (
	DefaultNear   float32 = 0
	DefaultFar    float32 = 1000
	DefaultFov    glm.Deg = 90
	DefaultWidth  uint    = 1280
	DefaultHeight uint    = 720
)

// Config holds the parameters of a perspective projection.
type Config struct {
	// Near and Far are the distances of the clip planes along the z axis.
	Near, Far float32

	// Fov is the full field of view angle.
	Fov glm.Deg

	// Width and Height of the viewport in pixels.
	Width, Height uint
}

// DefaultConfig returns the default parameters: near 0, far 1000, fov 90 at 1280x720.
func DefaultConfig() Config {
	return Config{
		Near:   DefaultNear,
		Far:    DefaultFar,
		Fov:    DefaultFov,
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// AspectRatio is width divided by height. A height of zero is not
// rejected and yields a non finite ratio.
func (c Config) AspectRatio() float32 {
	return float32(c.Width) / float32(c.Height)
}

// FovScale is the cotangent of half the field of view.
func (c Config) FovScale() float32 {
	return glm.Cot(glm.DegToRad(c.Fov * 0.5))
}

// Depth is the distance between the clip planes.
func (c Config) Depth() float32 {
	return c.Far - c.Near
}

// Validate checks the same preconditions that WithFov and Build enforce
// by panicking.
func (c Config) Validate() error {
	return errors.Join(checkFov(c.Fov), checkDepth(c.Near, c.Far))
}

func checkFov(fov glm.Deg) error {
	// written as a positive check so that NaN is rejected too
	if !(fov > 0 && fov < 360) {
		return fmt.Errorf("%w: got %v", ErrFieldOfView, fov)
	}

	return nil
}

func checkDepth(near, far float32) error {
	if far < near {
		return fmt.Errorf("%w: near=%v, far=%v", ErrDepth, near, far)
	}

	return nil
}
