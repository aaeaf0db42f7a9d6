package projection

import (
	"github.com/oliverbestmann/frustum/glm"
)

// Builder collects the parameters of a perspective projection and
// assembles the matrix. Setters return a modified copy, a Builder value
// can be reused and rebuilt after further changes.
type Builder struct {
	config Config
}

// New returns a builder initialized with DefaultConfig.
func New() Builder {
	return Builder{config: DefaultConfig()}
}

// FromConfig returns a builder for the given parameters. Like WithFov it
// panics if the field of view is out of range. Use Config.Validate first
// for parameters that come from user input.
func FromConfig(c Config) Builder {
	must(checkFov(c.Fov))
	return Builder{config: c}
}

// Config returns the current parameters.
func (b Builder) Config() Config {
	return b.config
}

// WithNear sets the near clip distance.
func (b Builder) WithNear(near float32) Builder {
	b.config.Near = near
	return b
}

// WithFar sets the far clip distance.
func (b Builder) WithFar(far float32) Builder {
	b.config.Far = far
	return b
}

// WithFov sets the full field of view in degrees.
// It panics if fov is not within the open interval (0, 360).
func (b Builder) WithFov(fov glm.Deg) Builder {
	must(checkFov(fov))
	b.config.Fov = fov
	return b
}

// WithWidth sets the viewport width in pixels.
func (b Builder) WithWidth(width uint) Builder {
	b.config.Width = width
	return b
}

// WithHeight sets the viewport height in pixels. Zero is accepted and
// yields a non finite m[0][0].
func (b Builder) WithHeight(height uint) Builder {
	b.config.Height = height
	return b
}

// Build assembles the projection matrix. It panics if the far clip is
// less than the near clip.
//
// m[2][2] is far*depth, not the far/depth of the usual OpenGL layout.
func (b Builder) Build() glm.Mat4f {
	c := b.config
	must(checkDepth(c.Near, c.Far))

	fovScale := c.FovScale()
	depth := c.Depth()

	var m glm.Mat4f
	m[0][0] = c.AspectRatio() * fovScale
	m[1][1] = fovScale
	m[2][2] = c.Far * depth
	m[3][2] = (-c.Far * c.Near) / depth
	m[2][3] = 1

	return m
}

// TryBuild validates the parameters and builds the matrix, returning an
// error instead of panicking.
func (b Builder) TryBuild() (glm.Mat4f, error) {
	if err := b.config.Validate(); err != nil {
		return glm.Mat4f{}, err
	}

	return b.Build(), nil
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
