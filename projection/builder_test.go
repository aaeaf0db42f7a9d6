package projection

import (
	"errors"
	"math"
	"testing"

	"github.com/oliverbestmann/frustum/glm"
)

func recoverError(t *testing.T, fn func()) (err error) {
	t.Helper()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}

		var ok bool
		if err, ok = r.(error); !ok {
			t.Fatalf("expected panic with an error, got %T: %v", r, r)
		}
	}()

	fn()
	return nil
}

func near(a, b, tolerance float64) bool {
	diff := a - b
	if b != 0 {
		diff /= math.Abs(b)
	}

	return -tolerance <= diff && diff <= tolerance
}

func checkMatrix(t *testing.T, m, expected glm.Mat4f) {
	t.Helper()

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !near(float64(m[i][j]), float64(expected[i][j]), 1e-4) {
				t.Errorf("m(%d, %d) expected to be %0.6f, got %0.6f",
					i, j, expected[i][j], m[i][j],
				)
			}
		}
	}
}

func TestDefaults(t *testing.T) {
	c := New().Config()

	if c != (Config{Near: 0, Far: 1000, Fov: 90, Width: 1280, Height: 720}) {
		t.Errorf("unexpected defaults: %+v", c)
	}
}

func TestWithFovInvalid(t *testing.T) {
	values := []glm.Deg{
		0, -1, -0.0001, 360, 360.5, 720, -360,
		glm.Deg(math.NaN()),
		glm.Deg(math.Inf(1)),
		glm.Deg(math.Inf(-1)),
	}

	for _, fov := range values {
		err := recoverError(t, func() { New().WithFov(fov) })
		if !errors.Is(err, ErrFieldOfView) {
			t.Errorf("fov %v: expected ErrFieldOfView, got %v", fov, err)
		}
	}
}

func TestWithFovValid(t *testing.T) {
	values := []glm.Deg{0.0001, 1, 45, 90, 179.9, 180, 270, 359.999}

	for _, fov := range values {
		b := New().WithFov(fov)
		if got := b.Config().Fov; got != fov {
			t.Errorf("expected fov %v to be stored unchanged, got %v", fov, got)
		}
	}
}

func TestBuildInvalidDepth(t *testing.T) {
	tests := []struct {
		near, far float32
	}{
		{10, 5},
		{-1, -2},
		{0, -0.001},
		{1000, 0},
	}

	for _, tt := range tests {
		b := New().WithNear(tt.near).WithFar(tt.far)

		err := recoverError(t, func() { b.Build() })
		if !errors.Is(err, ErrDepth) {
			t.Errorf("near=%v far=%v: expected ErrDepth, got %v", tt.near, tt.far, err)
		}
	}
}

func TestBuildDefault(t *testing.T) {
	m := New().Build()

	checkMatrix(t, m, glm.Mat4f{
		{1280.0 / 720.0, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1_000_000, 1},
		{0, 0, 0, 0},
	})

	if m[2][2] != 1_000_000 {
		t.Errorf("m(2, 2) expected to be exactly 1000000, got %f", m[2][2])
	}
	if m[2][3] != 1 {
		t.Errorf("m(2, 3) expected to be exactly 1, got %f", m[2][3])
	}
	if m[3][2] != 0 {
		t.Errorf("m(3, 2) expected to be 0, got %f", m[3][2])
	}
}

func TestBuildCustom(t *testing.T) {
	m := New().
		WithWidth(1920).
		WithHeight(1080).
		WithFov(100).
		WithFar(500).
		WithNear(5).
		Build()

	fovScale := 1 / math.Tan(50*math.Pi/180)

	checkMatrix(t, m, glm.Mat4f{
		{float32(1920.0 / 1080.0 * fovScale), 0, 0, 0},
		{0, float32(fovScale), 0, 0},
		{0, 0, 500 * 495, 1},
		{0, 0, -500.0 * 5 / 495, 0},
	})
}

func TestBuildIdempotent(t *testing.T) {
	b := New().WithFov(73).WithNear(0.1).WithFar(250).WithWidth(800).WithHeight(600)

	first := b.Build()
	second := b.Build()

	if first != second {
		t.Errorf("expected identical matrices, got\n%v\n%v", first, second)
	}
	if b.Config() != (Config{Near: 0.1, Far: 250, Fov: 73, Width: 800, Height: 600}) {
		t.Errorf("build must not modify the configuration: %+v", b.Config())
	}
}

func TestBuildEqualClipPlanes(t *testing.T) {
	m := New().WithNear(10).WithFar(10).Build()

	if m[2][2] != 0 {
		t.Errorf("m(2, 2) expected to be 0, got %f", m[2][2])
	}
	if m.IsFinite() {
		t.Error("expected a non finite m(3, 2) for a zero depth")
	}
}

func TestBuildZeroHeight(t *testing.T) {
	m := New().WithHeight(0).Build()

	if !math.IsInf(float64(m[0][0]), 1) {
		t.Errorf("m(0, 0) expected to be +Inf, got %f", m[0][0])
	}
}

func TestBuildUnvalidatedRanges(t *testing.T) {
	tests := []struct {
		name  string
		build Builder
		check func(t *testing.T, m glm.Mat4f)
	}{
		{
			name:  "fov 180",
			build: New().WithFov(180),
			check: func(t *testing.T, m glm.Mat4f) {
				if !m.IsFinite() {
					t.Errorf("expected a finite matrix, got %v", m)
				}
				if v := math.Abs(float64(m[1][1])); v > 1e-6 {
					t.Errorf("m(1, 1) expected to be close to 0, got %g", m[1][1])
				}
			},
		},
		{
			name:  "negative near",
			build: New().WithNear(-10).WithFar(100),
			check: func(t *testing.T, m glm.Mat4f) {
				if !near(float64(m[3][2]), 1000.0/110, 1e-4) {
					t.Errorf("m(3, 2) expected to be %f, got %f", 1000.0/110, m[3][2])
				}
				if m[2][2] != 100*110 {
					t.Errorf("m(2, 2) expected to be %d, got %f", 100*110, m[2][2])
				}
			},
		},
		{
			name:  "positive near",
			build: New().WithNear(10).WithFar(100),
			check: func(t *testing.T, m glm.Mat4f) {
				if !near(float64(m[3][2]), -1000.0/90, 1e-4) {
					t.Errorf("m(3, 2) expected to be %f, got %f", -1000.0/90, m[3][2])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.build.Build())
		})
	}
}

func TestReconfigure(t *testing.T) {
	type cell struct{ row, col int }

	tests := []struct {
		name    string
		change  func(Builder) Builder
		changed []cell
	}{
		{"width", func(b Builder) Builder { return b.WithWidth(1920) }, []cell{{0, 0}}},
		{"height", func(b Builder) Builder { return b.WithHeight(1080) }, []cell{{0, 0}}},
		{"fov", func(b Builder) Builder { return b.WithFov(60) }, []cell{{0, 0}, {1, 1}}},
		{"near", func(b Builder) Builder { return b.WithNear(1) }, []cell{{2, 2}, {3, 2}}},
		{"far", func(b Builder) Builder { return b.WithFar(200) }, []cell{{2, 2}, {3, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := New().WithNear(0.5)
			before := base.Build()
			after := tt.change(base).Build()

			isChanged := map[cell]bool{}
			for _, c := range tt.changed {
				isChanged[c] = true
				if before[c.row][c.col] == after[c.row][c.col] {
					t.Errorf("m(%d, %d) expected to change", c.row, c.col)
				}
			}

			for i := 0; i < 4; i++ {
				for j := 0; j < 4; j++ {
					if !isChanged[cell{i, j}] && before[i][j] != after[i][j] {
						t.Errorf("m(%d, %d) expected to stay %f, got %f", i, j, before[i][j], after[i][j])
					}
				}
			}

			if base.Config().Near != 0.5 || base.Config().Width != DefaultWidth {
				t.Errorf("base builder must not be modified: %+v", base.Config())
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config expected to be valid, got %v", err)
	}

	c := DefaultConfig()
	c.Fov = 400
	c.Near, c.Far = 10, 1

	err := c.Validate()
	if !errors.Is(err, ErrFieldOfView) {
		t.Errorf("expected ErrFieldOfView, got %v", err)
	}
	if !errors.Is(err, ErrDepth) {
		t.Errorf("expected ErrDepth, got %v", err)
	}
}

func TestTryBuild(t *testing.T) {
	m, err := New().WithNear(5).WithFar(500).TryBuild()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != New().WithNear(5).WithFar(500).Build() {
		t.Error("TryBuild and Build expected to agree")
	}

	m, err = New().WithNear(5).WithFar(1).TryBuild()
	if !errors.Is(err, ErrDepth) {
		t.Errorf("expected ErrDepth, got %v", err)
	}
	if !m.IsZero() {
		t.Errorf("expected zero matrix on error, got %v", m)
	}
}

func TestFromConfig(t *testing.T) {
	c := Config{Near: 1, Far: 10, Fov: 60, Width: 640, Height: 480}

	if got := FromConfig(c).Config(); got != c {
		t.Errorf("expected %+v, got %+v", c, got)
	}

	c.Fov = 0
	err := recoverError(t, func() { FromConfig(c) })
	if !errors.Is(err, ErrFieldOfView) {
		t.Errorf("expected ErrFieldOfView, got %v", err)
	}
}
