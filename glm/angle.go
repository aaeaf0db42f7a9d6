package glm

import "github.com/chewxy/math32"

// Deg is an angle in degrees.
type Deg float32

// Rad is an angle in radians.
type Rad float32

func (d Deg) Rad() Rad {
	return DegToRad(d)
}

func (r Rad) Deg() Deg {
	return Deg(float32(r) * (180 / math32.Pi))
}

func DegToRad[T float](deg T) Rad {
	return Rad(float32(deg) * (math32.Pi / 180))
}
