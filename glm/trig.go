package glm

import (
	"golang.org/x/mobile/exp/f32"
)

// Tan computes the tangent in single precision.
func Tan(r Rad) float32 {
	return f32.Tan(float32(r))
}

// Cot is 1/tan(r). It is +Inf at r = 0 and not finite wherever tan is.
func Cot(r Rad) float32 {
	return 1 / Tan(r)
}
