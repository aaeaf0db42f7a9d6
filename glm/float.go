package glm

import "golang.org/x/exp/constraints"

type float interface {
	constraints.Float
}
