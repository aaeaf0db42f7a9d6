package glm

import (
	"encoding/binary"
	"fmt"

	"github.com/chewxy/math32"
	"golang.org/x/mobile/exp/f32"
)

// Mat4 is a 4x4 matrix indexed m[row][column].
type Mat4[T float] [4][4]T

func (lhs Mat4[T]) IsZero() bool {
	return lhs == Mat4[T]{}
}

// IsFinite reports whether no element is NaN or infinite.
func (lhs Mat4[T]) IsFinite() bool {
	for _, row := range lhs {
		for _, value := range row {
			v := float32(value)
			if math32.IsNaN(v) || math32.IsInf(v, 0) {
				return false
			}
		}
	}

	return true
}

func (lhs Mat4[T]) Eq(rhs Mat4[T], epsilon T) bool {
	for i := range lhs {
		for j := range lhs[i] {
			diff := lhs[i][j] - rhs[i][j]
			if diff < -epsilon || epsilon < diff {
				return false
			}
		}
	}

	return true
}

func (lhs Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{
		{lhs[0][0], lhs[1][0], lhs[2][0], lhs[3][0]},
		{lhs[0][1], lhs[1][1], lhs[2][1], lhs[3][1]},
		{lhs[0][2], lhs[1][2], lhs[2][2], lhs[3][2]},
		{lhs[0][3], lhs[1][3], lhs[2][3], lhs[3][3]},
	}
}

// RowMajor flattens the matrix row by row.
func (lhs Mat4[T]) RowMajor() [16]T {
	var out [16]T
	for i := range lhs {
		copy(out[i*4:], lhs[i][:])
	}

	return out
}

// ColumnMajor flattens the matrix column by column, the layout
// expected by uniform buffers.
func (lhs Mat4[T]) ColumnMajor() [16]T {
	return lhs.Transpose().RowMajor()
}

func (lhs Mat4[T]) F32() f32.Mat4 {
	var out f32.Mat4
	for i := range lhs {
		for j := range lhs[i] {
			out[i][j] = float32(lhs[i][j])
		}
	}

	return out
}

// Bytes encodes the matrix in column major order as float32 values.
func (lhs Mat4[T]) Bytes(order binary.ByteOrder) []byte {
	columns := lhs.ColumnMajor()

	values := make([]float32, len(columns))
	for i, value := range columns {
		values[i] = float32(value)
	}

	return f32.Bytes(order, values...)
}

func (lhs Mat4[T]) String() string {
	return fmt.Sprint(lhs.F32())
}
