// Package vec has small 2D and 3D vectors for grid puzzles
package vec

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is any type a vector can hold
type Number interface {
	constraints.Integer | constraints.Float
}

type Vec2[T Number] struct{ X, Y T }

type Vec3[T Number] struct{ X, Y, Z T }

type (
	Vec2u = Vec2[uint]
	Vec2i = Vec2[int]
)

func absDiff[T Number](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X + o.X, v.Y + o.Y} }
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X - o.X, v.Y - o.Y} }
func (v Vec2[T]) Mul(k T) Vec2[T]       { return Vec2[T]{v.X * k, v.Y * k} }
func (v Vec2[T]) Min(o Vec2[T]) Vec2[T] { return Vec2[T]{min(v.X, o.X), min(v.Y, o.Y)} }
func (v Vec2[T]) Max(o Vec2[T]) Vec2[T] { return Vec2[T]{max(v.X, o.X), max(v.Y, o.Y)} }

// Manhattan returns the taxicab distance between `v` and `o`.  It's
// safe for unsigned types.
func (v Vec2[T]) Manhattan(o Vec2[T]) T {
	return absDiff(v.X, o.X) + absDiff(v.Y, o.Y)
}

// Neighbors4 returns the orthogonal neighbours of `v` that fall
// within [0, width) x [0, height), in the order left, up, right,
// down
func (v Vec2[T]) Neighbors4(width, height T) []Vec2[T] {
	out := make([]Vec2[T], 0, 4)
	if v.X > 0 {
		out = append(out, Vec2[T]{v.X - 1, v.Y})
	}
	if v.Y > 0 {
		out = append(out, Vec2[T]{v.X, v.Y - 1})
	}
	if v.X+1 < width {
		out = append(out, Vec2[T]{v.X + 1, v.Y})
	}
	if v.Y+1 < height {
		out = append(out, Vec2[T]{v.X, v.Y + 1})
	}
	return out
}

func (v Vec2[T]) String() string { return fmt.Sprintf("(%v, %v)", v.X, v.Y) }

func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3[T]) Mul(k T) Vec3[T]       { return Vec3[T]{v.X * k, v.Y * k, v.Z * k} }

func (v Vec3[T]) Min(o Vec3[T]) Vec3[T] {
	return Vec3[T]{min(v.X, o.X), min(v.Y, o.Y), min(v.Z, o.Z)}
}

func (v Vec3[T]) Max(o Vec3[T]) Vec3[T] {
	return Vec3[T]{max(v.X, o.X), max(v.Y, o.Y), max(v.Z, o.Z)}
}

func (v Vec3[T]) Manhattan(o Vec3[T]) T {
	return absDiff(v.X, o.X) + absDiff(v.Y, o.Y) + absDiff(v.Z, o.Z)
}

func (v Vec3[T]) String() string { return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z) }
