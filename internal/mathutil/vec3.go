package mathutil

import "math"

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3 [3]float64

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// ApproxEqual compares component-wise within eps.
func (a Vec3) ApproxEqual(b Vec3, eps float64) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

// Bounds is an axis-aligned box. The zero value is empty; the first Extend
// sets both corners.
type Bounds struct {
	Min, Max Vec3
	n        int
}

// NewBounds returns an empty box.
func NewBounds() Bounds {
	return Bounds{}
}

// Empty reports whether no point has been added.
func (b Bounds) Empty() bool {
	return b.n == 0
}

func (b *Bounds) Extend(p Vec3) {
	if b.n == 0 {
		b.Min, b.Max = p, p
		b.n = 1
		return
	}
	for k := 0; k < 3; k++ {
		if p[k] < b.Min[k] {
			b.Min[k] = p[k]
		}
		if p[k] > b.Max[k] {
			b.Max[k] = p[k]
		}
	}
	b.n++
}

func (b Bounds) Size() Vec3 {
	if b.Empty() {
		return Vec3{}
	}
	return b.Max.Sub(b.Min)
}
