package mathutil

import "testing"

func TestTranslationCompose(t *testing.T) {
	parent := Translation(Vec3{1, 2, 3})
	child := Translation(Vec3{0.5, -1, 0})
	world := Mat4Mul(parent, child)

	got := world.TranslationPart()
	if !got.ApproxEqual(Vec3{1.5, 1, 3}, 1e-12) {
		t.Fatalf("composed translation = %v", got)
	}
	if p := world.MulPoint(Vec3{1, 1, 1}); !p.ApproxEqual(Vec3{2.5, 2, 4}, 1e-12) {
		t.Errorf("MulPoint = %v", p)
	}
}

func TestBounds(t *testing.T) {
	b := NewBounds()
	if !b.Empty() || b.Size() != (Vec3{}) {
		t.Fatalf("new bounds should be empty, got %+v", b)
	}
	b.Extend(Vec3{-1, 0, 2})
	b.Extend(Vec3{1, 3, -2})
	if b.Empty() {
		t.Fatal("bounds still empty after Extend")
	}
	if s := b.Size(); !s.ApproxEqual(Vec3{2, 3, 4}, 1e-12) {
		t.Errorf("Size = %v, want [2 3 4]", s)
	}
}

func TestBoundsZeroValue(t *testing.T) {
	var b Bounds
	if !b.Empty() {
		t.Fatal("zero value should be empty")
	}
	b.Extend(Vec3{5, -3, 1})
	if b.Empty() || b.Min != (Vec3{5, -3, 1}) || b.Max != (Vec3{5, -3, 1}) {
		t.Fatalf("single point box = %+v", b)
	}
	if s := b.Size(); s != (Vec3{}) {
		t.Errorf("Size = %v, want zero", s)
	}
}
