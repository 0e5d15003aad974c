package skeleton

import (
	"encoding/binary"
	"errors"
	"reflect"
	"testing"

	"mml2-dash-decoder/internal/decodeerr"
	"mml2-dash-decoder/internal/mathutil"
)

func boneTable(offsets [][3]int16) []byte {
	buf := make([]byte, 0, len(offsets)*EntrySize)
	for _, o := range offsets {
		for _, v := range o {
			buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
		}
	}
	return buf
}

func TestBuildHierarchy(t *testing.T) {
	offsets := make([][3]int16, len(Catalog))
	for i := range offsets {
		offsets[i] = [3]int16{int16(i), int16(-2 * i), 100}
	}
	s, err := Build(boneTable(offsets))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(s.Bones) != 15 {
		t.Fatalf("bones = %d, want 15", len(s.Bones))
	}
	if s.Root().Parent != -1 || s.Root().Name != "root" {
		t.Errorf("root = %+v", s.Root())
	}
	if got := s.Root().Children; !reflect.DeepEqual(got, []int{1, 2, 5, 8}) {
		t.Errorf("root children = %v", got)
	}
	if got := s.Bones[8].Children; !reflect.DeepEqual(got, []int{9, 12}) {
		t.Errorf("hips children = %v", got)
	}

	for _, b := range s.Bones {
		if b.ID == 0 {
			if !s.WorldPosition(0).ApproxEqual(b.Local, 1e-12) {
				t.Errorf("root world %v != local %v", s.WorldPosition(0), b.Local)
			}
			continue
		}
		want := s.WorldPosition(b.Parent).Add(b.Local)
		if !s.WorldPosition(b.ID).ApproxEqual(want, 1e-9) {
			t.Errorf("%s world = %v, want parent+local %v", b.Name, s.WorldPosition(b.ID), want)
		}
	}
}

func TestBuildScale(t *testing.T) {
	offsets := make([][3]int16, len(Catalog))
	offsets[0] = [3]int16{800, -800, -1}
	s, err := Build(boneTable(offsets))
	if err != nil {
		t.Fatal(err)
	}
	want := mathutil.Vec3{1, -1, -Scale}
	if !s.Bones[0].Local.ApproxEqual(want, 1e-12) {
		t.Errorf("local = %v, want %v", s.Bones[0].Local, want)
	}
	if s.Bones[0].Raw != offsets[0] {
		t.Errorf("raw = %v", s.Bones[0].Raw)
	}
}

func TestBuildTruncated(t *testing.T) {
	_, err := Build(make([]byte, 6*14+4))
	if !errors.Is(err, decodeerr.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestBuildMalformedCatalog(t *testing.T) {
	cases := map[string][]BoneSpec{
		"forward parent": {{ID: 0, Parent: -1, Name: "root"}, {ID: 1, Parent: 2, Name: "a"}, {ID: 2, Parent: 0, Name: "b"}},
		"second root":    {{ID: 0, Parent: -1, Name: "root"}, {ID: 1, Parent: -1, Name: "a"}},
		"rooted child":   {{ID: 0, Parent: 0, Name: "root"}},
		"id mismatch":    {{ID: 0, Parent: -1, Name: "root"}, {ID: 5, Parent: 0, Name: "a"}},
	}
	for name, specs := range cases {
		if _, err := BuildFrom(make([]byte, 64), specs); !errors.Is(err, decodeerr.ErrMalformedSkeleton) {
			t.Errorf("%s: expected ErrMalformedSkeleton, got %v", name, err)
		}
	}
}

func TestResolveAndPath(t *testing.T) {
	s, err := Build(make([]byte, len(Catalog)*EntrySize))
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		path []int
		name string
	}{
		{[]int{}, "root"},
		{[]int{3}, "hips"},
		{[]int{3, 0, 0}, "right_knee"},
		{[]int{3, 1, 0, 0}, "left_foot"},
		{[]int{2, 0, 0}, "left_hand"},
		{[]int{1, 0}, "right_elbow"},
	}
	for _, c := range cases {
		id, err := s.Resolve(c.path)
		if err != nil {
			t.Errorf("Resolve(%v): %v", c.path, err)
			continue
		}
		if s.Bones[id].Name != c.name {
			t.Errorf("Resolve(%v) = %s, want %s", c.path, s.Bones[id].Name, c.name)
		}
		if got := s.Path(id); !reflect.DeepEqual(got, c.path) {
			t.Errorf("Path(%s) = %v, want %v", c.name, got, c.path)
		}
		if want, ok := s.Lookup(c.name); !ok || want != id {
			t.Errorf("Lookup(%s) = %d, %v", c.name, want, ok)
		}
	}

	if _, err := s.Resolve([]int{4}); err == nil {
		t.Error("expected error for missing child")
	}
	if FormatPath([]int{3, 1, 0}) != "root/3/1/0" {
		t.Errorf("FormatPath = %s", FormatPath([]int{3, 1, 0}))
	}
}
