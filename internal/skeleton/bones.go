package skeleton

import (
	"fmt"
	"strings"

	"mml2-dash-decoder/internal/binio"
	"mml2-dash-decoder/internal/decodeerr"
	"mml2-dash-decoder/internal/mathutil"
)

// Bone is one joint of the bind pose. Children holds bone IDs in attach order.
type Bone struct {
	ID       int
	Parent   int
	Name     string
	Raw      [3]int16
	Local    mathutil.Vec3
	Children []int
}

// Skeleton is an arena of bones indexed by ID.
type Skeleton struct {
	Bones  []Bone
	worlds []mathutil.Mat4
}

// Build reads the bone table at the start of payload using the fixed catalog.
func Build(payload []byte) (*Skeleton, error) {
	return BuildFrom(payload, Catalog)
}

// BuildFrom reads one entry per spec. Every spec must name a parent that was
// already built.
func BuildFrom(payload []byte, specs []BoneSpec) (*Skeleton, error) {
	s := &Skeleton{
		Bones:  make([]Bone, 0, len(specs)),
		worlds: make([]mathutil.Mat4, 0, len(specs)),
	}

	r := binio.NewReader(payload, TableOffset)
	for i, spec := range specs {
		if spec.ID != i {
			return nil, decodeerr.New("skeleton", r.Offset(), decodeerr.ErrMalformedSkeleton,
				"bone %q declared with id %d at position %d", spec.Name, spec.ID, i)
		}
		if spec.Parent >= i || (spec.Parent < 0 && i != 0) || (i == 0 && spec.Parent != -1) {
			return nil, decodeerr.New("skeleton", r.Offset(), decodeerr.ErrMalformedSkeleton,
				"bone %q has parent %d before it exists", spec.Name, spec.Parent)
		}

		off := r.Offset()
		raw := [3]int16{r.I16(), r.I16(), r.I16()}
		if err := r.Err(); err != nil {
			return nil, fmt.Errorf("skeleton: bone %q at 0x%x: %w", spec.Name, off, err)
		}

		b := Bone{
			ID:     spec.ID,
			Parent: spec.Parent,
			Name:   spec.Name,
			Raw:    raw,
			Local: mathutil.Vec3{
				float64(raw[0]) * Scale,
				float64(raw[1]) * Scale,
				float64(raw[2]) * Scale,
			},
		}

		local := mathutil.Translation(b.Local)
		world := local
		if b.Parent >= 0 {
			s.Bones[b.Parent].Children = append(s.Bones[b.Parent].Children, b.ID)
			world = mathutil.Mat4Mul(s.worlds[b.Parent], local)
		}
		s.Bones = append(s.Bones, b)
		s.worlds = append(s.worlds, world)
	}

	return s, nil
}

// Root returns the root bone.
func (s *Skeleton) Root() *Bone {
	return &s.Bones[0]
}

// World returns the accumulated bind-pose transform of bone id.
func (s *Skeleton) World(id int) mathutil.Mat4 {
	return s.worlds[id]
}

// WorldPosition returns where bone id rests in model space.
func (s *Skeleton) WorldPosition(id int) mathutil.Vec3 {
	return s.worlds[id].TranslationPart()
}

// Lookup finds a bone by name.
func (s *Skeleton) Lookup(name string) (int, bool) {
	for _, b := range s.Bones {
		if b.Name == name {
			return b.ID, true
		}
	}
	return -1, false
}

// Resolve walks a child-index chain from the root: each element picks the
// n-th child of the current bone.
func (s *Skeleton) Resolve(path []int) (int, error) {
	id := 0
	for depth, n := range path {
		children := s.Bones[id].Children
		if n < 0 || n >= len(children) {
			return -1, fmt.Errorf("skeleton: path %s: bone %q has no child %d (depth %d)",
				FormatPath(path), s.Bones[id].Name, n, depth)
		}
		id = children[n]
	}
	return id, nil
}

// Path is the inverse of Resolve.
func (s *Skeleton) Path(id int) []int {
	var rev []int
	for id > 0 {
		parent := s.Bones[id].Parent
		for n, c := range s.Bones[parent].Children {
			if c == id {
				rev = append(rev, n)
				break
			}
		}
		id = parent
	}
	path := make([]int, len(rev))
	for i, n := range rev {
		path[len(rev)-1-i] = n
	}
	return path
}

// FormatPath renders a child-index chain as "root/3/0".
func FormatPath(path []int) string {
	var sb strings.Builder
	sb.WriteString("root")
	for _, n := range path {
		fmt.Fprintf(&sb, "/%d", n)
	}
	return sb.String()
}
