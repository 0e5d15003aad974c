package model

import (
	"errors"
	"fmt"

	"mml2-dash-decoder/internal/archive"
	"mml2-dash-decoder/internal/decodeerr"
	"mml2-dash-decoder/internal/mathutil"
	"mml2-dash-decoder/internal/mesh"
	"mml2-dash-decoder/internal/skeleton"
)

// Attachment is a decoded strip placed at its bone's resting position.
type Attachment struct {
	Group     string
	Index     int
	Mesh      *mesh.Mesh
	Bone      int
	BoneName  string
	Path      []int
	Offset    mathutil.Vec3 // world position of Bone
	Alternate bool
}

// Asset is a fully decoded character. Failures lists strips that were
// skipped because their data did not fit the payload.
type Asset struct {
	Skeleton    *skeleton.Skeleton
	Attachments []Attachment
	Failures    []error
}

// Load decodes a payload with the built-in attachment table.
func Load(payload []byte) (*Asset, error) {
	return LoadWith(payload, Attachments)
}

// LoadWith decodes a payload using a custom attachment table. Skeleton and
// strip-header errors abort the load; a truncated strip only drops that mesh.
func LoadWith(payload []byte, table []AttachmentSpec) (*Asset, error) {
	skel, err := skeleton.Build(payload)
	if err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}
	if err := ValidateTable(skel, table); err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}

	asset := &Asset{Skeleton: skel}
	decoded := make(map[string][]*mesh.Mesh, len(mesh.Groups))
	for _, g := range mesh.Groups {
		headers, err := mesh.ReadStrips(payload, g.Offset, g.Strips)
		if err != nil {
			return nil, fmt.Errorf("model: group %s: %w", g.Name, err)
		}

		meshes := make([]*mesh.Mesh, len(headers))
		for i, h := range headers {
			m, err := mesh.Decode(payload, h)
			if errors.Is(err, decodeerr.ErrTruncatedStrip) {
				asset.Failures = append(asset.Failures, err)
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("model: strip %s: %w", h.Name, err)
			}
			meshes[i] = m
		}
		decoded[g.Name] = meshes
	}

	for _, a := range table {
		m := decoded[a.Group][a.Index]
		if m == nil {
			continue
		}
		id, _ := skel.Resolve(a.Path)
		asset.Attachments = append(asset.Attachments, Attachment{
			Group:     a.Group,
			Index:     a.Index,
			Mesh:      m,
			Bone:      id,
			BoneName:  skel.Bones[id].Name,
			Path:      a.Path,
			Offset:    skel.WorldPosition(id),
			Alternate: a.Alternate,
		})
	}

	return asset, nil
}

// LoadFile reads, unwraps and decodes an archive file.
func LoadFile(path string) (*Asset, *archive.File, error) {
	f, err := archive.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	payload, err := f.Payload()
	if err != nil {
		return nil, f, err
	}
	asset, err := Load(payload)
	if err != nil {
		return nil, f, fmt.Errorf("%s: %w", path, err)
	}
	return asset, f, nil
}

// Primary returns the attachments that make up the default outfit, leaving
// out alternates.
func (a *Asset) Primary() []Attachment {
	out := make([]Attachment, 0, len(a.Attachments))
	for _, at := range a.Attachments {
		if !at.Alternate {
			out = append(out, at)
		}
	}
	return out
}

// Find returns the attachment for a strip name such as "11_FACE".
func (a *Asset) Find(strip string) (Attachment, bool) {
	for _, at := range a.Attachments {
		if at.Mesh.Name == strip {
			return at, true
		}
	}
	return Attachment{}, false
}

// Bounds returns the model-space box around every primary mesh, each moved
// to its bone offset.
func (a *Asset) Bounds() mathutil.Bounds {
	b := mathutil.NewBounds()
	for _, at := range a.Primary() {
		for i := 0; i < at.Mesh.VertexCount(); i++ {
			b.Extend(at.Mesh.Vertex(i).Add(at.Offset))
		}
	}
	return b
}
