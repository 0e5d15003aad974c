package mesh

import (
	"encoding/binary"

	"mml2-dash-decoder/internal/binio"
	"mml2-dash-decoder/internal/decodeerr"
	"mml2-dash-decoder/internal/mathutil"
)

const (
	vertexSize = 4
	colorSize  = 3
)

// Mesh is the decoded geometry of one strip. Positions and colour buffers are
// flat xyz / rgb triples; Indices holds three vertex indices per triangle,
// quads already split.
type Mesh struct {
	Name         string
	Positions    []float32
	Colors       []float32 // nil when the strip has no active colours
	StaticColors []float32 // nil when the strip has no static colours
	Indices      []uint16
	Triangles    []Triangle
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of emitted triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Vertex returns vertex i as a vector.
func (m *Mesh) Vertex(i int) mathutil.Vec3 {
	return mathutil.Vec3{
		float64(m.Positions[i*3]),
		float64(m.Positions[i*3+1]),
		float64(m.Positions[i*3+2]),
	}
}

// Bounds returns the axis-aligned box around the vertices.
func (m *Mesh) Bounds() mathutil.Bounds {
	b := mathutil.NewBounds()
	for i := 0; i < m.VertexCount(); i++ {
		b.Extend(m.Vertex(i))
	}
	return b
}

// Decode builds the mesh for one strip. Any region that does not fit in the
// payload fails the whole strip with ErrTruncatedStrip.
func Decode(payload []byte, h StripHeader) (*Mesh, error) {
	if err := h.check(payload); err != nil {
		return nil, err
	}

	m := &Mesh{
		Name:      h.Name,
		Positions: make([]float32, 0, h.VertexCount*3),
	}

	for i := 0; i < h.VertexCount; i++ {
		v := DecodeVertex(binary.LittleEndian.Uint32(payload[h.VertexOffset+i*vertexSize:]))
		m.Positions = append(m.Positions, float32(v[0]), float32(v[1]), float32(v[2]))
	}

	if h.ActiveColorOffset != 0 {
		m.Colors = readColors(payload, h.ActiveColorOffset, h.VertexCount)
	}
	if h.StaticColorOffset != 0 {
		m.StaticColors = readColors(payload, h.StaticColorOffset, h.VertexCount)
	}

	m.Triangles = make([]Triangle, 0, h.TriangleCount+h.QuadCount*2)
	for i := 0; i < h.TriangleCount; i++ {
		if err := m.addFace(payload, h, h.TriangleOffset+i*FaceSize, false); err != nil {
			return nil, err
		}
	}
	for i := 0; i < h.QuadCount; i++ {
		if err := m.addFace(payload, h, h.QuadOffset+i*FaceSize, true); err != nil {
			return nil, err
		}
	}

	m.Indices = make([]uint16, 0, len(m.Triangles)*3)
	for _, tri := range m.Triangles {
		for _, c := range tri {
			m.Indices = append(m.Indices, uint16(c.Vertex))
		}
	}

	return m, nil
}

// addFace decodes the record at off and rejects corners outside the vertex
// buffer.
func (m *Mesh) addFace(payload []byte, h StripHeader, off int, isQuad bool) error {
	tris, err := DecodeFace(payload[off:], isQuad)
	if err != nil {
		return decodeerr.Wrap("mesh", off, decodeerr.ErrTruncatedStrip, err)
	}
	for _, tri := range tris {
		for _, c := range tri {
			if c.Vertex >= h.VertexCount {
				return decodeerr.New("mesh", off, decodeerr.ErrTruncatedStrip,
					"strip %s face references vertex %d of %d", h.Name, c.Vertex, h.VertexCount)
			}
		}
	}
	m.Triangles = append(m.Triangles, tris...)
	return nil
}

type region struct {
	what   string
	off, n int
}

func (h StripHeader) check(payload []byte) error {
	regions := []region{
		{"vertices", h.VertexOffset, h.VertexCount * vertexSize},
		{"triangles", h.TriangleOffset, h.TriangleCount * FaceSize},
		{"quads", h.QuadOffset, h.QuadCount * FaceSize},
	}
	if h.ActiveColorOffset != 0 {
		regions = append(regions, region{"active colors", h.ActiveColorOffset, h.VertexCount * colorSize})
	}
	if h.StaticColorOffset != 0 {
		regions = append(regions, region{"static colors", h.StaticColorOffset, h.VertexCount * colorSize})
	}

	for _, r := range regions {
		if r.n == 0 {
			continue
		}
		if !binio.Fits(payload, r.off, r.n) {
			return decodeerr.New("mesh", r.off, decodeerr.ErrTruncatedStrip,
				"strip %s %s need %d bytes, payload is %d", h.Name, r.what, r.n, len(payload))
		}
	}
	return nil
}

func readColors(payload []byte, off, count int) []float32 {
	out := make([]float32, 0, count*3)
	for i := 0; i < count; i++ {
		p := off + i*colorSize
		out = append(out,
			float32(payload[p])/255,
			float32(payload[p+1])/255,
			float32(payload[p+2])/255)
	}
	return out
}
