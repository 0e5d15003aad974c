package skeleton

// BoneSpec is one entry of the fixed bone catalog.
type BoneSpec struct {
	ID     int
	Parent int
	Name   string
}

// Catalog lists the 15 bones in archive order. Parents always precede their
// children, so a single forward pass can link the tree.
var Catalog = []BoneSpec{
	{ID: 0, Parent: -1, Name: "root"},
	{ID: 1, Parent: 0, Name: "head"},
	{ID: 2, Parent: 0, Name: "right_shoulder"},
	{ID: 3, Parent: 2, Name: "right_elbow"},
	{ID: 4, Parent: 3, Name: "right_hand"},
	{ID: 5, Parent: 0, Name: "left_shoulder"},
	{ID: 6, Parent: 5, Name: "left_elbow"},
	{ID: 7, Parent: 6, Name: "left_hand"},
	{ID: 8, Parent: 0, Name: "hips"},
	{ID: 9, Parent: 8, Name: "right_leg"},
	{ID: 10, Parent: 9, Name: "right_knee"},
	{ID: 11, Parent: 10, Name: "right_foot"},
	{ID: 12, Parent: 8, Name: "left_leg"},
	{ID: 13, Parent: 12, Name: "left_knee"},
	{ID: 14, Parent: 13, Name: "left_foot"},
}

const (
	// TableOffset is the payload offset of the bone table.
	TableOffset = 0x00
	// EntrySize is three int16 per bone, unpadded.
	EntrySize = 6
	// Scale converts fixed-point archive units to world units. Shared with
	// mesh vertices.
	Scale = 0.00125
)
