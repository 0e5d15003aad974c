// Package model assembles the skeleton and decoded strips into a character.
package model

import (
	"mml2-dash-decoder/internal/decodeerr"
	"mml2-dash-decoder/internal/mesh"
	"mml2-dash-decoder/internal/skeleton"
)

// AttachmentSpec binds one strip to the bone reached by Path, a chain of
// child indices from the root. Bone names the expected target so the table
// can be checked against the catalog.
type AttachmentSpec struct {
	Group     string
	Index     int
	Bone      string
	Path      []int
	Alternate bool // swaps in for another part (the buster replaces the left arm)
}

// Attachments covers every strip of every group.
var Attachments = []AttachmentSpec{
	{Group: mesh.GroupBody, Index: 0, Bone: "root", Path: []int{}},
	{Group: mesh.GroupBody, Index: 1, Bone: "hips", Path: []int{3}},
	{Group: mesh.GroupBody, Index: 2, Bone: "right_leg", Path: []int{3, 0}},
	{Group: mesh.GroupBody, Index: 3, Bone: "right_knee", Path: []int{3, 0, 0}},
	{Group: mesh.GroupBody, Index: 4, Bone: "left_leg", Path: []int{3, 1}},
	{Group: mesh.GroupBody, Index: 5, Bone: "left_knee", Path: []int{3, 1, 0}},

	{Group: mesh.GroupHead, Index: 0, Bone: "head", Path: []int{0}},
	{Group: mesh.GroupHead, Index: 1, Bone: "head", Path: []int{0}},
	{Group: mesh.GroupHead, Index: 2, Bone: "head", Path: []int{0}},

	{Group: mesh.GroupFeet, Index: 0, Bone: "right_foot", Path: []int{3, 0, 0, 0}},
	{Group: mesh.GroupFeet, Index: 1, Bone: "left_foot", Path: []int{3, 1, 0, 0}},

	{Group: mesh.GroupLeftArm, Index: 0, Bone: "left_shoulder", Path: []int{2}},
	{Group: mesh.GroupLeftArm, Index: 1, Bone: "left_elbow", Path: []int{2, 0}},
	{Group: mesh.GroupLeftArm, Index: 2, Bone: "left_hand", Path: []int{2, 0, 0}},

	{Group: mesh.GroupBuster, Index: 0, Bone: "left_shoulder", Path: []int{2}, Alternate: true},
	{Group: mesh.GroupBuster, Index: 1, Bone: "left_elbow", Path: []int{2, 0}, Alternate: true},
	{Group: mesh.GroupBuster, Index: 2, Bone: "left_hand", Path: []int{2, 0, 0}, Alternate: true},

	{Group: mesh.GroupRightArm, Index: 0, Bone: "right_shoulder", Path: []int{1}},
	{Group: mesh.GroupRightArm, Index: 1, Bone: "right_elbow", Path: []int{1, 0}},
	{Group: mesh.GroupRightArm, Index: 2, Bone: "right_hand", Path: []int{1, 0, 0}},
}

// ValidateTable checks that every entry names an existing strip and that its
// path lands on the named bone.
func ValidateTable(s *skeleton.Skeleton, table []AttachmentSpec) error {
	for _, a := range table {
		g, ok := mesh.FindGroup(a.Group)
		if !ok || a.Index < 0 || a.Index >= len(g.Strips) {
			return decodeerr.New("model", 0, decodeerr.ErrMalformedSkeleton,
				"attachment %s[%d] names no strip", a.Group, a.Index)
		}
		id, err := s.Resolve(a.Path)
		if err != nil {
			return decodeerr.Wrap("model", 0, decodeerr.ErrMalformedSkeleton, err)
		}
		if got := s.Bones[id].Name; got != a.Bone {
			return decodeerr.New("model", 0, decodeerr.ErrMalformedSkeleton,
				"attachment %s[%d]: path %s reaches %q, want %q",
				a.Group, a.Index, skeleton.FormatPath(a.Path), got, a.Bone)
		}
	}
	return nil
}
