package mesh

// Group is a run of strip headers at a fixed payload offset.
type Group struct {
	Name   string
	Offset int
	Strips []string
}

// Group names.
const (
	GroupBody     = "body"
	GroupHead     = "head"
	GroupFeet     = "feet"
	GroupLeftArm  = "left_arm"
	GroupBuster   = "buster"
	GroupRightArm = "right_arm"
)

// Groups is the fixed strip-table layout of a character payload.
var Groups = []Group{
	{GroupBody, 0x80, []string{
		"00_BODY", "01_HIP", "02_LEG_RIGHT_TOP", "03_LEG_RIGHT_BOTTOM", "04_LEG_LEFT_TOP", "05_LEG_LEFT_BOTTOM",
	}},
	{GroupHead, 0xb60, []string{"10_HELMET", "11_FACE", "12_MOUTH"}},
	{GroupFeet, 0x1800, []string{"20_FOOT_RIGHT", "21_FOOT_LEFT"}},
	{GroupLeftArm, 0x1dd0, []string{"30_LEFT_SHOULDER", "31_LEFT_ARM", "32_LEFT_HAND"}},
	{GroupBuster, 0x2220, []string{"40_LEFT_SHOULDER", "41_BUSTER", "42_BULLET_MAYBE"}},
	{GroupRightArm, 0x26f0, []string{"50_RIGHT_SHOULDER", "51_RIGHT_ARM", "52_RIGHT_HAND"}},
}

// FindGroup returns the group with the given name.
func FindGroup(name string) (Group, bool) {
	for _, g := range Groups {
		if g.Name == name {
			return g, true
		}
	}
	return Group{}, false
}
