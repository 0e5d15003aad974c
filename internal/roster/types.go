package roster

// Character is one selectable character archive.
type Character struct {
	Name    string
	File    string // e.g. "PL00.BIN"
	Texture string // texture name resolved through the texture index; may be empty
}

// Default is the built-in roster used when no roster file is configured.
var Default = []Character{
	{Name: "MegaMan", File: "PL00.BIN"},
	{Name: "Roll", File: "PL01.BIN"},
	{Name: "Tron", File: "PL02.BIN"},
}
