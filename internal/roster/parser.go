package roster

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/Luzifer/go_helpers/v2/str"
)

// xmlRoster matches the roster.xml schema.
type xmlRoster struct {
	Characters []xmlCharacter `xml:"Character"`
}

type xmlCharacter struct {
	Name    string `xml:"Name,attr"`
	File    string `xml:"File,attr"`
	Texture string `xml:"Texture,attr"`
}

// Parse reads a roster XML file and returns every character with an archive.
func Parse(xmlPath string) ([]Character, error) {
	raw, err := os.ReadFile(xmlPath)
	if err != nil {
		return nil, fmt.Errorf("roster: read %s: %w", xmlPath, err)
	}

	var list xmlRoster
	if err := xml.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("roster: parse %s: %w", xmlPath, err)
	}

	var chars []Character
	for _, c := range list.Characters {
		if c.File == "" {
			continue
		}
		name := c.Name
		if name == "" {
			name = strings.TrimSuffix(c.File, ".BIN")
		}
		chars = append(chars, Character{Name: name, File: c.File, Texture: c.Texture})
	}

	return chars, nil
}

// Load returns the roster at xmlPath, or Default when xmlPath is empty.
func Load(xmlPath string) ([]Character, error) {
	if xmlPath == "" {
		out := make([]Character, len(Default))
		copy(out, Default)
		return out, nil
	}
	return Parse(xmlPath)
}

// Filter keeps the characters whose name or file is listed in only. An empty
// list keeps everything.
func Filter(chars []Character, only []string) []Character {
	if len(only) == 0 {
		return chars
	}
	var out []Character
	for _, c := range chars {
		if str.StringInSlice(c.Name, only) || str.StringInSlice(c.File, only) {
			out = append(out, c)
		}
	}
	return out
}
