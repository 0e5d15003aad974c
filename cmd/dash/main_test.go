package main

import (
	"reflect"
	"testing"
)

func TestSplitList(t *testing.T) {
	cases := map[string][]string{
		"":                   nil,
		"MegaMan":            {"MegaMan"},
		"MegaMan,Roll":       {"MegaMan", "Roll"},
		" Roll , PL02.BIN ,": {"Roll", "PL02.BIN"},
	}
	for in, want := range cases {
		got := splitList(in)
		if len(got) == 0 && len(want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("splitList(%q) = %q, want %q", in, got, want)
		}
	}
}
