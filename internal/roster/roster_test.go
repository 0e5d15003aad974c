package roster

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.xml")
	doc := `<Roster>
  <Character Name="MegaMan" File="PL00.BIN" Texture="PL00T"/>
  <Character File="PL05.BIN"/>
  <Character Name="NoFile"/>
</Roster>`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []Character{
		{Name: "MegaMan", File: "PL00.BIN", Texture: "PL00T"},
		{Name: "PL05", File: "PL05.BIN"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestLoadDefault(t *testing.T) {
	got, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0].File != "PL00.BIN" {
		t.Fatalf("default roster = %+v", got)
	}
	got[0].Name = "changed"
	if Default[0].Name != "MegaMan" {
		t.Error("Load must not hand out the shared default slice")
	}
}

func TestFilter(t *testing.T) {
	if got := Filter(Default, nil); len(got) != 3 {
		t.Errorf("empty filter kept %d", len(got))
	}
	got := Filter(Default, []string{"Roll", "PL02.BIN"})
	if len(got) != 2 || got[0].Name != "Roll" || got[1].Name != "Tron" {
		t.Errorf("filtered = %+v", got)
	}
}
