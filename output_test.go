package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// testGeoms returns three geometries from two source files: two H2O
// steps from h2o.nwo and one N2 from n2.nwo, in file order
func testGeoms() []Geometry {
	h2o := mat.NewDense(3, 3, []float64{
		0.00000000, 0.00000000, -0.11817375,
		0.00000000, 0.76924532, 0.47269501,
		0.00000000, -0.76924532, 0.47269501,
	})
	n2 := mat.NewDense(2, 3, []float64{
		0, 0, 0,
		0, 0, 1.097534,
	})
	return []Geometry{
		{
			Source: "run/h2o.nwo", Count: 1,
			Names:  []string{"O", "H", "H"},
			Coords: h2o,
		},
		{
			Source: "run/h2o.nwo", Count: 2,
			Names:  []string{"O", "H", "H"},
			Coords: h2o,
		},
		{
			Source: "run/n2.nwo", Count: 1,
			Names:  []string{"N", "N"},
			Coords: n2,
		},
	}
}

func xyzFiles(t *testing.T, dir string) []string {
	t.Helper()
	files, err := filepath.Glob(filepath.Join(dir, "*.xyz"))
	if err != nil {
		t.Fatal(err)
	}
	return files
}

func readLines(t *testing.T, filename string) []string {
	t.Helper()
	cont, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSuffix(string(cont), "\n"), "\n")
}

func TestWriteSeparate(t *testing.T) {
	tmp := t.TempDir()
	prefix := filepath.Join(tmp, "pre_")
	if err := WriteSeparate(prefix, testGeoms()); err != nil {
		t.Fatal(err)
	}
	if got := len(xyzFiles(t, tmp)); got != 3 {
		t.Errorf("got %d files, wanted 3\n", got)
	}
	for _, name := range []string{
		"pre_h2o_0001.xyz",
		"pre_h2o_0002.xyz",
		"pre_n2_0001.xyz",
	} {
		if _, err := os.Stat(filepath.Join(tmp, name)); err != nil {
			t.Errorf("missing output file %s\n", name)
		}
	}
}

func TestWriteTogether(t *testing.T) {
	tmp := t.TempDir()
	prefix := filepath.Join(tmp, "pre_")
	if err := WriteTogether(prefix, testGeoms()); err != nil {
		t.Fatal(err)
	}
	if got := len(xyzFiles(t, tmp)); got != 2 {
		t.Errorf("got %d files, wanted 2\n", got)
	}
	// two concatenated 3-atom blocks of 5 lines each
	lines := readLines(t, filepath.Join(tmp, "pre_h2o.xyz"))
	if len(lines) != 10 {
		t.Fatalf("got %d lines, wanted 10\n", len(lines))
	}
	if lines[0] != "3" || lines[5] != "3" {
		t.Errorf("got block headers %q and %q, wanted \"3\"\n",
			lines[0], lines[5])
	}
}

func TestWriteAllTogether(t *testing.T) {
	tmp := t.TempDir()
	prefix := filepath.Join(tmp, "all")
	if err := WriteAllTogether(prefix, testGeoms()); err != nil {
		t.Fatal(err)
	}
	files := xyzFiles(t, tmp)
	if len(files) != 1 {
		t.Fatalf("got %d files, wanted 1\n", len(files))
	}
	if files[0] != filepath.Join(tmp, "all.xyz") {
		t.Errorf("got %s, wanted all.xyz\n", files[0])
	}
	// 5 + 5 + 4 lines for the three blocks
	lines := readLines(t, files[0])
	if len(lines) != 14 {
		t.Errorf("got %d lines, wanted 14\n", len(lines))
	}
	if lines[10] != "2" {
		t.Errorf("got third block header %q, wanted \"2\"\n", lines[10])
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		s       string
		want    Mode
		wantErr bool
	}{
		{s: "separate", want: Separate},
		{s: "together", want: Together},
		{s: "alltogether", want: AllTogether},
		{s: "sideways", wantErr: true},
		{s: "", wantErr: true},
	}
	for _, test := range tests {
		got, err := ParseMode(test.s)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseMode(%q) error %v\n", test.s, err)
			continue
		}
		if err == nil && got != test.want {
			t.Errorf("got %v, wanted %v\n", got, test.want)
		}
	}
}
