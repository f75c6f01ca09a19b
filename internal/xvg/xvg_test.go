package xvg

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.xvg")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadSkipsDirectivesAndComments(t *testing.T) {
	path := writeFile(t, strings.Join([]string{
		"# gmx energy output",
		"@    title \"Temperature\"",
		"@    xaxis  label \"Time (ps)\"",
		"0.0 298.1",
		"",
		"1.0 300.4",
		"@TYPE xy",
		"2.0 299.7",
	}, "\n"))

	tbl, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if tbl.Rows() != 3 {
		t.Fatalf("Rows() = %d, want 3", tbl.Rows())
	}
	wantX := []float64{0.0, 1.0, 2.0}
	wantY := []float64{298.1, 300.4, 299.7}
	for i := range wantX {
		if tbl.X[i] != wantX[i] || tbl.Y[i] != wantY[i] {
			t.Errorf("row %d = (%g, %g), want (%g, %g)", i, tbl.X[i], tbl.Y[i], wantX[i], wantY[i])
		}
	}
}

func TestReadKeepsExtraColumns(t *testing.T) {
	path := writeFile(t, "0 1 10\n1 2 20\n2 3 30\n")
	tbl, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(tbl.Cols) != 3 {
		t.Fatalf("len(Cols) = %d, want 3", len(tbl.Cols))
	}
	if tbl.Cols[2][1] != 20 {
		t.Errorf("Cols[2][1] = %g, want 20", tbl.Cols[2][1])
	}
	if &tbl.Cols[0][0] != &tbl.X[0] {
		t.Error("X should alias the first column")
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantIn  string
	}{
		{"single column", "0.5\n", "at least two columns"},
		{"ragged row", "0 1\n1 2 3\n", "want 2"},
		{"non-numeric", "0 banana\n", "banana"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.content)
			_, err := Read(path)
			if err == nil {
				t.Fatal("Read = nil error, want failure")
			}
			if !strings.Contains(err.Error(), tt.wantIn) {
				t.Errorf("error %q does not mention %q", err, tt.wantIn)
			}
		})
	}
}

func TestReadTooFewColumnsSentinel(t *testing.T) {
	path := writeFile(t, "42\n")
	_, err := Read(path)
	if !errors.Is(err, ErrTooFewColumns) {
		t.Errorf("error = %v, want ErrTooFewColumns", err)
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.xvg"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestReadEmptyFile(t *testing.T) {
	path := writeFile(t, "# only commentary\n@ and directives\n")
	tbl, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if tbl.Rows() != 0 {
		t.Errorf("Rows() = %d, want 0", tbl.Rows())
	}
}

func TestPathHelpers(t *testing.T) {
	if got := File("run", "npt", "_temp"); got != filepath.Join("run", "npt_temp.xvg") {
		t.Errorf("File = %q", got)
	}
	if got := ReplicaFile("run", 3, "_rmsd"); got != filepath.Join("run", "replica03_rmsd.xvg") {
		t.Errorf("ReplicaFile = %q", got)
	}
	if got := ReplicaDir("run", 12); got != filepath.Join("run", "replica12") {
		t.Errorf("ReplicaDir = %q", got)
	}
}
