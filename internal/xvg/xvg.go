// Package xvg reads the two-column numeric tables the toolkit's analysis
// programs emit. Lines starting with "@" carry Grace plotting directives
// and lines starting with "#" carry comments; both are skipped, everything
// else must be whitespace-separated numbers.
package xvg

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrTooFewColumns reports a data line with fewer than two columns.
var ErrTooFewColumns = errors.New("xvg: data line needs at least two columns")

// Table holds the numeric rows of one file. X is the first column and Y the
// second; files with more columns keep the extras in Cols, where Cols[0]
// aliases X.
type Table struct {
	X    []float64
	Y    []float64
	Cols [][]float64
}

// Rows returns the number of data rows.
func (t *Table) Rows() int {
	return len(t.X)
}

// Read parses path into a table. Every data row must have the same number
// of columns as the first one; ragged or non-numeric rows fail with the
// file position attached.
func Read(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t := &Table{}
	width := 0
	lineno := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "@") || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%s:%d: %w", path, lineno, ErrTooFewColumns)
		}
		if width == 0 {
			width = len(fields)
			t.Cols = make([][]float64, width)
		} else if len(fields) != width {
			return nil, fmt.Errorf("xvg: %s:%d: row has %d columns, want %d", path, lineno, len(fields), width)
		}
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("xvg: %s:%d: %w", path, lineno, err)
			}
			t.Cols[i] = append(t.Cols[i], v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("xvg: %s: %w", path, err)
	}
	if width > 0 {
		t.X = t.Cols[0]
		t.Y = t.Cols[1]
	}
	return t, nil
}

// File returns dir/<ensemble><suffix>.xvg, the conventional location of a
// run's analysis output.
func File(dir, ensemble, suffix string) string {
	return filepath.Join(dir, ensemble+suffix+".xvg")
}

// ReplicaFile returns dir/replicaNN<suffix>.xvg, the per-replica file
// layout used when all replicas of a measurement sit in one directory.
func ReplicaFile(dir string, replica int, suffix string) string {
	return filepath.Join(dir, fmt.Sprintf("replica%02d%s.xvg", replica, suffix))
}

// ReplicaDir returns dir/replicaNN, the per-replica directory layout used
// when each replica owns a full run tree.
func ReplicaDir(dir string, replica int) string {
	return filepath.Join(dir, fmt.Sprintf("replica%02d", replica))
}
