package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveAssignsID(t *testing.T) {
	s := New(t.TempDir())
	id, err := s.Save(Record{Name: "lys", Ensemble: "md"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if id == "" {
		t.Error("expected generated id, got empty")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New(t.TempDir())
	id, err := s.Save(Record{
		Name:     "lysozyme",
		Ensemble: "npt",
		Path:     "/data/lysozyme",
		Script:   "/data/lysozyme/npt.slurm",
		JobID:    "977",
		Wait:     true,
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	rec, err := s.Load(id)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rec.ID != id {
		t.Errorf("expected id %s, got %s", id, rec.ID)
	}
	if rec.Name != "lysozyme" || rec.Ensemble != "npt" || rec.JobID != "977" {
		t.Errorf("unexpected record %+v", rec)
	}
	if !rec.Wait {
		t.Error("expected wait to survive the round trip")
	}
	if rec.Submitted.IsZero() {
		t.Error("expected submitted timestamp to be set")
	}
}

func TestListSkipsMalformed(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	if _, err := s.Save(Record{Name: "good"}); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0644); err != nil {
		t.Fatal(err)
	}

	records, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 record, got %d", len(records))
	}
}

func TestListMissingDir(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "never-created"))
	records, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestListSortedBySubmission(t *testing.T) {
	s := New(t.TempDir())
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"third", "first", "second"} {
		offset := []time.Duration{2 * time.Hour, 0, time.Hour}[i]
		if _, err := s.Save(Record{Name: name, Submitted: base.Add(offset)}); err != nil {
			t.Fatal(err)
		}
	}

	records, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"first", "second", "third"}
	for i, rec := range records {
		if rec.Name != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], rec.Name)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	s := New(t.TempDir())
	if _, err := s.Load("nope"); err == nil {
		t.Error("expected error for missing record")
	}
}
