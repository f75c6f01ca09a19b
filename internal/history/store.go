package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Record struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Ensemble  string    `json:"ensemble"`
	Path      string    `json:"path"`
	Script    string    `json:"script"`
	JobID     string    `json:"job_id,omitempty"`
	Wait      bool      `json:"wait"`
	Submitted time.Time `json:"submitted"`
}

func (s *Store) Save(rec Record) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Submitted.IsZero() {
		rec.Submitted = time.Now()
	}

	if err := s.Init(); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(s.baseDir, rec.ID+".json"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (s *Store) List() ([]Record, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, err
	}

	records := make([]Record, 0)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}

		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			continue
		}

		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Submitted.Before(records[j].Submitted)
	})
	return records, nil
}

func (s *Store) Load(id string) (*Record, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id+".json"))
	if err != nil {
		return nil, err
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
