package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Store owns the sales data file. The file holds a single JSON array of
// SaleRecord objects and is rewritten wholesale on every save.
type Store struct {
	Path string
}

func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads all records from the data file. A missing, unreadable or
// corrupt file is treated as an empty dataset, never as an error.
func (s *Store) Load() []SaleRecord {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		log.Debug().Str("file", s.Path).Msg("no readable data file, starting empty")
		return nil
	}

	var records []SaleRecord
	if err := json.Unmarshal(data, &records); err != nil {
		log.Debug().Str("file", s.Path).Err(err).Msg("corrupt data file, starting empty")
		return nil
	}

	log.Debug().Str("file", s.Path).Int("records", len(records)).Msg("loaded sales data")
	return records
}

// Save rewrites the data file with the given records, creating parent
// directories if needed.
func (s *Store) Save(records []SaleRecord) error {
	if records == nil {
		records = []SaleRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling sales data: %w", err)
	}

	dir := filepath.Dir(s.Path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("writing sales data: %w", err)
	}

	log.Debug().Str("file", s.Path).Int("records", len(records)).Msg("saved sales data")
	return nil
}
