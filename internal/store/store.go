// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists the merged measurement collection as a JSON
// file. The file is the whole store: each merge loads it, overlays a
// batch keyed by (date, name), and rewrites it in full. There is no
// history; the previous content is discarded on every merge.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/probelio/labextract/pkg/types"
)

// LoadState describes what a load found in the backing file.
type LoadState string

const (
	// LoadOK means the file existed and parsed.
	LoadOK LoadState = "ok"

	// LoadAbsent means the file did not exist; the collection starts empty.
	LoadAbsent LoadState = "absent"

	// LoadCorrupt means the file existed but did not parse; the collection
	// starts empty and the unreadable content is replaced on the next
	// persist. Callers report this, they do not fail on it.
	LoadCorrupt LoadState = "corrupt"
)

// Store reads and writes one measurement collection file.
type Store struct {
	path string
}

// New returns a store backed by the JSON file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads the current collection. Absence and corruption are not
// errors: both return an empty collection with the state set, so callers
// can surface the condition and continue.
func (s *Store) Load() ([]types.Measurement, LoadState) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, LoadAbsent
	}
	var records []types.Measurement
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, LoadCorrupt
	}
	return records, LoadOK
}

// MergeSummary reports what a merge did.
type MergeSummary struct {
	// State is what the pre-merge load found.
	State LoadState

	// Loaded is the record count before the overlay.
	Loaded int

	// Added counts keys the batch introduced.
	Added int

	// Replaced counts keys the batch overwrote.
	Replaced int

	// Stored is the record count after the overlay.
	Stored int
}

// Merge overlays batch onto the stored collection and rewrites the file.
// Records are keyed by (date, name); batch order wins on collision, so a
// later record supersedes an earlier one at the same key. First-seen
// record order is preserved: replacements keep their slot, new keys
// append. The rewrite goes through a temp file and rename, so no reader
// observes a partially written store.
func (s *Store) Merge(batch []types.Measurement) (MergeSummary, error) {
	records, state := s.Load()
	summary := MergeSummary{State: state, Loaded: len(records)}

	slot := make(map[types.Key]int, len(records))
	for i, r := range records {
		slot[r.Key()] = i
	}

	for _, r := range batch {
		if i, ok := slot[r.Key()]; ok {
			records[i] = r
			summary.Replaced++
		} else {
			slot[r.Key()] = len(records)
			records = append(records, r)
			summary.Added++
		}
	}
	summary.Stored = len(records)

	if err := s.persist(records); err != nil {
		return summary, err
	}
	return summary, nil
}

func (s *Store) persist(records []types.Measurement) error {
	if records == nil {
		records = []types.Measurement{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp store file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing store file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing store file: %w", err)
	}
	return nil
}
