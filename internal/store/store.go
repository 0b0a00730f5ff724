// Package store owns the flat delimited files behind the assistant: one CSV
// per target (contacts, tasks), each with a fixed header schema. There is no
// in-memory cache; every operation re-reads the file, and mutations rewrite
// it completely. Single-user, single-process by design.
package store

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Store is one record store backed by a CSV file. The path is threaded in by
// the caller; nothing here hardcodes a filename.
type Store struct {
	Path   string
	Schema Schema
}

func New(path string, schema Schema) *Store {
	return &Store{Path: path, Schema: schema}
}

// Init creates the backing file with a header row when it does not exist yet.
func (s *Store) Init() error {
	if _, err := os.Stat(s.Path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", s.Path, err)
	}
	return s.ReplaceAll(nil)
}

// Load reads every data row from the file, stripping the header line. Rows
// come back as-is: width and content are the caller's problem. A missing file
// is an empty store.
func (s *Store) Load() ([]Record, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	out := make([]Record, 0, len(rows))
	for i, row := range rows {
		if i == 0 && s.Schema.isHeader(row) {
			continue
		}
		out = append(out, Record(row))
	}
	return out, nil
}

// Append writes one record in schema column order without touching existing
// content. A missing or empty file gets the header first.
func (s *Store) Append(rec Record) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir for %s: %w", s.Path, err)
	}
	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", s.Path, err)
	}
	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(s.Schema.Header()); err != nil {
			return fmt.Errorf("write header %s: %w", s.Path, err)
		}
	}
	if err := w.Write(rec.Fit(s.Schema.Width())); err != nil {
		return fmt.Errorf("write %s: %w", s.Path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", s.Path, err)
	}
	return nil
}

// ReplaceAll rewrites the whole file from the given ordered records, header
// first. The write goes to a temp file and lands with an atomic rename so a
// crash mid-write cannot truncate the store.
func (s *Store) ReplaceAll(recs []Record) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(s.Schema.Header()); err != nil {
		return fmt.Errorf("encode header: %w", err)
	}
	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("encode %s: %w", s.Path, err)
	}
	return atomicWriteFile(s.Path, buf.Bytes(), 0o644)
}

func atomicWriteFile(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	tmp := filepath.Join(dir, fmt.Sprintf(".tmp-%d", time.Now().UnixNano()))
	if err := os.WriteFile(tmp, data, perm); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	// Rename is atomic on same filesystem.
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
