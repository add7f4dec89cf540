// Package records persists cumulative student records in a flat CSV file.
//
// The file is always rewritten in full: a header row followed by one row
// per distinct student identifier. Nothing is cached between calls and
// no lock is taken, so a single writer process is assumed.
package records

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gpa-tracker/internal/logger"
	"gpa-tracker/internal/models"
)

const component = "RecordStore"

// ErrCorruptRecord marks a row for the requested student whose numbers do not parse
var ErrCorruptRecord = errors.New("corrupt student record")

// Header is written as the first line of every save
var Header = []string{"Student ID", "Total Credits", "Quality Points", "Cumulative GPA"}

// Row is one persisted line kept as raw field text
type Row []string

func (r Row) StudentID() string {
	if len(r) == 0 {
		return ""
	}
	return r[0]
}

type Store struct {
	path   string
	logger logger.Logger
}

func NewStore(path string, log logger.Logger) *Store {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Store{path: path, logger: log}
}

func (s *Store) Path() string {
	return s.path
}

// Find returns the record for id (nil when absent) together with the
// untouched rows of every other student. A missing file is an empty table.
func (s *Store) Find(id string) (*models.StudentRecord, []Row, error) {
	rows, err := s.load()
	if err != nil {
		return nil, nil, err
	}

	var found *models.StudentRecord
	others := make([]Row, 0, len(rows))
	for _, row := range rows {
		if row.StudentID() != id {
			others = append(others, row)
			continue
		}

		rec, err := parseRecord(row)
		if err != nil {
			s.logger.Error(component, err, map[string]interface{}{
				"student_id": id,
				"path":       s.path,
			})
			return nil, nil, err
		}
		found = &rec
	}

	s.logger.Debug(component, "lookup complete", map[string]interface{}{
		"student_id": id,
		"found":      found != nil,
		"others":     len(others),
	})

	return found, others, nil
}

// Upsert rewrites the file as header, others (minus any row for rec's id)
// and finally the row for rec.
func (s *Store) Upsert(others []Row, rec models.StudentRecord) error {
	kept := make([]Row, 0, len(others)+1)
	for _, row := range others {
		if len(row) < len(Header) || row.StudentID() == rec.StudentID {
			continue
		}
		kept = append(kept, row)
	}
	kept = append(kept, formatRecord(rec))

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to open %s for writing: %w", s.path, err)
	}

	if err := writeRows(file, kept); err != nil {
		file.Close()
		s.logger.Error(component, err, map[string]interface{}{"path": s.path})
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", s.path, err)
	}

	s.logger.Info(component, "record saved", map[string]interface{}{
		"student_id": rec.StudentID,
		"gpa":        models.RoundGPA(rec.GPA),
		"rows":       len(kept),
	})

	return nil
}

// All lists every well-formed record in file order
func (s *Store) All() ([]models.StudentRecord, error) {
	rows, err := s.load()
	if err != nil {
		return nil, err
	}

	out := make([]models.StudentRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := parseRecord(row)
		if err != nil {
			s.logger.Warning(component, "skipping unparsable row", map[string]interface{}{
				"student_id": row.StudentID(),
				"error":      err.Error(),
			})
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *Store) load() ([]Row, error) {
	file, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer file.Close()

	rows, skipped, err := readRows(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	if skipped > 0 {
		s.logger.Debug(component, "skipped short rows", map[string]interface{}{
			"path":    s.path,
			"skipped": skipped,
		})
	}
	return rows, nil
}
