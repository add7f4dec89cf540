package records

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gpa-tracker/internal/models"
)

// readRows parses everything after the header line. Rows with fewer than
// four fields are dropped and counted.
func readRows(r io.Reader) ([]Row, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, nil
		}
		return nil, 0, err
	}

	var rows []Row
	skipped := 0
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		if len(fields) < len(Header) {
			skipped++
			continue
		}
		rows = append(rows, Row(fields))
	}
	return rows, skipped, nil
}

func writeRows(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", row.StudentID(), err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func parseRecord(row Row) (models.StudentRecord, error) {
	if len(row) < len(Header) {
		return models.StudentRecord{}, fmt.Errorf("%w: %d fields", ErrCorruptRecord, len(row))
	}

	values := make([]float64, 3)
	for i := range values {
		v, err := strconv.ParseFloat(row[i+1], 64)
		if err != nil {
			return models.StudentRecord{}, fmt.Errorf("%w: %s %q for %s", ErrCorruptRecord, Header[i+1], row[i+1], row[0])
		}
		values[i] = v
	}

	return models.StudentRecord{
		StudentID:     row[0],
		TotalCredits:  values[0],
		QualityPoints: values[1],
		GPA:           values[2],
	}, nil
}

// formatRecord keeps credits at full precision; quality points and GPA
// are rounded to two decimals.
func formatRecord(rec models.StudentRecord) Row {
	return Row{
		rec.StudentID,
		models.FormatDecimal(rec.TotalCredits),
		models.FormatDecimal(models.RoundGPA(rec.QualityPoints)),
		models.FormatDecimal(models.RoundGPA(rec.GPA)),
	}
}
