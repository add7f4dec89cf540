package models

import (
	"fmt"
	"strconv"
)

// CourseEntry is one validated course row of a submission
type CourseEntry struct {
	Grade      string
	Credits    float64
	Retake     bool
	PriorGrade string
}

// RawCourseEntry carries untrusted field text from a presentation adapter
type RawCourseEntry struct {
	Grade      string `json:"grade"`
	Credits    string `json:"credits"`
	Retake     bool   `json:"retake"`
	PriorGrade string `json:"prior_grade"`
}

// RowPlaceholder is one generated, still empty course input row
type RowPlaceholder struct {
	Index int `json:"index"`
}

// Label returns the row caption shown next to the grade selector
func (r RowPlaceholder) Label() string {
	return fmt.Sprintf("Class %d:", r.Index)
}

// StudentRecord is the persisted cumulative history of one student
type StudentRecord struct {
	StudentID     string  `json:"student_id"`
	TotalCredits  float64 `json:"total_credits"`
	QualityPoints float64 `json:"quality_points"`
	GPA           float64 `json:"gpa"`
}

// Calculation is the outcome of applying a batch of courses to a record
type Calculation struct {
	TotalCredits       float64
	TotalQualityPoints float64
	NewGPA             float64
	PriorGPA           *float64
}

// Record builds the row to persist for id
func (c Calculation) Record(id string) StudentRecord {
	return StudentRecord{
		StudentID:     id,
		TotalCredits:  c.TotalCredits,
		QualityPoints: c.TotalQualityPoints,
		GPA:           c.NewGPA,
	}
}

type SubmissionResult struct {
	StudentID string
	Calculation
}

// Message renders the status line shown after a successful save
func (r SubmissionResult) Message() string {
	if r.PriorGPA != nil {
		return fmt.Sprintf("Previous GPA: %s   New cumulative GPA: %s",
			FormatDecimal(*r.PriorGPA), FormatDecimal(r.NewGPA))
	}
	return fmt.Sprintf("New cumulative GPA: %s", FormatDecimal(r.NewGPA))
}

// RoundGPA rounds to two decimals, half-to-even on the exact binary value
func RoundGPA(v float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}

// FormatDecimal writes the shortest decimal text for v, always keeping
// a fractional part ("4.0", "2.77", "3.3333333333333335").
func FormatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return s
		}
	}
	return s + ".0"
}
