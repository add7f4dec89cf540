package controllers

import (
	"fmt"
	"sync"

	"gpa-tracker/internal/logger"
	"gpa-tracker/internal/models"
	"gpa-tracker/internal/records"
	"gpa-tracker/internal/services"
)

const component = "FormController"

// RecordStore is the persistence the controller needs
type RecordStore interface {
	Find(id string) (*models.StudentRecord, []records.Row, error)
	Upsert(others []records.Row, rec models.StudentRecord) error
}

// FormController validates raw form input, runs the GPA calculation and
// persists the outcome. Submissions are handled one at a time.
type FormController struct {
	store      RecordStore
	calculator *services.GPACalculator
	logger     logger.Logger

	mu      sync.Mutex
	pending []models.RowPlaceholder
}

func NewFormController(store RecordStore, calc *services.GPACalculator, log logger.Logger) *FormController {
	if calc == nil {
		calc = services.NewGPACalculator()
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &FormController{
		store:      store,
		calculator: calc,
		logger:     log,
	}
}

// RequestInputRows validates the student id and class count and prepares
// that many empty course rows, replacing any previously generated ones.
func (fc *FormController) RequestInputRows(studentID, countText string) ([]models.RowPlaceholder, error) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	id, err := ValidateStudentID(studentID)
	if err != nil {
		fc.reject("rows", studentID, err)
		return nil, err
	}

	fc.pending = nil

	count, err := ValidateClassCount(countText)
	if err != nil {
		fc.reject("rows", id, err)
		return nil, err
	}

	rows := make([]models.RowPlaceholder, count)
	for i := range rows {
		rows[i] = models.RowPlaceholder{Index: i + 1}
	}
	fc.pending = rows

	fc.logger.Debug(component, "input rows generated", map[string]interface{}{
		"student_id": id,
		"count":      count,
	})

	return append([]models.RowPlaceholder(nil), rows...), nil
}

// PendingRows returns the rows generated by the last RequestInputRows
// that have not been consumed by a successful submission.
func (fc *FormController) PendingRows() []models.RowPlaceholder {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return append([]models.RowPlaceholder(nil), fc.pending...)
}

// SubmitClasses validates and applies a batch of courses for a student and
// writes the updated cumulative record. Nothing is written on failure.
func (fc *FormController) SubmitClasses(studentID string, entries []models.RawCourseEntry) (models.SubmissionResult, error) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	id, err := ValidateStudentID(studentID)
	if err != nil {
		fc.reject("submit", studentID, err)
		return models.SubmissionResult{}, err
	}

	if len(entries) < minClasses || len(entries) > maxClasses {
		fc.reject("submit", id, models.ErrInvalidClassCount)
		return models.SubmissionResult{}, models.ErrInvalidClassCount
	}

	prior, others, err := fc.store.Find(id)
	if err != nil {
		fc.logger.Error(component, err, map[string]interface{}{"student_id": id})
		return models.SubmissionResult{}, fmt.Errorf("failed to load record for %s: %w", id, err)
	}

	if prior == nil {
		for _, raw := range entries {
			if raw.Retake {
				fc.reject("submit", id, models.ErrNoPriorCoursework)
				return models.SubmissionResult{}, models.ErrNoPriorCoursework
			}
		}
	}

	courses := make([]models.CourseEntry, 0, len(entries))
	for i, raw := range entries {
		course, err := parseCourse(i+1, raw)
		if err != nil {
			fc.reject("submit", id, err)
			return models.SubmissionResult{}, err
		}
		courses = append(courses, course)
	}

	calc, err := fc.calculator.Calculate(prior, courses)
	if err != nil {
		fc.reject("submit", id, err)
		return models.SubmissionResult{}, err
	}

	if err := fc.store.Upsert(others, calc.Record(id)); err != nil {
		fc.logger.Error(component, err, map[string]interface{}{"student_id": id})
		return models.SubmissionResult{}, fmt.Errorf("failed to save record for %s: %w", id, err)
	}

	fc.pending = nil

	result := models.SubmissionResult{StudentID: id, Calculation: calc}
	fc.logger.Info(component, "submission saved", map[string]interface{}{
		"student_id":    id,
		"courses":       len(courses),
		"total_credits": calc.TotalCredits,
		"new_gpa":       calc.NewGPA,
		"first_time":    prior == nil,
	})

	return result, nil
}

func (fc *FormController) reject(op, studentID string, err error) {
	kind, _ := models.KindOf(err)
	fc.logger.Warning(component, "input rejected", map[string]interface{}{
		"operation":  op,
		"student_id": studentID,
		"kind":       string(kind),
		"reason":     err.Error(),
	})
}
