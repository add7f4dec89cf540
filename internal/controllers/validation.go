package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"gpa-tracker/internal/grades"
	"gpa-tracker/internal/models"
)

const (
	studentIDLength = 8
	minClasses      = 1
	maxClasses      = 4
)

func isASCIIDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ValidateStudentID trims surrounding whitespace and requires exactly eight digits
func ValidateStudentID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if len(id) != studentIDLength || !isASCIIDigits(id) {
		return "", models.ErrInvalidStudentID
	}
	return id, nil
}

// ValidateClassCount accepts only a bare digit string between 1 and 4
func ValidateClassCount(raw string) (int, error) {
	if !isASCIIDigits(raw) {
		return 0, models.NewValidationError(models.KindInvalidClassCount, "Enter a valid number of classes.")
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < minClasses || n > maxClasses {
		return 0, models.ErrInvalidClassCount
	}
	return n, nil
}

// ParseCredits accepts a non-negative decimal numeral ("3", "3.", ".5", "2.5")
// and requires the value to be strictly positive.
func ParseCredits(raw string) (float64, error) {
	if !isASCIIDigits(strings.Replace(raw, ".", "", 1)) {
		return 0, models.ErrInvalidCredit
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, models.ErrInvalidCredit
	}
	if v <= 0 {
		return 0, models.NewValidationError(models.KindInvalidCredit, "Credits must be greater than 0")
	}
	return v, nil
}

// parseCourse turns one raw row into a CourseEntry, checking credits first,
// then the grade and finally the prior grade when retaking.
func parseCourse(position int, raw models.RawCourseEntry) (models.CourseEntry, error) {
	credits, err := ParseCredits(raw.Credits)
	if err != nil {
		return models.CourseEntry{}, err
	}

	if !grades.Valid(raw.Grade) {
		return models.CourseEntry{}, models.NewValidationError(models.KindInvalidGrade,
			fmt.Sprintf("Invalid grade input for class %d", position))
	}

	entry := models.CourseEntry{Grade: raw.Grade, Credits: credits, Retake: raw.Retake}
	if raw.Retake {
		if !grades.Valid(raw.PriorGrade) {
			return models.CourseEntry{}, models.NewValidationError(models.KindInvalidGrade, "Invalid previous grade input")
		}
		entry.PriorGrade = raw.PriorGrade
	}
	return entry, nil
}
