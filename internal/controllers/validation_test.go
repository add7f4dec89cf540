package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gpa-tracker/internal/models"
)

func TestValidateStudentID(t *testing.T) {
	id, err := ValidateStudentID("  01234567 ")
	require.NoError(t, err)
	assert.Equal(t, "01234567", id)

	for _, bad := range []string{"", "1234567", "123456789", "12AB5678", "1234 678", "-1234567", "１２３４５６７８"} {
		_, err := ValidateStudentID(bad)
		assert.ErrorIs(t, err, models.ErrInvalidStudentID, bad)
	}
}

func TestValidateClassCount(t *testing.T) {
	for text, want := range map[string]int{"1": 1, "4": 4, "04": 4} {
		n, err := ValidateClassCount(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, n)
	}

	for _, bad := range []string{"", "0", "5", "-1", "+2", " 2", "2.0", "two"} {
		_, err := ValidateClassCount(bad)
		assert.ErrorIs(t, err, models.ErrInvalidClassCount, bad)
	}
}

func TestParseCredits(t *testing.T) {
	for text, want := range map[string]float64{"3": 3, "3.": 3, ".5": 0.5, "2.5": 2.5, "04": 4} {
		v, err := ParseCredits(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, v, text)
	}

	for _, bad := range []string{"", ".", "0", "0.0", "-3", "1.2.3", "3 ", "1e2", "abc"} {
		_, err := ParseCredits(bad)
		assert.ErrorIs(t, err, models.ErrInvalidCredit, bad)
	}
}

func TestParseCourseOrder(t *testing.T) {
	// Credits are checked before the grade
	_, err := parseCourse(1, models.RawCourseEntry{Grade: "Z", Credits: "x"})
	assert.ErrorIs(t, err, models.ErrInvalidCredit)

	_, err = parseCourse(1, models.RawCourseEntry{Grade: "Z", Credits: "3"})
	assert.ErrorIs(t, err, models.ErrInvalidGrade)

	_, err = parseCourse(1, models.RawCourseEntry{Grade: "A", Credits: "3", Retake: true, PriorGrade: "Q"})
	assert.ErrorIs(t, err, models.ErrInvalidGrade)
	assert.EqualError(t, err, "Invalid previous grade input")

	entry, err := parseCourse(1, models.RawCourseEntry{Grade: "A", Credits: "3", PriorGrade: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, models.CourseEntry{Grade: "A", Credits: 3}, entry)
}
