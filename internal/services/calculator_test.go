package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gpa-tracker/internal/models"
)

func TestFirstSubmission(t *testing.T) {
	calc := NewGPACalculator()

	got, err := calc.Calculate(nil, []models.CourseEntry{{Grade: "B", Credits: 4}})
	require.NoError(t, err)
	assert.Equal(t, 4.0, got.TotalCredits)
	assert.Equal(t, 12.0, got.TotalQualityPoints)
	assert.Equal(t, 3.0, got.NewGPA)
	assert.Nil(t, got.PriorGPA)
}

func TestNonRetakeBatchAverages(t *testing.T) {
	calc := NewGPACalculator()
	entries := []models.CourseEntry{
		{Grade: "A", Credits: 3},
		{Grade: "B+", Credits: 4},
		{Grade: "C-", Credits: 2.5},
		{Grade: "F", Credits: 1},
	}

	got, err := calc.Calculate(nil, entries)
	require.NoError(t, err)

	points := 4.0*3 + 3.3*4 + 1.7*2.5 + 0.0*1
	credits := 3 + 4 + 2.5 + 1.0
	assert.Equal(t, credits, got.TotalCredits)
	assert.InDelta(t, points, got.TotalQualityPoints, 1e-9)
	assert.Equal(t, models.RoundGPA(points/credits), got.NewGPA)
}

func TestRetakeAdjustsDifferentially(t *testing.T) {
	calc := NewGPACalculator()
	prior := &models.StudentRecord{StudentID: "10000001", TotalCredits: 10, QualityPoints: 30, GPA: 3}

	got, err := calc.Calculate(prior, []models.CourseEntry{{Grade: "A", Credits: 3, Retake: true, PriorGrade: "C"}})
	require.NoError(t, err)
	assert.Equal(t, 13.0, got.TotalCredits)
	assert.Equal(t, 36.0, got.TotalQualityPoints)
	assert.Equal(t, 2.77, got.NewGPA)
	require.NotNil(t, got.PriorGPA)
	assert.Equal(t, 3.0, *got.PriorGPA)
}

func TestRetakeCanLowerQualityPoints(t *testing.T) {
	calc := NewGPACalculator()
	prior := &models.StudentRecord{StudentID: "10000001", TotalCredits: 3, QualityPoints: 12, GPA: 4}

	got, err := calc.Calculate(prior, []models.CourseEntry{{Grade: "F", Credits: 3, Retake: true, PriorGrade: "A"}})
	require.NoError(t, err)
	assert.Equal(t, 6.0, got.TotalCredits)
	assert.Equal(t, 0.0, got.TotalQualityPoints)
	assert.Equal(t, 0.0, got.NewGPA)
}

func TestRetakeWithoutPriorRecord(t *testing.T) {
	calc := NewGPACalculator()

	_, err := calc.Calculate(nil, []models.CourseEntry{
		{Grade: "Q", Credits: 3},
		{Grade: "A", Credits: 3, Retake: true, PriorGrade: "C"},
	})
	assert.ErrorIs(t, err, models.ErrNoPriorCoursework)
}

func TestZeroCreditsYieldsZeroGPA(t *testing.T) {
	calc := NewGPACalculator()

	got, err := calc.Calculate(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.NewGPA)

	got, err = calc.Calculate(&models.StudentRecord{GPA: 0}, []models.CourseEntry{{Grade: "A", Credits: 0}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.TotalCredits)
	assert.Equal(t, 0.0, got.NewGPA)
}

func TestInvalidGrades(t *testing.T) {
	calc := NewGPACalculator()
	prior := &models.StudentRecord{TotalCredits: 3, QualityPoints: 9, GPA: 3}

	_, err := calc.Calculate(nil, []models.CourseEntry{{Grade: "E", Credits: 3}})
	assert.ErrorIs(t, err, models.ErrInvalidGrade)

	_, err = calc.Calculate(prior, []models.CourseEntry{{Grade: "A", Credits: 3, Retake: true, PriorGrade: ""}})
	assert.ErrorIs(t, err, models.ErrInvalidGrade)

	// Prior grade is ignored unless retaking
	_, err = calc.Calculate(prior, []models.CourseEntry{{Grade: "A", Credits: 3, PriorGrade: "junk"}})
	assert.NoError(t, err)
}
