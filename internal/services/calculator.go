package services

import (
	"gpa-tracker/internal/grades"
	"gpa-tracker/internal/models"
)

// GPACalculator folds a batch of courses into a student's cumulative totals
type GPACalculator struct{}

func NewGPACalculator() *GPACalculator {
	return &GPACalculator{}
}

// Calculate applies entries on top of prior, which is nil for a first
// submission. A retaken course adds its credits once and swaps the old
// grade's quality points for the new grade's; it never removes credits.
func (c *GPACalculator) Calculate(prior *models.StudentRecord, entries []models.CourseEntry) (models.Calculation, error) {
	if prior == nil {
		for _, entry := range entries {
			if entry.Retake {
				return models.Calculation{}, models.ErrNoPriorCoursework
			}
		}
	}

	var batchPoints, batchCredits float64
	for _, entry := range entries {
		pts, err := grades.PointsFor(entry.Grade)
		if err != nil {
			return models.Calculation{}, err
		}

		if entry.Retake {
			priorPts, err := grades.PointsFor(entry.PriorGrade)
			if err != nil {
				return models.Calculation{}, err
			}
			batchPoints -= priorPts * entry.Credits
		}

		batchPoints += pts * entry.Credits
		batchCredits += entry.Credits
	}

	result := models.Calculation{}
	if prior != nil {
		result.TotalCredits = prior.TotalCredits
		result.TotalQualityPoints = prior.QualityPoints
		gpa := prior.GPA
		result.PriorGPA = &gpa
	}
	result.TotalCredits += batchCredits
	result.TotalQualityPoints += batchPoints

	if result.TotalCredits != 0 {
		result.NewGPA = models.RoundGPA(result.TotalQualityPoints / result.TotalCredits)
	}

	return result, nil
}
