package components

import (
	"gpa-tracker/internal/grades"
	"gpa-tracker/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	retakeNo  = "No"
	retakeYes = "Yes"
)

// CourseRow collects one course: grade, credits, retake flag and prior grade
type CourseRow struct {
	index      int
	container  *fyne.Container
	grade      *widget.Select
	credits    *widget.Entry
	retake     *widget.Select
	priorGrade *widget.Select
}

// NewCourseRow builds an empty row for the given placeholder
func NewCourseRow(placeholder models.RowPlaceholder) *CourseRow {
	row := &CourseRow{index: placeholder.Index}
	row.createComponents()
	row.buildLayout(placeholder.Label())
	return row
}

func (cr *CourseRow) createComponents() {
	cr.grade = widget.NewSelect(grades.Symbols(), nil)
	cr.grade.SetSelectedIndex(0)

	cr.credits = widget.NewEntry()
	cr.credits.SetPlaceHolder("3")

	cr.priorGrade = widget.NewSelect(grades.Symbols(), nil)
	cr.priorGrade.SetSelectedIndex(0)
	cr.priorGrade.Disable()

	// Prior grade only matters for a retake
	cr.retake = widget.NewSelect([]string{retakeNo, retakeYes}, func(value string) {
		if value == retakeYes {
			cr.priorGrade.Enable()
		} else {
			cr.priorGrade.Disable()
		}
	})
	cr.retake.SetSelected(retakeNo)
}

func (cr *CourseRow) buildLayout(label string) {
	cr.container = container.NewHBox(
		widget.NewLabel(label),
		cr.grade,
		widget.NewLabel("Credits:"),
		container.NewGridWrap(fyne.NewSize(80, cr.credits.MinSize().Height), cr.credits),
		widget.NewLabel("Retake?"),
		cr.retake,
		widget.NewLabel("Previous Grade:"),
		cr.priorGrade,
	)
}

// GetContainer returns the row's root object
func (cr *CourseRow) GetContainer() fyne.CanvasObject {
	return cr.container
}

func (cr *CourseRow) Index() int {
	return cr.index
}

// Raw returns the row's field text exactly as entered
func (cr *CourseRow) Raw() models.RawCourseEntry {
	return models.RawCourseEntry{
		Grade:      cr.grade.Selected,
		Credits:    cr.credits.Text,
		Retake:     cr.retake.Selected == retakeYes,
		PriorGrade: cr.priorGrade.Selected,
	}
}

// Fill sets every field from entry
func (cr *CourseRow) Fill(entry models.RawCourseEntry) {
	cr.grade.SetSelected(entry.Grade)
	cr.credits.SetText(entry.Credits)
	if entry.Retake {
		cr.retake.SetSelected(retakeYes)
	} else {
		cr.retake.SetSelected(retakeNo)
	}
	cr.priorGrade.SetSelected(entry.PriorGrade)
}

// PriorGradeEnabled reports whether the prior grade selector accepts input
func (cr *CourseRow) PriorGradeEnabled() bool {
	return !cr.priorGrade.Disabled()
}
