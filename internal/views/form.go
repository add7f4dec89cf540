package views

import (
	"errors"
	"fmt"

	"gpa-tracker/internal/models"
	"gpa-tracker/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// FormHandler is the controller side of the form
type FormHandler interface {
	RequestInputRows(studentID, countText string) ([]models.RowPlaceholder, error)
	SubmitClasses(studentID string, entries []models.RawCourseEntry) (models.SubmissionResult, error)
}

// MainView is the GPA entry form. It only marshals field text to and from
// the handler; all rules live behind FormHandler.
type MainView struct {
	window  fyne.Window
	handler FormHandler

	mainContainer  *fyne.Container
	studentID      *widget.Entry
	classCount     *widget.Entry
	generateButton *widget.Button
	saveButton     *widget.Button
	courseArea     *fyne.Container
	statusBar      *components.StatusBar

	rows []*components.CourseRow
}

// NewMainView builds the form and installs it as the window content
func NewMainView(window fyne.Window, handler FormHandler) *MainView {
	view := &MainView{
		window:  window,
		handler: handler,
	}

	view.initializeComponents()
	view.buildLayout()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.studentID = widget.NewEntry()
	mv.studentID.SetPlaceHolder("8-digit student ID")

	mv.classCount = widget.NewEntry()
	mv.classCount.SetPlaceHolder("1-4")

	mv.generateButton = widget.NewButton("Submit", mv.generateRows)
	mv.saveButton = widget.NewButton("Save", mv.save)
	mv.saveButton.Importance = widget.HighImportance

	mv.courseArea = container.NewVBox()
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	form := widget.NewForm(
		widget.NewFormItem("Student ID", mv.studentID),
		widget.NewFormItem("Number of classes", mv.classCount),
	)

	top := container.NewVBox(
		form,
		container.NewHBox(mv.generateButton),
		widget.NewSeparator(),
	)

	bottom := container.NewVBox(
		widget.NewSeparator(),
		container.NewHBox(mv.saveButton),
		mv.statusBar.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		top,    // top
		bottom, // bottom
		nil,    // left
		nil,    // right
		container.NewVScroll(mv.courseArea),
	)

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) generateRows() {
	placeholders, err := mv.handler.RequestInputRows(mv.studentID.Text, mv.classCount.Text)
	if err != nil {
		// A bad student id leaves the existing rows alone
		if !errors.Is(err, models.ErrInvalidStudentID) {
			mv.setRows(nil)
		}
		mv.statusBar.SetError(err.Error())
		return
	}

	mv.setRows(placeholders)
	mv.statusBar.Reset()
}

func (mv *MainView) save() {
	entries := make([]models.RawCourseEntry, len(mv.rows))
	for i, row := range mv.rows {
		entries[i] = row.Raw()
	}

	result, err := mv.handler.SubmitClasses(mv.studentID.Text, entries)
	if err != nil {
		if _, ok := models.KindOf(err); ok {
			mv.statusBar.SetError(err.Error())
		} else {
			mv.statusBar.SetError(fmt.Sprintf("Could not save record: %v", err))
		}
		return
	}

	mv.statusBar.SetMessage(result.Message())
	mv.studentID.SetText("")
	mv.classCount.SetText("")
	mv.setRows(nil)
}

func (mv *MainView) setRows(placeholders []models.RowPlaceholder) {
	mv.rows = nil
	objects := make([]fyne.CanvasObject, 0, len(placeholders))
	for _, p := range placeholders {
		row := components.NewCourseRow(p)
		mv.rows = append(mv.rows, row)
		objects = append(objects, row.GetContainer())
	}
	mv.courseArea.Objects = objects
	mv.courseArea.Refresh()
}

// SetStorageInfo shows the data file location under the status message
func (mv *MainView) SetStorageInfo(path string) {
	mv.statusBar.SetRecordInfo(fmt.Sprintf("Records: %s", path))
}

// Rows returns the course rows currently on screen
func (mv *MainView) Rows() []*components.CourseRow {
	return mv.rows
}

// Show displays the main window
func (mv *MainView) Show() {
	mv.window.Show()
}
