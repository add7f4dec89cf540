package app

import (
	"runtime"

	"gpa-tracker/internal/config"
	"gpa-tracker/internal/controllers"
	"gpa-tracker/internal/logger"
	"gpa-tracker/internal/records"
	"gpa-tracker/internal/services"
	"gpa-tracker/internal/shutdown"
	"gpa-tracker/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName      = "Student GPA Database"
	AppID        = "com.gpatracker.studentgpa"
	AppVersion   = "1.0.0"
	WindowWidth  = 900
	WindowHeight = 520
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	view       *views.MainView
	controller *controllers.FormController
	store      *records.Store
	logger     logger.Logger
	shutdown   *shutdown.Manager
	lifecycle  *Lifecycle
}

// NewApplication wires store, calculator, controller and view behind a
// single Fyne window.
func NewApplication(cfg *config.Config) (*Application, error) {
	log := logger.New(logger.ParseLevel(cfg.LogLevel, cfg.Debug), cfg.JSONLogs)
	return newApplication(app.NewWithID(AppID), cfg, log), nil
}

func newApplication(fyneApp fyne.App, cfg *config.Config, log logger.Logger) *Application {
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.SetFixedSize(true)
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":    AppVersion,
		"data_file":  cfg.DataFile,
		"go_version": runtime.Version(),
	})

	store := records.NewStore(cfg.DataFile, log)
	controller := controllers.NewFormController(store, services.NewGPACalculator(), log)
	view := views.NewMainView(window, controller)
	view.SetStorageInfo(store.Path())

	shutdownMgr := shutdown.NewManager(log)
	lifecycle := NewLifecycle(fyneApp, log)
	shutdownMgr.Register("fyne", lifecycle)

	log.Info("Application", "initialization complete", nil)

	return &Application{
		fyneApp:    fyneApp,
		window:     window,
		view:       view,
		controller: controller,
		store:      store,
		logger:     log,
		shutdown:   shutdownMgr,
		lifecycle:  lifecycle,
	}
}

// Run shows the window and blocks until the app quits
func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.shutdown.Shutdown()
	})

	a.shutdown.Listen()
	a.view.Show()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}
