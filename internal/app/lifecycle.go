package app

import (
	"sync"

	"gpa-tracker/internal/logger"

	"fyne.io/fyne/v2"
)

// Lifecycle quits the Fyne event loop exactly once
type Lifecycle struct {
	fyneApp fyne.App
	logger  logger.Logger
	once    sync.Once
}

func NewLifecycle(fyneApp fyne.App, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		fyneApp: fyneApp,
		logger:  log,
	}
}

func (l *Lifecycle) Shutdown() {
	l.once.Do(func() {
		l.logger.Info("Lifecycle", "quitting application", nil)
		fyne.Do(l.fyneApp.Quit)
	})
}
