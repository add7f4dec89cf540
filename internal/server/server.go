package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gpa-tracker/internal/logger"
	"gpa-tracker/internal/models"
	"gpa-tracker/internal/records"
)

// FormHandler is the controller surface exposed over HTTP
type FormHandler interface {
	RequestInputRows(studentID, countText string) ([]models.RowPlaceholder, error)
	SubmitClasses(studentID string, entries []models.RawCourseEntry) (models.SubmissionResult, error)
}

// RecordReader gives read access to persisted records
type RecordReader interface {
	Find(id string) (*models.StudentRecord, []records.Row, error)
	All() ([]models.StudentRecord, error)
}

type Server struct {
	form    FormHandler
	records RecordReader
	logger  logger.Logger
}

func New(form FormHandler, reader RecordReader, log logger.Logger) *Server {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Server{form: form, records: reader, logger: log}
}

// Router builds the gin engine with every route registered
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.RequestIDMiddleware(), s.LoggingMiddleware())
	s.Register(r)
	return r
}

// HTTPServer wraps the router for the given port
func (s *Server) HTTPServer(port string) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Graceful adapts an http.Server to the shutdown manager
type Graceful struct {
	Server  *http.Server
	Timeout time.Duration
}

func (g Graceful) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), g.Timeout)
	defer cancel()
	_ = g.Server.Shutdown(ctx)
}
