package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gpa-tracker/internal/controllers"
	"gpa-tracker/internal/models"
)

type rowsRequest struct {
	StudentID string `json:"student_id"`
	Count     string `json:"count"`
}

type submissionRequest struct {
	StudentID string                  `json:"student_id"`
	Courses   []models.RawCourseEntry `json:"courses"`
}

type submissionResponse struct {
	StudentID          string   `json:"student_id"`
	TotalCredits       float64  `json:"total_credits"`
	TotalQualityPoints float64  `json:"total_quality_points"`
	NewGPA             float64  `json:"new_gpa"`
	PriorGPA           *float64 `json:"prior_gpa"`
	Message            string   `json:"message"`
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) RequestRows(c *gin.Context) {
	var req rowsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rows, err := s.form.RequestInputRows(req.StudentID, req.Count)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

func (s *Server) Submit(c *gin.Context) {
	var req submissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := s.form.SubmitClasses(req.StudentID, req.Courses)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, submissionResponse{
		StudentID:          result.StudentID,
		TotalCredits:       result.TotalCredits,
		TotalQualityPoints: result.TotalQualityPoints,
		NewGPA:             result.NewGPA,
		PriorGPA:           result.PriorGPA,
		Message:            result.Message(),
	})
}

func (s *Server) GetStudent(c *gin.Context) {
	id, err := controllers.ValidateStudentID(c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}

	rec, _, err := s.records.Find(id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rec})
}

func (s *Server) ListStudents(c *gin.Context) {
	all, err := s.records.All()
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": all, "meta": gin.H{"total": len(all)}})
}

func (s *Server) writeError(c *gin.Context, err error) {
	kind, ok := models.KindOf(err)
	if !ok {
		s.logger.Error("HTTPServer", err, map[string]interface{}{
			"request_id": c.GetString("request_id"),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	status := http.StatusBadRequest
	if errors.Is(err, models.ErrNoPriorCoursework) {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"error": err.Error(), "kind": kind})
}
