package server

import "github.com/gin-gonic/gin"

func (s *Server) Register(r *gin.Engine) {
	r.GET("/health", s.Health)

	api := r.Group("/api/v1")
	{
		api.POST("/rows", s.RequestRows)
		api.POST("/submissions", s.Submit)
		api.GET("/students", s.ListStudents)
		api.GET("/students/:id", s.GetStudent)
	}
}
