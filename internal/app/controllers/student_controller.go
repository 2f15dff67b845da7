package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kmoeti/attachtrack/internal/middleware"

	"github.com/kmoeti/attachtrack/internal/app/models/dto"
	"github.com/kmoeti/attachtrack/internal/app/services"
)

// StudentController manages student profiles
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new student controller
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// Get handles GET /api/v1/students/:studentId
func (ctrl *StudentController) Get(c *gin.Context) {
	student, err := ctrl.studentService.Get(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.NewStudentResponse(student)))
}

// List handles GET /api/v1/students
func (ctrl *StudentController) List(c *gin.Context) {
	students, err := ctrl.studentService.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	out := make([]dto.StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, dto.NewStudentResponse(s))
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(out))
}

// Update handles PATCH /api/v1/students/:studentId
func (ctrl *StudentController) Update(c *gin.Context) {
	var req dto.StudentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	student, err := ctrl.studentService.Update(c.Request.Context(), c.Param("studentId"), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(dto.NewStudentResponse(student)))
}

// Delete handles DELETE /api/v1/students/:studentId
func (ctrl *StudentController) Delete(c *gin.Context) {
	if err := ctrl.studentService.Delete(c.Request.Context(), c.Param("studentId")); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse(gin.H{"message": "Student deleted"}))
}
