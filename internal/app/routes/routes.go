// Package routes wires the HTTP endpoints to their controllers.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kmoeti/attachtrack/internal/middleware"
	"github.com/kmoeti/attachtrack/internal/pkg/auth"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kmoeti/attachtrack/internal/app/controllers"
	"github.com/kmoeti/attachtrack/internal/app/models"
)

// Controllers groups every controller needed by the router
type Controllers struct {
	Auth         *controllers.AuthController
	Student      *controllers.StudentController
	Organisation *controllers.OrganisationController
	Catalog      *controllers.CatalogController
	Preference   *controllers.PreferenceController
	Match        *controllers.MatchController
	Logbook      *controllers.LogbookController
}

// Setup registers all endpoints on the router
func Setup(router *gin.Engine, ctrl Controllers, jwtService *auth.JWTService) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/students/register", ctrl.Auth.RegisterStudent)
		authGroup.POST("/students/login", ctrl.Auth.LoginStudent)
		authGroup.POST("/organisations/register", ctrl.Auth.RegisterOrganisation)
		authGroup.POST("/organisations/login", ctrl.Auth.LoginOrganisation)
		authGroup.POST("/admins/login", ctrl.Auth.LoginAdmin)
	}

	// catalog lookups are public
	v1.GET("/industries", ctrl.Catalog.ListIndustries)
	v1.GET("/skills", ctrl.Catalog.ListSkills)

	authed := v1.Group("")
	authed.Use(middleware.JWTAuth(jwtService))

	studentOnly := middleware.RoleRequired(models.RoleStudent)
	orgOnly := middleware.RoleRequired(models.RoleOrganisation)
	adminOnly := middleware.RoleRequired(models.RoleAdmin)
	staff := middleware.RoleRequired(models.RoleAdmin, models.RoleOrganisation)

	// student self-service
	authed.POST("/students/:studentId/password", studentOnly, ctrl.Auth.ChangeStudentPassword)
	authed.POST("/preferences/students", studentOnly, ctrl.Preference.CreateStudentPreference)
	authed.PATCH("/preferences/students/:prefId", studentOnly, ctrl.Preference.UpdateStudentPreference)
	authed.POST("/logbooks", studentOnly, ctrl.Logbook.Submit)

	// shared reads
	authed.GET("/students/:studentId/preferences", ctrl.Preference.ListStudentPreferences)
	authed.GET("/preferences/students/:prefId", ctrl.Preference.GetStudentPreference)
	authed.GET("/preferences/students/:prefId/match", ctrl.Match.GetMatch)
	authed.GET("/organisations/resolve", ctrl.Organisation.ResolveID)
	authed.GET("/organisations/:orgId", ctrl.Organisation.Get)

	// organisation self-service
	authed.POST("/organisations/:orgId/password", orgOnly, ctrl.Auth.ChangeOrganisationPassword)
	authed.POST("/preferences/organisations", orgOnly, ctrl.Preference.CreateOrganisationPreference)
	authed.PATCH("/preferences/organisations/:id", orgOnly, ctrl.Preference.UpdateOrganisationPreference)
	authed.GET("/organisations/:orgId/preferences", staff, ctrl.Preference.ListOrganisationPreferences)
	authed.GET("/organisations/:orgId/logbooks", staff, ctrl.Logbook.ListForOrganisation)
	authed.GET("/logbooks/:logId", staff, ctrl.Logbook.Get)
	authed.POST("/logbooks/:logId/viewed", orgOnly, ctrl.Logbook.MarkViewed)

	// administration
	authed.POST("/auth/admins/register", adminOnly, ctrl.Auth.RegisterAdmin)
	authed.GET("/students", adminOnly, ctrl.Student.List)
	authed.GET("/students/:studentId", adminOnly, ctrl.Student.Get)
	authed.PATCH("/students/:studentId", adminOnly, ctrl.Student.Update)
	authed.DELETE("/students/:studentId", adminOnly, ctrl.Student.Delete)
	authed.GET("/organisations", adminOnly, ctrl.Organisation.List)
	authed.PATCH("/organisations/:orgId", adminOnly, ctrl.Organisation.Update)
	authed.DELETE("/organisations/:orgId", adminOnly, ctrl.Organisation.Delete)
	authed.GET("/preferences/students", adminOnly, ctrl.Preference.ListAllStudentPreferences)
	authed.POST("/matches", adminOnly, ctrl.Match.ManualMatch)
}
