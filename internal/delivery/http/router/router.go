// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"estagiohub/internal/delivery/http/middleware"
	"estagiohub/internal/delivery/http/router/handler"
	"estagiohub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	InternshipHandler   *handler.InternshipHandler
	OrganizationHandler *handler.OrganizationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	internshipHandler   *handler.InternshipHandler
	organizationHandler *handler.OrganizationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		internshipHandler:   params.InternshipHandler,
		organizationHandler: params.OrganizationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/student", r.userHandler.RegisterStudent)
		authGroup.POST("/register/supervisor", r.userHandler.RegisterSupervisor)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/logout", r.userHandler.Logout)
		authGroup.POST("/forgot-password", r.userHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.userHandler.ResetPassword)
	}

	// Admin creation is restricted to existing admins
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/register", r.userHandler.RegisterAdmin)
	}

	// Student directory, for staff
	studentGroup := e.Group("/students")
	studentGroup.Use(r.authMiddleware.Authenticate)
	studentGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleSupervisor))
	{
		studentGroup.GET("/search", r.userHandler.SearchStudents)
	}

	// Company lookups, any authenticated account
	organizationGroup := e.Group("/organizations")
	organizationGroup.Use(r.authMiddleware.Authenticate)
	{
		organizationGroup.GET("/:cnpj", r.organizationHandler.GetByCnpj)
	}

	// Internship workflow
	internshipGroup := e.Group("/internships")
	internshipGroup.Use(r.authMiddleware.Authenticate)
	{
		internshipGroup.POST("", r.internshipHandler.StartInternship,
			r.authMiddleware.RequireRole(entity.RoleStudent, entity.RoleSupervisor))
		internshipGroup.GET("", r.internshipHandler.SearchInternships,
			r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleSupervisor))

		internshipGroup.GET("/:id", r.internshipHandler.GetInternship)
		internshipGroup.PATCH("/:id", r.internshipHandler.UpdateInternship,
			r.authMiddleware.RequireRole(entity.RoleSupervisor))

		internshipGroup.GET("/student/:studentId", r.internshipHandler.FindByStudent)

		// Status transitions, driven by the supervisor. Cancel is also open to
		// the student withdrawing the own request.
		internshipGroup.POST("/:id/approve", r.internshipHandler.ApproveInternship,
			r.authMiddleware.RequireRole(entity.RoleSupervisor))
		internshipGroup.POST("/:id/reject", r.internshipHandler.RejectInternship,
			r.authMiddleware.RequireRole(entity.RoleSupervisor))
		internshipGroup.POST("/:id/cancel", r.internshipHandler.CancelInternship,
			r.authMiddleware.RequireRole(entity.RoleStudent, entity.RoleSupervisor))
		internshipGroup.POST("/:id/close", r.internshipHandler.CloseInternship,
			r.authMiddleware.RequireRole(entity.RoleSupervisor))
		internshipGroup.POST("/:id/finish", r.internshipHandler.FinishInternship,
			r.authMiddleware.RequireRole(entity.RoleSupervisor))

		internshipGroup.POST("/documents/:id/confirm", r.internshipHandler.ConfirmDocument,
			r.authMiddleware.RequireRole(entity.RoleSupervisor))

		// Document uploads, by the student
		internshipGroup.POST("/:id/docs/start", r.internshipHandler.UploadStartDoc,
			r.authMiddleware.RequireRole(entity.RoleStudent))
		internshipGroup.POST("/:id/docs/progress", r.internshipHandler.UploadProgressDoc,
			r.authMiddleware.RequireRole(entity.RoleStudent))
		internshipGroup.POST("/:id/docs/end", r.internshipHandler.UploadEndDoc,
			r.authMiddleware.RequireRole(entity.RoleStudent))
	}
}
