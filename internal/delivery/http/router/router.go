// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"clinica/internal/delivery/http/middleware"
	"clinica/internal/delivery/http/router/handler"
	"clinica/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	AffiliationHandler *handler.AffiliationHandler
	DirectoryHandler   *handler.DirectoryHandler
	AuditHandler       *handler.AuditHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	userHandler        *handler.UserHandler
	affiliationHandler *handler.AffiliationHandler
	directoryHandler   *handler.DirectoryHandler
	auditHandler       *handler.AuditHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		userHandler:        params.UserHandler,
		affiliationHandler: params.AffiliationHandler,
		directoryHandler:   params.DirectoryHandler,
		auditHandler:       params.AuditHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")
	auth := r.authMiddleware

	// Public auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/sign-up", r.authHandler.Signup)
		authGroup.POST("/sign-in", r.authHandler.SignIn)
		authGroup.POST("/verify-email", r.authHandler.VerifyEmail)
		authGroup.POST("/resend-verification", r.authHandler.ResendVerification)
		authGroup.POST("/sign-out", r.authHandler.SignOut, auth.Authenticate)
	}

	// Account management, administrator-driven
	userGroup := api.Group("/users")
	userGroup.Use(auth.Authenticate)
	{
		userGroup.POST("", r.userHandler.Create, auth.RequirePermission(entity.PermUserCreate))
		userGroup.GET("", r.userHandler.List, auth.RequirePermission(entity.PermUserList))
		userGroup.GET("/:id", r.userHandler.Get, auth.RequirePermission(entity.PermUserList))
		userGroup.PATCH("/:id/deactivate", r.userHandler.Deactivate, auth.RequirePermission(entity.PermUserDeactivate))
		userGroup.PATCH("/:id/activate", r.userHandler.Activate, auth.RequirePermission(entity.PermUserActivate))
		userGroup.DELETE("/:id", r.userHandler.Delete, auth.RequirePermission(entity.PermUserDelete))
		userGroup.POST("/import", r.userHandler.Import, auth.RequirePermission(entity.PermUserCreate))
		// Owner-or-admin check happens in the usecase.
		userGroup.PUT("/:id/password", r.authHandler.ChangePassword)
	}

	// Scope assignments
	affiliationGroup := api.Group("/affiliations")
	affiliationGroup.Use(auth.Authenticate)
	{
		affiliationGroup.POST("", r.affiliationHandler.Create, auth.RequirePermission(entity.PermAffiliationCreate))
		affiliationGroup.GET("/user/:userId", r.affiliationHandler.ListByUser, auth.RequirePermission(entity.PermAffiliationList))
		affiliationGroup.DELETE("/:id", r.affiliationHandler.Delete, auth.RequirePermission(entity.PermAffiliationDelete))
	}

	// Clinical directory
	departmentGroup := api.Group("/departments")
	departmentGroup.Use(auth.Authenticate)
	{
		departmentGroup.POST("", r.directoryHandler.CreateDepartment, auth.RequirePermission(entity.PermDepartmentCreate))
		departmentGroup.GET("", r.directoryHandler.ListDepartments, auth.RequirePermission(entity.PermDepartmentList))
	}

	specialtyGroup := api.Group("/specialties")
	specialtyGroup.Use(auth.Authenticate)
	{
		specialtyGroup.POST("", r.directoryHandler.CreateSpecialty, auth.RequirePermission(entity.PermSpecialtyCreate))
		specialtyGroup.GET("", r.directoryHandler.ListSpecialties, auth.RequirePermission(entity.PermSpecialtyList))
		specialtyGroup.GET("/department/:departmentId", r.directoryHandler.ListSpecialtiesByDepartment, auth.RequirePermission(entity.PermSpecialtyList))
		specialtyGroup.PATCH("/:id", r.directoryHandler.UpdateSpecialty, auth.RequirePermission(entity.PermSpecialtyUpdate))
		specialtyGroup.DELETE("/:id", r.directoryHandler.DeleteSpecialty, auth.RequirePermission(entity.PermSpecialtyDelete))
	}

	// Audit trail, administrators only
	auditGroup := api.Group("/audit")
	auditGroup.Use(auth.Authenticate)
	auditGroup.Use(auth.RequireRole(entity.RoleAdministrador))
	{
		auditGroup.GET("", r.auditHandler.Query)
		auditGroup.GET("/:entityType/:entityId", r.auditHandler.EntityTrail)
	}
}
