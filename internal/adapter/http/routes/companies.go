package routes

import (
	"cleaning_coop/internal/adapter/http/middleware"
	"cleaning_coop/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathAssignments = "/assignments"
	PathCompanies   = "/companies"
)

func addAssignmentRoutes(rg *gin.RouterGroup, deps Dependencies) {
	company := deps.Auth.RequireRole(middleware.RoleCompany)

	assignments := rg.Group(PathAssignments, company)
	{
		assignments.PATCH("/:id/accept", deps.Assignments.Accept)
		assignments.PATCH("/:id/decline", deps.Assignments.Decline)
		assignments.PATCH("/:id/start", deps.Assignments.Start)
	}
}

func addCompanyRoutes(rg *gin.RouterGroup, deps Dependencies) {
	auth := deps.Auth
	admin := auth.RequireRole(middleware.RoleAdmin)
	staff := auth.RequireRole(middleware.RoleAdmin, middleware.RoleCompany)
	queueCache := middleware.ViewCache(deps.Cache, deps.CachePrefix, deps.CacheTTL, entities.ViewCompanyQueue, "id")

	companies := rg.Group(PathCompanies)
	{
		companies.POST("", staff, deps.Companies.Register)
		companies.GET("", admin, deps.Companies.List)
		companies.POST("/match", admin, deps.Companies.Match)
		companies.GET("/:id", staff, deps.Companies.Get)
		companies.PATCH("/:id/approval", admin, deps.Companies.SetApproval)
		companies.GET("/:id/assignments", staff, queueCache, deps.Assignments.ListForCompany)
	}
}
