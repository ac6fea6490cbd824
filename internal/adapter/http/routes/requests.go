package routes

import (
	"cleaning_coop/internal/adapter/http/middleware"
	"cleaning_coop/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const PathRequests = "/requests"

func addRequestRoutes(rg *gin.RouterGroup, deps Dependencies) {
	auth := deps.Auth
	admin := auth.RequireRole(middleware.RoleAdmin)
	company := auth.RequireRole(middleware.RoleCompany)
	staff := auth.RequireRole(middleware.RoleAdmin, middleware.RoleCompany)
	anyone := auth.RequireRole(middleware.RoleAdmin, middleware.RoleCompany, middleware.RoleClient)

	listCache := middleware.ViewCache(deps.Cache, deps.CachePrefix, deps.CacheTTL, entities.ViewRequestList, "")
	detailCache := middleware.ViewCache(deps.Cache, deps.CachePrefix, deps.CacheTTL, entities.ViewRequestDetail, "id")

	requests := rg.Group(PathRequests)
	{
		requests.POST("", auth.RequireRole(middleware.RoleClient, middleware.RoleAdmin), deps.ServiceRequests.Create)
		requests.GET("", staff, listCache, deps.ServiceRequests.List)
		requests.GET("/:id", anyone, detailCache, deps.ServiceRequests.Get)
		requests.PATCH("/:id/status", admin, deps.ServiceRequests.ChangeStatus)
		requests.PUT("/:id/regions", admin, deps.ServiceRequests.ApplyRegions)
		requests.GET("/:id/matches", admin, deps.Companies.MatchForRequest)
		requests.PUT("/:id/work-rows", staff, deps.ServiceRequests.SaveWorkRows)

		requests.POST("/:id/assignments", admin, deps.Assignments.Create)
		requests.GET("/:id/assignments", staff, deps.Assignments.ListForRequest)

		requests.GET("/:id/estimate", anyone, deps.Estimates.Get)
		requests.PUT("/:id/estimate", company, deps.Estimates.Save)
		requests.POST("/:id/estimate/preview", company, deps.Estimates.Preview)
	}
}
