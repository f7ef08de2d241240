package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/madhupandey29/shofy-storefront/controllers"
)

// RegisterRoutes wires all application routes to their controllers.
func RegisterRoutes(
	r *gin.Engine,
	searchController *controllers.SearchController,
	productController *controllers.ProductController,
	filterController *controllers.FilterController,
	sessionController *controllers.SessionController,
) {
	r.GET("/search", searchController.Search)

	searchSessions := r.Group("/search/sessions")
	{
		searchSessions.POST("", searchController.CreateSession)
		searchSessions.PUT("/:id/query", searchController.UpdateQuery)
		searchSessions.GET("/:id", searchController.GetSession)
		searchSessions.DELETE("/:id", searchController.DeleteSession)
	}

	products := r.Group("/products")
	{
		products.GET("", productController.GetProducts)
		products.GET("/:id", productController.GetProductByID)
		products.GET("/:id/related", productController.GetRelated)
	}

	r.GET("/filters/:facet/options", filterController.GetFacetOptions)

	sessions := r.Group("/sessions")
	{
		sessions.POST("", sessionController.CreateSession)
		sessions.GET("/:id", sessionController.GetSession)
		sessions.DELETE("/:id", sessionController.DeleteSession)

		sessions.GET("/:id/facets", sessionController.GetFacets)
		sessions.POST("/:id/facets/:key/toggle", sessionController.ToggleFacet)
		sessions.DELETE("/:id/facets/:key", sessionController.ClearFacet)

		sessions.POST("/:id/modal/open", sessionController.OpenModal)
		sessions.POST("/:id/modal/close", sessionController.CloseModal)

		sessions.POST("/:id/filter-sidebar/open", sessionController.OpenSidebar)
		sessions.POST("/:id/filter-sidebar/close", sessionController.CloseSidebar)

		sessions.POST("/:id/search-overlay/query", sessionController.SetOverlayQuery)
		sessions.GET("/:id/search-overlay", sessionController.GetOverlay)
		sessions.POST("/:id/search-overlay/close", sessionController.CloseOverlay)
	}
}
