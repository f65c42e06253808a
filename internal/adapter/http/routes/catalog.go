package routes

import (
	"oficina_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts = "/products"
	PathServices = "/services"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	products := rg.Group(PathProducts)
	{
		products.POST("", catalogHandler.CreateProduct)
		products.GET("", catalogHandler.ListProducts)
		products.GET("/:id", catalogHandler.GetProduct)
		products.PUT("/:id", catalogHandler.UpdateProduct)
		products.DELETE("/:id", catalogHandler.DeleteProduct)
	}

	services := rg.Group(PathServices)
	{
		services.POST("", catalogHandler.CreateService)
		services.GET("", catalogHandler.ListServices)
		services.GET("/:id", catalogHandler.GetService)
		services.PUT("/:id", catalogHandler.UpdateService)
		services.DELETE("/:id", catalogHandler.DeleteService)
	}
}
