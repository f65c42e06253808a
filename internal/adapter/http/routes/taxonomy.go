package routes

import (
	"oficina_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBrands         = "/brands"
	PathEquipmentTypes = "/equipment-types"
	PathStatuses       = "/statuses"
)

func addTaxonomyRoutes(rg *gin.RouterGroup, taxonomyHandler *handlers.TaxonomyHandler) {
	brands := rg.Group(PathBrands)
	{
		brands.POST("", taxonomyHandler.CreateBrand)
		brands.GET("", taxonomyHandler.ListBrands)
		brands.PUT("/:id", taxonomyHandler.UpdateBrand)
		brands.DELETE("/:id", taxonomyHandler.DeleteBrand)
	}

	equipmentTypes := rg.Group(PathEquipmentTypes)
	{
		equipmentTypes.POST("", taxonomyHandler.CreateEquipmentType)
		equipmentTypes.GET("", taxonomyHandler.ListEquipmentTypes)
		equipmentTypes.PUT("/:id", taxonomyHandler.UpdateEquipmentType)
		equipmentTypes.DELETE("/:id", taxonomyHandler.DeleteEquipmentType)
	}

	statuses := rg.Group(PathStatuses)
	{
		statuses.POST("", taxonomyHandler.CreateStatus)
		statuses.GET("", taxonomyHandler.ListStatuses)
		statuses.PUT("/:id", taxonomyHandler.UpdateStatus)
		statuses.DELETE("/:id", taxonomyHandler.DeleteStatus)
	}
}
