package routes

import (
	"agendamento_cras/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathForms   = "/forms"
	PathCatalog = "/catalog"
	PathPing    = "/ping"
)

func addFormRoutes(rg *gin.RouterGroup, formHandler *handlers.FormHandler) {
	forms := rg.Group(PathForms)
	{
		forms.POST("", formHandler.StartForm)
		forms.GET("/:form_id", formHandler.GetForm)
		forms.PATCH("/:form_id/fields/:field", formHandler.ChangeField)
		forms.POST("/:form_id/fields/:field/blur", formHandler.LeaveField)
		forms.DELETE("/:form_id/notice", formHandler.DismissNotice)
		forms.POST("/:form_id/submit", formHandler.SubmitForm)
		forms.POST("/:form_id/reset", formHandler.ResetForm)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/service-types", catalogHandler.ListServiceTypes)
		catalog.GET("/neighborhoods", catalogHandler.ListNeighborhoods)
	}
}

// ping godoc
// @Summary      Liveness
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /ping [get]
func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
