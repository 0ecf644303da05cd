package handlers

import (
	"net/http"

	response "agendamento_cras/internal/adapter/http/dto/response"
	"agendamento_cras/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static options of the form selectors.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListServiceTypes godoc
// @Summary      Service types
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.ServiceTypesResponse
// @Router       /catalog/service-types [get]
func (h *CatalogHandler) ListServiceTypes(c *gin.Context) {
	c.JSON(http.StatusOK, response.ServiceTypesResponse{Items: h.usecase.ListServiceTypes(c.Request.Context())})
}

// ListNeighborhoods godoc
// @Summary      Neighborhoods
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.NeighborhoodsResponse
// @Router       /catalog/neighborhoods [get]
func (h *CatalogHandler) ListNeighborhoods(c *gin.Context) {
	c.JSON(http.StatusOK, response.NeighborhoodsResponse{Items: h.usecase.ListNeighborhoods(c.Request.Context())})
}
