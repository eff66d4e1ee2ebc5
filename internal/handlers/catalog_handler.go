package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/oficina-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/oficina-scheduler/internal/usecase/appointment"
)

// CatalogHandler serve os dados de apoio do painel: filiais, opções de
// filtro e a legenda de status.
type CatalogHandler struct {
	branches *ucAppointment.ListBranches
	options  *ucAppointment.GetFilterOptions
	statuses *ucAppointment.ListStatuses
}

func NewCatalogHandler(
	branches *ucAppointment.ListBranches,
	options *ucAppointment.GetFilterOptions,
	statuses *ucAppointment.ListStatuses,
) *CatalogHandler {
	return &CatalogHandler{
		branches: branches,
		options:  options,
		statuses: statuses,
	}
}

func (h *CatalogHandler) Branches(c *gin.Context) {
	out, err := h.branches.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *CatalogHandler) FilterOptions(c *gin.Context) {
	out, err := h.options.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) Statuses(c *gin.Context) {
	out, err := h.statuses.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, out)
}
