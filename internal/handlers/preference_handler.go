package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/oficina-scheduler/internal/httperr"
	"github.com/BruksfildServices01/oficina-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/oficina-scheduler/internal/metrics"
	ucPreference "github.com/BruksfildServices01/oficina-scheduler/internal/usecase/preference"
)

type PreferenceHandler struct {
	get     *ucPreference.GetTheme
	toggle  *ucPreference.ToggleTheme
	metrics *metrics.HTTPMetrics
}

// metrics pode ser nil.
func NewPreferenceHandler(
	get *ucPreference.GetTheme,
	toggle *ucPreference.ToggleTheme,
	m *metrics.HTTPMetrics,
) *PreferenceHandler {
	return &PreferenceHandler{get: get, toggle: toggle, metrics: m}
}

func (h *PreferenceHandler) GetTheme(c *gin.Context) {
	pref, err := h.get.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, pref)
}

func (h *PreferenceHandler) ToggleTheme(c *gin.Context) {
	pref, err := h.toggle.Execute(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		httperr.Internal(c, "preference_unavailable", "Não foi possível salvar a preferência de tema.")
		return
	}

	h.metrics.ObserveThemeToggle(pref.Mode)
	httpresp.OK(c, pref)
}
