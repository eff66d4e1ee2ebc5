package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/oficina-scheduler/internal/httperr"
)

var badRequestMessages = map[string]string{
	"invalid_date":        "Data inválida.",
	"invalid_view":        "Visualização inválida. Use day ou week.",
	"invalid_granularity": "Granularidade inválida.",
	"invalid_direction":   "Navegação inválida.",
	"invalid_slot":        "Horário de expediente inválido.",
}

// writeError traduz erros de negócio conhecidos em 400; o resto vira 500.
func writeError(c *gin.Context, err error) {
	_ = c.Error(err)

	if code, ok := httperr.BusinessCode(err); ok {
		if msg, known := badRequestMessages[code]; known {
			httperr.BadRequest(c, code, msg)
			return
		}
	}

	httperr.Internal(c, "internal_error", "Erro interno.")
}
