package appointment

import "strings"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"

	// StatusLate nunca é armazenado; só aparece via DisplayStatus.
	StatusLate Status = "late"
)

// tokens herdados dos protótipos do painel
var legacyStatuses = map[string]Status{
	"agendado":     StatusScheduled,
	"atrasado":     StatusScheduled, // atraso é derivado na leitura
	"em-andamento": StatusInProgress,
	"em_andamento": StatusInProgress,
	"em andamento": StatusInProgress,
	"in-progress":  StatusInProgress,
	"concluido":    StatusCompleted,
	"concluído":    StatusCompleted,
	"cancelado":    StatusCancelled,
	"canceled":     StatusCancelled,
}

// Statuses lista o enum fechado, na ordem exibida nos filtros.
func Statuses() []Status {
	return []Status{
		StatusScheduled,
		StatusInProgress,
		StatusCompleted,
		StatusCancelled,
	}
}

func InitialStatus() Status {
	return StatusScheduled
}

// ParseStatus normaliza o valor recebido. Vazio vira o status inicial;
// valores desconhecidos são preservados como vieram (sem transições,
// sem validação de enum) e caem no fallback de label/cor.
func ParseStatus(raw string) Status {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return InitialStatus()
	}

	if s, ok := legacyStatuses[v]; ok {
		return s
	}

	for _, s := range Statuses() {
		if string(s) == v {
			return s
		}
	}

	return Status(strings.TrimSpace(raw))
}

func (s Status) IsKnown() bool {
	for _, known := range Statuses() {
		if s == known {
			return true
		}
	}
	return false
}
