package appointment

type ColorToken string

const (
	ColorPrimary   ColorToken = "primary"
	ColorWarning   ColorToken = "warning"
	ColorSuccess   ColorToken = "success"
	ColorError     ColorToken = "error"
	ColorErrorDark ColorToken = "error_dark"
	ColorNeutral   ColorToken = "neutral"
)

const FallbackLabel = "Indefinido"

var statusLabels = map[Status]string{
	StatusScheduled:  "Agendado",
	StatusInProgress: "Em Andamento",
	StatusCompleted:  "Concluído",
	StatusCancelled:  "Cancelado",
	StatusLate:       "Atrasado",
}

var statusColors = map[Status]ColorToken{
	StatusScheduled:  ColorWarning,
	StatusInProgress: ColorPrimary,
	StatusCompleted:  ColorSuccess,
	StatusCancelled:  ColorErrorDark,
	StatusLate:       ColorError,
}

func StatusLabel(s Status) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return FallbackLabel
}

func StatusColor(s Status) ColorToken {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return ColorNeutral
}
