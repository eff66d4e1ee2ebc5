package validators

import (
	"regexp"
	"strings"
)

var (
	// ABC-1234 (hífen opcional)
	oldPlate = regexp.MustCompile(`^[A-Z]{3}-?[0-9]{4}$`)
	// ABC1D23
	mercosulPlate = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z][0-9]{2}$`)
)

func IsPlateValid(plate string) bool {
	p := strings.ToUpper(strings.TrimSpace(plate))
	return oldPlate.MatchString(p) || mercosulPlate.MatchString(p)
}

// ParseVehicle splits "<model> - <plate>". When the last part is not a
// recognizable plate the whole description is returned as the model.
func ParseVehicle(desc string) (model, plate string) {
	desc = strings.TrimSpace(desc)

	i := strings.LastIndex(desc, " - ")
	if i < 0 {
		return desc, ""
	}

	candidate := strings.TrimSpace(desc[i+3:])
	if !IsPlateValid(candidate) {
		return desc, ""
	}

	return strings.TrimSpace(desc[:i]), strings.ToUpper(candidate)
}
