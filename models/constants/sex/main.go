package sex

import (
	"mipfam/models/constants"
	"strings"
)

const (
	Unknown constants.Sex = iota
	Male
	Female
)

// CastToSex interprets a pedigree sex code ("1" male, "2" female).
func CastToSex(text string) constants.Sex {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "1", "male", "m":
		return Male
	case "2", "female", "f":
		return Female
	default:
		return Unknown
	}
}

func IsKnown(value int) bool {
	return value > int(Unknown) && value <= int(Female)
}

func SexToString(s constants.Sex) string {
	switch s {
	case Male:
		return "male"
	case Female:
		return "female"
	default:
		return "unknown"
	}
}
