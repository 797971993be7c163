package phenotype

import (
	"mipfam/models/constants"
	"strings"
)

const (
	Unknown constants.Phenotype = iota
	Unaffected
	Affected
)

// CastToPhenotype interprets a pedigree phenotype code ("1" unaffected, "2" affected).
// Anything else, including the conventional "0" and "-9", is unknown.
func CastToPhenotype(text string) constants.Phenotype {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "1", "unaffected", "healthy":
		return Unaffected
	case "2", "affected", "sick":
		return Affected
	default:
		return Unknown
	}
}

func IsKnown(value int) bool {
	return value > int(Unknown) && value <= int(Affected)
}

func PhenotypeToString(p constants.Phenotype) string {
	switch p {
	case Unaffected:
		return "unaffected"
	case Affected:
		return "affected"
	default:
		return "unknown"
	}
}
