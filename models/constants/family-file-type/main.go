package familyFileType

import (
	"mipfam/models/constants"
	"strings"
)

const (
	Unknown constants.FamilyFileType = ""

	Ped  constants.FamilyFileType = "ped"
	Cmms constants.FamilyFileType = "cmms"
)

func CastToFamilyFileType(text string) constants.FamilyFileType {
	switch strings.ToLower(text) {
	case "ped":
		return Ped
	case "cmms":
		return Cmms
	default:
		return Unknown
	}
}
