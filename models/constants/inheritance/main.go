package inheritance

import (
	"mipfam/models/constants"
	"strings"
)

const (
	X           constants.InheritanceModel = "X"
	XDenovo     constants.InheritanceModel = "X_dn"
	AD          constants.InheritanceModel = "AD"
	ADDenovo    constants.InheritanceModel = "AD_denovo"
	ARHom       constants.InheritanceModel = "AR_hom"
	ARHomDenovo constants.InheritanceModel = "AR_hom_denovo"
	ARCompound  constants.InheritanceModel = "AR_compound"

	// model groups usable as preferred models in a pedigree
	AR constants.InheritanceModel = "AR"
)

// All lists the models in output order.
var All = []constants.InheritanceModel{AD, ADDenovo, ARHom, ARHomDenovo, ARCompound, X, XDenovo}

func CastToInheritanceModel(text string) (constants.InheritanceModel, bool) {
	trimmed := strings.TrimSpace(text)
	for _, m := range All {
		if strings.EqualFold(string(m), trimmed) {
			return m, true
		}
	}
	switch strings.ToUpper(trimmed) {
	case "AR":
		return AR, true
	case "AD_DN":
		return ADDenovo, true
	case "AR_DN", "AR_HOM_DN":
		return ARHomDenovo, true
	case "AR_COMP":
		return ARCompound, true
	case "XR", "XD", "X_LINKED":
		return X, true
	}
	return "", false
}

// Group returns the family of models a flag belongs to (AD, AR or X).
func Group(m constants.InheritanceModel) constants.InheritanceModel {
	switch m {
	case AD, ADDenovo:
		return AD
	case ARHom, ARHomDenovo, ARCompound, AR:
		return AR
	case X, XDenovo:
		return X
	default:
		return m
	}
}

// Matches reports whether the flag m is covered by the preferred entry p,
// either directly or because p names m's whole group.
func Matches(m constants.InheritanceModel, p constants.InheritanceModel) bool {
	if m == p {
		return true
	}
	switch p {
	case AD, AR, X:
		return Group(m) == p
	}
	return false
}
