package zygosity

import (
	"mipfam/models/constants"
	"strconv"
	"strings"
)

const (
	// no-call; also the zero value of a missing genotype
	Unknown constants.Zygosity = iota

	Heterozygous
	HomozygousReference
	HomozygousAlternate
)

func IsKnown(value int) bool {
	return value > int(Unknown) && value <= int(HomozygousAlternate)
}

// IsValid accepts the no-call state as well as the three called states.
func IsValid(value int) bool {
	return value >= int(Unknown) && value <= int(HomozygousAlternate)
}

func ZygosityToString(zyg constants.Zygosity) string {
	switch zyg {
	case Heterozygous:
		return "HETEROZYGOUS"
	case HomozygousReference:
		return "HOMOZYGOUS_REFERENCE"
	case HomozygousAlternate:
		return "HOMOZYGOUS_ALTERNATE"
	default:
		return "UNKNOWN"
	}
}

func CastToZygosity(text string) (constants.Zygosity, bool) {
	switch strings.ToUpper(strings.TrimSpace(text)) {
	case "", "UNKNOWN", "NO_CALL", "NOCALL":
		return Unknown, true
	case "HETEROZYGOUS":
		return Heterozygous, true
	case "HOMOZYGOUS_REFERENCE":
		return HomozygousReference, true
	case "HOMOZYGOUS_ALTERNATE":
		return HomozygousAlternate, true
	default:
		return Unknown, false
	}
}

// FromGenotypeString derives the zygosity of a VCF-style GT value,
// as defined by https://samtools.github.io/hts-specs/VCFv4.1.pdf .
// Haploid calls (hemizygous males on X) map onto the homozygous states.
// Missing values ("", ".", "./.") and half calls such as "./1" are no-calls;
// ok is false only for values that are not a genotype at all.
func FromGenotypeString(gtString string) (zyg constants.Zygosity, phased bool, ok bool) {
	gtString = strings.TrimSpace(gtString)
	if gtString == "" {
		return Unknown, false, true
	}

	// determine ploidy
	if !strings.Contains(gtString, "|") && !strings.Contains(gtString, "/") {
		allele, called, valid := parseAllele(gtString)
		switch {
		case !valid:
			return Unknown, false, false
		case !called:
			return Unknown, false, true
		case allele == 0:
			return HomozygousReference, false, true
		default:
			return HomozygousAlternate, false, true
		}
	}

	// -- phase
	phased = strings.Contains(gtString, "|")

	var alleleStringSplits []string
	if phased {
		alleleStringSplits = strings.Split(gtString, "|")
	} else {
		alleleStringSplits = strings.Split(gtString, "/")
	}

	// only haploid and diploid calls map onto the four states
	if len(alleleStringSplits) != 2 {
		return Unknown, phased, false
	}

	alleleLeft, calledLeft, validLeft := parseAllele(alleleStringSplits[0])
	alleleRight, calledRight, validRight := parseAllele(alleleStringSplits[1])
	if !validLeft || !validRight {
		return Unknown, phased, false
	}
	if !calledLeft || !calledRight {
		// half-calls such as './1' carry no usable evidence either
		return Unknown, phased, true
	}

	switch {
	case alleleLeft != alleleRight:
		zyg = Heterozygous
	case alleleLeft == 0:
		zyg = HomozygousReference
	default:
		zyg = HomozygousAlternate
	}
	return zyg, phased, true
}

// parseAllele reads one allele index; "." is a valid missing allele.
func parseAllele(text string) (allele int, called bool, valid bool) {
	if text == "." {
		return 0, false, true
	}
	allele, err := strconv.Atoi(text)
	if err != nil || allele < 0 {
		return 0, false, false
	}
	return allele, true, true
}
