package geneAnnotation

import (
	"mipfam/models/constants"
	"strings"
)

const (
	Unknown constants.GeneAnnotation = "Unknown"

	Ensembl constants.GeneAnnotation = "Ensembl"
	HGNC    constants.GeneAnnotation = "HGNC"
)

func CastToGeneAnnotation(text string) constants.GeneAnnotation {
	switch strings.ToLower(text) {
	case "ensembl":
		return Ensembl
	case "hgnc":
		return HGNC
	default:
		return Unknown
	}
}

func IsKnownGeneAnnotation(text string) bool {
	// attempt to cast to a gene annotation and
	// return if unknown
	return CastToGeneAnnotation(text) != Unknown
}

// HeaderColumn returns the variant file column holding genes for the given annotation.
func HeaderColumn(ga constants.GeneAnnotation) string {
	switch ga {
	case Ensembl:
		return "Ensemble_gene_id"
	default:
		return "HGNC_symbol"
	}
}
