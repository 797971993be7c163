package dtos

import (
	"time"

	"mipfam/models"
	c "mipfam/models/constants"
)

type GeneralErrorResponseDto struct {
	Code      int            `json:"code"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Errors    []GeneralError `json:"errors"`
}

type GeneralError struct {
	Message string `json:"message"`
}

// -- inheritance evaluation

type IndividualDto struct {
	Id        string `json:"id"`
	Sex       string `json:"sex"`
	Phenotype string `json:"phenotype"`
	MotherId  string `json:"motherId"`
	FatherId  string `json:"fatherId"`
}

type FamilyDto struct {
	Id              string          `json:"id"`
	Individuals     []IndividualDto `json:"individuals"`
	PreferredModels []string        `json:"preferredModels"`
}

type VariantDto struct {
	Chromosome  string            `json:"chromosome"`
	Start       int               `json:"start"`
	Stop        int               `json:"stop"`
	Reference   string            `json:"reference"`
	Alternative string            `json:"alternative"`
	Genotypes   map[string]string `json:"genotypes"` // individual id -> GT (i.e. "0/1")
}

type EvaluateRequestDto struct {
	Family FamilyDto                        `json:"family"`
	Batch  map[string]map[string]VariantDto `json:"batch"` // gene -> variant id -> variant
}

type AnnotatedVariantDto struct {
	Id               string                  `json:"id"`
	Chromosome       string                  `json:"chromosome"`
	Start            int                     `json:"start"`
	InheritanceModel models.InheritanceModel `json:"inheritanceModel"`
	Followed         []c.InheritanceModel    `json:"followed"`
	Compounds        []string                `json:"compounds"`
	RankScore        int                     `json:"rankScore"`
}

type EvaluateResponseDto struct {
	Status  int                                       `json:"status"`
	Message string                                    `json:"message"`
	Count   int                                       `json:"count"`
	Results map[string]map[string]AnnotatedVariantDto `json:"results"`
}

type IndexedAnalysisResponseDto struct {
	Status     string                `json:"status"`
	Message    string                `json:"message"`
	Chromosome string                `json:"chromosome"`
	LowerBound int                   `json:"lowerBound"`
	UpperBound int                   `json:"upperBound"`
	Count      int                   `json:"count"`
	Results    []AnnotatedVariantDto `json:"results"`
}
