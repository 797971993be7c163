package workflows

import (
	c "mipfam/models/constants"
	fft "mipfam/models/constants/family-file-type"
	ga "mipfam/models/constants/gene-annotation"
)

type WorkflowSchema map[string]interface{}

var WORKFLOW_ANALYSIS_SCHEMA WorkflowSchema = map[string]interface{}{
	"ingestion": map[string]interface{}{},
	"analysis": map[string]interface{}{
		"inheritance_models": map[string]interface{}{
			"name":        "Family Inheritance Model Annotation",
			"description": "This analysis workflow will annotate every variant of a family with the inheritance models it follows, the compound heterozygous partners it has and a rank score.",
			"data_type":   "variant",
			"tags":        []string{"variant", "pedigree"},
			"route":       "/analysis/run",
			"type":        "analysis",
			"inputs": []map[string]interface{}{
				{
					"id":       "family",
					"type":     "file",
					"required": true,
					"pattern":  "^.*\\.(ped|txt)$",
				},
				{
					"id":       "variants",
					"type":     "file",
					"required": true,
					"pattern":  "^.*\\.(txt|tsv)(\\.gz)?$",
				},
				{
					"id":       "family_type",
					"type":     "enum",
					"required": false,
					"values":   []c.FamilyFileType{fft.Cmms, fft.Ped},
				},
				{
					"id":       "gene_annotation",
					"type":     "enum",
					"required": false,
					"values":   []c.GeneAnnotation{ga.HGNC, ga.Ensembl},
				},
				{
					"id":       "sort_by_position",
					"type":     "boolean",
					"required": false,
				},
				{
					"id":       "threshold",
					"type":     "number",
					"required": false,
				},
			},
			"outputs": []map[string]interface{}{
				{
					"id":   "annotated_variants",
					"type": "file",
				},
			},
		},
	},
	"export": map[string]interface{}{},
}
