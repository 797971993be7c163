// Package inheritance decides, for every variant of a family, which modes of
// inheritance the observed genotypes and phenotypes are consistent with.
//
// Evaluation of a gene group is synchronous and depends only on the group and
// the read-only family, so separate gene groups may be evaluated in parallel.
package inheritance

import (
	"fmt"
	"maps"
	"slices"
	"sort"

	"mipfam/models"
	"mipfam/models/constants/chromosome"
	"mipfam/utils"
)

// Evaluate annotates every variant of the batch. The input batch is left
// untouched; the first gene group failing validation aborts the call.
func Evaluate(batch models.VariantBatch, family *models.Family) (models.VariantBatch, error) {
	genes := make([]string, 0, len(batch))
	for gene := range batch {
		genes = append(genes, gene)
	}
	sort.Strings(genes)

	annotated := make(models.VariantBatch, len(batch))
	for _, gene := range genes {
		group, err := EvaluateGeneGroup(gene, batch[gene], family)
		if err != nil {
			return nil, err
		}
		annotated[gene] = group
	}
	return annotated, nil
}

// EvaluateGeneGroup annotates the variants of a single gene, including the
// compound heterozygous search scoped to that gene.
func EvaluateGeneGroup(gene string, group models.GeneGroup, family *models.Family) (models.GeneGroup, error) {
	if err := Validate(group, family); err != nil {
		return nil, fmt.Errorf("gene %s: %w", gene, err)
	}

	// compounds are only looked for within genes
	var compoundPairs []utils.Pair[string]
	if gene != models.IntergenicGene {
		candidates := CheckCompoundCandidates(group, family)
		if len(candidates) > 1 {
			compoundPairs = CheckCompounds(candidates, group, family)
		}
	}

	annotated := make(models.GeneGroup, len(group))
	for variantId, variant := range group {
		annotated[variantId] = evaluateVariant(variant, family)
	}

	for _, pair := range compoundPairs {
		markCompound(annotated, pair.First, pair.Second)
		markCompound(annotated, pair.Second, pair.First)
	}
	return annotated, nil
}

func evaluateVariant(variant models.Variant, family *models.Family) models.Variant {
	annotated := variant
	annotated.Genes = slices.Clone(variant.Genes)
	annotated.Fields = slices.Clone(variant.Fields)
	annotated.Genotypes = maps.Clone(variant.Genotypes)
	annotated.InheritanceModel = models.NewInheritanceModel()
	annotated.Compounds = map[string]int{}

	if chromosome.IsX(annotated.Chromosome) {
		CheckX(&annotated, family)
		annotated.InheritanceModel.AD = false
		annotated.InheritanceModel.ADDenovo = false
		annotated.InheritanceModel.ARHom = false
		annotated.InheritanceModel.ARHomDenovo = false
	} else {
		annotated.InheritanceModel.X = false
		annotated.InheritanceModel.XDenovo = false
		CheckDominant(&annotated, family)
		CheckRecessive(&annotated, family)
	}
	return annotated
}

func markCompound(group models.GeneGroup, variantId string, partnerId string) {
	variant := group[variantId]
	variant.InheritanceModel.ARCompound = true
	variant.Compounds[partnerId] = 0
	group[variantId] = variant
}
