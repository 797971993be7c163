package inheritance

import (
	"sort"

	"mipfam/models"
	p "mipfam/models/constants/phenotype"
	"mipfam/utils"
)

// CheckCompoundCandidates narrows the variants of one gene down to those that
// could take part in a compound heterozygous pair.
//
// Every affected individual has to be heterozygous for every candidate, so all
// affected relatives are assumed to share one causal pair. Without phasing this
// is an approximation.
func CheckCompoundCandidates(group models.GeneGroup, family *models.Family) []string {
	candidates := make(map[string]struct{}, len(group))

	for variantId, variant := range group {
		eligible := true
		for _, individual := range family.Individuals {
			genotype := variant.GetGenotype(individual.Id)
			if individual.Affected() {
				// exactly one altered copy per site
				if !genotype.Heterozygote() {
					eligible = false
				}
			} else if genotype.HomoAlt() {
				eligible = false
			}
		}
		if eligible {
			candidates[variantId] = struct{}{}
		}
	}

	for _, individual := range family.Individuals {
		if !individual.Affected() {
			continue
		}

		heterozygousCandidates := make(map[string]struct{}, len(candidates))
		for variantId := range candidates {
			if group[variantId].GetGenotype(individual.Id).Heterozygote() {
				heterozygousCandidates[variantId] = struct{}{}
			}
		}

		if len(heterozygousCandidates) < 2 {
			// no pair can be shared with this individual
			return []string{}
		}
		candidates = heterozygousCandidates
	}

	result := make([]string, 0, len(candidates))
	for variantId := range candidates {
		result = append(result, variantId)
	}
	sort.Strings(result)
	return result
}

// CheckCompounds validates every pair of candidates against the whole family.
func CheckCompounds(candidates []string, group models.GeneGroup, family *models.Family) []utils.Pair[string] {
	validated := []utils.Pair[string]{}

	for _, pair := range utils.GeneratePairs(candidates) {
		if isCompoundPair(group[pair.First], group[pair.Second], family) {
			validated = append(validated, pair)
		}
	}
	return validated
}

func isCompoundPair(first models.Variant, second models.Variant, family *models.Family) bool {
	for _, individual := range family.Individuals {
		if !individual.Affected() {
			// the combination is tolerated by someone not sick
			if first.GetGenotype(individual.Id).HasVariant() && second.GetGenotype(individual.Id).HasVariant() {
				return false
			}
			continue
		}

		// a healthy parent heterozygous for both most likely passed them on
		// together on one chromosome. This will change with phasing information.
		for _, parentId := range []string{individual.MotherId, individual.FatherId} {
			if family.GetPhenotype(parentId) != p.Unaffected {
				continue
			}
			if first.GetGenotype(parentId).Heterozygote() && second.GetGenotype(parentId).Heterozygote() {
				return false
			}
		}
	}
	return true
}
