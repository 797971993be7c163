package inheritance

import (
	"errors"
	"fmt"
	"sort"

	"mipfam/models"
	z "mipfam/models/constants/zygosity"
)

// ErrInvalidInput marks a contract violation in the data handed to the engine.
var ErrInvalidInput = errors.New("invalid input")

// Validate checks that every genotype of the group belongs to a family
// member and holds one of the four recognised states.
func Validate(group models.GeneGroup, family *models.Family) error {
	if family == nil {
		return fmt.Errorf("%w: missing family", ErrInvalidInput)
	}

	variantIds := make([]string, 0, len(group))
	for variantId := range group {
		variantIds = append(variantIds, variantId)
	}
	sort.Strings(variantIds)

	for _, variantId := range variantIds {
		variant := group[variantId]
		for individualId, genotype := range variant.Genotypes {
			if !family.HasIndividual(individualId) {
				return fmt.Errorf("%w: variant %s has a genotype for %q who is not in family %s",
					ErrInvalidInput, variantId, individualId, family.Id)
			}
			if !z.IsValid(int(genotype.Zygosity)) {
				return fmt.Errorf("%w: variant %s has an unrecognised genotype state %d for %s",
					ErrInvalidInput, variantId, genotype.Zygosity, individualId)
			}
		}
	}
	return nil
}
