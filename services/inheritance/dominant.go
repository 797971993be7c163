package inheritance

import (
	"mipfam/models"
	p "mipfam/models/constants/phenotype"
)

// CheckDominant clears AD and AD_denovo when the family contradicts a
// dominant pattern, and refines de novo status for affected carriers.
func CheckDominant(variant *models.Variant, family *models.Family) {
	refined := false
	for _, individual := range family.Individuals {
		genotype := variant.GetGenotype(individual.Id)

		switch individual.Phenotype {
		case p.Unaffected:
			// a dominant variant can not be carried in any form by someone healthy
			if genotype.HasVariant() {
				variant.InheritanceModel.AD = false
				variant.InheritanceModel.ADDenovo = false
			}
		case p.Affected:
			if genotype.HomoRef() {
				variant.InheritanceModel.AD = false
				variant.InheritanceModel.ADDenovo = false
			} else if genotype.HasVariant() {
				checkParents(dominantModel, individual, variant)
				refined = true
			}
		}
		// unknown phenotype says nothing about the model
	}
	settleDenovo(refined, variant.InheritanceModel.ADDenovo, &variant.InheritanceModel.AD)
}
