package inheritance

import (
	"mipfam/models"
	p "mipfam/models/constants/phenotype"
)

// CheckRecessive evaluates the autosomal recessive (homozygous) model.
func CheckRecessive(variant *models.Variant, family *models.Family) {
	refined := false
	for _, individual := range family.Individuals {
		genotype := variant.GetGenotype(individual.Id)

		switch individual.Phenotype {
		case p.Unaffected:
			if genotype.HomoAlt() {
				variant.InheritanceModel.ARHom = false
				variant.InheritanceModel.ARHomDenovo = false
			}
		case p.Affected:
			// the sick have to be homozygous alternative; a no-call can not exclude the model
			if genotype.HomoRef() || genotype.Heterozygote() {
				variant.InheritanceModel.ARHom = false
				variant.InheritanceModel.ARHomDenovo = false
			} else if genotype.HomoAlt() {
				checkParents(recessiveModel, individual, variant)
				refined = true
			}
		}
	}
	settleDenovo(refined, variant.InheritanceModel.ARHomDenovo, &variant.InheritanceModel.ARHom)
}
