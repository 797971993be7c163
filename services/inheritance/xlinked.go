package inheritance

import (
	"mipfam/models"
	p "mipfam/models/constants/phenotype"
	s "mipfam/models/constants/sex"
)

// CheckX evaluates the X-linked model. Only meaningful for variants on chromosome X.
func CheckX(variant *models.Variant, family *models.Family) {
	refined := false
	for _, individual := range family.Individuals {
		genotype := variant.GetGenotype(individual.Id)

		switch individual.Phenotype {
		case p.Unaffected:
			switch individual.Sex {
			case s.Male:
				// hemizygous males can not be healthy carriers
				if genotype.HasVariant() {
					variant.InheritanceModel.X = false
				}
			case s.Female:
				if genotype.HomoAlt() {
					variant.InheritanceModel.X = false
				}
			}
		case p.Affected:
			if genotype.HomoRef() {
				variant.InheritanceModel.X = false
			} else if genotype.HasVariant() {
				checkParents(xLinkedModel, individual, variant)
				refined = true
			}
		}
	}
	settleDenovo(refined, variant.InheritanceModel.XDenovo, &variant.InheritanceModel.X)
}
