package inheritance

import (
	"mipfam/models"
	s "mipfam/models/constants/sex"
)

type parentModel int

const (
	dominantModel parentModel = iota
	recessiveModel
	xLinkedModel
)

// checkParents clears the de novo flag of model when the parents' calls
// explain how an affected carrier inherited the variant. It only clears, so
// running it once per affected carrier gives the same flags in any order.
func checkParents(model parentModel, individual *models.Individual, variant *models.Variant) {
	individualGenotype := variant.GetGenotype(individual.Id)

	// founders and parents missing from the variant read as no-calls
	motherGenotype := variant.GetGenotype(individual.MotherId)
	fatherGenotype := variant.GetGenotype(individual.FatherId)

	flags := &variant.InheritanceModel

	switch model {
	case dominantModel:
		if motherGenotype.HasVariant() || fatherGenotype.HasVariant() {
			flags.ADDenovo = false
		}

	case recessiveModel:
		if individual.HasMother() && individual.HasFather() {
			if recessiveInheritedFrom(motherGenotype, fatherGenotype) {
				flags.ARHomDenovo = false
			}
		}

	case xLinkedModel:
		switch individual.Sex {
		case s.Male:
			if motherGenotype.HasVariant() || fatherGenotype.HasVariant() {
				flags.XDenovo = false
			}
		case s.Female:
			if individualGenotype.HomoAlt() {
				if recessiveInheritedFrom(motherGenotype, fatherGenotype) {
					flags.XDenovo = false
				}
			} else if individualGenotype.Heterozygote() {
				if motherGenotype.HasVariant() || fatherGenotype.HasVariant() {
					flags.XDenovo = false
				}
			}
		}
	}
}

// settleDenovo runs once every affected carrier has been refined: a de novo
// flag that survived all of them rules out plain inheritance.
func settleDenovo(refined bool, denovo bool, inherited *bool) {
	if refined && denovo {
		*inherited = false
	}
}

// recessiveInheritedFrom reports whether the parents' calls are enough to pass
// on two altered copies: one parent homozygous alternative, or both carriers.
func recessiveInheritedFrom(mother, father models.Genotype) bool {
	return mother.HomoAlt() || father.HomoAlt() ||
		(mother.HasVariant() && father.HasVariant())
}
