package inheritance

import (
	"testing"

	"mipfam/models"
	c "mipfam/models/constants"
	p "mipfam/models/constants/phenotype"
	s "mipfam/models/constants/sex"
	"mipfam/tests/common"

	"github.com/stretchr/testify/assert"
)

func checkXFor(family *models.Family, calls map[string]string) models.InheritanceModel {
	variant := common.NewVariant("X", 100, calls)
	variant.InheritanceModel = models.InheritanceModel{X: true, XDenovo: true}
	CheckX(&variant, family)
	return variant.InheritanceModel
}

func TestCheckX(t *testing.T) {
	t.Run("should keep X_dn and drop X for a homozygous daughter of a single carrier", func(t *testing.T) {
		flags := checkXFor(common.Trio(s.Female, p.Affected), map[string]string{
			common.ProbandId: "1/1",
			common.FatherId:  "0",
			common.MotherId:  "0/1",
		})

		assert.Equal(t, models.InheritanceModel{XDenovo: true}, flags)
	})

	t.Run("should keep X and drop X_dn for a heterozygous daughter of a carrier mother", func(t *testing.T) {
		flags := checkXFor(common.Trio(s.Female, p.Affected), map[string]string{
			common.ProbandId: "0/1",
			common.FatherId:  "0",
			common.MotherId:  "0/1",
		})

		assert.Equal(t, models.InheritanceModel{X: true}, flags)
	})

	t.Run("should keep X for a homozygous daughter of an affected father and a carrier mother", func(t *testing.T) {
		family := models.NewFamily("1", []*models.Individual{
			common.NewIndividual(common.ProbandId, common.FatherId, common.MotherId, s.Female, p.Affected),
			common.NewIndividual(common.FatherId, models.NoParent, models.NoParent, s.Male, p.Affected),
			common.NewIndividual(common.MotherId, models.NoParent, models.NoParent, s.Female, p.Unaffected),
		}, nil)
		flags := checkXFor(family, map[string]string{
			common.ProbandId: "1/1",
			common.FatherId:  "1",
			common.MotherId:  "0/1",
		})

		assert.True(t, flags.X)
		assert.False(t, flags.XDenovo)
	})

	t.Run("should leave X_dn set and drop X for an affected carrier of unknown sex", func(t *testing.T) {
		flags := checkXFor(common.Trio(s.Unknown, p.Affected), map[string]string{
			common.ProbandId: "0/1",
			common.FatherId:  "0",
			common.MotherId:  "0/1",
		})

		assert.Equal(t, models.InheritanceModel{XDenovo: true}, flags)
	})

	t.Run("should drop X for an unaffected carrier male", func(t *testing.T) {
		for _, sex := range []c.Sex{s.Male, s.Female} {
			flags := checkXFor(common.Trio(sex, p.Affected), map[string]string{
				common.ProbandId: "0/1",
				common.FatherId:  "1",
				common.MotherId:  "0/0",
			})

			assert.False(t, flags.X, "proband sex %v", sex)
		}
	})

	t.Run("should keep both flags when no affected carrier was called", func(t *testing.T) {
		flags := checkXFor(common.Trio(s.Male, p.Affected), map[string]string{
			common.ProbandId: "./.",
		})

		assert.Equal(t, models.InheritanceModel{X: true, XDenovo: true}, flags)
	})
}
