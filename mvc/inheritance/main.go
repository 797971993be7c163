package inheritance

import (
	"fmt"
	"net/http"
	"time"

	"mipfam/models"
	constants "mipfam/models/constants"
	"mipfam/models/constants/chromosome"
	im "mipfam/models/constants/inheritance"
	p "mipfam/models/constants/phenotype"
	s "mipfam/models/constants/sex"
	z "mipfam/models/constants/zygosity"
	"mipfam/models/dtos"
	e "mipfam/models/dtos/errors"
	"mipfam/mvc"
	inheritanceService "mipfam/services/inheritance"
	"mipfam/services/output"

	"github.com/labstack/echo"
)

// EvaluateInheritance annotates a JSON batch of gene groups for one family.
func EvaluateInheritance(c echo.Context) error {
	fmt.Printf("[%s] - EvaluateInheritance hit!\n", time.Now())

	var request dtos.EvaluateRequestDto
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, e.CreateSimpleBadRequest(fmt.Sprintf("Unreadable request body: %s", err)))
	}

	family, err := FamilyFromDto(request.Family)
	if err != nil {
		return mvc.RespondWithError(c, err)
	}

	batch, err := BatchFromDto(request.Batch)
	if err != nil {
		return mvc.RespondWithError(c, err)
	}

	annotated, err := inheritanceService.Evaluate(batch, family)
	if err != nil {
		return mvc.RespondWithError(c, err)
	}

	results := make(map[string]map[string]dtos.AnnotatedVariantDto, len(annotated))
	count := 0
	for gene, group := range annotated {
		results[gene] = make(map[string]dtos.AnnotatedVariantDto, len(group))
		for id, variant := range group {
			variant.RankScore = output.RankScore(variant, family.PreferredModels)
			results[gene][id] = mvc.ToAnnotatedVariantDto(variant)
			count++
		}
	}

	return c.JSON(http.StatusOK, dtos.EvaluateResponseDto{
		Status:  http.StatusOK,
		Message: "Success",
		Count:   count,
		Results: results,
	})
}

// FamilyFromDto builds a family, refusing blank or repeated individual ids.
func FamilyFromDto(dto dtos.FamilyDto) (*models.Family, error) {
	if len(dto.Individuals) == 0 {
		return nil, fmt.Errorf("%w: family %q has no individuals", inheritanceService.ErrInvalidInput, dto.Id)
	}

	individuals := make([]*models.Individual, 0, len(dto.Individuals))
	seen := map[string]bool{}
	for _, ind := range dto.Individuals {
		if ind.Id == "" || seen[ind.Id] {
			return nil, fmt.Errorf("%w: blank or repeated individual id %q", inheritanceService.ErrInvalidInput, ind.Id)
		}
		seen[ind.Id] = true

		individuals = append(individuals, &models.Individual{
			Id:        ind.Id,
			FamilyId:  dto.Id,
			Sex:       s.CastToSex(ind.Sex),
			Phenotype: p.CastToPhenotype(ind.Phenotype),
			MotherId:  parentOrFounder(ind.MotherId),
			FatherId:  parentOrFounder(ind.FatherId),
		})
	}

	preferred := []constants.InheritanceModel{}
	for _, name := range dto.PreferredModels {
		model, ok := im.CastToInheritanceModel(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown inheritance model %q", inheritanceService.ErrInvalidInput, name)
		}
		preferred = append(preferred, model)
	}

	return models.NewFamily(dto.Id, individuals, preferred), nil
}

func parentOrFounder(id string) string {
	if id == "" {
		return models.NoParent
	}
	return id
}

// BatchFromDto converts the request batch; the keys of each gene group are
// used as variant ids. A GT that is not a genotype fails the whole batch.
func BatchFromDto(dto map[string]map[string]dtos.VariantDto) (models.VariantBatch, error) {
	batch := make(models.VariantBatch, len(dto))
	for gene, variants := range dto {
		group := make(models.GeneGroup, len(variants))
		for id, v := range variants {
			genes := []string{}
			if gene != models.IntergenicGene {
				genes = append(genes, gene)
			}

			genotypes := make(map[string]models.Genotype, len(v.Genotypes))
			for individualId, gt := range v.Genotypes {
				zyg, phased, ok := z.FromGenotypeString(gt)
				if !ok {
					return nil, fmt.Errorf("%w: variant %s has an unrecognised genotype %q for %s",
						inheritanceService.ErrInvalidInput, id, gt, individualId)
				}
				genotypes[individualId] = models.Genotype{Zygosity: zyg, Phased: phased}
			}

			group[id] = models.Variant{
				Id:          id,
				Chromosome:  chromosome.Normalize(v.Chromosome),
				Start:       v.Start,
				Stop:        v.Stop,
				Reference:   v.Reference,
				Alternative: v.Alternative,
				Genes:       genes,
				Genotypes:   genotypes,
			}
		}
		batch[gene] = group
	}
	return batch, nil
}
