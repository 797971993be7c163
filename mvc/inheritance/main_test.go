package inheritance

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mipfam/models"
	p "mipfam/models/constants/phenotype"
	s "mipfam/models/constants/sex"
	z "mipfam/models/constants/zygosity"
	"mipfam/models/dtos"
	inheritanceService "mipfam/services/inheritance"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trioRequest = `{
	"family": {
		"id": "1",
		"individuals": [
			{"id": "proband", "sex": "1", "phenotype": "2", "fatherId": "father", "motherId": "mother"},
			{"id": "father", "sex": "1", "phenotype": "1"},
			{"id": "mother", "sex": "2", "phenotype": "1"}
		]
	},
	"batch": {
		"GENE1": {
			"1_100_A_G": {"chromosome": "chr1", "start": 100, "stop": 100, "reference": "A", "alternative": "G",
				"genotypes": {"proband": "0/1", "father": "0/0", "mother": "0/0"}}
		}
	}
}`

func post(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/inheritance/evaluate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestEvaluateInheritance(t *testing.T) {
	t.Run("should annotate a de novo variant of a trio", func(t *testing.T) {
		c, rec := post(trioRequest)
		require.NoError(t, EvaluateInheritance(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var response dtos.EvaluateResponseDto
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, 1, response.Count)

		variant := response.Results["GENE1"]["1_100_A_G"]
		assert.Equal(t, "1", variant.Chromosome)
		assert.Equal(t, models.InheritanceModel{ADDenovo: true}, variant.InheritanceModel)
		assert.Equal(t, 1, variant.RankScore)
		assert.Empty(t, variant.Compounds)
	})

	t.Run("should reject a genotype of a stranger", func(t *testing.T) {
		body := strings.Replace(trioRequest, `"mother": "0/0"`, `"mother": "0/0", "stranger": "0/1"`, 1)
		c, rec := post(body)
		require.NoError(t, EvaluateInheritance(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject a genotype that is not a GT value", func(t *testing.T) {
		body := strings.Replace(trioRequest, `"proband": "0/1"`, `"proband": "banana"`, 1)
		c, rec := post(body)
		require.NoError(t, EvaluateInheritance(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "banana")
	})

	t.Run("should reject an unreadable body", func(t *testing.T) {
		c, rec := post("{")
		require.NoError(t, EvaluateInheritance(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestFamilyFromDto(t *testing.T) {
	t.Run("should treat missing parents as founders", func(t *testing.T) {
		family, err := FamilyFromDto(dtos.FamilyDto{
			Id:              "f",
			Individuals:     []dtos.IndividualDto{{Id: "a", Sex: "2", Phenotype: "2"}},
			PreferredModels: []string{"AR"},
		})
		require.NoError(t, err)

		a := family.GetIndividual("a")
		require.NotNil(t, a)
		assert.Equal(t, models.NoParent, a.FatherId)
		assert.Equal(t, s.Female, a.Sex)
		assert.Equal(t, p.Affected, a.Phenotype)
		assert.Len(t, family.PreferredModels, 1)
	})

	t.Run("should refuse repeated, blank or missing individuals", func(t *testing.T) {
		for _, dto := range []dtos.FamilyDto{
			{Id: "f"},
			{Id: "f", Individuals: []dtos.IndividualDto{{Id: ""}}},
			{Id: "f", Individuals: []dtos.IndividualDto{{Id: "a"}, {Id: "a"}}},
			{Id: "f", Individuals: []dtos.IndividualDto{{Id: "a"}}, PreferredModels: []string{"Mendelian"}},
		} {
			_, err := FamilyFromDto(dto)
			assert.True(t, errors.Is(err, inheritanceService.ErrInvalidInput))
		}
	})
}

func TestBatchFromDto(t *testing.T) {
	t.Run("should leave intergenic variants without genes", func(t *testing.T) {
		batch, err := BatchFromDto(map[string]map[string]dtos.VariantDto{
			models.IntergenicGene: {"v": {Chromosome: "chrX", Genotypes: map[string]string{"a": "1|1", "b": "./."}}},
		})
		require.NoError(t, err)

		variant := batch[models.IntergenicGene]["v"]
		assert.Empty(t, variant.Genes)
		assert.Equal(t, "X", variant.Chromosome)
		assert.Equal(t, models.Genotype{Zygosity: z.HomozygousAlternate, Phased: true}, variant.Genotypes["a"])
		assert.True(t, variant.Genotypes["b"].NoCall())
	})

	t.Run("should refuse a genotype that is not a GT value", func(t *testing.T) {
		_, err := BatchFromDto(map[string]map[string]dtos.VariantDto{
			"GENE1": {"v": {Chromosome: "1", Genotypes: map[string]string{"a": "0/1", "b": "het"}}},
		})
		assert.ErrorIs(t, err, inheritanceService.ErrInvalidInput)
	})
}
