package variantsService

import (
	"errors"
	"io"
	"strings"
	"testing"

	"mipfam/models"
	ga "mipfam/models/constants/gene-annotation"
	p "mipfam/models/constants/phenotype"
	s "mipfam/models/constants/sex"
	z "mipfam/models/constants/zygosity"
	"mipfam/services/inheritance"
	"mipfam/tests/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const variantFile = "##fileformat=mip\n" +
	"##source=test\n" +
	"#Chromosome\tVariant_start\tVariant_stop\tReference\tAlternative\tEnsemble_gene_id\tHGNC_symbol\tproband\tfather\tmother\n" +
	"chr1\t100\t100\tA\tG\tENSG1\tGENE1\t0/1:35\t0/0:30\t0/1:20\n" +
	"1\t200\t200\tC\tT\tENSG1;ENSG2\tGENE1;GENE2\t0/1\t0/0\t0/0\n" +
	"1\t300\t300\tG\tA\t-\t-\t1/1\t0/1\t./.\n" +
	"X\t400\t400\tT\tC\tENSG3\tGENE3\t1\t0\t0/1\n"

func readAll(t *testing.T, reader *Reader) []*models.Variant {
	t.Helper()
	var variants []*models.Variant
	for {
		variant, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return variants
		}
		require.NoError(t, err)
		variants = append(variants, variant)
	}
}

func TestReader(t *testing.T) {
	family := common.Trio(s.Male, p.Affected)

	t.Run("should read metadata, header and variants", func(t *testing.T) {
		reader := NewReader(strings.NewReader(variantFile), family, ga.HGNC)
		variants := readAll(t, reader)

		assert.Equal(t, []string{"##fileformat=mip", "##source=test"}, reader.Metadata)
		assert.Equal(t, "Chromosome", reader.Header[0])
		require.Len(t, variants, 4)

		first := variants[0]
		assert.Equal(t, "1_100_A_G", first.Id)
		assert.Equal(t, "1", first.Chromosome)
		assert.Equal(t, 100, first.Start)
		assert.Equal(t, []string{"GENE1"}, first.Genes)
		assert.Equal(t, "chr1", first.Fields[0])
		assert.Equal(t, z.Heterozygous, first.GetGenotype(common.ProbandId).Zygosity)
		assert.Equal(t, z.HomozygousReference, first.GetGenotype(common.FatherId).Zygosity)

		assert.Equal(t, []string{"GENE1", "GENE2"}, variants[1].Genes)
		assert.Empty(t, variants[2].Genes)
		assert.True(t, variants[2].GetGenotype(common.MotherId).NoCall())

		hemizygous := variants[3]
		assert.Equal(t, "X", hemizygous.Chromosome)
		assert.True(t, hemizygous.GetGenotype(common.ProbandId).HomoAlt())
	})

	t.Run("should take genes from the Ensembl column when asked to", func(t *testing.T) {
		variants := readAll(t, NewReader(strings.NewReader(variantFile), family, ga.Ensembl))

		assert.Equal(t, []string{"ENSG1", "ENSG2"}, variants[1].Genes)
	})

	t.Run("should leave individuals missing from the file uncalled", func(t *testing.T) {
		larger := models.NewFamily("1", append(family.Individuals,
			common.NewIndividual("sibling", common.FatherId, common.MotherId, s.Female, p.Unaffected)), nil)

		variants := readAll(t, NewReader(strings.NewReader(variantFile), larger, ga.HGNC))

		_, called := variants[0].Genotypes["sibling"]
		assert.False(t, called)
		assert.True(t, variants[0].GetGenotype("sibling").NoCall())
	})

	t.Run("should refuse a file without the gene column", func(t *testing.T) {
		file := "#Chromosome\tVariant_start\tVariant_stop\tReference\tAlternative\n1\t1\t1\tA\tG\n"

		_, err := NewReader(strings.NewReader(file), family, ga.HGNC).Next()
		assert.ErrorIs(t, err, ErrMalformedVariantFile)
	})

	t.Run("should report the line of a malformed variant", func(t *testing.T) {
		file := "#Chromosome\tVariant_start\tVariant_stop\tReference\tAlternative\tHGNC_symbol\n" +
			"1\tnot-a-number\t1\tA\tG\t-\n"

		_, err := NewReader(strings.NewReader(file), family, ga.HGNC).Next()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedVariantFile)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("should refuse a genotype that is not a GT value", func(t *testing.T) {
		file := "#Chromosome\tVariant_start\tVariant_stop\tReference\tAlternative\tHGNC_symbol\tproband\n" +
			"1\t1\t1\tA\tG\t-\t0/1\n" +
			"1\t2\t2\tA\tG\t-\tbanana:12\n"
		reader := NewReader(strings.NewReader(file), family, ga.HGNC)

		_, err := reader.Next()
		require.NoError(t, err)

		_, err = reader.Next()
		assert.ErrorIs(t, err, inheritance.ErrInvalidInput)
		assert.ErrorIs(t, err, ErrMalformedVariantFile)
		assert.Contains(t, err.Error(), "line 3")
	})

	t.Run("should refuse variants before a header", func(t *testing.T) {
		_, err := NewReader(strings.NewReader("1\t1\t1\tA\tG\n"), family, ga.HGNC).Next()
		assert.ErrorIs(t, err, ErrMalformedVariantFile)
	})
}

func TestParseGenes(t *testing.T) {
	assert.Empty(t, ParseGenes("-"))
	assert.Empty(t, ParseGenes(""))
	assert.Equal(t, []string{"A", "B"}, ParseGenes("A;B,A"))
}
