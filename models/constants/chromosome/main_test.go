package chromosome

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "X", Normalize("chrX"))
	assert.Equal(t, "X", Normalize("x"))
	assert.Equal(t, "M", Normalize("chrMT"))
	assert.Equal(t, "17", Normalize("CHR17"))
	assert.Equal(t, "GL000192.1", Normalize("GL000192.1"))

	assert.True(t, IsX("chrX"))
	assert.False(t, IsX("Y"))
}

func TestSortKey(t *testing.T) {
	chroms := []string{"M", "chrX", "10", "Y", "2", "GL000192.1", "1"}
	sort.SliceStable(chroms, func(i, j int) bool {
		return SortKey(chroms[i]) < SortKey(chroms[j])
	})

	assert.Equal(t, []string{"1", "2", "10", "chrX", "Y", "M", "GL000192.1"}, chroms)
}

func TestIsValidHumanChromosome(t *testing.T) {
	for _, chrom := range ValidListOfHumanChromosomes() {
		assert.True(t, IsValidHumanChromosome(chrom), chrom)
	}
	assert.False(t, IsValidHumanChromosome("0"))
	assert.False(t, IsValidHumanChromosome("24"))
}
