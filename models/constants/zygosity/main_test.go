package zygosity

import (
	"testing"

	"mipfam/models/constants"

	"github.com/stretchr/testify/assert"
)

func TestFromGenotypeString(t *testing.T) {
	cases := []struct {
		gt     string
		zyg    constants.Zygosity
		phased bool
		ok     bool
	}{
		{"0/0", HomozygousReference, false, true},
		{"0/1", Heterozygous, false, true},
		{"1|0", Heterozygous, true, true},
		{"1/1", HomozygousAlternate, false, true},
		{"2/2", HomozygousAlternate, false, true},
		{"1/2", Heterozygous, false, true},
		{"0", HomozygousReference, false, true},
		{"1", HomozygousAlternate, false, true},
		{"./.", Unknown, false, true},
		{".", Unknown, false, true},
		{"./1", Unknown, false, true},
		{"", Unknown, false, true},
		{"0/1/1", Unknown, false, false},
		{"banana", Unknown, false, false},
		{"0/x", Unknown, false, false},
		{"-1", Unknown, false, false},
	}

	for _, tc := range cases {
		t.Run("should parse "+tc.gt, func(t *testing.T) {
			zyg, phased, ok := FromGenotypeString(tc.gt)
			assert.Equal(t, tc.zyg, zyg)
			assert.Equal(t, tc.phased, phased)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(int(Unknown)))
	assert.True(t, IsValid(int(HomozygousAlternate)))
	assert.False(t, IsValid(-1))
	assert.False(t, IsValid(4))
	assert.False(t, IsKnown(int(Unknown)))
}
