package variantsService

import (
	"context"
	"errors"
	"strings"
	"testing"

	"mipfam/models"
	ga "mipfam/models/constants/gene-annotation"
	p "mipfam/models/constants/phenotype"
	s "mipfam/models/constants/sex"
	"mipfam/models/analysis/structs"
	"mipfam/tests/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRegionBatches(t *testing.T) {
	family := common.Trio(s.Male, p.Affected)

	t.Run("should cut regions where genes stop overlapping", func(t *testing.T) {
		reader := NewReader(strings.NewReader(variantFile), family, ga.HGNC)

		var tasks []structs.RegionBatchTask
		count, err := ReadRegionBatches(context.Background(), reader, func(task structs.RegionBatchTask) error {
			tasks = append(tasks, task)
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, 3, count)
		require.Len(t, tasks, 3)

		for i, task := range tasks {
			assert.Equal(t, i, task.Index)
		}

		genic := tasks[0].Batch
		assert.Len(t, genic, 2)
		assert.Len(t, genic["GENE1"], 2)
		assert.Contains(t, genic["GENE2"], "1_200_C_T")
		assert.Equal(t, 3, genic.VariantCount())

		assert.Contains(t, tasks[1].Batch[models.IntergenicGene], "1_300_G_A")
		assert.Contains(t, tasks[2].Batch["GENE3"], "X_400_T_C")
	})

	t.Run("should stop on the first failing emit", func(t *testing.T) {
		reader := NewReader(strings.NewReader(variantFile), family, ga.HGNC)
		boom := errors.New("boom")

		_, err := ReadRegionBatches(context.Background(), reader, func(structs.RegionBatchTask) error {
			return boom
		})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("should stop once the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := ReadRegionBatches(ctx, NewReader(strings.NewReader(variantFile), family, ga.HGNC),
			func(structs.RegionBatchTask) error { return nil })
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRegionBatcher(t *testing.T) {
	batcher := NewRegionBatcher()

	intergenic := common.NewVariant("1", 1, nil)
	another := common.NewVariant("1", 2, nil)
	genic := common.NewVariant("1", 3, nil)
	genic.Genes = []string{"G"}

	_, ok := batcher.Add(&intergenic)
	assert.False(t, ok)
	_, ok = batcher.Add(&another)
	assert.False(t, ok, "consecutive intergenic variants share a region")

	completed, ok := batcher.Add(&genic)
	require.True(t, ok)
	assert.Len(t, completed[models.IntergenicGene], 2)

	last, ok := batcher.Flush()
	require.True(t, ok)
	assert.Contains(t, last["G"], genic.Id)

	_, ok = batcher.Flush()
	assert.False(t, ok)
}
