package variantsService

import (
	"context"
	"errors"
	"io"

	"mipfam/models"
	"mipfam/models/analysis/structs"
	"mipfam/utils"
)

// RegionBatcher cuts a position-sorted stream of variants into regions.
// Consecutive variants stay together while their genes overlap the genes
// gathered so far, or while both are intergenic.
type RegionBatcher struct {
	current      models.VariantBatch
	currentGenes []string
}

func NewRegionBatcher() *RegionBatcher {
	return &RegionBatcher{}
}

// Add places variant in the open region. When variant starts a new region
// the previous one is returned as completed.
func (b *RegionBatcher) Add(variant *models.Variant) (completed models.VariantBatch, ok bool) {
	if b.current != nil && !b.continuesRegion(variant.Genes) {
		completed, ok = b.current, true
		b.current = nil
	}

	if b.current == nil {
		b.current = models.VariantBatch{}
		b.currentGenes = append([]string{}, variant.Genes...)
	} else {
		b.currentGenes = utils.Union(b.currentGenes, variant.Genes)
	}

	AddToBatch(b.current, *variant)
	return completed, ok
}

// Flush returns the open region, if any.
func (b *RegionBatcher) Flush() (models.VariantBatch, bool) {
	if b.current == nil {
		return nil, false
	}
	completed := b.current
	b.current, b.currentGenes = nil, nil
	return completed, true
}

func (b *RegionBatcher) continuesRegion(genes []string) bool {
	if len(genes) == 0 {
		return len(b.currentGenes) == 0
	}
	return utils.Intersects(genes, b.currentGenes)
}

// AddToBatch files variant under each of its genes, or as intergenic.
func AddToBatch(batch models.VariantBatch, variant models.Variant) {
	genes := variant.Genes
	if len(genes) == 0 {
		genes = []string{models.IntergenicGene}
	}
	for _, gene := range genes {
		group, exists := batch[gene]
		if !exists {
			group = models.GeneGroup{}
			batch[gene] = group
		}
		group[variant.Id] = variant
	}
}

// ReadRegionBatches reads every variant from reader and hands each
// completed region to emit, numbered in file order.
func ReadRegionBatches(ctx context.Context, reader *Reader, emit func(structs.RegionBatchTask) error) (int, error) {
	batcher := NewRegionBatcher()
	index := 0

	send := func(batch models.VariantBatch) error {
		task := structs.RegionBatchTask{Index: index, Batch: batch}
		index++
		return emit(task)
	}

	for {
		if err := ctx.Err(); err != nil {
			return index, err
		}

		variant, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return index, err
		}

		if completed, ok := batcher.Add(variant); ok {
			if err := send(completed); err != nil {
				return index, err
			}
		}
	}

	if last, ok := batcher.Flush(); ok {
		if err := send(last); err != nil {
			return index, err
		}
	}
	return index, nil
}
