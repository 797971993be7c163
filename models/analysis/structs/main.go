package structs

import (
	"mipfam/models"
)

// RegionBatchTask is one unit of work handed to an analysis worker.
type RegionBatchTask struct {
	Index int
	Batch models.VariantBatch
}

