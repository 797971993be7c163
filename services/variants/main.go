package variantsService

import (
	"context"
	"fmt"
	"io"
	"time"

	"mipfam/models"
	ga "mipfam/models/constants/gene-annotation"
	esRepo "mipfam/repositories/elasticsearch"

	es7 "github.com/elastic/go-elasticsearch/v7"
)

type (
	VariantService struct {
		Config *models.Config
	}
)

func NewVariantService(cfg *models.Config) *VariantService {
	vs := &VariantService{
		Config: cfg,
	}

	return vs
}

// NewReader opens a variant stream for family using the configured gene annotation.
func (vs *VariantService) NewReader(r io.Reader, family *models.Family) *Reader {
	return NewReader(r, family, ga.CastToGeneAnnotation(vs.Config.Analysis.GeneAnnotation))
}

// GetIndexedBatch reads the family's calls and the overlapping genes of a
// region from elasticsearch and builds the batch to evaluate.
func (vs *VariantService) GetIndexedBatch(ctx context.Context, es *es7.Client, family *models.Family,
	chromosome string, lowerBound int, upperBound int) (models.VariantBatch, error) {

	fmt.Printf("[%s] - Fetching indexed calls of family %s on %s:%d-%d\n",
		time.Now(), family.Id, chromosome, lowerBound, upperBound)

	docs, err := esRepo.GetVariantDocumentsBySampleIds(ctx, vs.Config, es, chromosome, lowerBound, upperBound, family.IndividualIds())
	if err != nil {
		return nil, err
	}

	genes, err := esRepo.GetGenesInRange(ctx, vs.Config, es, chromosome, lowerBound, upperBound)
	if err != nil {
		return nil, err
	}

	return BatchFromIndexedDocuments(docs, genes, family)
}
