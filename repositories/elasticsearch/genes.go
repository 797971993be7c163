package elasticsearch

import (
	"context"
	"fmt"

	"mipfam/models"
	"mipfam/models/indexes"

	es7 "github.com/elastic/go-elasticsearch/v7"
)

const genesIndex = "genes"

// GetGenesInRange returns the genes of chromosome overlapping
// [lowerBound, upperBound], ordered by start.
func GetGenesInRange(ctx context.Context, cfg *models.Config, es *es7.Client,
	chromosome string, lowerBound int, upperBound int) ([]indexes.Gene, error) {

	mustMap := []map[string]interface{}{
		{
			"query_string": map[string]interface{}{
				"fields": []string{"chrom"},
				"query":  chromosome,
			},
		},
	}

	// a gene overlaps when it starts before the upper bound and ends after the lower one
	if upperBound > 0 {
		mustMap = append(mustMap, rangeQuery("start", map[string]interface{}{"lte": upperBound}))
	}
	if lowerBound > 0 {
		mustMap = append(mustMap, rangeQuery("end", map[string]interface{}{"gte": lowerBound}))
	}

	query := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": []map[string]interface{}{{
					"bool": map[string]interface{}{
						"must": mustMap,
					}},
				},
			},
		},
		"size": maxSearchSize,
		"sort": []map[string]interface{}{
			{
				"start": map[string]interface{}{
					"order": "asc",
				},
			},
		},
	}

	parsed, err := search(ctx, cfg, es, genesIndex, query)
	if err != nil {
		return nil, err
	}

	var genes []indexes.Gene
	if err := decodeHits(parsed, &genes); err != nil {
		return nil, fmt.Errorf("decoding gene documents: %w", err)
	}
	return genes, nil
}
