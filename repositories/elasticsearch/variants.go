package elasticsearch

import (
	"context"
	"fmt"
	"strings"

	"mipfam/models"
	"mipfam/models/indexes"

	es7 "github.com/elastic/go-elasticsearch/v7"
)

func variantsIndex(chromosome string) string {
	if chromosome == "" {
		return "variants-*"
	}
	return fmt.Sprintf("variants-%s", strings.ToLower(chromosome))
}

// GetVariantDocumentsBySampleIds returns the call documents of the given
// samples lying on chromosome within [lowerBound, upperBound]. A bound of
// zero or less is left open.
func GetVariantDocumentsBySampleIds(ctx context.Context, cfg *models.Config, es *es7.Client,
	chromosome string, lowerBound int, upperBound int, sampleIds []string) ([]indexes.Variant, error) {

	mustMap := []map[string]interface{}{
		{
			"terms": map[string]interface{}{
				"sample.id.keyword": sampleIds,
			},
		},
	}

	if chromosome != "" {
		mustMap = append(mustMap, map[string]interface{}{
			"query_string": map[string]interface{}{
				"query": "chrom:" + chromosome,
			},
		})
	}

	// TODO: page with search_after instead of refusing regions past one search window
	if upperBound > 0 {
		mustMap = append(mustMap, rangeQuery("pos", map[string]interface{}{"lte": upperBound}))
	}
	if lowerBound > 0 {
		mustMap = append(mustMap, rangeQuery("pos", map[string]interface{}{"gte": lowerBound}))
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
			{"pos": map[string]interface{}{"order": "asc"}},
		},
	}

	parsed, err := search(ctx, cfg, es, variantsIndex(chromosome), query)
	if err != nil {
		return nil, err
	}

	var docs []indexes.Variant
	if err := decodeHits(parsed, &docs); err != nil {
		return nil, fmt.Errorf("decoding variant documents: %w", err)
	}
	return docs, nil
}
