package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mipfam/models"
	"mipfam/utils"

	"github.com/Jeffail/gabs"
	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/mitchellh/mapstructure"
)

// largest page elasticsearch serves without a scroll
const maxSearchSize = 10000

var ErrSearchFailed = errors.New("elasticsearch search failed")

// ErrTruncatedResult is returned when more documents match than one search returns.
var ErrTruncatedResult = fmt.Errorf("%w: result truncated", ErrSearchFailed)

// search runs query against index and returns the parsed response.
func search(ctx context.Context, cfg *models.Config, es *es7.Client, index string, query map[string]interface{}) (*gabs.Container, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, fmt.Errorf("encoding query: %w", err)
	}

	if cfg.Debug {
		// view the outbound elasticsearch query
		fmt.Println(buf.String())
	}

	res, searchErr := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(index),
		es.Search.WithBody(&buf),
		es.Search.WithTrackTotalHits(true),
		es.Search.WithIgnoreUnavailable(true),
	)
	if searchErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, searchErr)
	}
	defer res.Body.Close()

	resultString := res.String()
	if cfg.Debug {
		fmt.Println(resultString)
	}
	if res.IsError() {
		return nil, fmt.Errorf("%w: %s", ErrSearchFailed, res.Status())
	}

	// Known bug: response comes back with a preceding '[200 OK] ' which needs trimming
	bracketString, jsonBodyString := utils.GetLeadingStringInBetweenSquareBrackets(resultString)
	if bracketString == "" {
		jsonBodyString = resultString
	}

	parsed, err := gabs.ParseJSON([]byte(jsonBodyString))
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable response: %v", ErrSearchFailed, err)
	}

	fmt.Printf("[%s] - Query on %s End\n", time.Now(), index)
	return parsed, nil
}

// decodeHits decodes the _source of every hit into out, a pointer to a slice.
// A response holding fewer hits than it reports as matching is refused.
func decodeHits(parsed *gabs.Container, out interface{}) error {
	sources := []interface{}{}

	hits, err := parsed.Path("hits.hits").Children()
	if err != nil {
		// no hits array at all means no hits
		hits = nil
	}
	if total, ok := totalHits(parsed); ok && total > len(hits) {
		return fmt.Errorf("%w: %d of %d matching documents returned", ErrTruncatedResult, len(hits), total)
	}

	for _, hit := range hits {
		sources = append(sources, hit.Path("_source").Data())
	}
	return mapstructure.Decode(sources, out)
}

// totalHits reads hits.total, either the object form or a bare number.
func totalHits(parsed *gabs.Container) (int, bool) {
	for _, path := range []string{"hits.total.value", "hits.total"} {
		if total, ok := parsed.Path(path).Data().(float64); ok {
			return int(total), true
		}
	}
	return 0, false
}

func rangeQuery(field string, bounds map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"range": map[string]interface{}{
			field: bounds,
		},
	}
}
