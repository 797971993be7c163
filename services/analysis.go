package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"mipfam/models"
	"mipfam/models/analysis"
	"mipfam/models/analysis/structs"
	c "mipfam/models/constants"
	"mipfam/services/inheritance"
	"mipfam/services/output"
	variantsService "mipfam/services/variants"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type (
	AnalysisService struct {
		Initialized           bool
		AnalysisRequestChan   chan analysis.AnalysisRequest
		AnalysisRequestMap    map[string]*analysis.AnalysisRequest
		AnalysisRequestMapMux sync.RWMutex
		ConcurrencyLevel      int
		Config                *models.Config
	}

	AnalysisOptions struct {
		SortOrder c.SortOrder
		Threshold int
	}

	// AnalysisResult holds the annotated variants of one run, ready for output.
	AnalysisResult struct {
		Metadata []string
		Header   []string
		Variants []models.Variant
	}
)

func NewAnalysisService(cfg *models.Config) *AnalysisService {
	concurrencyLevel := cfg.Api.ConcurrencyLevel
	if concurrencyLevel < 1 {
		concurrencyLevel = 1
	}

	as := &AnalysisService{
		Initialized:           false,
		AnalysisRequestChan:   make(chan analysis.AnalysisRequest),
		AnalysisRequestMap:    map[string]*analysis.AnalysisRequest{},
		AnalysisRequestMapMux: sync.RWMutex{},
		ConcurrencyLevel:      concurrencyLevel,
		Config:                cfg,
	}

	as.Init()

	return as
}

func (a *AnalysisService) Init() {
	// safeguard to prevent multiple initilizations
	if !a.Initialized {
		// spin up a go routine acting as a listener for analysis request updates
		go func() {
			for request := range a.AnalysisRequestChan {
				if request.State == analysis.Queued {
					fmt.Printf("[%s] - Queueing a new analysis of family %s for %s\n", time.Now(), request.FamilyId, request.Filename)
				}

				request.UpdatedAt = time.Now()
				a.AnalysisRequestMapMux.Lock()
				a.AnalysisRequestMap[request.Id.String()] = &request
				a.AnalysisRequestMapMux.Unlock()
			}
		}()

		a.Initialized = true
	}
}

// NewRequest registers a queued analysis request.
func (a *AnalysisService) NewRequest(familyId string, filename string) analysis.AnalysisRequest {
	request := analysis.AnalysisRequest{
		Id:        uuid.New(),
		FamilyId:  familyId,
		Filename:  filename,
		State:     analysis.Queued,
		CreatedAt: time.Now(),
	}
	a.AnalysisRequestChan <- request
	return request
}

// UpdateRequest publishes the new state of request.
func (a *AnalysisService) UpdateRequest(request analysis.AnalysisRequest) {
	a.AnalysisRequestChan <- request
}

// GetRequests returns a snapshot of every tracked request, oldest first.
func (a *AnalysisService) GetRequests() []analysis.AnalysisRequest {
	a.AnalysisRequestMapMux.RLock()
	defer a.AnalysisRequestMapMux.RUnlock()

	requests := make([]analysis.AnalysisRequest, 0, len(a.AnalysisRequestMap))
	for _, request := range a.AnalysisRequestMap {
		requests = append(requests, *request)
	}
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.Before(requests[j].CreatedAt)
	})
	return requests
}

// FilenameAlreadyRunning reports whether filename is being analysed right now.
func (a *AnalysisService) FilenameAlreadyRunning(filename string) bool {
	a.AnalysisRequestMapMux.RLock()
	defer a.AnalysisRequestMapMux.RUnlock()

	for _, request := range a.AnalysisRequestMap {
		if request.Filename == filename && request.State == analysis.Running {
			return true
		}
	}
	return false
}

// PruneFinishedRequests forgets finished requests not updated since before cutoff.
func (a *AnalysisService) PruneFinishedRequests(cutoff time.Time) int {
	a.AnalysisRequestMapMux.Lock()
	defer a.AnalysisRequestMapMux.Unlock()

	pruned := 0
	for id, request := range a.AnalysisRequestMap {
		if request.IsFinished() && request.UpdatedAt.Before(cutoff) {
			delete(a.AnalysisRequestMap, id)
			pruned++
		}
	}
	return pruned
}

// RunAnalysis analyses a variant file for family while tracking its progress
// as an analysis request.
func (a *AnalysisService) RunAnalysis(ctx context.Context, family *models.Family, filename string,
	reader *variantsService.Reader, opts AnalysisOptions) (*AnalysisResult, analysis.AnalysisRequest, error) {

	request := a.NewRequest(family.Id, filename)

	request.State = analysis.Running
	a.UpdateRequest(request)

	result, err := a.Analyze(ctx, family, reader, opts)
	if err != nil {
		request.State = analysis.Error
		request.Message = err.Error()
		a.UpdateRequest(request)
		return nil, request, err
	}

	request.State = analysis.Done
	request.VariantCount = len(result.Variants)
	a.UpdateRequest(request)
	return result, request, nil
}

// Analyze streams region batches out of reader and evaluates them on at most
// ConcurrencyLevel goroutines. The first failing batch cancels the rest.
func (a *AnalysisService) Analyze(ctx context.Context, family *models.Family,
	reader *variantsService.Reader, opts AnalysisOptions) (*AnalysisResult, error) {

	startTime := time.Now()

	var (
		results    = map[int]models.VariantBatch{}
		resultsMux sync.Mutex
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.ConcurrencyLevel)

	batchCount, readErr := variantsService.ReadRegionBatches(gctx, reader, func(task structs.RegionBatchTask) error {
		// blocks while ConcurrencyLevel batches are in flight
		g.Go(func() error {
			annotated, err := inheritance.Evaluate(task.Batch, family)
			if err != nil {
				return fmt.Errorf("region %d: %w", task.Index, err)
			}

			resultsMux.Lock()
			results[task.Index] = annotated
			resultsMux.Unlock()
			return nil
		})
		return nil
	})

	// a failed evaluation is the cause of any cancelled read
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if readErr != nil {
		return nil, readErr
	}

	ordered := make([]models.VariantBatch, 0, batchCount)
	for i := 0; i < batchCount; i++ {
		ordered = append(ordered, results[i])
	}

	variants := Finalize(MergeBatches(ordered...), family, opts)

	if a.Config.Debug {
		fmt.Printf("[%s] - Analysed %d regions of family %s in %s\n", time.Now(), batchCount, family.Id, time.Since(startTime))
	}

	return &AnalysisResult{
		Metadata: reader.Metadata,
		Header:   reader.Header,
		Variants: variants,
	}, nil
}

// EvaluateBatch evaluates the gene groups of one batch in parallel.
func (a *AnalysisService) EvaluateBatch(ctx context.Context, batch models.VariantBatch,
	family *models.Family, opts AnalysisOptions) ([]models.Variant, error) {

	genes := make([]string, 0, len(batch))
	for gene := range batch {
		genes = append(genes, gene)
	}
	sort.Strings(genes)

	groups := make([]models.GeneGroup, len(genes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.ConcurrencyLevel)

	for i, gene := range genes {
		i, gene := i, gene
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			group, err := inheritance.EvaluateGeneGroup(gene, batch[gene], family)
			if err != nil {
				return err
			}
			groups[i] = group
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	annotated := make(models.VariantBatch, len(genes))
	for i, gene := range genes {
		annotated[gene] = groups[i]
	}
	return Finalize(MergeBatches(annotated), family, opts), nil
}

// MergeBatches flattens annotated batches into one variant per id. A
// variant filed under several genes collects the compound partners found
// in each of them.
func MergeBatches(batches ...models.VariantBatch) []models.Variant {
	merged := map[string]*models.Variant{}
	order := []string{}

	for _, batch := range batches {
		genes := make([]string, 0, len(batch))
		for gene := range batch {
			genes = append(genes, gene)
		}
		sort.Strings(genes)

		for _, gene := range genes {
			for id, variant := range batch[gene] {
				existing, seen := merged[id]
				if !seen {
					v := variant
					v.Compounds = map[string]int{}
					for partner, marker := range variant.Compounds {
						v.Compounds[partner] = marker
					}
					merged[id] = &v
					order = append(order, id)
					continue
				}

				existing.InheritanceModel.ARCompound = existing.InheritanceModel.ARCompound || variant.InheritanceModel.ARCompound
				for partner, marker := range variant.Compounds {
					existing.Compounds[partner] = marker
				}
			}
		}
	}

	variants := make([]models.Variant, 0, len(order))
	for _, id := range order {
		variants = append(variants, *merged[id])
	}
	return variants
}

// Finalize scores, thresholds and sorts merged variants.
func Finalize(variants []models.Variant, family *models.Family, opts AnalysisOptions) []models.Variant {
	output.Score(variants, family.PreferredModels)
	variants = output.Threshold(variants, opts.Threshold)
	output.Sort(variants, opts.SortOrder)
	return variants
}
