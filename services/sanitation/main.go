package sanitation

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"mipfam/models"
	"mipfam/services"
)

type (
	SanitationService struct {
		Initialized     bool
		AnalysisService *services.AnalysisService
		Config          *models.Config
		scheduler       *gocron.Scheduler
	}
)

func NewSanitationService(as *services.AnalysisService, cfg *models.Config) *SanitationService {
	ss := &SanitationService{
		Initialized:     false,
		AnalysisService: as,
		Config:          cfg,
	}

	ss.Init()

	return ss
}

func (ss *SanitationService) Init() {
	// initialization if necessary
	if !ss.Initialized {
		// - periodically forget analysis requests that finished
		//   longer ago than the retention window, so the request
		//   map of a long running server does not grow unbounded
		s := gocron.NewScheduler(time.UTC)

		s.Every(1).Hours().Do(func() {
			fmt.Printf("[%s] - Running analysis request cleanup..\n", time.Now())

			pruned := ss.Prune(time.Now())
			fmt.Printf("[%s] - Pruned %d finished analysis requests..\n", time.Now(), pruned)
		})

		// runs the scheduler on its own goroutine
		s.StartAsync()

		ss.scheduler = s
		ss.Initialized = true
		fmt.Println("Sanitation Service Initialized ..")
	}
}

// Prune drops requests finished before the retention window ending at now.
func (ss *SanitationService) Prune(now time.Time) int {
	retention := time.Duration(ss.Config.Api.RequestRetentionHours) * time.Hour
	return ss.AnalysisService.PruneFinishedRequests(now.Add(-retention))
}

func (ss *SanitationService) Stop() {
	if ss.scheduler != nil {
		ss.scheduler.Stop()
	}
}
