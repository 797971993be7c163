package sanitation

import (
	"testing"
	"time"

	"mipfam/models/analysis"
	"mipfam/services"
	"mipfam/tests/common"

	"github.com/stretchr/testify/assert"
)

func TestPrune(t *testing.T) {
	cfg := common.InitConfig()
	as := services.NewAnalysisService(cfg)

	now := time.Now()
	stale := &analysis.AnalysisRequest{State: analysis.Done, UpdatedAt: now.Add(-2 * time.Hour)}
	fresh := &analysis.AnalysisRequest{State: analysis.Error, UpdatedAt: now}
	running := &analysis.AnalysisRequest{State: analysis.Running, UpdatedAt: now.Add(-2 * time.Hour)}

	as.AnalysisRequestMapMux.Lock()
	as.AnalysisRequestMap["stale"] = stale
	as.AnalysisRequestMap["fresh"] = fresh
	as.AnalysisRequestMap["running"] = running
	as.AnalysisRequestMapMux.Unlock()

	// not initialized, so no scheduled run competes with the assertions
	ss := &SanitationService{AnalysisService: as, Config: cfg}

	t.Run("should prune only finished requests older than the retention window", func(t *testing.T) {
		// test config keeps requests for one hour
		assert.Equal(t, 1, ss.Prune(now))

		as.AnalysisRequestMapMux.RLock()
		defer as.AnalysisRequestMapMux.RUnlock()
		assert.NotContains(t, as.AnalysisRequestMap, "stale")
		assert.Contains(t, as.AnalysisRequestMap, "fresh")
		assert.Contains(t, as.AnalysisRequestMap, "running")
	})
}
