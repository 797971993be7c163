package serviceInfo

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mipfam/contexts"
	serviceInfo "mipfam/models/constants/service-info"
	"mipfam/tests/common"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServiceInfo(t *testing.T) {
	t.Run("should describe the service with the configured version", func(t *testing.T) {
		rec := httptest.NewRecorder()
		gc := &contexts.AnalysisContext{
			Context: echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/service-info", nil), rec),
			Config:  common.InitConfig(),
		}

		require.NoError(t, GetServiceInfo(gc))
		assert.Equal(t, http.StatusOK, rec.Code)

		var info map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
		assert.Equal(t, string(serviceInfo.SERVICE_ID), info["id"])
		assert.Equal(t, "0.1.0-test", info["version"])
		assert.Equal(t, "mailto:mipfam@example.org", info["contactUrl"])
	})
}
