package workflows

import (
	"net/http"

	w "mipfam/workflows"

	"github.com/labstack/echo"
)

func WorkflowsGet(c echo.Context) error {
	return c.JSON(http.StatusOK, w.WORKFLOW_ANALYSIS_SCHEMA)
}
