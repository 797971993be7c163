package serviceInfo

import (
	"mipfam/contexts"
	serviceInfo "mipfam/models/constants/service-info"

	"net/http"

	"github.com/labstack/echo"
)

func GetWelcome(c echo.Context) error {
	return c.JSON(http.StatusOK, serviceInfo.SERVICE_WELCOME)
}

// Spec: https://github.com/ga4gh-discovery/ga4gh-service-info
func GetServiceInfo(c echo.Context) error {
	gc := c.(*contexts.AnalysisContext)

	version := gc.Config.SemVer
	if version == "" {
		version = string(serviceInfo.SERVICE_VERSION)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"type": map[string]interface{}{
			"artifact": serviceInfo.SERVICE_ARTIFACT,
			"group":    serviceInfo.SERVICE_TYPE_NO_VER,
			"version":  version,
		},
		"id":          serviceInfo.SERVICE_ID,
		"name":        serviceInfo.SERVICE_NAME,
		"description": serviceInfo.SERVICE_DESCRIPTION,
		"organization": map[string]string{
			"name": "Clinical Genomics",
			"url":  "https://github.com/moonso",
		},
		"contactUrl": gc.Config.ServiceContact,
		"version":    version,
	})
}
