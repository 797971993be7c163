package contexts

import (
	"mipfam/models"
	authzModels "mipfam/models/authorization"
	c "mipfam/models/constants"
	"mipfam/services"
	variantsService "mipfam/services/variants"

	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/labstack/echo"
)

type (
	// "Helper" Context to pass into routes that need
	//  an elasticsearch client and other variables
	AnalysisContext struct {
		echo.Context
		Es7Client       *es7.Client
		Config          *models.Config
		AnalysisService *services.AnalysisService
		VariantService  *variantsService.VariantService

		// authorization
		RequestedResource   authzModels.Resource
		RequiredPermissions []authzModels.Permission

		// set by middleware
		Chromosome     string
		LowerBound     int
		UpperBound     int
		GeneAnnotation c.GeneAnnotation
		FamilyFileType c.FamilyFileType
		SortOrder      c.SortOrder
		Threshold      int
	}
)
