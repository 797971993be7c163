package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"mipfam/contexts"
	fft "mipfam/models/constants/family-file-type"
	ga "mipfam/models/constants/gene-annotation"
	so "mipfam/models/constants/sort"

	"github.com/labstack/echo"
)

/*
Echo middleware resolving the analysis options of a request: the
`geneAnnotation`, `familyType`, `sortByPosition` and `threshold` query
parameters, each falling back on the service configuration
*/
func ValidateAnalysisOptionAttributes(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.AnalysisContext)
		cfg := gc.Config

		geneAnnotation := ga.CastToGeneAnnotation(cfg.Analysis.GeneAnnotation)
		if geneAnnotationQP := c.QueryParam("geneAnnotation"); len(geneAnnotationQP) > 0 {
			if !ga.IsKnownGeneAnnotation(geneAnnotationQP) {
				return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Unknown gene annotation %s", geneAnnotationQP))
			}
			geneAnnotation = ga.CastToGeneAnnotation(geneAnnotationQP)
		}

		familyFileType := fft.CastToFamilyFileType(cfg.Analysis.FamilyFileType)
		if familyTypeQP := c.QueryParam("familyType"); len(familyTypeQP) > 0 {
			familyFileType = fft.CastToFamilyFileType(familyTypeQP)
			if familyFileType == fft.Unknown {
				return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Unknown family file type %s", familyTypeQP))
			}
		}

		sortByPosition := cfg.Analysis.SortByPosition
		if sortQP := c.QueryParam("sortByPosition"); len(sortQP) > 0 {
			parsed, err := strconv.ParseBool(sortQP)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid sortByPosition %s", sortQP))
			}
			sortByPosition = parsed
		}

		threshold := cfg.Analysis.Threshold
		if thresholdQP := c.QueryParam("threshold"); len(thresholdQP) > 0 {
			parsed, err := strconv.Atoi(thresholdQP)
			if err != nil || parsed < 0 {
				return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid threshold %s", thresholdQP))
			}
			threshold = parsed
		}

		gc.GeneAnnotation = geneAnnotation
		gc.FamilyFileType = familyFileType
		gc.SortOrder = so.FromPositionFlag(sortByPosition)
		gc.Threshold = threshold
		return next(gc)
	}
}
