package middleware

import (
	"net/http"

	"mipfam/contexts"
	"mipfam/models/constants/chromosome"

	"github.com/labstack/echo"
)

/*
	Echo middleware to ensure a valid `chromosome` HTTP query parameter was provided
*/
func MandateChromosomeAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.AnalysisContext)

		// check for chromosome query parameter
		chromQP := c.QueryParam("chromosome")
		if len(chromQP) == 0 {
			// if no id was provided return an error
			return echo.NewHTTPError(http.StatusBadRequest, "Missing 'chromosome' query parameter for querying!")
		}

		// verify:
		normalized := chromosome.Normalize(chromQP)
		if !chromosome.IsValidHumanChromosome(normalized) {
			return echo.NewHTTPError(http.StatusBadRequest, "Error converting 'chromosome' query parameter! Check your input")
		}

		gc.Chromosome = normalized
		return next(gc)
	}
}
