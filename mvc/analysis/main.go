package analysis

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"mipfam/contexts"
	"mipfam/models/dtos"
	e "mipfam/models/dtos/errors"
	"mipfam/mvc"
	"mipfam/services"
	"mipfam/services/output"
	variantsService "mipfam/services/variants"
	"mipfam/utils"

	"github.com/labstack/echo"
)

// RunAnalysis annotates an uploaded variant file for an uploaded pedigree
// and answers with the annotated file.
func RunAnalysis(c echo.Context) error {
	fmt.Printf("[%s] - RunAnalysis hit!\n", time.Now())
	gc := c.(*contexts.AnalysisContext)

	family, err := mvc.RetrieveFamilyFromForm(c, "family", gc.FamilyFileType)
	if err != nil {
		return mvc.RespondWithError(c, err)
	}

	variantsHeader, err := c.FormFile("variants")
	if err != nil {
		return c.JSON(http.StatusBadRequest, e.CreateSimpleBadRequest("Missing 'variants' file"))
	}

	if gc.AnalysisService.FilenameAlreadyRunning(variantsHeader.Filename) {
		return c.JSON(http.StatusConflict, e.CreateSimpleBadRequest(fmt.Sprintf("An analysis of %s is already running", variantsHeader.Filename)))
	}

	upload, err := variantsHeader.Open()
	if err != nil {
		return mvc.RespondWithError(c, err)
	}
	variantsFile, err := utils.WrapMaybeGzipped(upload, variantsHeader.Filename)
	if err != nil {
		return c.JSON(http.StatusBadRequest, e.CreateSimpleBadRequest(fmt.Sprintf("Unreadable 'variants' file: %s", err)))
	}
	defer variantsFile.Close()

	reader := variantsService.NewReader(variantsFile, family, gc.GeneAnnotation)
	result, _, err := gc.AnalysisService.RunAnalysis(c.Request().Context(), family, variantsHeader.Filename, reader,
		services.AnalysisOptions{SortOrder: gc.SortOrder, Threshold: gc.Threshold})
	if err != nil {
		return mvc.RespondWithError(c, err)
	}

	var buf bytes.Buffer
	if err := output.WriteVariants(&buf, result.Metadata, result.Header, result.Variants); err != nil {
		return mvc.RespondWithError(c, err)
	}
	return c.Blob(http.StatusOK, "text/tab-separated-values", buf.Bytes())
}

func GetAllAnalysisRequests(c echo.Context) error {
	fmt.Printf("[%s] - GetAllAnalysisRequests hit!\n", time.Now())
	gc := c.(*contexts.AnalysisContext)

	requests := gc.AnalysisService.GetRequests()
	response := make([]interface{}, 0, len(requests))
	for _, request := range requests {
		response = append(response, request.ToResponseDTO())
	}
	return c.JSON(http.StatusOK, response)
}

// RunIndexedAnalysis evaluates the calls already indexed in elasticsearch
// for an uploaded pedigree within one chromosome region.
func RunIndexedAnalysis(c echo.Context) error {
	fmt.Printf("[%s] - RunIndexedAnalysis hit!\n", time.Now())
	gc := c.(*contexts.AnalysisContext)

	if gc.Es7Client == nil {
		return c.JSON(http.StatusServiceUnavailable, e.CreateSimpleInternalServerError("No elasticsearch connection configured"))
	}

	family, err := mvc.RetrieveFamilyFromForm(c, "family", gc.FamilyFileType)
	if err != nil {
		return mvc.RespondWithError(c, err)
	}

	batch, err := gc.VariantService.GetIndexedBatch(c.Request().Context(), gc.Es7Client, family,
		gc.Chromosome, gc.LowerBound, gc.UpperBound)
	if err != nil {
		return mvc.RespondWithError(c, err)
	}

	variants, err := gc.AnalysisService.EvaluateBatch(c.Request().Context(), batch, family,
		services.AnalysisOptions{SortOrder: gc.SortOrder, Threshold: gc.Threshold})
	if err != nil {
		return mvc.RespondWithError(c, err)
	}

	results := make([]dtos.AnnotatedVariantDto, 0, len(variants))
	for _, variant := range variants {
		results = append(results, mvc.ToAnnotatedVariantDto(variant))
	}

	return c.JSON(http.StatusOK, dtos.IndexedAnalysisResponseDto{
		Status:     "Success",
		Message:    fmt.Sprintf("%d variants of family %s evaluated", len(results), family.Id),
		Chromosome: gc.Chromosome,
		LowerBound: gc.LowerBound,
		UpperBound: gc.UpperBound,
		Count:      len(results),
		Results:    results,
	})
}
