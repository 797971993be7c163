package mvc

import (
	"errors"
	"fmt"
	"net/http"

	"mipfam/models"
	c "mipfam/models/constants"
	"mipfam/models/dtos"
	e "mipfam/models/dtos/errors"
	"mipfam/services/inheritance"
	"mipfam/services/output"
	"mipfam/services/pedigree"
	variantsService "mipfam/services/variants"

	"github.com/labstack/echo"
)

// RetrieveFamilyFromForm parses the pedigree uploaded under field.
func RetrieveFamilyFromForm(ctx echo.Context, field string, fileType c.FamilyFileType) (*models.Family, error) {
	fileHeader, err := ctx.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("%w: missing '%s' file", pedigree.ErrMalformedPedigree, field)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return pedigree.ParseFamily(file, fileType)
}

// IsClientError reports whether err was caused by the request's content.
func IsClientError(err error) bool {
	return errors.Is(err, inheritance.ErrInvalidInput) ||
		errors.Is(err, pedigree.ErrMalformedPedigree) ||
		errors.Is(err, variantsService.ErrMalformedVariantFile)
}

// RespondWithError maps err onto a 400 or a 500 error response.
func RespondWithError(ctx echo.Context, err error) error {
	if IsClientError(err) {
		return ctx.JSON(http.StatusBadRequest, e.CreateSimpleBadRequest(err.Error()))
	}
	fmt.Printf("Internal error: %s\n", err)
	return ctx.JSON(http.StatusInternalServerError, e.CreateSimpleInternalServerError("Something went wrong. Please contact the administrator!"))
}

func ToAnnotatedVariantDto(variant models.Variant) dtos.AnnotatedVariantDto {
	return dtos.AnnotatedVariantDto{
		Id:               variant.Id,
		Chromosome:       variant.Chromosome,
		Start:            variant.Start,
		InheritanceModel: variant.InheritanceModel,
		Followed:         variant.InheritanceModel.Followed(),
		Compounds:        output.CompoundIds(variant),
		RankScore:        variant.RankScore,
	}
}
