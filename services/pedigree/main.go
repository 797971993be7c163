package pedigree

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"mipfam/models"
	c "mipfam/models/constants"
	fft "mipfam/models/constants/family-file-type"
	im "mipfam/models/constants/inheritance"
	p "mipfam/models/constants/phenotype"
	s "mipfam/models/constants/sex"
	"mipfam/utils"
)

var ErrMalformedPedigree = errors.New("malformed pedigree")

const inheritanceModelColumn = "Inheritance_model"

var defaultColumns = []string{"FamilyID", "SampleID", "Father", "Mother", "Sex", "Phenotype"}

// ParseFamilies reads every family of a pedigree, in order of first appearance.
func ParseFamilies(r io.Reader, fileType c.FamilyFileType) ([]*models.Family, error) {
	if fileType != fft.Ped && fileType != fft.Cmms {
		return nil, fmt.Errorf("%w: unsupported family file type %q", ErrMalformedPedigree, fileType)
	}

	var (
		familyIds  []string
		members    = map[string][]*models.Individual{}
		preferred  = map[string][]c.InheritanceModel{}
		header     []string
		lineNumber int
	)

	scanner := utils.NewLineScanner(r)
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			// only a cmms header names extra columns; anything else is a comment
			if fileType == fft.Cmms && header == nil {
				columns := splitColumns(strings.TrimPrefix(line, "#"))
				if len(columns) >= len(defaultColumns) {
					header = columns
				}
			}
			continue
		}

		columns := splitColumns(line)
		if len(columns) < len(defaultColumns) {
			return nil, fmt.Errorf("line %d: %w: expected at least %d columns, found %d",
				lineNumber, ErrMalformedPedigree, len(defaultColumns), len(columns))
		}

		individual := &models.Individual{
			FamilyId:  columns[0],
			Id:        columns[1],
			FatherId:  columns[2],
			MotherId:  columns[3],
			Sex:       s.CastToSex(columns[4]),
			Phenotype: p.CastToPhenotype(columns[5]),
		}

		if _, seen := members[individual.FamilyId]; !seen {
			familyIds = append(familyIds, individual.FamilyId)
		}
		for _, other := range members[individual.FamilyId] {
			if other.Id == individual.Id {
				return nil, fmt.Errorf("line %d: %w: individual %s listed twice in family %s",
					lineNumber, ErrMalformedPedigree, individual.Id, individual.FamilyId)
			}
		}
		members[individual.FamilyId] = append(members[individual.FamilyId], individual)

		if fileType == fft.Cmms {
			listed := preferredModels(header, columns)
			preferred[individual.FamilyId] = mergeModels(preferred[individual.FamilyId], listed)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	families := make([]*models.Family, 0, len(familyIds))
	for _, familyId := range familyIds {
		families = append(families, models.NewFamily(familyId, members[familyId], preferred[familyId]))
	}
	return families, nil
}

// ParseFamily reads a pedigree expected to hold exactly one family.
func ParseFamily(r io.Reader, fileType c.FamilyFileType) (*models.Family, error) {
	families, err := ParseFamilies(r, fileType)
	if err != nil {
		return nil, err
	}
	switch len(families) {
	case 0:
		return nil, fmt.Errorf("%w: no individuals found", ErrMalformedPedigree)
	case 1:
		return families[0], nil
	default:
		return nil, fmt.Errorf("%w: %d families found, only one can be analysed at a time",
			ErrMalformedPedigree, len(families))
	}
}

func splitColumns(line string) []string {
	if strings.Contains(line, "\t") {
		columns := strings.Split(line, "\t")
		for i := range columns {
			columns[i] = strings.TrimSpace(columns[i])
		}
		return columns
	}
	return strings.Fields(line)
}

func preferredModels(header []string, columns []string) []c.InheritanceModel {
	column := -1
	for i, name := range header {
		if strings.EqualFold(name, inheritanceModelColumn) {
			column = i
			break
		}
	}
	if column < 0 || column >= len(columns) {
		return nil
	}

	var result []c.InheritanceModel
	for _, entry := range utils.SplitAny(columns[column], ";,") {
		// "NA" and unknown names carry no preference
		if model, ok := im.CastToInheritanceModel(entry); ok {
			result = append(result, model)
		}
	}
	return result
}

func mergeModels(existing []c.InheritanceModel, additional []c.InheritanceModel) []c.InheritanceModel {
	for _, model := range additional {
		found := false
		for _, e := range existing {
			if e == model {
				found = true
				break
			}
		}
		if !found {
			existing = append(existing, model)
		}
	}
	return existing
}
