package common

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"

	"mipfam/models"
	c "mipfam/models/constants"
	p "mipfam/models/constants/phenotype"
	s "mipfam/models/constants/sex"
	z "mipfam/models/constants/zygosity"

	yaml "gopkg.in/yaml.v2"
)

const (
	ProbandId = "proband"
	FatherId  = "father"
	MotherId  = "mother"
)

func InitConfig() *models.Config {
	var cfg models.Config

	// get this file's path
	_, filename, _, _ := runtime.Caller(0)
	folderpath := path.Dir(filename)

	// retrieve common's test.config
	f, err := os.Open(fmt.Sprintf("%s/test.config.yml", folderpath))
	if err != nil {
		processError(err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&cfg)
	if err != nil {
		processError(err)
	}

	return &cfg
}

func processError(err error) {
	fmt.Println(err)
	os.Exit(2)
}

func NewIndividual(id string, fatherId string, motherId string, sex c.Sex, phenotype c.Phenotype) *models.Individual {
	return &models.Individual{
		Id:        id,
		FamilyId:  "1",
		Sex:       sex,
		Phenotype: phenotype,
		FatherId:  fatherId,
		MotherId:  motherId,
	}
}

// Trio builds a family of two unaffected founders and one child.
func Trio(probandSex c.Sex, probandPhenotype c.Phenotype) *models.Family {
	return models.NewFamily("1", []*models.Individual{
		NewIndividual(ProbandId, FatherId, MotherId, probandSex, probandPhenotype),
		NewIndividual(FatherId, models.NoParent, models.NoParent, s.Male, p.Unaffected),
		NewIndividual(MotherId, models.NoParent, models.NoParent, s.Female, p.Unaffected),
	}, nil)
}

// Genotype parses a VCF-style GT such as "0/1"; an empty string is a no-call.
func Genotype(gt string) models.Genotype {
	zyg, phased, _ := z.FromGenotypeString(gt)
	return models.Genotype{Zygosity: zyg, Phased: phased}
}

// NewVariant builds a variant with calls given as individual id -> GT.
func NewVariant(chrom string, start int, calls map[string]string) models.Variant {
	genotypes := make(map[string]models.Genotype, len(calls))
	for id, gt := range calls {
		genotypes[id] = Genotype(gt)
	}
	return models.Variant{
		Id:          VariantId(chrom, start),
		Chromosome:  chrom,
		Start:       start,
		Stop:        start,
		Reference:   "A",
		Alternative: "G",
		Genotypes:   genotypes,
	}
}

func VariantId(chrom string, start int) string {
	return strings.Join([]string{chrom, strconv.Itoa(start), "A", "G"}, "_")
}

// GeneGroupOf keys variants by id.
func GeneGroupOf(variants ...models.Variant) models.GeneGroup {
	group := make(models.GeneGroup, len(variants))
	for _, v := range variants {
		group[v.Id] = v
	}
	return group
}
