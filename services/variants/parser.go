package variantsService

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"mipfam/models"
	c "mipfam/models/constants"
	"mipfam/models/constants/chromosome"
	ga "mipfam/models/constants/gene-annotation"
	z "mipfam/models/constants/zygosity"
	"mipfam/services/inheritance"
	"mipfam/utils"

	"github.com/mitchellh/mapstructure"
)

var ErrMalformedVariantFile = errors.New("malformed variant file")

// required header columns of a variant file
var requiredHeaders = []string{"Chromosome", "Variant_start", "Variant_stop", "Reference", "Alternative"}

type variantColumns struct {
	Chromosome   string `mapstructure:"Chromosome"`
	VariantStart int    `mapstructure:"Variant_start"`
	VariantStop  int    `mapstructure:"Variant_stop"`
	Reference    string `mapstructure:"Reference"`
	Alternative  string `mapstructure:"Alternative"`
	Genes        string `mapstructure:"genes"`
}

// Reader streams variants out of a tab-delimited variant file.
type Reader struct {
	// "##" lines seen before the header
	Metadata []string
	// header columns without the leading '#'
	Header []string

	scanner       *bufio.Scanner
	geneColumn    string
	genotypeIndex map[string]int
	lineNumber    int
}

func NewReader(r io.Reader, family *models.Family, annotation c.GeneAnnotation) *Reader {
	return &Reader{
		scanner:       utils.NewLineScanner(r),
		geneColumn:    ga.HeaderColumn(annotation),
		genotypeIndex: individualSet(family),
	}
}

func individualSet(family *models.Family) map[string]int {
	set := map[string]int{}
	if family == nil {
		return set
	}
	for _, id := range family.IndividualIds() {
		set[id] = -1
	}
	return set
}

// ReadHeader consumes metadata lines up to and including the header line.
// It is called by Next when needed.
func (r *Reader) ReadHeader() error {
	if r.Header != nil {
		return nil
	}

	for r.scanner.Scan() {
		r.lineNumber++
		line := strings.TrimRight(r.scanner.Text(), "\r")

		switch {
		case strings.HasPrefix(line, "##"):
			r.Metadata = append(r.Metadata, line)
		case strings.HasPrefix(line, "#"):
			return r.setHeader(strings.Split(line[1:], "\t"))
		case strings.TrimSpace(line) == "":
			continue
		default:
			return fmt.Errorf("line %d: %w: variant line found before the header", r.lineNumber, ErrMalformedVariantFile)
		}
	}
	if err := r.scanner.Err(); err != nil {
		return err
	}
	return fmt.Errorf("%w: no header line", ErrMalformedVariantFile)
}

func (r *Reader) setHeader(header []string) error {
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	present := map[string]bool{}
	for i, column := range header {
		present[column] = true
		if _, isIndividual := r.genotypeIndex[column]; isIndividual {
			r.genotypeIndex[column] = i
		}
	}
	for _, required := range append(requiredHeaders, r.geneColumn) {
		if !present[required] {
			return fmt.Errorf("line %d: %w: missing column %s", r.lineNumber, ErrMalformedVariantFile, required)
		}
	}

	r.Header = header
	return nil
}

// Next returns the following variant, or io.EOF once the file is exhausted.
func (r *Reader) Next() (*models.Variant, error) {
	if err := r.ReadHeader(); err != nil {
		return nil, err
	}

	for r.scanner.Scan() {
		r.lineNumber++
		line := strings.TrimRight(r.scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		variant, err := r.parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", r.lineNumber, err)
		}
		return variant, nil
	}
	if err := r.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

func (r *Reader) parseLine(line string) (*models.Variant, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != len(r.Header) {
		return nil, fmt.Errorf("%w: expected %d columns, found %d", ErrMalformedVariantFile, len(r.Header), len(fields))
	}

	row := make(map[string]interface{}, len(r.Header))
	for i, column := range r.Header {
		row[column] = strings.TrimSpace(fields[i])
	}
	row["genes"] = row[r.geneColumn]

	var columns variantColumns
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &columns,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(row); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedVariantFile, err)
	}

	chrom := chromosome.Normalize(columns.Chromosome)
	variant := &models.Variant{
		Id:          strings.Join([]string{chrom, fmt.Sprint(columns.VariantStart), columns.Reference, columns.Alternative}, "_"),
		Chromosome:  chrom,
		Start:       columns.VariantStart,
		Stop:        columns.VariantStop,
		Reference:   columns.Reference,
		Alternative: columns.Alternative,
		Genes:       ParseGenes(columns.Genes),
		Fields:      fields,
		Genotypes:   map[string]models.Genotype{},
	}

	for individualId, column := range r.genotypeIndex {
		if column < 0 {
			// not sequenced in this file; reads as a no-call
			continue
		}
		gt := strings.SplitN(strings.TrimSpace(fields[column]), ":", 2)[0]
		zyg, phased, ok := z.FromGenotypeString(gt)
		if !ok {
			return nil, fmt.Errorf("%w: %w: unrecognised genotype %q for %s",
				ErrMalformedVariantFile, inheritance.ErrInvalidInput, fields[column], individualId)
		}
		variant.Genotypes[individualId] = models.Genotype{Zygosity: zyg, Phased: phased}
	}

	return variant, nil
}

// ParseGenes splits a gene cell; "-" or an empty cell means intergenic.
func ParseGenes(cell string) []string {
	genes := []string{}
	for _, gene := range utils.SplitAny(cell, ";,") {
		if gene == models.IntergenicGene {
			continue
		}
		if !utils.StringInSlice(gene, genes) {
			genes = append(genes, gene)
		}
	}
	return genes
}
