package variantsService

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"mipfam/models"
	c "mipfam/models/constants"
	"mipfam/models/constants/chromosome"
	z "mipfam/models/constants/zygosity"
	"mipfam/models/indexes"
	"mipfam/services/inheritance"
	"mipfam/utils"
)

// IndexedZygosity maps the zygosity of an indexed call document onto the four call states.
// Haploid calls read as the matching homozygous state. ok is false for codes
// outside both ranges.
func IndexedZygosity(zyg c.Zygosity) (c.Zygosity, bool) {
	switch zyg {
	case indexes.ZygosityHaploidReference:
		return z.HomozygousReference, true
	case indexes.ZygosityHaploidAlternate:
		return z.HomozygousAlternate, true
	}
	if z.IsValid(int(zyg)) {
		return zyg, true
	}
	return z.Unknown, false
}

// BatchFromIndexedDocuments gathers per-sample call documents into variants
// carrying the calls of the family's members, filed under the genes that
// contain them.
func BatchFromIndexedDocuments(docs []indexes.Variant, genes []indexes.Gene, family *models.Family) (models.VariantBatch, error) {
	variants := map[string]*models.Variant{}

	for _, doc := range docs {
		if family != nil && !family.HasIndividual(doc.Sample.Id) {
			continue
		}

		chrom := chromosome.Normalize(doc.Chrom)
		reference := strings.Join(doc.Ref, ",")
		alternative := strings.Join(doc.Alt, ",")
		id := strings.Join([]string{chrom, strconv.Itoa(doc.Pos), reference, alternative}, "_")

		variant, exists := variants[id]
		if !exists {
			variant = &models.Variant{
				Id:          id,
				Chromosome:  chrom,
				Start:       doc.Pos,
				Stop:        doc.Pos + len(reference) - 1,
				Reference:   reference,
				Alternative: alternative,
				Genes:       genesContaining(genes, chrom, doc.Pos),
				Genotypes:   map[string]models.Genotype{},
			}
			if variant.Stop < variant.Start {
				variant.Stop = variant.Start
			}
			variants[id] = variant
		}

		zyg, ok := IndexedZygosity(doc.Sample.Variation.Genotype.Zygosity)
		if !ok {
			return nil, fmt.Errorf("%w: variant %s has an unrecognised zygosity %d for %s",
				inheritance.ErrInvalidInput, id, doc.Sample.Variation.Genotype.Zygosity, doc.Sample.Id)
		}
		variant.Genotypes[doc.Sample.Id] = models.Genotype{
			Zygosity: zyg,
			Phased:   doc.Sample.Variation.Genotype.Phased,
		}
	}

	ids := make([]string, 0, len(variants))
	for id := range variants {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := variants[ids[i]], variants[ids[j]]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.Id < b.Id
	})

	batch := models.VariantBatch{}
	for _, id := range ids {
		AddToBatch(batch, *variants[id])
	}
	return batch, nil
}

func genesContaining(genes []indexes.Gene, chrom string, pos int) []string {
	names := []string{}
	for _, gene := range genes {
		if chromosome.Normalize(gene.Chrom) != chrom || !gene.Contains(pos) {
			continue
		}
		if gene.Name == "" || utils.StringInSlice(gene.Name, names) {
			continue
		}
		names = append(names, gene.Name)
	}
	return names
}
