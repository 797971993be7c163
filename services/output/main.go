package output

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"mipfam/models"
	c "mipfam/models/constants"
	"mipfam/models/constants/chromosome"
	im "mipfam/models/constants/inheritance"
	so "mipfam/models/constants/sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// columns appended to the variant file header
var AnnotationHeaders = []string{"Inheritance_model", "Compounds", "Rank_score"}

const emptyCell = "-"

// RankScore counts the followed models the family prefers. Without any
// preference every followed model counts.
func RankScore(variant models.Variant, preferred []c.InheritanceModel) int {
	followed := variant.InheritanceModel.Followed()
	if len(preferred) == 0 {
		return len(followed)
	}

	score := 0
	for _, model := range followed {
		for _, p := range preferred {
			if im.Matches(model, p) {
				score++
				break
			}
		}
	}
	return score
}

// Score sets the rank score of every variant in place.
func Score(variants []models.Variant, preferred []c.InheritanceModel) {
	for i := range variants {
		variants[i].RankScore = RankScore(variants[i], preferred)
	}
}

// Sort orders variants by rank score (highest first) or by position.
// Ties always fall back on position so output is stable across runs.
func Sort(variants []models.Variant, order c.SortOrder) {
	sort.SliceStable(variants, func(i, j int) bool {
		a, b := variants[i], variants[j]
		if order != so.Position && a.RankScore != b.RankScore {
			return a.RankScore > b.RankScore
		}
		return positionLess(a, b)
	})
}

func positionLess(a, b models.Variant) bool {
	if ka, kb := chromosome.SortKey(a.Chromosome), chromosome.SortKey(b.Chromosome); ka != kb {
		return ka < kb
	}
	if a.Chromosome != b.Chromosome {
		return a.Chromosome < b.Chromosome
	}
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	return a.Id < b.Id
}

// Threshold keeps the variants scoring at least minimum.
func Threshold(variants []models.Variant, minimum int) []models.Variant {
	kept := make([]models.Variant, 0, len(variants))
	for _, v := range variants {
		if v.RankScore >= minimum {
			kept = append(kept, v)
		}
	}
	return kept
}

func ModelsCell(variant models.Variant) string {
	followed := variant.InheritanceModel.Followed()
	if len(followed) == 0 {
		return emptyCell
	}
	names := make([]string, len(followed))
	for i, m := range followed {
		names[i] = string(m)
	}
	return strings.Join(names, ":")
}

// CompoundIds returns the partner ids of variant in sorted order.
func CompoundIds(variant models.Variant) []string {
	ids := make([]string, 0, len(variant.Compounds))
	for id := range variant.Compounds {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func CompoundsCell(variant models.Variant) string {
	ids := CompoundIds(variant)
	if len(ids) == 0 {
		return emptyCell
	}
	return strings.Join(ids, ";")
}

// Line renders variant as its original columns plus the annotation columns.
func Line(variant models.Variant) string {
	fields := variant.Fields
	if len(fields) == 0 {
		fields = []string{
			variant.Chromosome,
			strconv.Itoa(variant.Start),
			strconv.Itoa(variant.Stop),
			variant.Reference,
			variant.Alternative,
		}
	}

	cells := make([]string, 0, len(fields)+len(AnnotationHeaders))
	cells = append(cells, fields...)
	cells = append(cells, ModelsCell(variant), CompoundsCell(variant), strconv.Itoa(variant.RankScore))
	return strings.Join(cells, "\t")
}

// WriteVariants writes metadata, the extended header and one line per variant.
func WriteVariants(w io.Writer, metadata []string, header []string, variants []models.Variant) error {
	bw := bufio.NewWriter(w)

	for _, line := range metadata {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}

	fullHeader := append(append([]string{}, header...), AnnotationHeaders...)
	if _, err := fmt.Fprintln(bw, "#"+strings.Join(fullHeader, "\t")); err != nil {
		return err
	}

	for _, variant := range variants {
		if _, err := fmt.Fprintln(bw, Line(variant)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ModelCounts tallies how many variants follow each model.
func ModelCounts(variants []models.Variant) map[c.InheritanceModel]int {
	counts := make(map[c.InheritanceModel]int, len(im.All))
	for _, model := range im.All {
		counts[model] = 0
	}
	for _, v := range variants {
		for _, model := range v.InheritanceModel.Followed() {
			counts[model]++
		}
	}
	return counts
}

// SummaryTable renders the model counts as a terminal table.
func SummaryTable(variants []models.Variant) string {
	counts := ModelCounts(variants)

	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	w.AppendHeader(table.Row{"Model", "Variants"})
	for _, model := range im.All {
		w.AppendRow(table.Row{string(model), counts[model]})
	}
	w.AppendFooter(table.Row{"Total", len(variants)})
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	return w.Render()
}
