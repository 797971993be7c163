package models

import (
	c "mipfam/models/constants"
	im "mipfam/models/constants/inheritance"
	z "mipfam/models/constants/zygosity"
)

// IntergenicGene is the gene id of variants outside every annotated gene.
const IntergenicGene = "-"

type Genotype struct {
	Zygosity c.Zygosity `json:"zygosity" mapstructure:"zygosity"`
	Phased   bool       `json:"phased" mapstructure:"phased"`
}

func (g Genotype) HasVariant() bool {
	return g.Zygosity == z.Heterozygous || g.Zygosity == z.HomozygousAlternate
}

func (g Genotype) HomoAlt() bool {
	return g.Zygosity == z.HomozygousAlternate
}

func (g Genotype) HomoRef() bool {
	return g.Zygosity == z.HomozygousReference
}

func (g Genotype) Heterozygote() bool {
	return g.Zygosity == z.Heterozygous
}

func (g Genotype) NoCall() bool {
	return !g.HasVariant() && !g.HomoRef()
}

// InheritanceModel records which models a variant is still consistent with.
type InheritanceModel struct {
	X           bool `json:"X"`
	XDenovo     bool `json:"X_dn"`
	AD          bool `json:"AD"`
	ADDenovo    bool `json:"AD_denovo"`
	ARHom       bool `json:"AR_hom"`
	ARHomDenovo bool `json:"AR_hom_denovo"`
	ARCompound  bool `json:"AR_compound"`
}

// NewInheritanceModel returns the starting state of an evaluation:
// everything possible except a compound pair, which has to be proven.
func NewInheritanceModel() InheritanceModel {
	return InheritanceModel{
		X:           true,
		XDenovo:     true,
		AD:          true,
		ADDenovo:    true,
		ARHom:       true,
		ARHomDenovo: true,
		ARCompound:  false,
	}
}

func (m InheritanceModel) Get(model c.InheritanceModel) bool {
	switch model {
	case im.X:
		return m.X
	case im.XDenovo:
		return m.XDenovo
	case im.AD:
		return m.AD
	case im.ADDenovo:
		return m.ADDenovo
	case im.ARHom:
		return m.ARHom
	case im.ARHomDenovo:
		return m.ARHomDenovo
	case im.ARCompound:
		return m.ARCompound
	default:
		return false
	}
}

// Followed lists the models still set, in output order.
func (m InheritanceModel) Followed() []c.InheritanceModel {
	followed := []c.InheritanceModel{}
	for _, model := range im.All {
		if m.Get(model) {
			followed = append(followed, model)
		}
	}
	return followed
}

type Variant struct {
	Id          string   `json:"id" mapstructure:"id"`
	Chromosome  string   `json:"chromosome" mapstructure:"chromosome"`
	Start       int      `json:"start" mapstructure:"start"`
	Stop        int      `json:"stop" mapstructure:"stop"`
	Reference   string   `json:"reference" mapstructure:"reference"`
	Alternative string   `json:"alternative" mapstructure:"alternative"`
	Genes       []string `json:"genes,omitempty" mapstructure:"genes"`

	// raw columns of the source line, kept for output
	Fields []string `json:"-" mapstructure:"-"`

	Genotypes map[string]Genotype `json:"genotypes" mapstructure:"genotypes"`

	InheritanceModel InheritanceModel `json:"inheritanceModel" mapstructure:"-"`
	Compounds        map[string]int   `json:"compounds" mapstructure:"-"`
	RankScore        int              `json:"rankScore" mapstructure:"-"`
}

// GetGenotype returns the call of individualId, a no-call when absent.
func (v Variant) GetGenotype(individualId string) Genotype {
	if v.Genotypes == nil {
		return Genotype{}
	}
	return v.Genotypes[individualId]
}

// GeneGroup holds the variants of one gene keyed by variant id.
type GeneGroup map[string]Variant

// VariantBatch maps gene ids to their variants.
type VariantBatch map[string]GeneGroup

func (b VariantBatch) VariantCount() int {
	count := 0
	for _, group := range b {
		count += len(group)
	}
	return count
}
