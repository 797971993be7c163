package indexes

import (
	c "mipfam/models/constants"
)

// The indexer writes haploid calls with two extra zygosity codes after the diploid ones.
const (
	ZygosityHaploidReference c.Zygosity = 4
	ZygosityHaploidAlternate c.Zygosity = 5
)

// Variant is one (variant call, sample) document of a `variants-*` index.
type Variant struct {
	Chrom      string   `json:"chrom" mapstructure:"chrom"`
	Pos        int      `json:"pos" mapstructure:"pos"`
	Id         string   `json:"id" mapstructure:"id"`
	Ref        []string `json:"ref" mapstructure:"ref"`
	Alt        []string `json:"alt" mapstructure:"alt"`
	Format     []string `json:"format" mapstructure:"format"`
	Qual       int      `json:"qual" mapstructure:"qual"`
	Filter     string   `json:"filter" mapstructure:"filter"`
	Info       []Info   `json:"info" mapstructure:"info"`
	Sample     Sample   `json:"sample" mapstructure:"sample"`
	FileId     string   `json:"fileId" mapstructure:"fileId"`
	Dataset    string   `json:"dataset" mapstructure:"dataset"`
	AssemblyId string   `json:"assemblyId" mapstructure:"assemblyId"`
}

type Info struct {
	Id    string `json:"id" mapstructure:"id"`
	Value string `json:"value" mapstructure:"value"`
}

type Sample struct {
	Id        string    `json:"id" mapstructure:"id"`
	Variation Variation `json:"variation" mapstructure:"variation"`
}

type Variation struct {
	Genotype             Genotype   `json:"genotype" mapstructure:"genotype"`
	GenotypeProbability  []float64  `json:"genotypeProbability" mapstructure:"genotypeProbability"`   // -1 = no call (equivalent to a '.')
	PhredScaleLikelyhood []float64  `json:"phredScaleLikelyhood" mapstructure:"phredScaleLikelyhood"` // -1 = no call (equivalent to a '.')
	Alleles              AllelePair `json:"alleles" mapstructure:"alleles"`
}

type AllelePair struct {
	Left  string `json:"left" mapstructure:"left"`
	Right string `json:"right" mapstructure:"right"`
}

type Genotype struct {
	Phased   bool       `json:"phased" mapstructure:"phased"`
	Zygosity c.Zygosity `json:"zygosity" mapstructure:"zygosity"`
}

type Gene struct {
	Name       string `json:"name" mapstructure:"name"`
	Chrom      string `json:"chrom" mapstructure:"chrom"`
	Start      int    `json:"start" mapstructure:"start"`
	End        int    `json:"end" mapstructure:"end"`
	AssemblyId string `json:"assemblyId" mapstructure:"assemblyId"`
}

// Contains reports whether pos lies within the gene (inclusive).
func (g Gene) Contains(pos int) bool {
	return pos >= g.Start && pos <= g.End
}
