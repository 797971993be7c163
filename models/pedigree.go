package models

import (
	c "mipfam/models/constants"
	p "mipfam/models/constants/phenotype"
)

// NoParent is the parent id of a founder.
const NoParent = "0"

type Individual struct {
	Id        string      `json:"id" mapstructure:"id"`
	FamilyId  string      `json:"familyId" mapstructure:"familyId"`
	Sex       c.Sex       `json:"sex" mapstructure:"sex"`
	Phenotype c.Phenotype `json:"phenotype" mapstructure:"phenotype"`
	MotherId  string      `json:"motherId" mapstructure:"motherId"`
	FatherId  string      `json:"fatherId" mapstructure:"fatherId"`
}

func (i *Individual) Affected() bool {
	return i.Phenotype == p.Affected
}

func (i *Individual) Unaffected() bool {
	return i.Phenotype == p.Unaffected
}

func (i *Individual) HasMother() bool {
	return i.MotherId != "" && i.MotherId != NoParent
}

func (i *Individual) HasFather() bool {
	return i.FatherId != "" && i.FatherId != NoParent
}

// Family is shared read-only by every gene group of an analysis.
type Family struct {
	Id              string               `json:"id"`
	Individuals     []*Individual        `json:"individuals"`
	PreferredModels []c.InheritanceModel `json:"preferredModels,omitempty"`

	individualsById map[string]*Individual
}

func NewFamily(id string, individuals []*Individual, preferredModels []c.InheritanceModel) *Family {
	f := &Family{
		Id:              id,
		Individuals:     individuals,
		PreferredModels: preferredModels,
	}
	f.index()
	return f
}

func (f *Family) index() {
	f.individualsById = make(map[string]*Individual, len(f.Individuals))
	for _, ind := range f.Individuals {
		f.individualsById[ind.Id] = ind
	}
}

// GetIndividual returns nil when id is not a member of the family.
func (f *Family) GetIndividual(id string) *Individual {
	if f.individualsById != nil {
		return f.individualsById[id]
	}
	// not built through NewFamily; scan rather than write to a shared family
	for _, ind := range f.Individuals {
		if ind.Id == id {
			return ind
		}
	}
	return nil
}

// GetPhenotype returns the phenotype of id, unknown when id is not a member.
func (f *Family) GetPhenotype(id string) c.Phenotype {
	if ind := f.GetIndividual(id); ind != nil {
		return ind.Phenotype
	}
	return p.Unknown
}

func (f *Family) HasIndividual(id string) bool {
	return f.GetIndividual(id) != nil
}

func (f *Family) IndividualIds() []string {
	ids := make([]string, 0, len(f.Individuals))
	for _, ind := range f.Individuals {
		ids = append(ids, ind.Id)
	}
	return ids
}

func (f *Family) AffectedCount() int {
	count := 0
	for _, ind := range f.Individuals {
		if ind.Affected() {
			count++
		}
	}
	return count
}
