package constants

/*
	Defines a set of base level
	constants and enums to be used
	throughout mipfam and it's
	associated services.
*/
type Sex int
type Phenotype int
type Zygosity int

type GeneAnnotation string
type SortOrder string
type FamilyFileType string

type InheritanceModel string

type PermissionVerb string
type PermissionNoun string
type PermissionLevel string
