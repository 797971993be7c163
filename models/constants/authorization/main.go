package authorization

import (
	"mipfam/models/constants"
)

const (
	QUERY   constants.PermissionVerb = "query"
	VIEW    constants.PermissionVerb = "view"
	ANALYZE constants.PermissionVerb = "analyze"
)

const (
	DATA constants.PermissionNoun = "data"
)
