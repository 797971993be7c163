package authorization

import (
	"encoding/json"

	c "mipfam/models/constants"
)

type Resource interface{}
type ResourceEverything struct {
	Everything bool `json:"everything"`
}

type Permission struct {
	Verb  c.PermissionVerb
	Noun  c.PermissionNoun
	Level c.PermissionLevel
}

type PermissionsList struct {
	List []Permission
}

func (pl PermissionsList) MarshalJSON() ([]byte, error) {
	permissions := make([]string, 0, len(pl.List))
	for _, p := range pl.List {
		permissions = append(permissions, string(p.Verb)+":"+string(p.Noun))
	}
	return json.Marshal(permissions)
}
