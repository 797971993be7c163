package authorization

import (
	mauthz "mipfam/models/authorization"
)

// PermissionRequestDto is the body posted to the policy service's evaluate endpoint.
type PermissionRequestDto struct {
	RequestedResource   mauthz.Resource        `json:"requested_resource"`
	RequiredPermissions mauthz.PermissionsList `json:"required_permissions"`
}

type PermissionResponseDto struct {
	Result bool `json:"result"`
}
