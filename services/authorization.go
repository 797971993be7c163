package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"mipfam/models"
	authz "mipfam/models/authorization"
	dtos "mipfam/models/dtos/authorization"
)

var publicAuthzErrorMessage string = "Something went wrong interfacing with the authorization service! Please contact the system administrators.."

var ErrAccessDenied = errors.New("access denied")

type (
	AuthzService struct {
		isEnabled        bool
		authorizationUrl string
		client           *http.Client
	}
)

func NewAuthzService(cfg *models.Config) *AuthzService {
	return &AuthzService{
		isEnabled:        cfg.AuthX.IsAuthorizationEnabled,
		authorizationUrl: strings.TrimSuffix(cfg.AuthX.AuthorizationUrl, "/"),
		client:           &http.Client{},
	}
}

func (a *AuthzService) IsEnabled() bool {
	return a.isEnabled
}

func (a *AuthzService) GetAuthorizationUrl() string {
	return a.authorizationUrl
}

// EnsureAccessPermittedForUser asks the policy service whether the bearer
// of authnTokenString holds permissions on resource.
func (a *AuthzService) EnsureAccessPermittedForUser(authnTokenString string,
	resource authz.Resource, permissions []authz.Permission) error {

	//	- validate authn token against external authorization service
	permissionRequestJson := dtos.PermissionRequestDto{
		RequestedResource: resource,
		RequiredPermissions: authz.PermissionsList{
			List: permissions,
		},
	}

	permJsonData, permissionJsonMarshallErr := json.Marshal(&permissionRequestJson)
	if permissionJsonMarshallErr != nil {
		fmt.Printf("%s\n", permissionJsonMarshallErr.Error())
		return errors.New(publicAuthzErrorMessage)
	}

	// Create a Bearer string by appending string access token
	var bearer = "Bearer " + authnTokenString

	// Create a new request using http
	evaluateUrl := fmt.Sprintf("%s/%s/%s", a.GetAuthorizationUrl(), "policy", "evaluate")
	permReq, permReqErr := http.NewRequest("POST", evaluateUrl, bytes.NewBuffer(permJsonData))
	if permReqErr != nil {
		fmt.Printf("%s\n", permReqErr.Error())
		return errors.New(publicAuthzErrorMessage)
	}
	// add authorization header to the req
	permReq.Header.Add("Authorization", bearer)
	permReq.Header.Add("Content-Type", "application/json")

	permRes, permResErr := a.client.Do(permReq)
	if permResErr != nil {
		fmt.Printf("%s\n", permResErr.Error())
		return errors.New(publicAuthzErrorMessage)
	}

	defer permRes.Body.Close()

	// check http status code
	if permRes.StatusCode != http.StatusOK {
		return ErrAccessDenied
	}

	// fetch response body if permitted
	var permJson map[string]interface{}
	if err := json.NewDecoder(permRes.Body).Decode(&permJson); err != nil {
		fmt.Printf("%s\n", err.Error())
		return errors.New(publicAuthzErrorMessage)
	}

	accessPermitted, isMapContainsKey := permJson["result"]
	if !isMapContainsKey {
		fmt.Printf("%s\n", "Missing 'result' key from authorization service response!")
		return errors.New(publicAuthzErrorMessage)
	}
	if permitted, isBool := accessPermitted.(bool); !isBool || !permitted {
		return ErrAccessDenied
	}

	// Access permitted! Return no error
	return nil
}

func (a *AuthzService) FetchAuthorizationHeader(headers http.Header) (string, error) {
	// return error if the Authorization header is missing
	if headers.Get("Authorization") == "" {
		return "", errors.New("missing 'Authorization' HTTP header")
	}

	authnToken := headers.Get("Authorization")
	// remove "Bearer " if need be, assuming the header is properly formatted
	if strings.HasPrefix(authnToken, "Bearer ") {
		authnToken = strings.TrimPrefix(authnToken, "Bearer ")
	}

	return authnToken, nil
}
