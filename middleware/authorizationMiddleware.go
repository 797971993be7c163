package middleware

import (
	"net/http"

	"mipfam/contexts"
	authzModels "mipfam/models/authorization"
	"mipfam/models/constants"
	authzConstants "mipfam/models/constants/authorization"
	e "mipfam/models/dtos/errors"
	"mipfam/services"

	"github.com/labstack/echo"
)

func QueryDataEverythingPermissionAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.AnalysisContext)
		addResourceEverything(gc)
		addPermissions(gc, authzConstants.QUERY, authzConstants.DATA)
		return next(gc)
	}
}
func AnalyzeDataEverythingPermissionAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.AnalysisContext)
		addResourceEverything(gc)
		addPermissions(gc, authzConstants.ANALYZE, authzConstants.DATA)
		return next(gc)
	}
}

// -- helper functions
func addResourceEverything(gc *contexts.AnalysisContext) {
	gc.RequestedResource = authzModels.ResourceEverything{
		Everything: true,
	}
}
func addPermissions(gc *contexts.AnalysisContext, verb constants.PermissionVerb, noun constants.PermissionNoun) {
	gc.RequiredPermissions = []authzModels.Permission{{
		Verb: verb,
		Noun: noun,
	}}
}

// MandateAuthorizationTokens checks the bearer token of every request
// against the permissions set by the permission attributes before it.
func MandateAuthorizationTokens(az *services.AuthzService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !az.IsEnabled() {
				return next(c)
			}
			gc := c.(*contexts.AnalysisContext)

			// check request headers
			authnToken, missingHeaderErr := az.FetchAuthorizationHeader(c.Request().Header)
			if missingHeaderErr != nil {
				return echo.NewHTTPError(http.StatusForbidden, missingHeaderErr.Error())
			}

			// routes without a permission attribute only need query access
			if gc.RequestedResource == nil {
				addResourceEverything(gc)
			}
			if len(gc.RequiredPermissions) == 0 {
				addPermissions(gc, authzConstants.QUERY, authzConstants.DATA)
			}

			// check user permission
			accessError := az.EnsureAccessPermittedForUser(authnToken, gc.RequestedResource, gc.RequiredPermissions)
			if accessError != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, e.CreateSimpleUnauthorized(accessError.Error()))
			}

			// access granted!
			return next(gc)
		}
	}
}
