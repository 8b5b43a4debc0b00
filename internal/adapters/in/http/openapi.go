package http

import (
	"net/http"
	"regexp"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/labstack/echo/v4"
)

const rolesExtension = "x-roles"

var echoParam = regexp.MustCompile(`:([A-Za-z0-9_]+)`)

// OpenAPIValidator checks each request against the operation it matched in
// the OpenAPI document. Operations tagged with x-roles only admit those
// roles. Bodies and parameters that break the schema get a 400 before the
// handler runs. It must run after AuthJWT.
func OpenAPIValidator(swagger *openapi3.T, basePath string) echo.MiddlewareFunc {
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			template := echoParam.ReplaceAllString(strings.TrimPrefix(c.Path(), basePath), "{$1}")
			pathItem := swagger.Paths.Find(template)
			if pathItem == nil {
				return next(c)
			}
			operation := pathItem.GetOperation(c.Request().Method)
			if operation == nil {
				return next(c)
			}

			roles, err := operationRoles(operation)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, newErrorResponse(CodeInternal, "internal error"))
			}
			if len(roles) > 0 {
				return RequireRole(roles...)(validate(swagger, template, pathItem, operation, options, next))(c)
			}
			return validate(swagger, template, pathItem, operation, options, next)(c)
		}
	}
}

func validate(
	swagger *openapi3.T,
	template string,
	pathItem *openapi3.PathItem,
	operation *openapi3.Operation,
	options *openapi3filter.Options,
	next echo.HandlerFunc,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := make(map[string]string, len(c.ParamNames()))
		for i, name := range c.ParamNames() {
			params[name] = c.ParamValues()[i]
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    c.Request(),
			PathParams: params,
			Route: &routers.Route{
				Spec:      swagger,
				Path:      template,
				PathItem:  pathItem,
				Method:    c.Request().Method,
				Operation: operation,
			},
			Options: options,
		}
		if err := openapi3filter.ValidateRequest(c.Request().Context(), input); err != nil {
			return badRequest(c, err.Error())
		}
		return next(c)
	}
}

func operationRoles(operation *openapi3.Operation) ([]kernel.Role, error) {
	raw, ok := operation.Extensions[rolesExtension].([]any)
	if !ok {
		return nil, nil
	}

	roles := make([]kernel.Role, 0, len(raw))
	for _, value := range raw {
		name, _ := value.(string)
		role, err := kernel.ParseRole(name)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}
