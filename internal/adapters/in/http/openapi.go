package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

// NewRequestValidator rejects requests that do not match the contract before they
// reach a handler. Paths the contract does not describe pass through untouched.
// Authentication is left to the Authenticator.
func NewRequestValidator(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	openapi3.DefineStringFormatValidator("uuid", openapi3.NewRegexpFormatValidator(openapi3.FormatOfStringForUUIDOfRFC4122))

	// match paths regardless of the host the service is reached on
	swagger.Servers = nil

	router, err := gorillamux.NewRouter(swagger)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, describeValidationError(err))
			}

			return next(c)
		}
	}, nil
}

func describeValidationError(err error) string {
	var reqErr *openapi3filter.RequestError
	if !errors.As(err, &reqErr) {
		return err.Error()
	}

	reason := reqErr.Reason
	var schemaErr *openapi3.SchemaError
	if errors.As(reqErr.Err, &schemaErr) {
		reason = schemaErr.Reason
		if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
			reason = strings.Join(pointer, ".") + ": " + reason
		}
	} else if reason == "" && reqErr.Err != nil {
		reason = reqErr.Err.Error()
	}

	switch {
	case reqErr.Parameter != nil:
		return fmt.Sprintf("invalid parameter %s: %s", reqErr.Parameter.Name, reason)
	case reqErr.RequestBody != nil:
		return "invalid request body: " + reason
	default:
		return reason
	}
}
