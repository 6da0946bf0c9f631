package http

import (
	"context"
	_ "embed"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.yaml
var openapiSpec []byte

// LoadOpenAPISpec parses and validates the embedded API description. Run at
// startup so a malformed contract fails the boot, not a request.
func LoadOpenAPISpec(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return nil, err
	}

	if err = doc.Validate(ctx); err != nil {
		return nil, err
	}

	return doc, nil
}

// ServeOpenAPISpec handles GET /openapi.yaml.
func ServeOpenAPISpec(c echo.Context) error {
	return c.Blob(http.StatusOK, "application/yaml", openapiSpec)
}
