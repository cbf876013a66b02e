// Package api embeds the OpenAPI contract served and enforced by the HTTP adapter.
package api

import (
	_ "embed"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -config oapi-codegen.yaml openapi.yaml

//go:embed openapi.yaml
var spec []byte

// Spec returns the raw contract.
func Spec() []byte {
	return spec
}

// GetSwagger parses and validates the embedded contract.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, err
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, err
	}
	return doc, nil
}

type swaggerDoc []byte

func (d swaggerDoc) ReadDoc() string {
	return string(d)
}

var registerOnce sync.Once

// RegisterSwaggerDoc publishes the contract as JSON under swag's default name, where
// echo-swagger looks it up. Only the first call has an effect.
func RegisterSwaggerDoc(doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return err
	}
	registerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc(raw))
	})
	return nil
}
