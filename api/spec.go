package api

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed api.yaml
var rawSpec []byte

// RawSpec returns the OpenAPI document as it is served to clients.
func RawSpec() []byte {
	return rawSpec
}

// GetSwagger parses and validates the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	swagger, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading spec: %w", err)
	}

	err = swagger.Validate(context.Background(), openapi3.AllowExtraSiblingFields("x-oapi-codegen-extra-tags"))
	if err != nil {
		return nil, fmt.Errorf("invalid spec: %w", err)
	}

	return swagger, nil
}
