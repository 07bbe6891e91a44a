// Package openapi embeds the HTTP API description, checks it at startup and
// publishes it to the Swagger UI.
package openapi

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.json
var rawSpec []byte

var registerOnce sync.Once

// Document is the parsed and validated API description.
type Document struct {
	spec *openapi3.T
	raw  []byte
}

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*Document, error) {
	loader := openapi3.NewLoader()
	spec, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err := spec.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}

	return &Document{spec: spec, raw: rawSpec}, nil
}

// JSON returns the document as embedded.
func (d *Document) JSON() []byte {
	return d.raw
}

func (d *Document) Title() string {
	return d.spec.Info.Title
}

func (d *Document) Version() string {
	return d.spec.Info.Version
}

// OperationIDs lists the operation ids keyed by "METHOD path".
func (d *Document) OperationIDs() map[string]string {
	ids := make(map[string]string)
	for path, item := range d.spec.Paths.Map() {
		for method, op := range item.Operations() {
			ids[method+" "+path] = op.OperationID
		}
	}
	return ids
}

// RegisterSwagger makes the document available to echo-swagger under the
// default instance name. Repeated calls are no-ops.
func (d *Document) RegisterSwagger() {
	registerOnce.Do(func() {
		swag.Register(swag.Name, &swag.Spec{
			Version:          d.Version(),
			Title:            d.Title(),
			InfoInstanceName: swag.Name,
			SwaggerTemplate:  string(d.raw),
			LeftDelim:        "{{",
			RightDelim:       "}}",
		})
	})
}
