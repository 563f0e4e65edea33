// Package openapi builds a form context from the request body schema of an
// OpenAPI operation: required flags, field types, defaults and enums.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formhelper/pkg/formctx"
)

// Options adds request data on top of the schema.
type Options struct {
	Values map[string]any
	// Errors is a server error payload; keys may use JSON pointer paths.
	Errors map[string][]string
}

// LoadFile reads an OpenAPI document from disk and builds the context for
// operationID.
func LoadFile(ctx context.Context, path, operationID string, opts Options) (*formctx.ArrayContext, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("openapi context: read %s: %w", path, err)
	}
	return NewContext(ctx, raw, operationID, opts)
}

// NewContext parses raw and builds the context for operationID. Operations
// without an operationId are addressed as "method:path", e.g. "post:/articles".
func NewContext(ctx context.Context, raw []byte, operationID string, opts Options) (*formctx.ArrayContext, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi context: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi context: load document: %w", err)
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return nil, fmt.Errorf("openapi context: operation %q not found", operationID)
	}

	schema := make(map[string]formctx.Field)
	if ref := requestSchema(operation.RequestBody); ref != nil {
		collectFields(ref, "", schema)
	}

	data := formctx.Data{Schema: schema, Values: opts.Values}
	fc := formctx.NewArrayContext(data)
	if len(opts.Errors) > 0 {
		fc.WithErrorPayload(opts.Errors)
	}
	return fc, nil
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec == nil || spec.Paths == nil {
		return nil
	}
	paths := spec.Paths.Map()
	keys := make([]string, 0, len(paths))
	for path := range paths {
		keys = append(keys, path)
	}
	sort.Strings(keys)

	for _, path := range keys {
		item := paths[path]
		if item == nil {
			continue
		}
		candidates := []struct {
			method string
			op     *openapi3.Operation
		}{
			{"get", item.Get}, {"put", item.Put}, {"post", item.Post},
			{"delete", item.Delete}, {"patch", item.Patch},
		}
		for _, candidate := range candidates {
			if candidate.op == nil {
				continue
			}
			id := candidate.op.OperationID
			if id == "" {
				id = candidate.method + ":" + path
			}
			if id == operationID {
				return candidate.op
			}
		}
	}
	return nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.SchemaRef {
	if body == nil || body.Value == nil {
		return nil
	}
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := body.Value.Content[mediaType]; ok && mt != nil {
			return mt.Schema
		}
	}
	return nil
}

func collectFields(ref *openapi3.SchemaRef, prefix string, dest map[string]formctx.Field) {
	if ref == nil || ref.Value == nil {
		return
	}
	src := ref.Value
	required := make(map[string]bool, len(src.Required))
	for _, name := range src.Required {
		required[name] = true
	}
	for name, property := range src.Properties {
		if property == nil || property.Value == nil {
			continue
		}
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		value := property.Value
		kind := firstSchemaType(value.Type)
		if kind == openapi3.TypeObject && len(value.Properties) > 0 {
			collectFields(property, path, dest)
			continue
		}
		dest[path] = formctx.Field{
			Type:     fieldType(kind, value.Format),
			Required: required[name],
			Default:  value.Default,
			Choices:  enumChoices(value),
		}
	}
}

func enumChoices(schema *openapi3.Schema) []string {
	enum := schema.Enum
	if len(enum) == 0 && schema.Items != nil && schema.Items.Value != nil {
		enum = schema.Items.Value.Enum
	}
	if len(enum) == 0 {
		return nil
	}
	out := make([]string, 0, len(enum))
	for _, value := range enum {
		out = append(out, fmt.Sprint(value))
	}
	return out
}

func fieldType(kind, format string) string {
	switch kind {
	case openapi3.TypeString:
		switch strings.ToLower(format) {
		case "date-time":
			return "datetime"
		case "date":
			return "date"
		case "time":
			return "time"
		case "binary", "byte":
			return "binary"
		case "email":
			return "email"
		case "password":
			return "password"
		}
		return "string"
	case openapi3.TypeInteger:
		return "integer"
	case openapi3.TypeNumber:
		return "float"
	case openapi3.TypeBoolean:
		return "boolean"
	case openapi3.TypeArray:
		return "array"
	}
	return kind
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
