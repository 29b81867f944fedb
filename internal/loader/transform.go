package loader

import (
	"strings"

	"github.com/kolah/frontgen/internal/model"
	"github.com/pb33f/libopenapi/datamodel/high/base"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
	"github.com/pb33f/libopenapi/orderedmap"
	"go.yaml.in/yaml/v4"
)

const componentSchemaPrefix = "#/components/schemas/"

type transformer struct {
	componentSchemas map[*base.Schema]string
}

func Transform(result *Result) (*model.Spec, error) {
	doc := result.Document.Model

	t := &transformer{
		componentSchemas: make(map[*base.Schema]string),
	}

	if doc.Components != nil && doc.Components.Schemas != nil {
		for name, schemaProxy := range doc.Components.Schemas.FromOldest() {
			t.componentSchemas[schemaProxy.Schema()] = componentSchemaPrefix + name
		}
	}

	spec := &model.Spec{
		Info: transformInfo(doc.Info),
	}

	if doc.Components != nil && doc.Components.Schemas != nil {
		for name, schemaProxy := range doc.Components.Schemas.FromOldest() {
			schema := t.transformSchema(name, schemaProxy.Schema())
			if schema == nil {
				schema = &model.Schema{Name: name}
			}
			spec.Schemas = append(spec.Schemas, *schema)
		}
	}

	if doc.Paths != nil && doc.Paths.PathItems != nil {
		for pathStr, pathItem := range doc.Paths.PathItems.FromOldest() {
			path := t.transformPath(pathStr, pathItem)
			spec.Paths = append(spec.Paths, path)
			spec.Operations = append(spec.Operations, path.Operations...)
		}
	}

	return spec, nil
}

func transformInfo(info *base.Info) model.Info {
	if info == nil {
		return model.Info{}
	}
	return model.Info{
		Title:   info.Title,
		Version: info.Version,
	}
}

func (t *transformer) transformPath(pathStr string, pathItem *v3.PathItem) model.Path {
	path := model.Path{Path: pathStr}

	for _, p := range pathItem.Parameters {
		path.Parameters = append(path.Parameters, t.transformParameter(p))
	}

	for _, m := range operationsInOrder(pathItem) {
		operation := t.transformOperation(model.Method(strings.ToUpper(m.method)), pathStr, m.op)
		path.Operations = append(path.Operations, operation)
	}

	return path
}

type methodOperation struct {
	method string
	op     *v3.Operation
}

// operationsInOrder lists the path item's operations in the order their keys
// appear in the document. GetOperations orders by key line only, which ties
// for every method of a single-line JSON document.
func operationsInOrder(pathItem *v3.PathItem) []methodOperation {
	ops := pathItem.GetOperations()
	if ops == nil {
		return nil
	}

	var ordered []methodOperation
	seen := make(map[string]bool)

	if low := pathItem.GoLow(); low != nil && low.RootNode != nil && low.RootNode.Kind == yaml.MappingNode {
		content := low.RootNode.Content
		for i := 0; i+1 < len(content); i += 2 {
			method := strings.ToLower(content[i].Value)
			op, ok := ops.Get(method)
			if !ok || op == nil || seen[method] {
				continue
			}
			seen[method] = true
			ordered = append(ordered, methodOperation{method: method, op: op})
		}
	}

	for method, op := range ops.FromOldest() {
		if op == nil || seen[method] {
			continue
		}
		ordered = append(ordered, methodOperation{method: method, op: op})
	}

	return ordered
}

func (t *transformer) transformOperation(method model.Method, path string, op *v3.Operation) model.Operation {
	operation := model.Operation{
		ID:          op.OperationId,
		Method:      method,
		Path:        path,
		Summary:     op.Summary,
		Description: op.Description,
		Tags:        op.Tags,
		Deprecated:  boolPtr(op.Deprecated),
	}

	for _, p := range op.Parameters {
		operation.Parameters = append(operation.Parameters, t.transformParameter(p))
	}

	if op.RequestBody != nil {
		operation.RequestBody = t.transformRequestBody(op.RequestBody)
	}

	if op.Responses != nil {
		if op.Responses.Codes != nil {
			for code, resp := range op.Responses.Codes.FromOldest() {
				operation.Responses = append(operation.Responses, t.transformResponse(code, resp))
			}
		}
		if op.Responses.Default != nil {
			operation.Responses = append(operation.Responses, t.transformResponse("default", op.Responses.Default))
		}
	}

	return operation
}

func (t *transformer) transformParameter(p *v3.Parameter) model.Parameter {
	param := model.Parameter{
		Name:        p.Name,
		In:          model.ParameterLocation(strings.ToLower(p.In)),
		Description: p.Description,
		Required:    boolPtr(p.Required),
		Deprecated:  p.Deprecated,
	}

	if p.Schema != nil {
		param.Schema = t.transformSchemaProxy(p.Schema)
	} else if p.Content != nil {
		for _, content := range p.Content.FromOldest() {
			if content.Schema != nil {
				param.Schema = t.transformSchemaProxy(content.Schema)
				break
			}
		}
	}

	return param
}

func (t *transformer) transformRequestBody(rb *v3.RequestBody) *model.RequestBody {
	body := &model.RequestBody{}

	if rb.Content != nil {
		for mediaType, content := range rb.Content.FromOldest() {
			mtc := model.MediaTypeContent{MediaType: mediaType}
			if content.Schema != nil {
				mtc.Schema = t.transformSchemaProxy(content.Schema)
			}
			body.Content = append(body.Content, mtc)
		}
	}

	return body
}

func (t *transformer) transformResponse(code string, resp *v3.Response) model.Response {
	response := model.Response{StatusCode: code}

	if resp.Content != nil {
		for mediaType, content := range resp.Content.FromOldest() {
			mtc := model.MediaTypeContent{MediaType: mediaType}
			if content.Schema != nil {
				mtc.Schema = t.transformSchemaProxy(content.Schema)
			}
			response.Content = append(response.Content, mtc)
		}
	}

	return response
}

func (t *transformer) transformSchemaProxy(proxy *base.SchemaProxy) *model.Schema {
	if proxy == nil {
		return nil
	}

	// Component references stay references; the shape renderer declares the
	// component once and points at it by name. This also stops recursion on
	// self-referencing components.
	ref := proxy.GetReference()
	if strings.HasPrefix(ref, componentSchemaPrefix) {
		return &model.Schema{Ref: ref}
	}
	if ref == "" {
		if resolved, ok := t.componentSchemas[proxy.Schema()]; ok {
			return &model.Schema{Ref: resolved}
		}
	}

	schema := t.transformSchema("", proxy.Schema())
	if schema != nil && ref != "" {
		schema.Ref = ref
	}
	return schema
}

func (t *transformer) transformSchema(name string, s *base.Schema) *model.Schema {
	if s == nil {
		return nil
	}

	schema := &model.Schema{
		Name:        name,
		Description: s.Description,
		Format:      s.Format,
		Nullable:    boolPtr(s.Nullable),
		Deprecated:  boolPtr(s.Deprecated),
	}

	// OpenAPI 3.1 spells nullability as a type array: [string, "null"].
	for _, typ := range s.Type {
		if typ == string(model.TypeNull) {
			schema.Nullable = true
			continue
		}
		if schema.Type == "" {
			schema.Type = model.SchemaType(typ)
		}
	}
	if schema.Type == "" && len(s.Type) > 0 {
		schema.Type = model.TypeNull
	}

	for _, e := range s.Enum {
		schema.Enum = append(schema.Enum, nodeValue(e))
	}
	if len(schema.Enum) == 0 && s.Const != nil {
		schema.Enum = []any{nodeValue(s.Const)}
	}

	if s.Properties != nil {
		for propName, propProxy := range s.Properties.FromOldest() {
			propSchema := t.transformSchemaProxy(propProxy)
			if propSchema != nil && propSchema.Name == "" {
				propSchema.Name = propName
			}
			schema.Properties = append(schema.Properties, model.Property{
				Name:   propName,
				Schema: propSchema,
			})
		}
	}

	schema.Required = s.Required

	if s.Items != nil && s.Items.A != nil {
		schema.Items = t.transformSchemaProxy(s.Items.A)
	}

	if s.AdditionalProperties != nil && s.AdditionalProperties.A != nil {
		schema.AdditionalProperties = t.transformSchemaProxy(s.AdditionalProperties.A)
	}

	for _, proxy := range s.AllOf {
		schema.AllOf = append(schema.AllOf, t.transformSchemaProxy(proxy))
	}
	for _, proxy := range s.OneOf {
		schema.OneOf = append(schema.OneOf, t.transformSchemaProxy(proxy))
	}
	for _, proxy := range s.AnyOf {
		schema.AnyOf = append(schema.AnyOf, t.transformSchemaProxy(proxy))
	}

	schema.Extensions = parseExtensions(s.Extensions)

	return schema
}

// nodeValue decodes a scalar node to its natural type so that enum members
// keep the difference between 1 and "1".
func nodeValue(node *yaml.Node) any {
	if node == nil {
		return nil
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return node.Value
	}
	return v
}

func parseExtensions(extensions *orderedmap.Map[string, *yaml.Node]) *model.SchemaExtensions {
	if extensions == nil {
		return nil
	}

	var ext *model.SchemaExtensions

	for pair := extensions.First(); pair != nil; pair = pair.Next() {
		key := pair.Key()
		node := pair.Value()

		if !strings.HasPrefix(key, "x-ts-") {
			continue
		}

		if ext == nil {
			ext = &model.SchemaExtensions{}
		}

		switch key {
		case "x-ts-type":
			if node.Kind == yaml.ScalarNode {
				ext.TSType = node.Value
			}
		}
	}

	return ext
}

func boolPtr(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
