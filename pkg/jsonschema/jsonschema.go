package jsonschema

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	kjs "github.com/kaptinlin/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/payload"
	"github.com/dmitrymomot/formkit/pkg/standard"
)

// MessageFunc rewrites the message reported for keyword at path.
type MessageFunc func(keyword, message string, path []any) string

type Option func(*Validator)

// WithMessages sets a MessageFunc. Returning an empty string keeps the
// engine's message.
func WithMessages(fn MessageFunc) Option {
	return func(v *Validator) { v.messages = fn }
}

// Validator validates the nested payload tree against a compiled JSON Schema.
// The success value is the tree itself.
type Validator struct {
	schema   *kjs.Schema
	messages MessageFunc
}

var _ standard.Validator[map[string]any] = (*Validator)(nil)

// Compile compiles a JSON Schema document.
func Compile(raw []byte) (*kjs.Schema, error) {
	schema, err := kjs.NewCompiler().Compile(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompile, err)
	}
	return schema, nil
}

// CompileYAML compiles a JSON Schema written as YAML.
func CompileYAML(raw []byte) (*kjs.Schema, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompile, err)
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompile, err)
	}
	return Compile(b)
}

func New(schema *kjs.Schema, opts ...Option) *Validator {
	v := &Validator{schema: schema}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Validator) Validate(_ context.Context, p payload.Payload) standard.Return[map[string]any] {
	tree := p.Tree()

	result := v.schema.Validate(tree)
	if result == nil || result.Valid {
		return standard.Ready(standard.Succeed(tree))
	}

	var issues []standard.Issue
	v.collect(result, tree, nil, &issues)
	return standard.Ready(standard.Fail[map[string]any](issues...))
}

// applicators report a summary when a subschema fails; the subschema's own
// result carries the actual message.
var applicators = map[string]bool{
	"properties":        true,
	"patternProperties": true,
	"items":             true,
	"prefixItems":       true,
	"allOf":             true,
	"$ref":              true,
	"$dynamicRef":       true,
	"dependentSchemas":  true,
	"then":              true,
	"else":              true,
}

// collect walks the result tree. The engine reports each nested
// InstanceLocation relative to its parent ("/kv", then "/key"), so the path
// is accumulated on the way down. node is the instance at base.
func (v *Validator) collect(result *kjs.EvaluationResult, node any, base []any, issues *[]standard.Issue) {
	path, node := descend(base, node, result.InstanceLocation)

	if len(result.Errors) > 0 {
		keywords := make([]string, 0, len(result.Errors))
		for keyword := range result.Errors {
			if !applicators[keyword] {
				keywords = append(keywords, keyword)
			}
		}
		sort.Strings(keywords)

		for _, keyword := range keywords {
			msg := result.Errors[keyword].Error()
			if v.messages != nil {
				if custom := v.messages(keyword, msg, path); custom != "" {
					msg = custom
				}
			}
			*issues = append(*issues, standard.Issue{Message: msg, Path: path})
		}
	}

	for _, detail := range result.Details {
		if detail != nil && !detail.Valid {
			v.collect(detail, node, path, issues)
		}
	}
}

// descend applies a relative instance location to base. The location is a
// single unescaped token ("/key", "/0"); a token is an index only when the
// instance at base is an array, so object keys like "0" stay keys.
func descend(base []any, node any, location string) ([]any, any) {
	token, ok := strings.CutPrefix(location, "/")
	if !ok {
		return base, node
	}

	path := slices.Clip(base)
	switch n := node.(type) {
	case []any:
		if i, err := strconv.Atoi(token); err == nil && i >= 0 {
			var child any
			if i < len(n) {
				child = n[i]
			}
			return append(path, i), child
		}
	case map[string]any:
		return append(path, standard.PathSegment{Key: token}), n[token]
	}
	return append(path, standard.PathSegment{Key: token}), nil
}
