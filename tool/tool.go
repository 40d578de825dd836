package tool

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"regexp"
	"strings"

	"github.com/casualjim/fmp/pkg/stdx"
	"github.com/fogfish/opts"
	json "github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
	santhosh "github.com/santhosh-tekuri/jsonschema/v6"
)

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// Definition is a named, described function with a typed input struct. It is
// immutable once built and safe for concurrent use.
type Definition struct {
	Name        string
	Description string
	// Category groups related tools, e.g. "quote" or "financial".
	Category string

	input     reflect.Type
	logger    *slog.Logger
	execute   func(context.Context, []byte) (any, error)
	schema    *jsonschema.Schema
	strict    *jsonschema.Schema
	validator *santhosh.Schema
}

// Option configures a Definition.
type Option = opts.Option[Definition]

var (
	// Name sets the tool name models call it by.
	Name = opts.ForName[Definition, string]("Name")
	// Description sets the text shown to the model.
	Description = opts.ForName[Definition, string]("Description")
	// Category sets the group the tool is listed under.
	Category = opts.ForName[Definition, string]("Category")
)

// Logger sends execution logs to l instead of slog.Default().
func Logger(l *slog.Logger) Option {
	return opts.Type[Definition](func(d *Definition) error {
		d.logger = l
		return nil
	})
}

// Must is New that panics on error.
func Must[T, R any](fn func(context.Context, T) (R, error), options ...Option) Definition {
	return stdx.Must1(New(fn, options...))
}

// New builds a Definition around fn. The input type T must be a struct (or a
// pointer to one); its schema is generated and compiled here so a bad tag fails
// at construction rather than on the first call.
func New[T, R any](fn func(context.Context, T) (R, error), options ...Option) (Definition, error) {
	if fn == nil {
		return Definition{}, fmt.Errorf("tool: nil function")
	}

	var def Definition
	if err := opts.Apply(&def, options); err != nil {
		return Definition{}, err
	}
	def.Name = strings.TrimSpace(def.Name)
	if def.Name == "" {
		return Definition{}, ErrMissingName
	}
	if !namePattern.MatchString(def.Name) {
		return Definition{}, fmt.Errorf("%w: %q", ErrInvalidName, def.Name)
	}

	def.input = reflect.TypeFor[T]()
	var err error
	if def.schema, err = Parameters(def.input, false); err != nil {
		return Definition{}, fmt.Errorf("tool %s: %w", def.Name, err)
	}
	if def.strict, err = Parameters(def.input, true); err != nil {
		return Definition{}, fmt.Errorf("tool %s: %w", def.Name, err)
	}
	if def.validator, err = compileValidator(def.Name, def.schema); err != nil {
		return Definition{}, fmt.Errorf("tool %s: %w", def.Name, err)
	}

	def.execute = func(ctx context.Context, args []byte) (any, error) {
		var in T
		if err := json.Unmarshal(args, &in); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
		}
		return fn(ctx, in)
	}
	return def, nil
}

// Schema returns the parameter schema of the tool, see Parameters. The returned
// value is shared and must not be modified.
func (d Definition) Schema(strict bool) *jsonschema.Schema {
	if strict {
		return d.strict
	}
	return d.schema
}

// InputType is the Go type arguments are decoded into.
func (d Definition) InputType() reflect.Type {
	return d.input
}

func compileValidator(name string, schema *jsonschema.Schema) (*santhosh.Schema, error) {
	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("encoding schema: %w", err)
	}
	doc, err := santhosh.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	loc := "https://fmp.local/tools/" + name + ".json"
	c := santhosh.NewCompiler()
	if err := c.AddResource(loc, doc); err != nil {
		return nil, fmt.Errorf("adding schema: %w", err)
	}
	return c.Compile(loc)
}

// Lookup finds a definition by name.
type Lookup interface {
	Get(name string) (Definition, bool)
}

// List is a Lookup over a fixed set of definitions.
type List []Definition

func (l List) Get(name string) (Definition, bool) {
	for _, d := range l {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}
