package tool

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/casualjim/fmp/pkg/jsonx"
	"github.com/casualjim/fmp/pkg/logx"
	"github.com/casualjim/fmp/pkg/uuidx"
	"github.com/invopop/jsonschema"
	santhosh "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

type invocationKey struct{}

// InvocationID returns the id Run or Invoke assigned to the current call.
func InvocationID(ctx context.Context) string {
	id, _ := ctx.Value(invocationKey{}).(string)
	return id
}

// Run executes the tool with the JSON arguments a model produced and returns the
// text to send back. Failures never escape: they come back as "Error: <message>".
func (d Definition) Run(ctx context.Context, args []byte) string {
	out, err := d.Invoke(ctx, args)
	if err != nil {
		return ErrorText(err)
	}
	return out
}

// Invoke is Run with the error kept. Empty or null arguments mean "{}".
// Arguments are validated against the tool schema, defaults are filled in for
// absent fields and the result is rendered as a string: strings pass through,
// anything else becomes indented JSON.
func (d Definition) Invoke(ctx context.Context, args []byte) (string, error) {
	if d.execute == nil {
		return "", ErrNotInitialized
	}

	id := uuidx.NewString()
	ctx = context.WithValue(ctx, invocationKey{}, id)
	log := logx.New(d.logger)
	log.ToolStart(ctx, d.Name, id, args)
	start := time.Now()

	out, err := d.invoke(ctx, args)
	if err != nil {
		log.ToolError(ctx, d.Name, id, time.Since(start), err)
		return "", err
	}
	log.ToolEnd(ctx, d.Name, id, time.Since(start), out)
	return out, nil
}

func (d Definition) invoke(ctx context.Context, args []byte) (string, error) {
	prepared, err := d.prepare(args)
	if err != nil {
		return "", err
	}
	result, err := d.call(ctx, prepared)
	if err != nil {
		return "", err
	}
	return render(result)
}

// prepare normalizes the arguments, fills in defaults and validates the result.
func (d Definition) prepare(args []byte) ([]byte, error) {
	args = bytes.TrimSpace(args)
	if jsonx.IsEmpty(args) {
		args = []byte("{}")
	}
	if !gjson.ValidBytes(args) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidArguments)
	}
	if !gjson.ParseBytes(args).IsObject() {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidArguments)
	}

	args = applyDefaults(dropNulls(args), d.schema)

	inst, err := santhosh.UnmarshalJSON(bytes.NewReader(args))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	if err := d.validator.Validate(inst); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArguments, validationMessage(err))
	}
	return args, nil
}

func (d Definition) call(ctx context.Context, args []byte) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tool %s panicked: %v", d.Name, r)
		}
	}()
	return d.execute(ctx, args)
}

func render(v any) (string, error) {
	switch r := v.(type) {
	case string:
		return r, nil
	case []byte:
		return string(r), nil
	}
	out, err := jsonx.Pretty(v)
	if err != nil {
		return "", fmt.Errorf("rendering result: %w", err)
	}
	return out, nil
}

// dropNulls removes null members from objects, recursively. Strict mode models
// send null for every optional field they leave out.
func dropNulls(raw []byte) []byte {
	res := gjson.ParseBytes(raw)
	switch {
	case res.IsObject():
		out := []byte("{}")
		res.ForEach(func(k, v gjson.Result) bool {
			if v.Type == gjson.Null {
				return true
			}
			out, _ = sjson.SetRawBytes(out, escapePath(k.String()), dropNulls([]byte(v.Raw)))
			return true
		})
		return out
	case res.IsArray():
		out := []byte("[]")
		res.ForEach(func(_, v gjson.Result) bool {
			out, _ = sjson.SetRawBytes(out, "-1", dropNulls([]byte(v.Raw)))
			return true
		})
		return out
	default:
		return raw
	}
}

// applyDefaults sets the schema default of every absent property, descending
// into nested objects that are present.
func applyDefaults(raw []byte, schema *jsonschema.Schema) []byte {
	if schema == nil || schema.Properties == nil {
		return raw
	}
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		path := escapePath(pair.Key)
		cur := gjson.GetBytes(raw, path)
		switch {
		case !cur.Exists() && pair.Value.Default != nil:
			if next, err := sjson.SetBytes(raw, path, pair.Value.Default); err == nil {
				raw = next
			}
		case cur.IsObject() && pair.Value.Properties != nil:
			if next, err := sjson.SetRawBytes(raw, path, applyDefaults([]byte(cur.Raw), pair.Value)); err == nil {
				raw = next
			}
		}
	}
	return raw
}

var pathEscaper = strings.NewReplacer(
	`\`, `\\`, `.`, `\.`, `*`, `\*`, `?`, `\?`, `|`, `\|`, `#`, `\#`, `@`, `\@`, `:`, `\:`, `!`, `\!`,
)

// escapePath turns an object key into a gjson/sjson path of one element.
func escapePath(key string) string {
	return pathEscaper.Replace(key)
}

// validationMessage flattens a validation error into one line a model can act on.
func validationMessage(err error) string {
	var verr *santhosh.ValidationError
	if !errors.As(err, &verr) {
		return err.Error()
	}
	lines := strings.Split(verr.Error(), "\n")
	if len(lines) > 1 {
		// the first line only names the schema
		lines = lines[1:]
	}
	for i, l := range lines {
		lines[i] = strings.TrimPrefix(strings.TrimSpace(l), "- ")
	}
	return strings.Join(lines, "; ")
}
