package main

import (
	"fmt"
	"strings"

	"github.com/casualjim/fmp/tool"
	"github.com/casualjim/fmp/tools"
	"github.com/invopop/jsonschema"
)

// catalogMarkdown documents every tool with a parameter table per tool.
func catalogMarkdown(catalog *tools.Catalog) string {
	var b strings.Builder
	b.WriteString("# FMP tools\n\n")
	fmt.Fprintf(&b, "%d tools in %d categories.\n", catalog.Len(), len(catalog.Categories()))
	for _, category := range catalog.Categories() {
		fmt.Fprintf(&b, "\n## %s\n", category)
		for _, def := range catalog.Category(category) {
			writeToolMarkdown(&b, def)
		}
	}
	return b.String()
}

func writeToolMarkdown(b *strings.Builder, def tool.Definition) {
	fmt.Fprintf(b, "\n### %s\n\n%s\n", def.Name, def.Description)

	schema := def.Schema(false)
	if schema.Properties.Len() == 0 {
		b.WriteString("\nNo parameters.\n")
		return
	}
	b.WriteString("\n| Parameter | Type | Required | Default | Description |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		required := "no"
		for _, name := range schema.Required {
			if name == pair.Key {
				required = "yes"
				break
			}
		}
		fmt.Fprintf(b, "| `%s` | %s | %s | %s | %s |\n",
			pair.Key, typeLabel(pair.Value), required, defaultLabel(pair.Value), cell(pair.Value.Description))
	}
}

func typeLabel(s *jsonschema.Schema) string {
	label := s.Type
	if s.Type == "array" && s.Items != nil {
		label = s.Items.Type + "[]"
	}
	if len(s.Enum) > 0 {
		values := make([]string, len(s.Enum))
		for i, v := range s.Enum {
			values[i] = fmt.Sprint(v)
		}
		label += " (" + strings.Join(values, ", ") + ")"
	}
	return cell(label)
}

func defaultLabel(s *jsonschema.Schema) string {
	if s.Default == nil {
		return ""
	}
	return fmt.Sprintf("`%v`", s.Default)
}

func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
