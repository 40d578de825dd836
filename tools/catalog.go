package tools

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/casualjim/fmp/api"
	"github.com/casualjim/fmp/internal/registry"
	"github.com/casualjim/fmp/tool"
)

// Categories, in the order they are listed.
const (
	CategoryQuote         = "quote"
	CategoryCompany       = "company"
	CategoryFinancial     = "financial"
	CategoryMarket        = "market"
	CategoryStock         = "stock"
	CategoryETF           = "etf"
	CategoryEconomic      = "economic"
	CategoryCalendar      = "calendar"
	CategoryList          = "list"
	CategoryInsider       = "insider"
	CategoryInstitutional = "institutional"
	CategorySenateHouse   = "senate-house"
)

// ErrUnknownTool is returned by Select for a name not in the catalog.
var ErrUnknownTool = errors.New("unknown tool")

// Catalog holds one tool per FMP endpoint. It is safe for concurrent use.
type Catalog struct {
	order      []string
	categories []string
	tools      registry.Registry[tool.Definition]
}

// NewCatalog builds the tools on top of client. The options are applied to
// every tool, e.g. tool.Logger.
func NewCatalog(client *api.Client, options ...tool.Option) *Catalog {
	b := &builder{client: client, shared: options}
	b.quote()
	b.company()
	b.financial()
	b.market()
	b.stock()
	b.etf()
	b.economic()
	b.calendar()
	b.lists()
	b.insider()
	b.institutional()
	b.senateHouse()

	c := &Catalog{tools: registry.New[tool.Definition]()}
	for _, def := range b.defs {
		if _, exists := c.tools.GetOrAdd(def.Name, func() tool.Definition { return def }); exists {
			panic(fmt.Sprintf("tools: duplicate tool %s", def.Name))
		}
		c.order = append(c.order, def.Name)
		if !slices.Contains(c.categories, def.Category) {
			c.categories = append(c.categories, def.Category)
		}
	}
	return c
}

// All returns every tool in catalog order.
func (c *Catalog) All() []tool.Definition {
	out := make([]tool.Definition, 0, c.tools.Len())
	for _, name := range c.order {
		def, _ := c.tools.Get(name)
		out = append(out, def)
	}
	return out
}

// Len returns the number of tools.
func (c *Catalog) Len() int {
	return c.tools.Len()
}

func (c *Catalog) Get(name string) (tool.Definition, bool) {
	return c.tools.Get(name)
}

func (c *Catalog) Names() []string {
	return slices.Clone(c.order)
}

func (c *Catalog) Categories() []string {
	return slices.Clone(c.categories)
}

// Category returns the tools of one category, nil for an unknown category.
func (c *Catalog) Category(name string) []tool.Definition {
	var out []tool.Definition
	for _, def := range c.All() {
		if def.Category == name {
			out = append(out, def)
		}
	}
	return out
}

// Select returns the named tools in the order given.
func (c *Catalog) Select(names ...string) ([]tool.Definition, error) {
	out := make([]tool.Definition, 0, len(names))
	for _, name := range names {
		def, ok := c.tools.Get(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
		}
		out = append(out, def)
	}
	return out, nil
}

type builder struct {
	client   *api.Client
	category string
	shared   []tool.Option
	defs     []tool.Definition
}

func add[T, R any](b *builder, name, description string, fn func(context.Context, T) (R, error)) {
	options := append([]tool.Option{
		tool.Name(name),
		tool.Description(description),
		tool.Category(b.category),
	}, b.shared...)
	b.defs = append(b.defs, tool.Must(fn, options...))
}
