package forms

import (
	"fmt"
	"html"
	"html/template"
	"sort"
	"strings"
)

// PriceInput renders a numeric input element followed by the currency
// marker, e.g. `<input type="text" name="price" value="5"> BTC`. Callers
// may style the marker; its placement after the input is part of the
// rendered contract.
type PriceInput struct {
	Currency string
	Attrs    map[string]string
}

// NewPriceInput creates a widget for the given currency with optional
// construction-time attributes.
func NewPriceInput(currency string, attrs map[string]string) PriceInput {
	return PriceInput{Currency: currency, Attrs: attrs}
}

// Render produces the input element. Render-time attrs override
// construction-time ones; name and value always win. Extra attributes are
// emitted in sorted order so output is deterministic.
func (w PriceInput) Render(name string, value any, attrs map[string]string) template.HTML {
	merged := make(map[string]string, len(w.Attrs)+len(attrs)+3)
	merged["type"] = "text"
	for k, v := range w.Attrs {
		merged[k] = v
	}
	for k, v := range attrs {
		merged[k] = v
	}
	merged["name"] = name
	if value != nil {
		merged["value"] = fmt.Sprint(value)
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("<input")
	for _, k := range keys {
		b.WriteString(" ")
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(merged[k]))
		b.WriteString(`"`)
	}
	b.WriteString("> ")
	b.WriteString(html.EscapeString(w.Currency))
	return template.HTML(b.String())
}
