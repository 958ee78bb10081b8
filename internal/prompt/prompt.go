// internal/prompt/prompt.go

// Package prompt turns catalog records into AI prompts. Short prompts cost a
// short credit and medium prompts a medium credit; billing happens elsewhere.
package prompt

import (
	"fmt"
	"strings"
	"text/template"

	"product-intel/internal/domain"
)

type Length string

const (
	Short  Length = "short"
	Medium Length = "medium"
)

func ParseLength(s string) (Length, error) {
	switch Length(strings.ToLower(strings.TrimSpace(s))) {
	case "", Short:
		return Short, nil
	case Medium:
		return Medium, nil
	default:
		return "", fmt.Errorf("unknown prompt length %q, expected short or medium", s)
	}
}

var funcs = template.FuncMap{
	"join": strings.Join,
}

var templates = map[Length]*template.Template{
	Short: template.Must(template.New("short").Funcs(funcs).Parse(
		`Write a punchy product description for a {{.Name}} product. ` +
			`Market: {{.MarketGrowth}}. Focus on: {{join .Keywords ", "}}.`)),

	Medium: template.Must(template.New("medium").Funcs(funcs).Parse(
		`You are an e-commerce copywriter. Category: {{.Name}} ({{.ID}}).
{{.Description}}
Market: {{.MarketGrowth}}, competition is {{.Competition}}.
Typical price: ${{printf "%.0f" .PriceRange.Min}}-${{printf "%.0f" .PriceRange.Max}}, average margin {{printf "%.0f" .AvgMarginPercent}}%.
{{- if .Audiences}}
Target audiences: {{join .Audiences ", "}}.
{{- end}}
{{- if .SellingPoints}}
Angles that sell: {{join .SellingPoints "; "}}.
{{- end}}
Keywords to include: {{join .Keywords ", "}}.
Write a product listing with a title, three bullet points and a short paragraph.`)),
}

// Build renders the prompt for rec at the given length.
func Build(rec domain.ProductIntelligence, length Length) (string, error) {
	tmpl, ok := templates[length]
	if !ok {
		return "", fmt.Errorf("unknown prompt length %q", length)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, rec); err != nil {
		return "", fmt.Errorf("render %s prompt for %q: %w", length, rec.ID, err)
	}
	return b.String(), nil
}
