package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/invexlabs/invexbot/pkg/logger"
)

// Base is the static advisory knowledge base: named sections of opaque
// JSON loaded once at startup. Content is authored externally; the bot
// only routes queries to sections and renders them into prompt context.
type Base struct {
	sections map[string]json.RawMessage
}

// Product is the one typed shape the router understands, used to filter
// product listings against a user's budget.
type Product struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	PriceRange    string   `json:"price_range"`
	TargetMarket  string   `json:"target_market"`
	SellingPoints []string `json:"selling_points"`
}

type productSection struct {
	Products       []Product                  `json:"products"`
	MarketInsights map[string]json.RawMessage `json:"market_insights"`
}

// sectionRoutes maps query keywords to knowledge sections, in table order.
var sectionRoutes = []struct {
	keyword  string
	sections []string
}{
	{"platform", []string{"best_reselling_platforms"}},
	{"sell", []string{"best_reselling_platforms", "pricing_strategies"}},
	{"price", []string{"pricing_strategies"}},
	{"customer", []string{"customer_management"}},
	{"storage", []string{"common_questions"}},
	{"product", []string{"top_selling_products"}},
	{"advice", []string{"general_advice"}},
	{"budget", []string{"budget_recommendations"}},
}

const lowBudgetProductCutoff = 50

// Load reads a knowledge base JSON file. A missing file yields an empty
// base rather than an error so the bot can run without one.
func Load(path string) (*Base, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.WarnCF("knowledge", "Knowledge base file missing, starting empty", map[string]any{"path": path})
			return &Base{sections: map[string]json.RawMessage{}}, nil
		}
		return nil, fmt.Errorf("read knowledge base: %w", err)
	}

	var sections map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("parse knowledge base: %w", err)
	}

	logger.InfoCF("knowledge", "Knowledge base loaded", map[string]any{
		"path":     path,
		"sections": len(sections),
	})
	return &Base{sections: sections}, nil
}

// Sections lists the loaded section names, sorted.
func (b *Base) Sections() []string {
	names := make([]string, 0, len(b.sections))
	for name := range b.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Relevant assembles the context block for a query: keyword-routed
// sections, plus budget-filtered electronics when the budget is small.
// Returns "" when nothing applies.
func (b *Base) Relevant(query string, budget *float64) string {
	query = strings.ToLower(query)

	var parts []string

	if budget != nil && *budget <= lowBudgetProductCutoff {
		if block := b.affordableElectronics(*budget); block != "" {
			parts = append(parts, block)
		}
	}

	seen := map[string]bool{}
	for _, route := range sectionRoutes {
		if !strings.Contains(query, route.keyword) {
			continue
		}
		for _, name := range route.sections {
			if seen[name] {
				continue
			}
			seen[name] = true
			if raw, ok := b.sections[name]; ok {
				parts = append(parts, renderSection(name, raw))
			}
		}
	}

	// Nothing keyword-matched but the user has declared money to spend:
	// budget recommendations are the safest fallback.
	if len(parts) == 0 && budget != nil {
		if raw, ok := b.sections["budget_recommendations"]; ok {
			parts = append(parts, renderSection("budget_recommendations", raw))
		}
	}

	return strings.Join(parts, "\n")
}

// Search returns raw passages from the sections matched by the query's
// keywords. When no keyword matches, every routed section is searched.
func (b *Base) Search(query string) []string {
	query = strings.ToLower(query)

	relevant := map[string]bool{}
	for _, route := range sectionRoutes {
		if strings.Contains(query, route.keyword) {
			for _, name := range route.sections {
				relevant[name] = true
			}
		}
	}
	if len(relevant) == 0 {
		for _, route := range sectionRoutes {
			for _, name := range route.sections {
				relevant[name] = true
			}
		}
	}

	var matches []string
	for _, name := range b.Sections() {
		if relevant[name] {
			matches = append(matches, collectPassages(b.sections[name], 0)...)
		}
	}
	return matches
}

// collectPassages gathers string values up to two levels deep.
func collectPassages(raw json.RawMessage, depth int) []string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return []string{s}
	}

	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err == nil {
		var out []string
		for _, item := range arr {
			var str string
			if err := json.Unmarshal(item, &str); err == nil {
				out = append(out, str)
			}
		}
		return out
	}

	if depth >= 2 {
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err == nil {
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var out []string
		for _, k := range keys {
			out = append(out, collectPassages(obj[k], depth+1)...)
		}
		return out
	}

	return nil
}

func (b *Base) affordableElectronics(budget float64) string {
	raw, ok := b.sections["electronics"]
	if !ok {
		return ""
	}

	var sec productSection
	if err := json.Unmarshal(raw, &sec); err != nil {
		return ""
	}

	var affordable []Product
	for _, p := range sec.Products {
		min, err := minPrice(p.PriceRange)
		if err != nil {
			continue
		}
		if min <= budget {
			affordable = append(affordable, p)
		}
	}
	if len(affordable) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("=== Electronics ===\nProducts:\n")
	for _, p := range affordable {
		fmt.Fprintf(&sb, "- %s: %s\n", p.Name, p.Description)
		fmt.Fprintf(&sb, "  Price Range: %s\n", p.PriceRange)
		if p.TargetMarket != "" {
			fmt.Fprintf(&sb, "  Target Market: %s\n", p.TargetMarket)
		}
		if len(p.SellingPoints) > 0 {
			sb.WriteString("  Key Selling Points:\n")
			for _, point := range p.SellingPoints {
				fmt.Fprintf(&sb, "    • %s\n", point)
			}
		}
	}
	return sb.String()
}

// minPrice parses the low end of a "10.90-80" style range.
func minPrice(priceRange string) (float64, error) {
	low := strings.TrimPrefix(strings.SplitN(priceRange, "-", 2)[0], "$")
	return strconv.ParseFloat(strings.TrimSpace(low), 64)
}

func renderSection(name string, raw json.RawMessage) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== %s ===\n", sectionTitle(name))
	renderValue(&sb, raw, 0)
	return sb.String()
}

// sectionTitle turns "best_reselling_platforms" into "Best Reselling Platforms".
func sectionTitle(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// renderValue walks arbitrary JSON and renders it as an indented outline.
// Keys are sorted so output is stable.
func renderValue(sb *strings.Builder, raw json.RawMessage, depth int) {
	indent := strings.Repeat("  ", depth)

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err == nil {
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			label := strings.ReplaceAll(k, "_", " ")
			if isScalar(obj[k]) {
				fmt.Fprintf(sb, "%s%s: %s\n", indent, label, scalarString(obj[k]))
			} else {
				fmt.Fprintf(sb, "%s%s:\n", indent, label)
				renderValue(sb, obj[k], depth+1)
			}
		}
		return
	}

	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err == nil {
		for _, item := range arr {
			if isScalar(item) {
				fmt.Fprintf(sb, "%s- %s\n", indent, scalarString(item))
			} else {
				fmt.Fprintf(sb, "%s-\n", indent)
				renderValue(sb, item, depth+1)
			}
		}
		return
	}

	fmt.Fprintf(sb, "%s%s\n", indent, scalarString(raw))
}

func isScalar(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[')
}

func scalarString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}
