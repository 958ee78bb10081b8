// internal/bot/bot.go
package bot

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"product-intel/internal/catalog"
	"product-intel/internal/domain"
	"product-intel/internal/prompt"

	"golang.org/x/text/encoding/charmap"
)

const helpText = "🧠 *Product Intel*\n\n" +
	"Commands:\n" +
	"/categories — list all categories\n" +
	"/category `pet_supplies` — show one category\n" +
	"/search `camera` — search by name or keyword\n" +
	"/prompt `pet_supplies` `medium` — build an AI prompt (short or medium)"

// maxSearchResults keeps replies under Telegram's message size limit.
const maxSearchResults = 15

type Bot struct {
	catalog *catalog.Catalog
}

func New(c *catalog.Catalog) *Bot {
	return &Bot{catalog: c}
}

// Handle returns the Markdown reply for one incoming message.
func (b *Bot) Handle(raw string) string {
	text := NormalizeInput(raw)
	cmd, arg := splitCommand(text)

	switch cmd {
	case "/start", "/help":
		return helpText
	case "/categories":
		return b.listCategories()
	case "/category":
		return b.showCategory(arg)
	case "/search":
		return b.search(arg)
	case "/prompt":
		return b.prompt(arg)
	default:
		return "Unknown command. Send /help"
	}
}

func (b *Bot) listCategories() string {
	lines := []string{fmt.Sprintf("📚 *%d categories*", b.catalog.Len())}
	group := ""
	for _, rec := range b.catalog.ListAll() {
		if g, _ := b.catalog.GroupOf(rec.ID); g != group {
			group = g
			lines = append(lines, fmt.Sprintf("\n*%s*", groupTitle(g)))
		}
		lines = append(lines, fmt.Sprintf("- `%s` %s", rec.ID, rec.Name))
	}
	return strings.Join(lines, "\n")
}

func (b *Bot) showCategory(id string) string {
	if id == "" {
		return "❌ Usage: /category `id`"
	}
	rec, ok := b.catalog.Get(strings.ToLower(id))
	if !ok {
		return fmt.Sprintf("📭 No category %s", escapeMarkdown(id))
	}
	return formatRecord(rec)
}

func (b *Bot) search(query string) string {
	if query == "" {
		return "❌ Usage: /search `text`"
	}
	found := b.catalog.Search(query)
	if len(found) == 0 {
		return fmt.Sprintf("📭 Nothing found for %s", escapeMarkdown(query))
	}

	lines := []string{"🔍 *Results for* " + escapeMarkdown(query)}
	for i, rec := range found {
		if i == maxSearchResults {
			lines = append(lines, fmt.Sprintf("…and %d more", len(found)-maxSearchResults))
			break
		}
		lines = append(lines, fmt.Sprintf("- `%s` %s", rec.ID, rec.Name))
	}
	return strings.Join(lines, "\n")
}

func (b *Bot) prompt(arg string) string {
	fields := strings.Fields(arg)
	if len(fields) == 0 || len(fields) > 2 {
		return "❌ Usage: /prompt `id` [short|medium]"
	}

	length := prompt.Short
	if len(fields) == 2 {
		l, err := prompt.ParseLength(fields[1])
		if err != nil {
			return "❌ Length must be short or medium"
		}
		length = l
	}

	rec, ok := b.catalog.Get(strings.ToLower(fields[0]))
	if !ok {
		return fmt.Sprintf("📭 No category %s", escapeMarkdown(fields[0]))
	}
	text, err := prompt.Build(rec, length)
	if err != nil {
		return "❌ Error: " + err.Error()
	}
	return "```\n" + text + "\n```"
}

func formatRecord(rec domain.ProductIntelligence) string {
	lines := []string{
		fmt.Sprintf("📦 *%s* (`%s`)", rec.Name, rec.ID),
		rec.Description,
		"",
		fmt.Sprintf("📈 %s, competition: %s", rec.MarketGrowth, rec.Competition),
		fmt.Sprintf("💰 $%.0f–$%.0f, margin ~%.0f%%", rec.PriceRange.Min, rec.PriceRange.Max, rec.AvgMarginPercent),
		"🏷 " + strings.Join(rec.Keywords, ", "),
	}
	if len(rec.Audiences) > 0 {
		lines = append(lines, "👥 "+strings.Join(rec.Audiences, ", "))
	}
	for _, sp := range rec.SellingPoints {
		lines = append(lines, "✅ "+sp)
	}
	return strings.Join(lines, "\n")
}

func groupTitle(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

// escapeMarkdown makes user text safe to echo in a legacy Markdown reply.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// splitCommand separates "/cmd@botname rest" into "/cmd" and "rest".
func splitCommand(text string) (string, string) {
	cmd, arg, _ := strings.Cut(text, " ")
	cmd, _, _ = strings.Cut(cmd, "@")
	return strings.ToLower(cmd), strings.TrimSpace(arg)
}

// NormalizeInput repairs windows-1251 text from some clients and collapses
// every kind of whitespace into single spaces.
func NormalizeInput(s string) string {
	s = fixEncoding(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

func fixEncoding(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	fixed, err := charmap.Windows1251.NewDecoder().String(s)
	if err == nil && utf8.ValidString(fixed) {
		return fixed
	}

	return strings.ToValidUTF8(s, "")
}
