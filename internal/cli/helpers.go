package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iudanet/lifedash/internal/models"
	"github.com/iudanet/lifedash/internal/stats"
)

// Суммы выводятся в евро с итальянскими разделителями: 1.234,50 €
var moneyPrinter = message.NewPrinter(language.Italian)

func formatMoney(d decimal.Decimal) string {
	return moneyPrinter.Sprintf("%.2f €", d.Round(2).InexactFloat64())
}

// formatDate prints a date as DD/MM/YYYY, "-" when unset.
func formatDate(d models.Date) string {
	t, err := d.Time(time.UTC)
	if err != nil {
		if d.IsZero() {
			return "-"
		}
		return string(d)
	}
	return t.Format("02/01/2006")
}

// formatGrade prints a grade, 31 is shown as 30 cum laude.
func formatGrade(g *int) string {
	switch {
	case g == nil:
		return "-"
	case *g == models.MaxGrade:
		return "30L"
	default:
		return strconv.Itoa(*g)
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// daysBadge describes how far away a deadline is.
func daysBadge(d models.Date, now time.Time) string {
	if d.IsZero() {
		return ""
	}
	days, err := stats.DaysUntil(d, now)
	if err != nil {
		return ""
	}
	var badge string
	switch {
	case days > 0:
		badge = fmt.Sprintf("in %dd", days)
	case days == 0:
		badge = "today"
	default:
		badge = "overdue"
	}
	if stats.IsUrgent(days) {
		badge += " !"
	}
	return badge
}

// progressBar renders percent (clamped to 0..100) as a fixed-width bar.
func progressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

// ask prompts for a value; an empty answer returns def.
func (c *Cli) ask(label, def string) (string, error) {
	prompt := label + ": "
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, def)
	}
	answer, err := c.io.ReadInput(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// clearable maps the "-" answer to an empty value so optional fields
// with a default can be cleared.
func clearable(answer string) string {
	if strings.TrimSpace(answer) == "-" {
		return ""
	}
	return answer
}

// choice normalizes an answer picked from a fixed set of lowercase options.
func choice(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

// confirm asks a yes/no question. Only "yes" and "y" confirm.
func (c *Cli) confirm(question string) (bool, error) {
	answer, err := c.io.ReadInput(question + " (yes/no): ")
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	answer = choice(answer)
	return answer == "yes" || answer == "y", nil
}

// confirmDelete asks for confirmation and runs del when given.
func (c *Cli) confirmDelete(what string, del func() error) error {
	ok, err := c.confirm(fmt.Sprintf("Are you sure you want to delete this %s?", what))
	if err != nil {
		return err
	}
	if !ok {
		c.io.Println("Deletion cancelled.")
		return nil
	}
	if err := del(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", what, err)
	}
	c.io.Printf("%s deleted.\n", strings.ToUpper(what[:1])+what[1:])
	return nil
}

var templateFuncs = template.FuncMap{
	"money":    formatMoney,
	"date":     formatDate,
	"number":   formatNumber,
	"bar":      progressBar,
	"grade":    formatGrade,
	"category": func(c models.Category) string { return c.Label() },
}

// render executes a text template into the terminal.
func (c *Cli) render(tmpl *template.Template, data any) error {
	if err := tmpl.Execute(c.io, data); err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	return nil
}

func mustTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(templateFuncs).Parse(text))
}

func joinWords(words []string) string {
	return strings.TrimSpace(strings.Join(words, " "))
}

func usageError(usage string) error {
	return fmt.Errorf("missing arguments. Usage: lifedash %s", usage)
}
