// Package report renders built settings and build metadata for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-settings-builder/models"
)

const rule = "---------------"

// Printer writes styled reports to an output. Styles degrade to plain text
// when the output is not a color terminal.
type Printer struct {
	w          io.Writer
	titleStyle lipgloss.Style
	ruleStyle  lipgloss.Style
	labelStyle lipgloss.Style
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:          w,
		titleStyle: r.NewStyle().Bold(true),
		ruleStyle:  r.NewStyle().Faint(true),
		labelStyle: r.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

// PrintCheese writes the "Results" block for c. Unset fields print empty.
func (p *Printer) PrintCheese(c *models.Cheese) error {
	if c == nil {
		c = &models.Cheese{}
	}

	var origin models.Origin
	if c.Origin != nil {
		origin = *c.Origin
	}

	lines := []string{
		p.titleStyle.Render("Results"),
		p.ruleStyle.Render(rule),
		p.line("Name", deref(c.Name)),
		p.line("Price", formatPrice(c.Price)),
		p.line("Milk", formatMilk(c.Milk)),
		p.line("Flavours", strings.Join(c.Flavours, ", ")),
		p.line("Origin location", deref(origin.Location)),
		p.line("Origin farm", deref(origin.Name)),
		p.ruleStyle.Render(rule),
	}

	_, err := fmt.Fprintln(p.w, strings.Join(lines, "\n"))
	return err
}

// PrintBuildInfo writes the build metadata block. Missing values print N/A.
func (p *Printer) PrintBuildInfo(info models.AppBuildInfo) error {
	lines := []string{
		p.line("Build version", valueOrNA(info.BuildVersion())),
		p.line("Build date", valueOrNA(info.BuildDate())),
		p.line("Build commit", valueOrNA(info.BuildCommit())),
	}

	_, err := fmt.Fprintln(p.w, strings.Join(lines, "\n"))
	return err
}

func (p *Printer) line(label, value string) string {
	return p.labelStyle.Render(label+":") + " " + value
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatPrice(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatMilk(m *models.Milk) string {
	if m == nil {
		return ""
	}
	return m.String()
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
