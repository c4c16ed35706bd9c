// Package report prints equity sweep results.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/holdem-odds/internal/config"
	"github.com/lox/holdem-odds/internal/equity"
	"github.com/lox/holdem-odds/poker"
	"github.com/muesli/termenv"
)

type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	red     lipgloss.Style
	black   lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
	win     lipgloss.Style
	tie     lipgloss.Style
	loss    lipgloss.Style
	ev      lipgloss.Style
	evMinus lipgloss.Style
	footer  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	cell := r.NewStyle().Width(9).Align(lipgloss.Right)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4")).Padding(0, 1),
		label:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		red:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		black:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		header:  cell.Bold(true).Foreground(lipgloss.Color("15")),
		cell:    cell,
		win:     cell.Foreground(lipgloss.Color("10")),
		tie:     cell.Foreground(lipgloss.Color("11")),
		loss:    cell.Foreground(lipgloss.Color("9")),
		ev:      cell.Foreground(lipgloss.Color("10")),
		evMinus: cell.Foreground(lipgloss.Color("9")),
		footer:  r.NewStyle().Faint(true),
	}
}

// Printer writes results either as a styled table or as plain lines.
type Printer struct {
	w      io.Writer
	format string
	styles styles
}

// New creates a printer for the given output format. Colour is disabled when
// noColor is set or when w is not a terminal.
func New(w io.Writer, format string, noColor bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{w: w, format: format, styles: newStyles(r)}
}

// Print writes one line or table row per result.
func (p *Printer) Print(hand, board []poker.Card, results []equity.Result) error {
	if p.format == config.FormatPlain {
		return p.printPlain(results)
	}
	return p.printTable(hand, board, results)
}

// PlainLine formats a result the way the original command-line tool did.
func PlainLine(r equity.Result) string {
	return fmt.Sprintf("Number of players: %d. Simulated Win rate: %.2f%%, Simulated Tie rate: %.2f%%, EV 1$ bet %.2f$",
		r.Players, r.WinRate()*100, r.TieRate()*100, r.ExpectedValue())
}

func (p *Printer) printPlain(results []equity.Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(p.w, PlainLine(r)); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printTable(hand, board []poker.Card, results []equity.Result) error {
	s := p.styles
	var b strings.Builder

	b.WriteString(s.title.Render(" ♠ ♥ holdem-odds ♦ ♣ "))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %s", s.label.Render("hand "), p.cards(hand))
	if len(hand) == 2 {
		fmt.Fprintf(&b, "  (%s, %s)", poker.StartingHandKey(hand[0], hand[1]), poker.CategorizeHole(hand[0], hand[1]))
	}
	b.WriteString("\n")
	if len(board) > 0 {
		fmt.Fprintf(&b, "%s %s\n", s.label.Render("board"), p.cards(board))
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		s.header.Render("players"),
		s.header.Render("win"),
		s.header.Render("tie"),
		s.header.Render("loss"),
		s.header.Render("EV"),
		s.header.Width(18).Render("win 95% CI"),
	))
	b.WriteString("\n")

	var trials uint64
	var elapsed time.Duration
	for _, r := range results {
		lower, upper := r.ConfidenceInterval()
		evStyle := s.ev
		if r.ExpectedValue() < 0 {
			evStyle = s.evMinus
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			s.cell.Render(fmt.Sprintf("%d", r.Players)),
			s.win.Render(percent(r.WinRate())),
			s.tie.Render(percent(r.TieRate())),
			s.loss.Render(percent(r.LossRate())),
			evStyle.Render(fmt.Sprintf("%+.3f", r.ExpectedValue())),
			s.cell.Width(18).Render(fmt.Sprintf("%s-%s", percent(lower), percent(upper))),
		))
		b.WriteString("\n")
		trials += r.Trials()
		elapsed += r.Elapsed
	}

	b.WriteString("\n")
	b.WriteString(s.footer.Render(fmt.Sprintf("%d trials in %v", trials, elapsed.Truncate(time.Millisecond))))
	b.WriteString("\n")

	_, err := io.WriteString(p.w, b.String())
	return err
}

func (p *Printer) cards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		style := p.styles.black
		if c.Suit.IsRed() {
			style = p.styles.red
		}
		parts[i] = style.Render(c.Symbol())
	}
	return strings.Join(parts, " ")
}

func percent(f float64) string {
	return fmt.Sprintf("%.2f%%", f*100)
}
