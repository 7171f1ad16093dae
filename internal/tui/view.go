package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/billdue/internal/cli"
	"github.com/theirongolddev/billdue/internal/due"
	"github.com/theirongolddev/billdue/internal/model"
	"github.com/theirongolddev/billdue/internal/tui/components"
	"github.com/theirongolddev/billdue/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.addForm != nil {
		return a.renderHeader() + "\n" + a.addForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  billdue needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) renderHeader() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)
	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	return " " + titleStyle.Render("💳 billdue") +
		subtitleStyle.Render(" · Credit Card Bill Reminder")
}

// renderNoticeLine shows the delete prompt or the last action result.
func (a App) renderNoticeLine() string {
	t := theme.Active

	if a.confirming && a.cursor < len(a.people) {
		warn := lipgloss.NewStyle().Foreground(t.Orange).Bold(true)
		return " " + warn.Render(fmt.Sprintf("Delete %s? [y/N]", a.people[a.cursor].Name))
	}
	if a.notice != "" {
		return " " + lipgloss.NewStyle().Foreground(t.TextMuted).Render(a.notice)
	}
	return ""
}

func (a App) viewMain() string {
	header := a.renderHeader() + "\n" + a.renderNoticeLine()

	unpaid := 0
	for _, p := range a.people {
		if !p.IsPaid {
			unpaid++
		}
	}
	statusBar := components.RenderStatusBar(a.width, len(a.people), unpaid)

	headerH := lipgloss.Height(header)
	contentH := a.height - headerH - statusBarHeight
	if contentH < minContentRows {
		contentH = minContentRows
	}

	var content string
	if len(a.people) == 0 {
		content = a.viewEmptyState(contentH)
	} else {
		content = a.renderPeopleGrid()
	}
	content = padHeight(truncateHeight(content, contentH), contentH)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (a App) viewEmptyState(contentH int) string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	bodyStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	body := titleStyle.Render("No people added yet") + "\n" +
		bodyStyle.Render("Press a to start tracking someone's\ncredit card payments")

	card := components.ContentCard("", body, 44, t.Border)
	return lipgloss.Place(a.width, contentH, lipgloss.Center, lipgloss.Center, card)
}

func (a App) renderPeopleGrid() string {
	cols := a.columns()

	var rows []string
	for start := 0; start < len(a.people); start += cols {
		end := start + cols
		if end > len(a.people) {
			end = len(a.people)
		}

		cards := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cards = append(cards, a.renderPersonCard(a.people[i], i == a.cursor))
		}
		rows = append(rows, components.CardRow(cards))
	}

	return strings.Join(rows, "\n")
}

func (a App) renderPersonCard(p model.Person, selected bool) string {
	t := theme.Active
	now := a.now()
	status := due.Classify(p, now, a.cfg.General.DueSoonDays)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	badgeStyle := lipgloss.NewStyle().Foreground(statusColor(status)).Bold(true)

	innerW := components.CardInnerWidth(cardOuterWidth)

	var b strings.Builder
	writeRow := func(label, value string) {
		pad := innerW - lipgloss.Width(label) - lipgloss.Width(value)
		if pad < 1 {
			pad = 1
		}
		b.WriteString(labelStyle.Render(label))
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(value)
		b.WriteString("\n")
	}

	writeRow("Card:", valueStyle.Render(cli.MaskCard(p.CardLastFour)))
	writeRow("Due:", valueStyle.Render(cli.DueDayLabel(p.BillingDate)))
	writeRow("Amount:", valueStyle.Render(cli.FormatAmount(p.Amount, a.cfg.General.CurrencySymbol)))
	writeRow("Status:", badgeStyle.Render(status.Label()))

	if !p.IsPaid {
		days := due.DaysUntilDue(p.BillingDate, now)
		sentence := lipgloss.NewStyle().
			Foreground(statusColor(status)).
			Render(cli.DaysSentence(days))
		b.WriteString(sentence)
	} else {
		b.WriteString(labelStyle.Render("—"))
	}

	border := statusColor(status)
	if selected {
		border = t.BorderAccent
	}

	title := truncStr(p.Name, innerW)
	if selected {
		title = "▸ " + truncStr(p.Name, innerW-2)
	}

	return components.ContentCard(title, b.String(), cardOuterWidth, border)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []key.Binding{
		keys.Up, keys.Down, keys.Left, keys.Right,
		keys.First, keys.Last,
		keys.Add, keys.TogglePaid, keys.Delete,
		keys.Help, keys.Quit,
	}
	for _, bind := range bindings {
		h := bind.Help()
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-9s", h.Key)),
			descStyle.Render(h.Desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// statusColor maps a classification to its theme color.
func statusColor(s model.Status) lipgloss.Color {
	t := theme.Active
	switch s {
	case model.StatusPaid:
		return t.Green
	case model.StatusOverdue:
		return t.Red
	case model.StatusDueSoon:
		return t.Yellow
	default:
		return t.Border
	}
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
