package ui

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/baralho/internal/card"
	"github.com/palemoky/baralho/internal/counter"
)

func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sb strings.Builder
	sb.WriteString(titleStyle("🃏 baralho"))
	sb.WriteString("\n\n")
	sb.WriteString(m.tabsView())
	sb.WriteString("\n\n")

	switch m.tab {
	case TabDeck:
		sb.WriteString(m.deckView())
	case TabText:
		sb.WriteString(fmt.Sprintf("s = %q\nlen(s) = %d", string(m.text.Values()), m.text.Len()))
	case TabRange:
		sb.WriteString(fmt.Sprintf("l = range(%d)\nlen(l) = %d", m.nums.Len(), m.nums.Len()))
	case TabCounter:
		sb.WriteString(m.counterView())
	}
	sb.WriteString("\n")

	if h := m.historyView(); h != "" {
		sb.WriteString(boxStyle.Render(h))
		sb.WriteString("\n")
	}

	sb.WriteString(promptStyle.Render(m.input.View()))
	sb.WriteString("\n")
	sb.WriteString(grayStyle.Render("Tab/Shift+Tab switch · Enter evaluate · Esc quit"))

	return docStyle.Render(sb.String())
}

func (m *Model) tabsView() string {
	tabs := make([]string, 0, tabCount)
	for t := range tabCount {
		style := tabStyle
		if t == m.tab {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// deckView 按花色分行显示整副牌
func (m *Model) deckView() string {
	var sb strings.Builder
	cards := m.deck.Cards()
	sb.WriteString(fmt.Sprintf("len(b) = %d   %s\n", m.deck.Len(), suitSummary(cards)))

	for start := 0; start < len(cards); start += len(card.Ranks()) {
		row := cards[start:min(start+len(card.Ranks()), len(cards))]
		labels := make([]string, len(row))
		for i, c := range row {
			labels[i] = renderCard(c)
		}
		sb.WriteString(fmt.Sprintf("%2d  %s\n", start, strings.Join(labels, " ")))
	}
	return sb.String()
}

// suitSummary 统计牌组中各花色的张数，替换后会变化
func suitSummary(cards []card.Card) string {
	tally := counter.NewTolerant[card.Suit]()
	for _, c := range cards {
		tally.Include(c.Suit)
	}

	parts := make([]string, 0, len(card.Suits()))
	for _, s := range card.Suits() {
		n, _ := tally.Count(s)
		parts = append(parts, fmt.Sprintf("%s %d", s.Symbol(), n))
	}
	return strings.Join(parts, "  ")
}

// counterView 显示各个字符的计数
func (m *Model) counterView() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("variant: %s\n", m.variant))

	counts := m.tally.Snapshot()
	keys := slices.SortedFunc(maps.Keys(counts), cmp.Compare[rune])

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%c:%d", k, counts[k])
	}
	if len(parts) == 0 {
		sb.WriteString("(empty)")
	} else {
		sb.WriteString(strings.Join(parts, "  "))
	}

	if tot, ok := m.tally.(counter.Totalizer); ok {
		sb.WriteString(fmt.Sprintf("\ntotal: %d", tot.Total()))
	}
	return sb.String()
}

func (m *Model) historyView() string {
	h := m.history[m.tab]
	if len(h) == 0 {
		return ""
	}

	lines := make([]string, 0, 2*len(h))
	for _, e := range h {
		lines = append(lines, ">>> "+e.expr)
		switch {
		case e.failed:
			lines = append(lines, errorStyle.Render(e.result))
		case len(e.cards) > 0 && m.tab == TabDeck:
			labels := make([]string, len(e.cards))
			for i, c := range e.cards {
				labels[i] = cardStyle(c).Render(c.String())
			}
			lines = append(lines, strings.Join(labels, " "))
		default:
			lines = append(lines, e.result)
		}
	}
	return strings.Join(lines, "\n")
}
