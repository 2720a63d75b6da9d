package ui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/baralho/internal/apperrors"
	"github.com/palemoky/baralho/internal/card"
	"github.com/palemoky/baralho/internal/counter"
	"github.com/palemoky/baralho/internal/demo"
	"github.com/palemoky/baralho/internal/logger"
	"github.com/palemoky/baralho/internal/sequence"
)

// handleKeyPress 处理按键消息，返回是否已处理和命令
func (m *Model) handleKeyPress(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return true, tea.Quit
	case tea.KeyTab:
		m.switchTab(1)
		return true, nil
	case tea.KeyShiftTab:
		m.switchTab(-1)
		return true, nil
	case tea.KeyEnter:
		m.handleEnter()
		return true, nil
	}
	return false, nil
}

// handleEnter evaluates the input against the current tab.
func (m *Model) handleEnter() {
	expr := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if expr == "" {
		return
	}

	var e entry
	switch m.tab {
	case TabDeck:
		e = m.evalDeck(expr)
	case TabText:
		e, _ = evalSequence[rune](m.text, "s", expr, demo.FormatText)
	case TabRange:
		e, _ = evalSequence[int](m.nums, "l", expr, demo.FormatInts)
	case TabCounter:
		e = m.evalCounter(expr)
	}

	if e.failed {
		logger.LogError("%s -> %s", e.expr, e.result)
	} else {
		logger.LogInfo("%s -> %s", e.expr, e.result)
	}
	m.push(e)
}

func evalSequence[T any](s sequence.Indexed[T], name, expr string, format func([]T, bool) string) (entry, []T) {
	e := entry{expr: fmt.Sprintf("%s[%s]", name, expr)}
	sel, err := sequence.ParseSelector(expr)
	if err != nil {
		return e.fail(demo.FormatError(err)), nil
	}
	e.expr = fmt.Sprintf("%s[%s]", name, sel)

	items, err := sequence.Apply(s, sel)
	if err != nil {
		return e.fail(demo.FormatError(err)), nil
	}
	e.result = format(items, sel.Single)
	return e, items
}

// evalDeck reads "sel" or replaces with "i = card".
func (m *Model) evalDeck(expr string) entry {
	target, value, isSet := strings.Cut(expr, "=")
	if !isSet {
		e, cards := evalSequence[card.Card](m.deck, "b", expr, demo.FormatCards)
		e.cards = cards
		return e
	}

	e := entry{expr: fmt.Sprintf("b[%s] = %s", strings.TrimSpace(target), strings.TrimSpace(value))}
	sel, err := sequence.ParseSelector(target)
	if err != nil {
		return e.fail(demo.FormatError(err))
	}
	if !sel.Single {
		return e.fail(demo.FormatError(fmt.Errorf("replacement needs a single position: %w", apperrors.ErrInvalidSelector)))
	}
	c, err := card.Parse(value)
	if err != nil {
		return e.fail(demo.FormatError(err))
	}
	if err := m.deck.Set(sel.Start, c); err != nil {
		return e.fail(demo.FormatError(err))
	}

	e.expr = fmt.Sprintf("b[%s] = %s", sel, c)
	e.result = fmt.Sprintf("len(b) = %d", m.deck.Len())
	e.cards = []card.Card{c}
	return e
}

// evalCounter includes every rune of expr, or queries one rune with "?x".
func (m *Model) evalCounter(expr string) entry {
	query, isQuery := strings.CutPrefix(expr, "?")
	if !isQuery {
		counter.IncludeAll(m.tally, []rune(expr)...)
		e := entry{expr: fmt.Sprintf("c.Include(...%q)", expr)}
		e.result = fmt.Sprintf("%d keys", m.tally.Len())
		if tot, ok := m.tally.(counter.Totalizer); ok {
			e.result += fmt.Sprintf(", total %d", tot.Total())
		}
		return e
	}

	runes := []rune(query)
	if len(runes) != 1 {
		e := entry{expr: fmt.Sprintf("c.Count(%q)", query)}
		return e.fail(demo.FormatError(fmt.Errorf("count needs exactly one character: %w", apperrors.ErrInvalidSelector)))
	}

	e := entry{expr: fmt.Sprintf("c.Count(%q)", runes[0])}
	n, err := m.tally.Count(runes[0])
	switch {
	case errors.Is(err, apperrors.ErrKeyNotFound):
		return e.fail(fmt.Sprintf("KeyNotFound: %q", runes[0]))
	case err != nil:
		return e.fail(demo.FormatError(err))
	}
	e.result = fmt.Sprint(n)
	return e
}
