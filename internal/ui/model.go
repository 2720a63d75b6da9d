package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/baralho/internal/card"
	"github.com/palemoky/baralho/internal/config"
	"github.com/palemoky/baralho/internal/counter"
	"github.com/palemoky/baralho/internal/sequence"
)

// Tab 标签页
type Tab int

const (
	TabDeck Tab = iota
	TabText
	TabRange
	TabCounter
	tabCount
)

var tabTitles = map[Tab]string{
	TabDeck:    "b = deck",
	TabText:    "s = text",
	TabRange:   "l = range",
	TabCounter: "c = counter",
}

var tabPlaceholders = map[Tab]string{
	TabDeck:    "0, :3, -3: or 0 = Q de espadas",
	TabText:    "0, -1, :3, -3:",
	TabRange:   "0, -3, :3, -3:",
	TabCounter: "word to include, ?x to count x",
}

func (t Tab) String() string {
	return tabTitles[t]
}

// entry 一次求值的记录
type entry struct {
	expr   string
	result string
	cards  []card.Card
	failed bool
}

func (e entry) fail(result string) entry {
	e.result = result
	e.failed = true
	return e
}

// Model 终端界面 model
type Model struct {
	deck    *card.Deck
	text    *sequence.List[rune]
	nums    *sequence.List[int]
	tally   counter.Interface[rune]
	variant counter.Variant

	tab     Tab
	input   textinput.Model
	history map[Tab][]entry

	width  int
	height int
}

// NewModel creates the model with the counter variant chosen in cfg.
func NewModel(cfg *config.Config) *Model {
	variant := cfg.Counter.Variant()
	return newModel(cfg.Demo, counter.NewVariant[rune](variant), variant)
}

func newModel(demo config.DemoConfig, tally counter.Interface[rune], variant counter.Variant) *Model {
	ti := textinput.New()
	ti.CharLimit = 40
	ti.Width = 40
	ti.Prompt = "> "
	ti.Focus()

	m := &Model{
		deck:    card.NewDeck(),
		text:    sequence.Runes(demo.Text),
		nums:    sequence.Range(demo.Range),
		tally:   tally,
		variant: variant,
		input:   ti,
		history: make(map[Tab][]entry),
	}
	m.input.Placeholder = tabPlaceholders[m.tab]
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if handled, cmd := m.handleKeyPress(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// switchTab 切换标签页，清空输入
func (m *Model) switchTab(delta int) {
	m.tab = Tab((int(m.tab) + delta + int(tabCount)) % int(tabCount))
	m.input.Reset()
	m.input.Placeholder = tabPlaceholders[m.tab]
}

func (m *Model) push(e entry) {
	h := append(m.history[m.tab], e)
	if len(h) > maxHistory {
		h = h[len(h)-maxHistory:]
	}
	m.history[m.tab] = h
}

func (m *Model) last() (entry, bool) {
	h := m.history[m.tab]
	if len(h) == 0 {
		return entry{}, false
	}
	return h[len(h)-1], true
}
