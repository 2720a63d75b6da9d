// Package demo replays the classic interactive walkthroughs: the same index
// and slice expressions evaluated on a deck, a text and a numeric range, and
// the four counters fed with one word.
package demo

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/palemoky/baralho/internal/apperrors"
	"github.com/palemoky/baralho/internal/card"
	"github.com/palemoky/baralho/internal/config"
	"github.com/palemoky/baralho/internal/counter"
	"github.com/palemoky/baralho/internal/sequence"
)

// Step is one evaluated expression and its printed result.
type Step struct {
	Expr   string
	Result string
}

var (
	deckSelectors  = []string{"0", ":3", "-3:", "-1"}
	textSelectors  = []string{"0", "-1", ":3", "-3:"}
	rangeSelectors = []string{"0", ":3", "-1", "-3", "-3:"}
)

// Walkthrough evaluates every demonstration in order.
func Walkthrough(cfg config.DemoConfig) []Step {
	var steps []Step
	steps = append(steps, SequenceSteps(cfg)...)
	steps = append(steps, CounterSteps(cfg.Word)...)
	return steps
}

// SequenceSteps evaluates the index and slice expressions on the deck, the
// text and the numeric range.
func SequenceSteps(cfg config.DemoConfig) []Step {
	deck := card.NewDeck()
	text := sequence.Runes(cfg.Text)
	nums := sequence.Range(cfg.Range)

	steps := []Step{{Expr: "len(b)", Result: strconv.Itoa(deck.Len())}}
	steps = append(steps, evaluate[card.Card]("b", deck, deckSelectors, FormatCards)...)
	steps = append(steps, evaluate[rune]("s", text, textSelectors, FormatText)...)
	steps = append(steps, evaluate[int]("l", nums, rangeSelectors, FormatInts)...)
	return steps
}

func evaluate[T any](name string, s sequence.Indexed[T], exprs []string, format func([]T, bool) string) []Step {
	steps := make([]Step, 0, len(exprs))
	for _, expr := range exprs {
		step := Step{Expr: fmt.Sprintf("%s[%s]", name, expr)}
		sel, err := sequence.ParseSelector(expr)
		if err == nil {
			var items []T
			items, err = sequence.Apply(s, sel)
			if err == nil {
				step.Result = format(items, sel.Single)
			}
		}
		if err != nil {
			step.Result = FormatError(err)
		}
		steps = append(steps, step)
	}
	return steps
}

// CounterSteps feeds word rune by rune into each counter and queries it.
func CounterSteps(word string) []Step {
	items := []rune(word)
	missing := MissingKey(word)
	var steps []Step

	cont := counter.New[rune]()
	counter.IncludeAll(cont, items...)
	for _, r := range cont.Keys(cmp.Compare[rune]) {
		steps = append(steps, countStep("cont", cont, r))
	}
	steps = append(steps, countStep("cont", cont, missing))

	ctol := counter.NewTolerant[rune]()
	counter.IncludeAll(ctol, items...)
	steps = append(steps, countStep("ctol", ctol, missing))

	ctot := counter.NewTotalizing[rune]()
	counter.IncludeAll(ctot, items...)
	steps = append(steps, Step{Expr: "ctot.Total()", Result: strconv.Itoa(ctot.Total())})

	ctt := counter.NewTolerantTotalizing[rune]()
	counter.IncludeAll(ctt, items...)
	steps = append(steps,
		countStep("ctt", ctt, missing),
		Step{Expr: "ctt.Total()", Result: strconv.Itoa(ctt.Total())},
	)
	return steps
}

func countStep(name string, c counter.Interface[rune], r rune) Step {
	step := Step{Expr: fmt.Sprintf("%s.Count(%q)", name, r)}
	n, err := c.Count(r)
	switch {
	case errors.Is(err, apperrors.ErrKeyNotFound):
		step.Result = fmt.Sprintf("KeyNotFound: %q", r)
		return step
	case err != nil:
		step.Result = FormatError(err)
		return step
	}
	step.Result = strconv.Itoa(n)
	return step
}

// MissingKey returns a letter that does not occur in word, preferring 'z'.
func MissingKey(word string) rune {
	for r := 'z'; r >= 'a'; r-- {
		if !strings.ContainsRune(word, r) {
			return r
		}
	}
	return '?'
}

// Render prints steps as an interactive session transcript.
func Render(steps []Step) string {
	var sb strings.Builder
	for _, s := range steps {
		sb.WriteString(">>> ")
		sb.WriteString(s.Expr)
		sb.WriteByte('\n')
		sb.WriteString(s.Result)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatCards prints cards as a bracketed list, or a single card alone.
func FormatCards(cards []card.Card, single bool) string {
	if single && len(cards) == 1 {
		return cards[0].String()
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatText prints characters as a quoted string.
func FormatText(runes []rune, _ bool) string {
	return "'" + string(runes) + "'"
}

// FormatInts prints integers as a bracketed list, or a single integer alone.
func FormatInts(nums []int, single bool) string {
	if single && len(nums) == 1 {
		return strconv.Itoa(nums[0])
	}
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatError names the error kind in front of its message.
func FormatError(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrOutOfRange):
		return "OutOfRange: " + err.Error()
	case errors.Is(err, apperrors.ErrKeyNotFound):
		return "KeyNotFound: " + err.Error()
	case errors.Is(err, apperrors.ErrInvalidSelector):
		return "InvalidSelector: " + err.Error()
	default:
		return "error: " + err.Error()
	}
}
