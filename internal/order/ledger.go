package order

import (
	"fmt"
	"strings"
)

// ItemCount is one rendered ledger row.
type ItemCount struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

// Ledger accumulates normalized items and per-category totals for one
// analysis pass. Built fresh per tally; not safe for concurrent use.
type Ledger struct {
	keys   []string // first-seen order, for rendering
	counts map[string]int

	attendeeTotal    int
	nonAttendeeTotal int
	lines            int

	// split selects the dual-total rendering. Single-total rendering is
	// only used for a divider-less transcript with no attendance info.
	split bool
}

func NewLedger(split bool) *Ledger {
	return &Ledger{counts: make(map[string]int), split: split}
}

// Record adds one parsed line under its normalized item key.
func (l *Ledger) Record(line Line, key string, category Category) {
	if _, seen := l.counts[key]; !seen {
		l.keys = append(l.keys, key)
	}
	l.counts[key]++
	l.lines++

	if category == CategoryAttendee {
		l.attendeeTotal += line.Price
	} else {
		l.nonAttendeeTotal += line.Price
	}
}

// Lines is the number of grammar-matching lines recorded.
func (l *Ledger) Lines() int { return l.lines }

// Empty reports whether nothing matched the grammar.
func (l *Ledger) Empty() bool { return l.lines == 0 }

func (l *Ledger) AttendeeTotal() int    { return l.attendeeTotal }
func (l *Ledger) NonAttendeeTotal() int { return l.nonAttendeeTotal }

// Total is the combined amount across both categories.
func (l *Ledger) Total() int { return l.attendeeTotal + l.nonAttendeeTotal }

// Items returns the rows in first-seen order.
func (l *Ledger) Items() []ItemCount {
	rows := make([]ItemCount, 0, len(l.keys))
	for _, key := range l.keys {
		rows = append(rows, ItemCount{Item: key, Count: l.counts[key]})
	}
	return rows
}

// Render produces the summary text. Pure; repeated calls on an
// unmodified ledger yield identical output.
func (l *Ledger) Render() string {
	var b strings.Builder
	b.WriteString("🍽️ 點餐統計結果：\n")

	for _, key := range l.keys {
		fmt.Fprintf(&b, "%s: %d份\n", key, l.counts[key])
	}

	if l.split {
		fmt.Fprintf(&b, "\n💰 出席者總金額：$%d", l.attendeeTotal)
		fmt.Fprintf(&b, "\n💰 非出席者總金額：$%d", l.nonAttendeeTotal)
	} else {
		fmt.Fprintf(&b, "\n💰 總金額：$%d", l.Total())
	}

	return b.String()
}
