// Package linear prints day views and command results as plain lines.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/hearth/internal/core/domain"
	"go.trai.ch/hearth/internal/ui/output"
	"go.trai.ch/hearth/internal/ui/style"
)

const timeLayout = "2006-01-02 15:04"

// Renderer writes command results to stdout for pipes, scripts and CI.
type Renderer struct {
	mu     sync.Mutex
	w      io.Writer
	output *termenv.Output
	loc    *time.Location
}

// NewRenderer creates a Renderer. A nil w writes to stdout.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	return &Renderer{
		w:      w,
		output: output.New(w, false),
		loc:    time.UTC,
	}
}

// SetLocation sets the zone used to print execution timestamps.
func (r *Renderer) SetLocation(loc *time.Location) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if loc != nil {
		r.loc = loc
	}
}

// Day prints the worklist for one day.
func (r *Renderer) Day(view domain.DayView) {
	r.mu.Lock()
	defer r.mu.Unlock()

	header := fmt.Sprintf("%s %s", view.Date.Weekday(), view.Date)
	r.println(r.paint(header, style.Ember, true) + r.paint(
		fmt.Sprintf("  %d open, %d done", len(view.Incomplete), len(view.Done)), style.Ash, false))

	if len(view.Incomplete) == 0 && len(view.Done) == 0 {
		r.println(r.paint("  Nothing scheduled.", style.Ash, false))
		return
	}

	for _, e := range view.Incomplete {
		r.println("  " + r.entryLine(e))
	}
	if len(view.Done) > 0 {
		r.println("")
		r.println(r.paint("Done", style.Ash, true))
		for _, e := range view.Done {
			r.println("  " + r.entryLine(e))
		}
	}
}

func (r *Renderer) entryLine(e domain.Entry) string {
	inst := e.Instance
	glyph := r.paint(style.StatusGlyph(inst.Status), style.StatusColor(inst.Status), false)

	var b strings.Builder
	b.WriteString(glyph)
	b.WriteString(" ")
	if inst.CompletionOrder != nil {
		fmt.Fprintf(&b, "%d. ", *inst.CompletionOrder)
	}
	b.WriteString(e.Task.Name)
	b.WriteString(r.paint(fmt.Sprintf("  #%d", inst.ID), style.Smoke, false))
	if label := style.SourceLabel(inst.Source); label != "" {
		b.WriteString(r.paint(" ("+label+")", style.Ash, false))
	}
	if inst.Status == domain.StatusSkipped {
		b.WriteString(r.paint(" (skipped)", style.Smoke, false))
	}
	return b.String()
}

// DayReport prints what opening a day created.
func (r *Renderer) DayReport(rep domain.DayReport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.println(fmt.Sprintf("Generated %d scheduled instance(s) for %s.", len(rep.Generated), rep.Date))
	if rep.RolloverRan() {
		r.println(fmt.Sprintf("Rolled over %d incomplete instance(s) from %s.", len(rep.RolledOver), rep.RolledFrom))
	}
}

// Sync prints the catalog changes made by a plan sync.
func (r *Renderer) Sync(rep domain.SyncReport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.println(fmt.Sprintf("Synced plan: %d created, %d updated, %d deactivated, %d unchanged.",
		rep.Created, rep.Updated, rep.Deactivated, rep.Unchanged))
}

// Transition prints the outcome of toggle, skip or unskip.
func (r *Renderer) Transition(tr domain.Transition) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := tr.Task.Name
	if !tr.Changed() {
		r.println(r.notice(fmt.Sprintf("%s is already %s; nothing changed.", name, tr.Instance.Status)))
		return
	}

	status := tr.Instance.Status
	glyph := r.paint(style.StatusGlyph(status), style.StatusColor(status), false)
	switch tr.Execution.Event {
	case domain.EventCompleted:
		order := 0
		if tr.Execution.CompletionOrder != nil {
			order = *tr.Execution.CompletionOrder
		}
		r.println(fmt.Sprintf("%s Completed %s (#%d on %s).", glyph, name, order, tr.Instance.Date))
	case domain.EventUncompleted:
		r.println(fmt.Sprintf("%s Reopened %s.", glyph, name))
	case domain.EventSkipped:
		r.println(fmt.Sprintf("%s Skipped %s.", glyph, name))
	case domain.EventUnskipped:
		r.println(fmt.Sprintf("%s Restored %s.", glyph, name))
	}
}

// Move prints the outcome of a reorder.
func (r *Renderer) Move(m domain.Move) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := m.Entry.Task.Name
	if !m.Moved {
		r.println(r.notice(fmt.Sprintf("%s cannot move %s.", name, m.Direction)))
		return
	}
	r.println(fmt.Sprintf("Moved %s %s.", name, m.Direction))
}

// ManualAdd prints the outcome of adding a task to a day.
func (r *Renderer) ManualAdd(add domain.ManualAdd) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inst := add.Entry.Instance
	if !add.Created {
		r.println(r.notice(fmt.Sprintf("%s is already on %s (#%d).", add.Entry.Task.Name, inst.Date, inst.ID)))
		return
	}
	r.println(fmt.Sprintf("Added %s to %s at position %d (#%d).",
		add.Entry.Task.Name, inst.Date, inst.AssignedOrder, inst.ID))
}

// History prints an instance's execution log.
func (r *Renderer) History(h domain.History) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inst := h.Entry.Instance
	r.println(r.paint(fmt.Sprintf("%s on %s", h.Entry.Task.Name, inst.Date), style.Ember, true) +
		r.paint(fmt.Sprintf("  #%d %s", inst.ID, inst.Status), style.Ash, false))
	if len(h.Executions) == 0 {
		r.println(r.paint("  No executions recorded.", style.Ash, false))
		return
	}

	for _, ex := range h.Executions {
		actor := ex.Actor
		if actor == "" {
			actor = "-"
		}
		line := fmt.Sprintf("  %s  %-11s  %s", ex.At.In(r.loc).Format(timeLayout), ex.Event, actor)
		if ex.CompletionOrder != nil {
			line += fmt.Sprintf("  #%d", *ex.CompletionOrder)
		}
		r.println(line)
	}
}

// Backfill prints per-date creation counts.
func (r *Renderer) Backfill(days []domain.BackfillDay) {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for _, d := range days {
		total += d.Created
		r.println(fmt.Sprintf("  %s  %d created", d.Date, d.Created))
	}
	r.println(fmt.Sprintf("Backfilled %d day(s), %d instance(s) created.", len(days), total))
}

func (r *Renderer) notice(msg string) string {
	return r.paint(style.Notice+" ", style.Sand, false) + msg
}

func (r *Renderer) paint(s string, c lipgloss.Color, bold bool) string {
	st := r.output.String(s).Foreground(r.output.Color(string(c)))
	if bold {
		st = st.Bold()
	}
	return st.String()
}

func (r *Renderer) println(s string) {
	_, _ = fmt.Fprintln(r.w, s)
}
