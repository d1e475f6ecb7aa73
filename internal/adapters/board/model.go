// Package board is the interactive bubbletea view of a day.
package board

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/hearth/internal/core/domain"
)

// Actions are the day operations the board drives.
type Actions interface {
	TodayView(ctx context.Context, date domain.Date) (domain.DayView, error)
	Toggle(ctx context.Context, id int64, actor string) (domain.Transition, error)
	Skip(ctx context.Context, id int64, actor string) (domain.Transition, error)
	Unskip(ctx context.Context, id int64, actor string) (domain.Transition, error)
	Reorder(ctx context.Context, id int64, dir domain.Direction) (domain.Move, error)
}

// Model is the board state.
type Model struct {
	ctx     context.Context //nolint:containedctx // commands run outside Update and need the program context
	actions Actions
	date    domain.Date
	actor   string

	Day    domain.DayView
	Cursor int
	Status string
	Err    error
}

// refreshMsg carries a reloaded day view back into Update.
type refreshMsg struct {
	day    domain.DayView
	status string
	focus  int64
	err    error
}

// NewModel creates a board for date. Transitions are recorded under actor.
func NewModel(ctx context.Context, actions Actions, date domain.Date, actor string) *Model {
	return &Model{
		ctx:     ctx,
		actions: actions,
		date:    date,
		actor:   actor,
		Day:     domain.DayView{Date: date},
	}
}

// Init loads the day.
func (m *Model) Init() tea.Cmd {
	return m.run(0, func(context.Context) (string, error) { return "", nil })
}

// Update handles key presses and reload results.
//
//nolint:cyclop // one case per key binding
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "k", "up":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "j", "down":
			if m.Cursor < len(m.entries())-1 {
				m.Cursor++
			}
		case " ", "enter", "x":
			return m, m.toggle()
		case "s":
			return m, m.skip()
		case "K", "shift+up":
			return m, m.move(domain.Up)
		case "J", "shift+down":
			return m, m.move(domain.Down)
		case "r":
			return m, m.run(m.selectedID(), func(context.Context) (string, error) { return "", nil })
		}

	case refreshMsg:
		if msg.err != nil {
			m.Err = msg.err
			return m, nil
		}
		m.Err = nil
		m.Day = msg.day
		m.Status = msg.status
		if msg.focus != 0 {
			m.focus(msg.focus)
		}
		m.clamp()
	}
	return m, nil
}

func (m *Model) entries() []domain.Entry {
	all := make([]domain.Entry, 0, len(m.Day.Incomplete)+len(m.Day.Done))
	all = append(all, m.Day.Incomplete...)
	return append(all, m.Day.Done...)
}

// Selected returns the entry under the cursor.
func (m *Model) Selected() (domain.Entry, bool) {
	all := m.entries()
	if m.Cursor < 0 || m.Cursor >= len(all) {
		return domain.Entry{}, false
	}
	return all[m.Cursor], true
}

func (m *Model) selectedID() int64 {
	if e, ok := m.Selected(); ok {
		return e.Instance.ID
	}
	return 0
}

func (m *Model) focus(id int64) {
	for i, e := range m.entries() {
		if e.Instance.ID == id {
			m.Cursor = i
			return
		}
	}
}

func (m *Model) clamp() {
	n := len(m.entries())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m *Model) toggle() tea.Cmd {
	e, ok := m.Selected()
	if !ok {
		return nil
	}
	return m.run(e.Instance.ID, func(ctx context.Context) (string, error) {
		tr, err := m.actions.Toggle(ctx, e.Instance.ID, m.actor)
		return describe(tr), err
	})
}

func (m *Model) skip() tea.Cmd {
	e, ok := m.Selected()
	if !ok {
		return nil
	}
	op := m.actions.Skip
	if e.Instance.Status == domain.StatusSkipped {
		op = m.actions.Unskip
	}
	return m.run(e.Instance.ID, func(ctx context.Context) (string, error) {
		tr, err := op(ctx, e.Instance.ID, m.actor)
		return describe(tr), err
	})
}

func (m *Model) move(dir domain.Direction) tea.Cmd {
	e, ok := m.Selected()
	if !ok || e.Instance.Status != domain.StatusIncomplete {
		return nil
	}
	return m.run(e.Instance.ID, func(ctx context.Context) (string, error) {
		mv, err := m.actions.Reorder(ctx, e.Instance.ID, dir)
		if err != nil || mv.Moved {
			return "", err
		}
		return fmt.Sprintf("%s cannot move %s", e.Task.Name, dir), nil
	})
}

// run performs op and then reloads the day, keeping the cursor on focus.
func (m *Model) run(focus int64, op func(context.Context) (string, error)) tea.Cmd {
	return func() tea.Msg {
		status, err := op(m.ctx)
		if err != nil {
			return refreshMsg{err: err}
		}
		day, err := m.actions.TodayView(m.ctx, m.date)
		return refreshMsg{day: day, status: status, focus: focus, err: err}
	}
}

func describe(tr domain.Transition) string {
	if !tr.Changed() {
		return fmt.Sprintf("%s is already %s", tr.Task.Name, tr.Instance.Status)
	}
	switch tr.Execution.Event {
	case domain.EventCompleted:
		if tr.Execution.CompletionOrder != nil {
			return fmt.Sprintf("Completed %s (#%d)", tr.Task.Name, *tr.Execution.CompletionOrder)
		}
		return "Completed " + tr.Task.Name
	case domain.EventUncompleted:
		return "Reopened " + tr.Task.Name
	case domain.EventSkipped:
		return "Skipped " + tr.Task.Name
	case domain.EventUnskipped:
		return "Restored " + tr.Task.Name
	default:
		return ""
	}
}
