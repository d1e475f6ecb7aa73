package board

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/hearth/internal/core/domain"
)

// Run shows the board for date until the user quits or ctx is done.
func Run(ctx context.Context, actions Actions, date domain.Date, actor string, opts ...tea.ProgramOption) error {
	model := NewModel(ctx, actions, date, actor)
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(model, opts...).Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
