// Package tui implements the interactive catalog browser.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a BubbleTea program browsing the controller's catalog.
// The program uses the alternate screen buffer and stops when ctx is done.
func NewProgram(ctx context.Context, controller Controller, bridge *StateBridge, opts ...tea.ProgramOption) *Program {
	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}
	allOpts = append(allOpts, opts...)

	return tea.NewProgram(NewModel(controller, bridge), allOpts...)
}

// Run creates and runs the browser, blocking until the user quits or ctx is done.
func Run(ctx context.Context, controller Controller, bridge *StateBridge, opts ...tea.ProgramOption) error {
	defer bridge.Close()

	p := NewProgram(ctx, controller, bridge, opts...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
