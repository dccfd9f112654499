package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ersonp/dex/internal/application/handlers"
)

// StateSource is the read side of the catalog controller.
type StateSource interface {
	State() handlers.State
}

// StateBridge turns controller transitions into program messages. Observe never
// blocks: transitions arriving while the program is busy coalesce into a single
// wakeup, and the program reads the latest snapshot when it handles it.
type StateBridge struct {
	signal    chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewStateBridge creates an open bridge.
func NewStateBridge() *StateBridge {
	return &StateBridge{
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Observe is meant to be registered with handlers.WithObserver.
func (b *StateBridge) Observe(handlers.State) {
	select {
	case b.signal <- struct{}{}:
	default:
	}
}

// Next returns a command that waits for the next transition and reports the
// source's current state.
func (b *StateBridge) Next(src StateSource) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-b.signal:
			return MsgState{State: src.State()}
		case <-b.done:
			return msgBridgeClosed{}
		}
	}
}

// Close releases any pending Next command. Safe to call more than once.
func (b *StateBridge) Close() {
	b.closeOnce.Do(func() { close(b.done) })
}
