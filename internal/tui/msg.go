package tui

import "github.com/ersonp/dex/internal/application/handlers"

// MsgState carries a fresh controller snapshot into the program.
type MsgState struct {
	State handlers.State
}

// msgBridgeClosed is returned by a pending wait once the bridge is closed.
type msgBridgeClosed struct{}
