package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
)

// mount is one lifetime of a page. Commands started through it carry its
// id, and its context is canceled when the page is replaced, so a result
// that arrives after navigation never reaches the new page.
type mount struct {
	id     int
	ctx    context.Context
	cancel context.CancelFunc
}

func newMount(parent context.Context, id int) *mount {
	ctx, cancel := context.WithCancel(parent)
	return &mount{id: id, ctx: ctx, cancel: cancel}
}

// pageMsg is a page result tagged with the mount that asked for it.
type pageMsg struct {
	mount int
	msg   tea.Msg
}

// run executes fn off the event loop with the mount's context.
func (m *mount) run(fn func(ctx context.Context) tea.Msg) tea.Cmd {
	id, ctx := m.id, m.ctx
	return func() tea.Msg {
		return pageMsg{mount: id, msg: fn(ctx)}
	}
}

func (m *mount) unmount() {
	m.cancel()
}
