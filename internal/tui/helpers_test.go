package tui

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hito/internal/api"
	"github.com/thenoetrevino/hito/internal/app"
	"github.com/thenoetrevino/hito/internal/config"
	"github.com/thenoetrevino/hito/internal/session"
	"github.com/thenoetrevino/hito/internal/testutil"
	"github.com/thenoetrevino/hito/internal/tui/components"
)

// waveTimeout bounds how long a batch of commands may take. Form cursors
// start blink timers that are abandoned when they exceed it.
const waveTimeout = 2 * time.Second

func init() {
	components.InitStyles(config.DefaultColorScheme())
}

type harness struct {
	t     *testing.T
	fake  *testutil.FakeAPI
	app   *app.App
	model *Model
}

func newHarness(t *testing.T, loggedIn bool, start Location) *harness {
	t.Helper()

	fake := testutil.NewFakeAPI(t)
	token := ""
	if loggedIn {
		token = fake.Token()
	}
	sess := session.NewMemorySession(token)
	a := app.New(api.NewClient(fake.URL(), sess), sess)

	m := New(context.Background(), a, config.Default(), WithNotificationTTL(0), WithStart(start))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	h := &harness{t: t, fake: fake, app: a, model: m}
	h.run(m.Init())
	return h
}

// run executes cmd and every command that follows from it, feeding the
// model the messages it routes: page results, navigation and
// notifications.
func (h *harness) run(cmd tea.Cmd) {
	h.t.Helper()

	type result struct {
		i   int
		msg tea.Msg
	}

	wave := []tea.Cmd{cmd}
	for len(wave) > 0 {
		results := make(chan result, len(wave))
		pending := 0
		for i, c := range wave {
			if c == nil {
				continue
			}
			pending++
			go func() { results <- result{i: i, msg: c()} }()
		}

		msgs := make([]tea.Msg, len(wave))
		timeout := time.After(waveTimeout)
	collect:
		for pending > 0 {
			select {
			case r := <-results:
				msgs[r.i] = r.msg
				pending--
			case <-timeout:
				break collect
			}
		}

		var next []tea.Cmd
		for _, msg := range msgs {
			switch msg := msg.(type) {
			case tea.BatchMsg:
				next = append(next, msg...)
			case pageMsg, navigateMsg, notifyMsg:
				_, c := h.model.Update(msg)
				next = append(next, c)
			}
		}
		wave = next
	}
}

// press sends each key and runs what it triggers.
func (h *harness) press(keys ...string) {
	h.t.Helper()
	for _, k := range keys {
		_, cmd := h.model.Update(key(k))
		h.run(cmd)
	}
}

// resize sends a terminal resize and runs what it triggers.
func (h *harness) resize(width int) {
	h.t.Helper()
	_, cmd := h.model.Update(tea.WindowSizeMsg{Width: width, Height: 40})
	h.run(cmd)
}

func widestLine(s string) int {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		widest = max(widest, lipgloss.Width(line))
	}
	return widest
}

func (h *harness) route() Route {
	return h.model.Location().Route
}

func (h *harness) messages() []string {
	var out []string
	for _, n := range h.model.Notifications() {
		out = append(out, n.Message)
	}
	return out
}

func (h *harness) view() string {
	return h.model.View().Content
}

func currentPage[T page](h *harness) T {
	h.t.Helper()
	p, ok := h.model.page.(T)
	require.True(h.t, ok, "current page is %T", h.model.page)
	return p
}

func key(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case "ctrl+r":
		return tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}
	case "ctrl+s":
		return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg{Code: r, Text: k}
}

func errUnauthorized() error {
	return &api.Error{Status: http.StatusUnauthorized, Message: sessionExpiredMessage}
}

// isQuit reports whether cmd ends the program.
func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		_, ok := msg.(tea.QuitMsg)
		return ok
	case <-time.After(waveTimeout):
		return false
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return string(raw)
}
