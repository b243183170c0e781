package tui

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/hito/internal/api"
	"github.com/thenoetrevino/hito/internal/services/auth"
	"github.com/thenoetrevino/hito/internal/tui/components"
	"github.com/thenoetrevino/hito/internal/tui/huhforms"
	"github.com/thenoetrevino/hito/internal/tui/state"
)

type loginPage struct {
	env        env
	values     huhforms.LoginValues
	form       *huh.Form
	submitting bool
	err        *state.ErrorState
}

func newLoginPage(e env) *loginPage {
	p := &loginPage{env: e, err: state.NewErrorState()}
	p.resetForm()
	return p
}

func (p *loginPage) resetForm() {
	p.values.Password = ""
	p.form = newForm(huhforms.NewLoginForm(&p.values), p.env.width)
}

func (p *loginPage) Init() tea.Cmd {
	return p.form.Init()
}

func (p *loginPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		p.submitting = false
		if msg.err != nil {
			p.env.logger.Warn("login failed", "error", msg.err)
			p.err.Set(api.Message(msg.err))
			p.resetForm()
			return p, p.form.Init()
		}
		return p, navigate(Location{Route: RouteDashboard})

	case tea.WindowSizeMsg:
		p.env.resize(msg.Width, p.form)

	case tea.KeyPressMsg:
		if keyIs(msg, p.env.keys.SwitchToAuth) {
			return p, navigate(Location{Route: RouteRegister})
		}
	}

	if p.submitting {
		return p, nil
	}

	var cmd tea.Cmd
	p.form, cmd = updateForm(p.form, msg, p.env.keys.SaveForm)
	switch p.form.State {
	case huh.StateCompleted:
		return p, tea.Batch(cmd, p.submit())
	case huh.StateAborted:
		p.resetForm()
		return p, p.form.Init()
	}
	return p, cmd
}

// submit sends the credentials once; further submits are ignored until the
// result arrives.
func (p *loginPage) submit() tea.Cmd {
	if p.submitting {
		return nil
	}

	email := strings.TrimSpace(p.values.Email)
	password := p.values.Password
	if email == "" || password == "" {
		p.err.Set(auth.ErrMissingCredentials.Error())
		p.resetForm()
		return p.form.Init()
	}

	p.submitting = true
	p.err.Clear()
	authService := p.env.app.AuthService
	return p.env.mount.run(func(ctx context.Context) tea.Msg {
		_, err := authService.Login(ctx, email, password)
		return loginResultMsg{err: err}
	})
}

func (p *loginPage) View(width, height int) string {
	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Sign in"))
	b.WriteString("\n\n")
	if p.err.HasError() {
		b.WriteString(components.ErrorTextStyle.Render(p.err.Get()))
		b.WriteString("\n\n")
	}
	if p.submitting {
		b.WriteString(components.SubtleStyle.Render("Signing in..."))
	} else {
		b.WriteString(p.form.View())
	}
	return authFrame(b.String(), width, height)
}

func (p *loginPage) Overlay(int, int) string { return "" }

func (p *loginPage) Hints() []components.Hint {
	return []components.Hint{
		{Key: "enter", Desc: "next / sign in"},
		{Key: p.env.keys.SwitchToAuth, Desc: "create an account"},
	}
}

func (p *loginPage) Capturing() bool { return true }

func (p *loginPage) Busy() bool { return p.submitting }
