package tui

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/hito/internal/api"
	"github.com/thenoetrevino/hito/internal/services/auth"
	"github.com/thenoetrevino/hito/internal/tui/components"
	"github.com/thenoetrevino/hito/internal/tui/huhforms"
	"github.com/thenoetrevino/hito/internal/tui/state"
)

type registerPage struct {
	env        env
	values     huhforms.RegisterValues
	form       *huh.Form
	submitting bool
	// registered holds the blocking success dialog until it is acknowledged
	registered bool
	err        *state.ErrorState
}

func newRegisterPage(e env) *registerPage {
	p := &registerPage{env: e, err: state.NewErrorState()}
	p.resetForm()
	return p
}

func (p *registerPage) resetForm() {
	p.values.Password = ""
	p.values.ConfirmPassword = ""
	p.form = newForm(huhforms.NewRegisterForm(&p.values), p.env.width)
}

func (p *registerPage) Init() tea.Cmd {
	return p.form.Init()
}

func (p *registerPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case registerResultMsg:
		p.submitting = false
		if msg.err != nil {
			p.env.logger.Warn("registration failed", "error", msg.err)
			p.err.Set(api.Message(msg.err))
			p.resetForm()
			return p, p.form.Init()
		}
		p.registered = true
		return p, nil

	case tea.WindowSizeMsg:
		p.env.resize(msg.Width, p.form)

	case tea.KeyPressMsg:
		if p.registered {
			if keyIs(msg, "enter", "y", p.env.keys.Back) {
				return p, navigate(Location{Route: RouteLogin})
			}
			return p, nil
		}
		if keyIs(msg, p.env.keys.SwitchToAuth) {
			return p, navigate(Location{Route: RouteLogin})
		}
	}

	if p.submitting || p.registered {
		return p, nil
	}

	var cmd tea.Cmd
	p.form, cmd = updateForm(p.form, msg, p.env.keys.SaveForm)
	switch p.form.State {
	case huh.StateCompleted:
		return p, tea.Batch(cmd, p.submit())
	case huh.StateAborted:
		return p, navigate(Location{Route: RouteLogin})
	}
	return p, cmd
}

// submit validates locally, so a password mismatch never reaches the
// network, then registers. Registering does not log in.
func (p *registerPage) submit() tea.Cmd {
	if p.submitting {
		return nil
	}

	req := auth.RegisterRequest{
		Username:        strings.TrimSpace(p.values.Username),
		Email:           strings.TrimSpace(p.values.Email),
		Password:        p.values.Password,
		ConfirmPassword: p.values.ConfirmPassword,
		TenantName:      strings.TrimSpace(p.values.TenantName),
		TenantDomain:    strings.TrimSpace(p.values.TenantDomain),
	}
	if err := req.Validate(); err != nil {
		p.err.Set(err.Error())
		p.resetForm()
		return p.form.Init()
	}

	p.submitting = true
	p.err.Clear()
	authService := p.env.app.AuthService
	return p.env.mount.run(func(ctx context.Context) tea.Msg {
		user, err := authService.Register(ctx, req)
		return registerResultMsg{user: user, err: err}
	})
}

func (p *registerPage) View(width, height int) string {
	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Create an account"))
	b.WriteString("\n\n")
	if p.err.HasError() {
		b.WriteString(components.ErrorTextStyle.Render(p.err.Get()))
		b.WriteString("\n\n")
	}
	if p.submitting {
		b.WriteString(components.SubtleStyle.Render("Registering..."))
	} else if !p.registered {
		b.WriteString(p.form.View())
	}
	return authFrame(b.String(), width, height)
}

func (p *registerPage) Overlay(int, int) string {
	if !p.registered {
		return ""
	}
	return components.CreateBoxStyle.Render(
		auth.RegistrationSuccessMessage + "\n\n" +
			components.KeyStyle.Render("enter") + " continue to sign in",
	)
}

func (p *registerPage) Hints() []components.Hint {
	if p.registered {
		return []components.Hint{{Key: "enter", Desc: "sign in"}}
	}
	return []components.Hint{
		{Key: "enter", Desc: "next / register"},
		{Key: p.env.keys.SwitchToAuth, Desc: "back to sign in"},
	}
}

func (p *registerPage) Capturing() bool { return !p.registered }

func (p *registerPage) Busy() bool { return p.submitting }

// authFrame centers the auth pages' content horizontally with a fixed
// column.
func authFrame(content string, width, height int) string {
	box := components.EditBoxStyle.Width(min(width-2, 64)).Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
