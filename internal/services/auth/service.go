// Package auth obtains and drops the bearer token.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"

	"github.com/thenoetrevino/hito/internal/api"
	"github.com/thenoetrevino/hito/internal/models"
)

// Action phrases used in user facing error messages.
const (
	ActionLogin    = "log in"
	ActionRegister = "register"
)

// MinPasswordLength is the shortest password registration accepts.
const MinPasswordLength = 8

// Service handles login, registration and logout.
type Service interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Logout(ctx context.Context) error
	IsAuthenticated() bool
}

// RegisterRequest is the registration form. ConfirmPassword is only checked
// locally and never sent.
type RegisterRequest struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	TenantName      string
	TenantDomain    string
}

// Validate runs the local checks in the order a user meets them: required
// fields, password length, then the confirmation match.
func (r RegisterRequest) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"username", r.Username},
		{"email", r.Email},
		{"organization name", r.TenantName},
		{"organization domain", r.TenantDomain},
		{"password", r.Password},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	if len([]rune(r.Password)) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if r.Password != r.ConfirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}

type client interface {
	Do(ctx context.Context, r api.Request, out any) error
	URL(path string) string
	HTTPClient() *http.Client
}

type tokenHolder interface {
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
	IsAuthenticated() bool
}

type service struct {
	client  client
	session tokenHolder
	logger  *slog.Logger
}

// NewService creates a new auth service writing tokens into sess
func NewService(c client, sess tokenHolder) Service {
	return &service{client: c, session: sess, logger: slog.Default().With("component", "auth")}
}

// Login exchanges credentials for a token with an OAuth2 password grant
// against <api>/token and stores it. The session is untouched on failure.
func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return "", ErrMissingCredentials
	}

	cfg := &oauth2.Config{
		Endpoint: oauth2.Endpoint{
			TokenURL:  s.client.URL("/token"),
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.client.HTTPClient())

	token, err := cfg.PasswordCredentialsToken(ctx, username, password)
	if err != nil {
		s.logger.Warn("login failed", "error", err)
		return "", loginError(err)
	}

	if err := s.session.SetToken(ctx, token.AccessToken); err != nil {
		return "", err
	}
	s.logger.Info("logged in")
	return token.AccessToken, nil
}

func loginError(err error) error {
	if api.IsCanceled(err) {
		return err
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
		apiErr := api.ResponseError(retrieveErr.Response.StatusCode, retrieveErr.Body, err)
		apiErr.Action = ActionLogin
		apiErr.Message = LoginFailedMessage
		if apiErr.Status != http.StatusUnauthorized {
			if msg := apiErr.ServerMessage(); msg != "" {
				apiErr.Message = msg
			} else if detail := apiErr.Detail(); detail != "" {
				apiErr.Message = detail
			}
		}
		return apiErr
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &api.Error{Action: ActionLogin, Message: api.Describe(ActionLogin, 0, nil), Err: err}
	}

	return &api.Error{Action: ActionLogin, Message: LoginFailedMessage, Err: err}
}

// Register validates locally, then creates the user and their tenant.
func (s *service) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body := map[string]any{
		"username":      req.Username,
		"email":         req.Email,
		"password":      req.Password,
		"tenant_name":   req.TenantName,
		"tenant_domain": req.TenantDomain,
	}

	var user models.User
	if err := s.client.Do(ctx, api.Request{Method: http.MethodPost, Path: "/register", Body: body}, &user); err != nil {
		return nil, registerError(err)
	}
	s.logger.Info("registered", "username", user.Username)
	return &user, nil
}

func registerError(err error) error {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return &api.Error{Action: ActionRegister, Message: RegistrationFailedMessage, Err: err}
	}
	out := *apiErr
	out.Action = ActionRegister
	out.Message = RegistrationFailedMessage
	if detail := apiErr.Detail(); detail != "" {
		out.Message = detail
	}
	return &out
}

// Logout forgets the token.
func (s *service) Logout(ctx context.Context) error {
	return s.session.Clear(ctx)
}

func (s *service) IsAuthenticated() bool {
	return s.session.IsAuthenticated()
}
