package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/thenoetrevino/hito/internal/api"
	"github.com/thenoetrevino/hito/internal/models"
)

// Action phrases used in user facing error messages.
const (
	ActionFetchUsers       = "fetch users"
	ActionFetchCurrentUser = "fetch current user"
)

// ErrInvalidTenantID is returned before any request when the tenant is empty.
var ErrInvalidTenantID = errors.New("invalid tenant ID")

// Service reads user directory information.
type Service interface {
	GetUsersByTenant(ctx context.Context, tenantID string) ([]*models.User, error)
	GetCurrentUser(ctx context.Context) (*models.User, error)
}

type client interface {
	Do(ctx context.Context, r api.Request, out any) error
}

type service struct {
	client client
}

// NewService creates a new user service
func NewService(c client) Service {
	return &service{client: c}
}

func (s *service) GetUsersByTenant(ctx context.Context, tenantID string) ([]*models.User, error) {
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	var raw json.RawMessage
	path := "/tenants/" + url.PathEscape(tenantID) + "/users"
	if err := s.client.Do(ctx, api.Request{Method: http.MethodGet, Path: path}, &raw); err != nil {
		return nil, api.Normalize(ActionFetchUsers, err)
	}
	users, err := api.DecodeList[*models.User](raw)
	if err != nil {
		return nil, api.Normalize(ActionFetchUsers, err)
	}
	return users, nil
}

func (s *service) GetCurrentUser(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := s.client.Do(ctx, api.Request{Method: http.MethodGet, Path: "/users/me"}, &u); err != nil {
		return nil, api.Normalize(ActionFetchCurrentUser, err)
	}
	return &u, nil
}
