package handler

import (
	"context"
	"io"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	"github.com/eventportal/access-service/internal/core/domain"
	"github.com/eventportal/access-service/internal/core/ports"
)

type stubUserService struct {
	meFn       func(ctx context.Context, id domain.Identity) (*domain.User, error)
	myEventsFn func(ctx context.Context, id domain.Identity) ([]ports.MyEvent, error)
	setRoleFn  func(ctx context.Context, userID string, role domain.GlobalRole) (*domain.User, error)
	deleteFn   func(ctx context.Context, userID string) error
}

func (s *stubUserService) Me(ctx context.Context, id domain.Identity) (*domain.User, error) {
	return s.meFn(ctx, id)
}

func (s *stubUserService) MyEvents(ctx context.Context, id domain.Identity) ([]ports.MyEvent, error) {
	return s.myEventsFn(ctx, id)
}

func (s *stubUserService) SetGlobalRole(ctx context.Context, userID string, role domain.GlobalRole) (*domain.User, error) {
	return s.setRoleFn(ctx, userID, role)
}

func (s *stubUserService) DeleteUser(ctx context.Context, userID string) error {
	return s.deleteFn(ctx, userID)
}

type stubAuthzService struct {
	global    domain.GlobalRole
	eventRole domain.EventRoleType
	err       error
}

func (s *stubAuthzService) ResolveGlobalRole(context.Context, domain.Identity) (domain.GlobalRole, bool, error) {
	return s.global, s.global != "", s.err
}

func (s *stubAuthzService) ResolveEventRole(context.Context, domain.Identity, string) (domain.EventRoleType, bool, error) {
	return s.eventRole, s.eventRole != "", s.err
}

func (s *stubAuthzService) Authorize(context.Context, domain.Identity, string, ...domain.EventRoleType) (domain.Decision, error) {
	panic("not used by handlers")
}

func (s *stubAuthzService) AuthorizeGlobal(context.Context, domain.Identity, ...domain.GlobalRole) (domain.Decision, error) {
	panic("not used by handlers")
}

func (s *stubAuthzService) SyncUser(context.Context, domain.Identity) (*domain.User, error) {
	panic("not used by handlers")
}

type stubEventService struct {
	createFn func(ctx context.Context, name string) (*domain.Event, error)
	getFn    func(ctx context.Context, id string) (*domain.Event, error)
	listFn   func(ctx context.Context, status domain.EventStatus) ([]*domain.Event, error)
	statusFn func(ctx context.Context, id string, next domain.EventStatus) (*domain.Event, error)
}

func (s *stubEventService) CreateEvent(ctx context.Context, name string) (*domain.Event, error) {
	return s.createFn(ctx, name)
}

func (s *stubEventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	return s.getFn(ctx, id)
}

func (s *stubEventService) ListEvents(ctx context.Context, status domain.EventStatus) ([]*domain.Event, error) {
	return s.listFn(ctx, status)
}

func (s *stubEventService) ChangeEventStatus(ctx context.Context, id string, next domain.EventStatus) (*domain.Event, error) {
	return s.statusFn(ctx, id, next)
}

type stubRoleService struct {
	grantFn  func(ctx context.Context, in ports.EventRoleChange) (*domain.EventRole, error)
	changeFn func(ctx context.Context, in ports.EventRoleChange) (*domain.EventRole, error)
	revokeFn func(ctx context.Context, in ports.EventRoleChange) error
	listFn   func(ctx context.Context, eventID string) ([]*domain.EventRole, error)
}

func (s *stubRoleService) GrantEventRole(ctx context.Context, in ports.EventRoleChange) (*domain.EventRole, error) {
	return s.grantFn(ctx, in)
}

func (s *stubRoleService) ChangeEventRole(ctx context.Context, in ports.EventRoleChange) (*domain.EventRole, error) {
	return s.changeFn(ctx, in)
}

func (s *stubRoleService) RevokeEventRole(ctx context.Context, in ports.EventRoleChange) error {
	return s.revokeFn(ctx, in)
}

func (s *stubRoleService) ListEventRoles(ctx context.Context, eventID string) ([]*domain.EventRole, error) {
	return s.listFn(ctx, eventID)
}

var alice = domain.Identity{Email: "alice@example.com", Name: "Alice"}

// newContext builds an echo context with a JSON body and, when id is
// authenticated, the identity the session middleware would have attached.
func newContext(method, target string, body io.Reader, id domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if id.Authenticated() {
		req = req.WithContext(domain.WithIdentity(req.Context(), id))
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
