package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventportal/access-service/internal/core/domain"
	"github.com/eventportal/access-service/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID      map[string]*domain.User
	findErr   error
	upsertErr error
	upserts   int
	nextID    int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) add(u *domain.User) *domain.User {
	if u.ID == "" {
		r.nextID++
		u.ID = fmt.Sprintf("user_%d", r.nextID)
	}
	r.byID[u.ID] = cloneUser(u)
	return u
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.byID {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.byID[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpsertByEmail(ctx context.Context, in ports.UpsertUserInput) (*domain.User, bool, error) {
	r.upserts++
	if r.upsertErr != nil {
		return nil, false, r.upsertErr
	}
	for _, u := range r.byID {
		if u.Email == in.Email {
			if in.Name != "" {
				u.Name = in.Name
			}
			if in.AvatarURL != "" {
				u.AvatarURL = in.AvatarURL
			}
			return cloneUser(u), false, nil
		}
	}
	u := r.add(&domain.User{Email: in.Email, Name: in.Name, AvatarURL: in.AvatarURL, Role: in.Role})
	return cloneUser(u), true, nil
}

func (r *stubUserRepo) SetRole(_ context.Context, id string, role domain.GlobalRole) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Role = role
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubUserRepo) count() int { return len(r.byID) }

// ---------------------------------------------------------------------------
// Events
// ---------------------------------------------------------------------------

type stubEventRepo struct {
	byID   map[string]*domain.Event
	nextID int
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{byID: make(map[string]*domain.Event)}
}

func (r *stubEventRepo) seed(id string, status domain.EventStatus) *domain.Event {
	e := &domain.Event{ID: id, Name: "Event " + id, Status: status}
	r.byID[id] = e
	return e
}

func (r *stubEventRepo) Create(_ context.Context, e *domain.Event) (*domain.Event, error) {
	r.nextID++
	clone := *e
	clone.ID = fmt.Sprintf("event_%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubEventRepo) FindByID(_ context.Context, id string) (*domain.Event, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEventRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, id := range ids {
		if e, ok := r.byID[id]; ok {
			clone := *e
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubEventRepo) List(_ context.Context, status domain.EventStatus) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, e := range r.byID {
		if status == "" || e.Status == status {
			clone := *e
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubEventRepo) UpdateStatus(_ context.Context, id string, status domain.EventStatus) (*domain.Event, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	e.Status = status
	clone := *e
	return &clone, nil
}

// ---------------------------------------------------------------------------
// Event roles
// ---------------------------------------------------------------------------

type stubRoleRepo struct {
	rows    map[string]*domain.EventRole // key: eventID|userID
	findErr error
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{rows: make(map[string]*domain.EventRole)}
}

func roleKey(eventID, userID string) string { return eventID + "|" + userID }

func (r *stubRoleRepo) seed(eventID, userID string, role domain.EventRoleType) {
	r.rows[roleKey(eventID, userID)] = &domain.EventRole{ID: roleKey(eventID, userID), EventID: eventID, UserID: userID, Role: role}
}

func (r *stubRoleRepo) Find(_ context.Context, eventID, userID string) (*domain.EventRole, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	row, ok := r.rows[roleKey(eventID, userID)]
	if !ok {
		return nil, domain.ErrEventRoleNotFound
	}
	clone := *row
	return &clone, nil
}

func (r *stubRoleRepo) Insert(_ context.Context, er *domain.EventRole) (*domain.EventRole, error) {
	key := roleKey(er.EventID, er.UserID)
	if _, exists := r.rows[key]; exists {
		return nil, domain.ErrEventRoleExists
	}
	clone := *er
	clone.ID = key
	r.rows[key] = &clone
	out := clone
	return &out, nil
}

func (r *stubRoleRepo) UpdateRole(_ context.Context, eventID, userID string, role domain.EventRoleType) (*domain.EventRole, error) {
	row, ok := r.rows[roleKey(eventID, userID)]
	if !ok {
		return nil, domain.ErrEventRoleNotFound
	}
	row.Role = role
	clone := *row
	return &clone, nil
}

func (r *stubRoleRepo) Delete(_ context.Context, eventID, userID string) error {
	key := roleKey(eventID, userID)
	if _, ok := r.rows[key]; !ok {
		return domain.ErrEventRoleNotFound
	}
	delete(r.rows, key)
	return nil
}

func (r *stubRoleRepo) ListByEvent(_ context.Context, eventID string) ([]*domain.EventRole, error) {
	var out []*domain.EventRole
	for _, row := range r.rows {
		if row.EventID == eventID {
			clone := *row
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubRoleRepo) ListByUser(_ context.Context, userID string) ([]*domain.EventRole, error) {
	var out []*domain.EventRole
	for _, row := range r.rows {
		if row.UserID == userID {
			clone := *row
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubRoleRepo) DeleteByUser(_ context.Context, userID string) (int64, error) {
	var n int64
	for key, row := range r.rows {
		if row.UserID == userID {
			delete(r.rows, key)
			n++
		}
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Audit and sync marker
// ---------------------------------------------------------------------------

type stubAudit struct {
	err     error
	entries []*domain.RoleAuditEntry
}

func (a *stubAudit) Insert(_ context.Context, e *domain.RoleAuditEntry) error {
	if a.err != nil {
		return a.err
	}
	a.entries = append(a.entries, e)
	return nil
}

type stubTracker struct {
	synced   map[string]bool
	checkErr error
	markErr  error
}

func newStubTracker() *stubTracker {
	return &stubTracker{synced: make(map[string]bool)}
}

func (t *stubTracker) RecentlySynced(_ context.Context, email string) (bool, error) {
	if t.checkErr != nil {
		return false, t.checkErr
	}
	return t.synced[email], nil
}

func (t *stubTracker) MarkSynced(_ context.Context, email string) error {
	if t.markErr != nil {
		return t.markErr
	}
	t.synced[email] = true
	return nil
}

var errStoreDown = errors.New("server selection timeout")
