package domain

import "context"

// Identity is the authenticated person behind a request, as asserted by the
// identity provider session. The zero value means "no session".
type Identity struct {
	Email     string
	Name      string
	AvatarURL string
}

// Authenticated reports whether the identity carries an email.
func (i Identity) Authenticated() bool {
	return NormalizeEmail(i.Email) != ""
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity stored by WithIdentity, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	if !ok || !id.Authenticated() {
		return Identity{}, false
	}
	return id, true
}
