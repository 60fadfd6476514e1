package mongo

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eventportal/access-service/internal/core/domain"
)

func TestParseID(t *testing.T) {
	oid := primitive.NewObjectID()
	got, ok := parseID(oid.Hex())
	if !ok || got != oid {
		t.Fatalf("parseID(%q) = %v, %v", oid.Hex(), got, ok)
	}
	if _, ok := parseID("not-an-id"); ok {
		t.Fatalf("malformed id must not parse")
	}

	ids := parseIDs([]string{oid.Hex(), "bad", ""})
	if len(ids) != 1 || ids[0] != oid {
		t.Fatalf("parseIDs should skip malformed ids, got %v", ids)
	}
}

func TestPairFilter(t *testing.T) {
	eid, uid := primitive.NewObjectID(), primitive.NewObjectID()

	filter, ok := pairFilter(eid.Hex(), uid.Hex())
	if !ok || filter["event_id"] != eid || filter["user_id"] != uid {
		t.Fatalf("unexpected filter: %v ok=%v", filter, ok)
	}
	if _, ok := pairFilter("bad", uid.Hex()); ok {
		t.Fatalf("malformed event id must not build a filter")
	}
	if _, ok := pairFilter(eid.Hex(), "bad"); ok {
		t.Fatalf("malformed user id must not build a filter")
	}
}

func TestDocsToDomain(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	uid, eid := primitive.NewObjectID(), primitive.NewObjectID()

	u := userDoc{ID: uid, Email: "a@x.com", Role: "super_admin", CreatedAt: now, UpdatedAt: now}.toDomain()
	if u.ID != uid.Hex() || u.Role != domain.RoleSuperAdmin {
		t.Fatalf("unexpected user: %+v", u)
	}

	er := eventRoleDoc{ID: primitive.NewObjectID(), EventID: eid, UserID: uid, Role: "jury_member"}.toDomain()
	if er.EventID != eid.Hex() || er.UserID != uid.Hex() || er.Role != domain.EventRoleJuryMember {
		t.Fatalf("unexpected event role: %+v", er)
	}

	e := eventDoc{ID: eid, Name: "Finals", Status: "archived"}.toDomain()
	if e.Status != domain.EventArchived || e.ID != eid.Hex() {
		t.Fatalf("unexpected event: %+v", e)
	}
}
