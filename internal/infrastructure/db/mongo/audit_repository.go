package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eventportal/access-service/internal/core/domain"
)

const collectionRoleAudit = "role_audit"

// RoleAuditRepository implements ports.RoleAuditRepository using MongoDB.
type RoleAuditRepository struct {
	col *mongo.Collection
}

func NewRoleAuditRepository(db *mongo.Database) *RoleAuditRepository {
	return &RoleAuditRepository{col: db.Collection(collectionRoleAudit)}
}

// Insert persists an entry to the role_audit collection.
func (r *RoleAuditRepository) Insert(ctx context.Context, entry *domain.RoleAuditEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"event_id":    entry.EventID,
		"user_id":     entry.UserID,
		"action":      string(entry.Action),
		"role":        string(entry.Role),
		"actor_email": entry.ActorEmail,
		"timestamp":   entry.Timestamp.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if entry.PreviousRole != "" {
		doc["previous_role"] = string(entry.PreviousRole)
	}

	_, err := r.col.InsertOne(ctx, doc)
	return err
}

// EnsureIndexes creates the per-event history index.
func (r *RoleAuditRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "event_id", Value: 1}, {Key: "timestamp", Value: -1}},
	})
	return err
}
