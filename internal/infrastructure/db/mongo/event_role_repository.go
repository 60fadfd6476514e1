package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eventportal/access-service/internal/core/domain"
)

const collectionEventRoles = "event_roles"

// EventRoleRepository implements ports.EventRoleRepository using MongoDB.
// The unique (event_id, user_id) index enforces one role per pair.
type EventRoleRepository struct {
	col *mongo.Collection
}

func NewEventRoleRepository(db *mongo.Database) *EventRoleRepository {
	return &EventRoleRepository{col: db.Collection(collectionEventRoles)}
}

type eventRoleDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	EventID   primitive.ObjectID `bson:"event_id"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Role      string             `bson:"role"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d eventRoleDoc) toDomain() *domain.EventRole {
	return &domain.EventRole{
		ID:        d.ID.Hex(),
		EventID:   d.EventID.Hex(),
		UserID:    d.UserID.Hex(),
		Role:      domain.EventRoleType(d.Role),
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

// pairFilter builds the (event_id, user_id) filter. ok is false when either
// id is malformed, in which case no row can match.
func pairFilter(eventID, userID string) (bson.M, bool) {
	eid, ok := parseID(eventID)
	if !ok {
		return nil, false
	}
	uid, ok := parseID(userID)
	if !ok {
		return nil, false
	}
	return bson.M{"event_id": eid, "user_id": uid}, true
}

func (r *EventRoleRepository) Find(ctx context.Context, eventID, userID string) (*domain.EventRole, error) {
	filter, ok := pairFilter(eventID, userID)
	if !ok {
		return nil, domain.ErrEventRoleNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc eventRoleDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventRoleNotFound
		}
		return nil, fmt.Errorf("find event role: %w", err)
	}
	return doc.toDomain(), nil
}

// Insert adds a new assignment. A second assignment for the same pair is
// rejected by the unique index and reported as domain.ErrEventRoleExists.
func (r *EventRoleRepository) Insert(ctx context.Context, er *domain.EventRole) (*domain.EventRole, error) {
	eid, ok := parseID(er.EventID)
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	uid, ok := parseID(er.UserID)
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := eventRoleDoc{
		ID:        primitive.NewObjectID(),
		EventID:   eid,
		UserID:    uid,
		Role:      string(er.Role),
		CreatedAt: er.CreatedAt,
		UpdatedAt: er.UpdatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEventRoleExists
		}
		return nil, fmt.Errorf("insert event role: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *EventRoleRepository) UpdateRole(ctx context.Context, eventID, userID string, role domain.EventRoleType) (*domain.EventRole, error) {
	filter, ok := pairFilter(eventID, userID)
	if !ok {
		return nil, domain.ErrEventRoleNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"role": string(role), "updated_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc eventRoleDoc
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventRoleNotFound
		}
		return nil, fmt.Errorf("update event role: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *EventRoleRepository) Delete(ctx context.Context, eventID, userID string) error {
	filter, ok := pairFilter(eventID, userID)
	if !ok {
		return domain.ErrEventRoleNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete event role: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEventRoleNotFound
	}
	return nil
}

func (r *EventRoleRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.EventRole, error) {
	eid, ok := parseID(eventID)
	if !ok {
		return []*domain.EventRole{}, nil
	}
	return r.find(ctx, bson.M{"event_id": eid})
}

func (r *EventRoleRepository) ListByUser(ctx context.Context, userID string) ([]*domain.EventRole, error) {
	uid, ok := parseID(userID)
	if !ok {
		return []*domain.EventRole{}, nil
	}
	return r.find(ctx, bson.M{"user_id": uid})
}

func (r *EventRoleRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	uid, ok := parseID(userID)
	if !ok {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"user_id": uid})
	if err != nil {
		return 0, fmt.Errorf("delete user event roles: %w", err)
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the unique pair index and the per-user lookup index.
func (r *EventRoleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "event_id", Value: 1}, {Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *EventRoleRepository) find(ctx context.Context, filter bson.M) ([]*domain.EventRole, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find event roles: %w", err)
	}
	defer cur.Close(ctx)

	var docs []eventRoleDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode event roles: %w", err)
	}

	roles := make([]*domain.EventRole, 0, len(docs))
	for _, d := range docs {
		roles = append(roles, d.toDomain())
	}
	return roles, nil
}
