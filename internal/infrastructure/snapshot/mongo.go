package snapshot

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sparkling-solutions/turnover-api/internal/core/ports"
)

const (
	collectionUsers      = "users"
	collectionProperties = "properties"
	collectionBookings   = "bookings"

	mongoTimeout = 10 * time.Second
)

// MongoRepository persists the snapshot across three collections. It keeps
// the port's replace-all contract: Save drops every document and reinserts
// the full set, so the collections always mirror the in-memory state.
type MongoRepository struct {
	users      *mongo.Collection
	properties *mongo.Collection
	bookings   *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		users:      db.Collection(collectionUsers),
		properties: db.Collection(collectionProperties),
		bookings:   db.Collection(collectionBookings),
	}
}

func (r *MongoRepository) Load(ctx context.Context) (*ports.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	var doc fileDocument

	cur, err := r.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	if err := cur.All(ctx, &doc.Users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	cur, err = r.properties.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find properties: %w", err)
	}
	if err := cur.All(ctx, &doc.Properties); err != nil {
		return nil, fmt.Errorf("decode properties: %w", err)
	}

	cur, err = r.bookings.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	if err := cur.All(ctx, &doc.Bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}

	// An empty database means first run: let the store seed.
	if len(doc.Users) == 0 && len(doc.Properties) == 0 && len(doc.Bookings) == 0 {
		return nil, ports.ErrNoSnapshot
	}
	return fromRecords(&doc), nil
}

func (r *MongoRepository) Save(ctx context.Context, snap *ports.Snapshot) error {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	doc := toRecords(snap)

	if err := replaceAll(ctx, r.users, asAny(doc.Users)); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	if err := replaceAll(ctx, r.properties, asAny(doc.Properties)); err != nil {
		return fmt.Errorf("save properties: %w", err)
	}
	if err := replaceAll(ctx, r.bookings, asAny(doc.Bookings)); err != nil {
		return fmt.Errorf("save bookings: %w", err)
	}
	return nil
}

func replaceAll(ctx context.Context, col *mongo.Collection, docs []any) error {
	if _, err := col.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}
	_, err := col.InsertMany(ctx, docs)
	return err
}

func asAny[T any](in []T) []any {
	out := make([]any, len(in))
	for i := range in {
		out[i] = in[i]
	}
	return out
}
