package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tripwise/travel-planner/internal/core/domain"
)

const travelsCollection = "travels"

// TravelRepository implements ports.TravelRepository on MongoDB.
type TravelRepository struct {
	coll *mongo.Collection
}

func NewTravelRepository(db *mongo.Database) *TravelRepository {
	return &TravelRepository{coll: db.Collection(travelsCollection)}
}

// Create inserts a new travel record document.
func (r *TravelRepository) Create(ctx context.Context, record *domain.TravelRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("insert travel record: %w", err)
	}
	return nil
}

// FindByUserID returns the user's travel records sorted by creation date
// descending. No matches yields an empty slice.
func (r *TravelRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.TravelRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find travel records: %w", err)
	}
	defer cursor.Close(ctx)

	records := make([]*domain.TravelRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode travel records: %w", err)
	}
	return records, nil
}

// EnsureIndexes creates the lookup index on the owning user.
func (r *TravelRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
