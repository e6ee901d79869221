package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yusufkecer/wellness-backend/internal/domain"
)

type preferenceDocument struct {
	UserID      string               `bson:"_id"`
	Preferences domain.PreferenceSet `bson:",inline"`
	UpdatedAt   time.Time            `bson:"updated_at"`
}

// MongoPreferenceRepository keeps one document per user, keyed by user id.
type MongoPreferenceRepository struct {
	coll *mongo.Collection
}

func NewMongoPreferenceRepository(coll *mongo.Collection) *MongoPreferenceRepository {
	return &MongoPreferenceRepository{coll: coll}
}

func (r *MongoPreferenceRepository) Get(ctx context.Context, userID string) (*domain.StoredPreferences, error) {
	var prefs domain.StoredPreferences
	err := r.coll.FindOne(ctx, bson.M{"_id": userID}).Decode(&prefs)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewStorageError("get preferences", err)
	}
	return &prefs, nil
}

func (r *MongoPreferenceRepository) Replace(ctx context.Context, userID string, prefs domain.PreferenceSet) error {
	doc := preferenceDocument{
		UserID:      userID,
		Preferences: prefs,
		UpdatedAt:   time.Now().UTC(),
	}
	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"_id": userID},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return domain.NewStorageError("save preferences", err)
	}
	return nil
}
