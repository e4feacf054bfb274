package mongodb

import (
	// Go Internal Packages
	"context"

	// Local Packages
	errors "reward-stream/errors"
	models "reward-stream/models"

	// External Packages
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RewardRepository struct {
	client     *mongo.Client
	database   string
	collection string
}

func NewRewardRepository(client *mongo.Client, database string) *RewardRepository {
	return &RewardRepository{client: client, database: database, collection: "rewards"}
}

// EnsureIndexes creates the secondary index used for per-user listings.
// The primary key is the transaction id, so uniqueness per transaction
// is enforced by the store itself.
func (r *RewardRepository) EnsureIndexes(ctx context.Context) error {
	collection := r.client.Database(r.database).Collection(r.collection)
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}

// Save upserts the reward keyed by its transaction id.
func (r *RewardRepository) Save(ctx context.Context, reward models.Reward) error {
	collection := r.client.Database(r.database).Collection(r.collection)

	doc := reward.Transform()
	opts := options.Replace().SetUpsert(true)
	_, err := collection.ReplaceOne(ctx, bson.M{"_id": doc.TransactionID}, doc, opts)
	if err != nil {
		return errors.E(errors.Internal, "reward save failed", err)
	}
	return nil
}

// FindByTransactionID looks up the single reward of a transaction.
func (r *RewardRepository) FindByTransactionID(ctx context.Context, transactionID string) (models.Reward, error) {
	collection := r.client.Database(r.database).Collection(r.collection)

	var doc models.MongoReward
	err := collection.FindOne(ctx, bson.M{"_id": transactionID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.Reward{}, errors.RewardNotFoundErr(transactionID)
	}
	if err != nil {
		return models.Reward{}, errors.E(errors.Internal, "reward lookup failed", err)
	}
	return doc.Reward(), nil
}

// ListByUserID returns every reward recorded for a user.
func (r *RewardRepository) ListByUserID(ctx context.Context, userID string) ([]models.Reward, error) {
	collection := r.client.Database(r.database).Collection(r.collection)

	cursor, err := collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, errors.E(errors.Internal, "reward listing failed", err)
	}
	defer cursor.Close(ctx)

	rewards := make([]models.Reward, 0)
	for cursor.Next(ctx) {
		var doc models.MongoReward
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.E(errors.Internal, "reward decode failed", err)
		}
		rewards = append(rewards, doc.Reward())
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.E(errors.Internal, "reward listing failed", err)
	}
	return rewards, nil
}
