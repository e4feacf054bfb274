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
)

type TransactionRepository struct {
	client     *mongo.Client
	database   string
	collection string
}

func NewTransactionRepository(client *mongo.Client, database string) *TransactionRepository {
	return &TransactionRepository{client: client, database: database, collection: "transactions"}
}

// FindByID looks up a transaction by its identifier.
func (r *TransactionRepository) FindByID(ctx context.Context, id string) (models.Transaction, error) {
	collection := r.client.Database(r.database).Collection(r.collection)

	var tx models.Transaction
	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&tx)
	if err == mongo.ErrNoDocuments {
		return models.Transaction{}, errors.TransactionNotFoundErr(id)
	}
	if err != nil {
		return models.Transaction{}, errors.E(errors.Internal, "transaction lookup failed", err)
	}
	return tx, nil
}
