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

type MerchantRepository struct {
	client     *mongo.Client
	database   string
	collection string
}

func NewMerchantRepository(client *mongo.Client, database string) *MerchantRepository {
	return &MerchantRepository{client: client, database: database, collection: "merchants"}
}

// FindByID looks up a merchant by its identifier.
func (r *MerchantRepository) FindByID(ctx context.Context, id string) (models.Merchant, error) {
	collection := r.client.Database(r.database).Collection(r.collection)

	var merchant models.Merchant
	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&merchant)
	if err == mongo.ErrNoDocuments {
		return models.Merchant{}, errors.E(errors.NotFound, "merchant does not exist", err)
	}
	if err != nil {
		return models.Merchant{}, errors.E(errors.Internal, "merchant lookup failed", err)
	}
	return merchant, nil
}

// FindByAPIKey resolves an API credential to the merchant it was issued to.
func (r *MerchantRepository) FindByAPIKey(ctx context.Context, apiKey string) (models.Merchant, error) {
	collection := r.client.Database(r.database).Collection(r.collection)

	var merchant models.Merchant
	err := collection.FindOne(ctx, bson.M{"api_key": apiKey}).Decode(&merchant)
	if err == mongo.ErrNoDocuments {
		return models.Merchant{}, errors.E(errors.NotFound, "merchant does not exist", err)
	}
	if err != nil {
		return models.Merchant{}, errors.E(errors.Internal, "merchant lookup failed", err)
	}
	return merchant, nil
}
