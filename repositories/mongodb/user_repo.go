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

type UserRepository struct {
	client     *mongo.Client
	database   string
	collection string
}

func NewUserRepository(client *mongo.Client, database string) *UserRepository {
	return &UserRepository{client: client, database: database, collection: "users"}
}

// FindByID looks up a user by its identifier.
func (r *UserRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	collection := r.client.Database(r.database).Collection(r.collection)

	var user models.User
	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, errors.E(errors.NotFound, "user does not exist", err)
	}
	if err != nil {
		return models.User{}, errors.E(errors.Internal, "user lookup failed", err)
	}
	return user, nil
}
