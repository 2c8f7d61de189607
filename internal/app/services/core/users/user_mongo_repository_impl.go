package users

import (
	"context"
	"docportal-service/internal/app/contracts"
	"docportal-service/internal/app/models"
	"docportal-service/internal/pkg/constvars"
	"docportal-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Client, dbName string) contracts.UserRepository {
	return &UserMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUsers),
	}
}

func (r *UserMongoRepository) UpsertByEmail(ctx context.Context, email string, user *models.User) (int64, int64, string, error) {
	now := time.Now()
	set := bson.M{
		"email":     email,
		"updatedAt": now,
	}
	if user.Name != "" {
		set["name"] = user.Name
	}
	if user.Photo != "" {
		set["photo"] = user.Photo
	}
	if user.Phone != "" {
		set["phone"] = user.Phone
	}

	// Document ids are hex strings assigned here, so decoding back into
	// the model never trips over a driver ObjectID.
	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID().Hex(),
			"createdAt": now,
		},
	}
	opts := options.Update().SetUpsert(true)

	result, err := r.Collection.UpdateOne(ctx, bson.M{"email": email}, update, opts)
	if err != nil {
		return 0, 0, "", exceptions.ErrMongoDBUpdateDocument(err)
	}

	upsertedID, _ := result.UpsertedID.(string)
	return result.MatchedCount, result.ModifiedCount, upsertedID, nil
}

func (r *UserMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

func (r *UserMongoRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return users, nil
}

func (r *UserMongoRepository) SetRole(ctx context.Context, email, role string) (int64, int64, error) {
	update := bson.M{
		"$set": bson.M{
			"role":      role,
			"updatedAt": time.Now(),
		},
	}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return 0, 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount, result.ModifiedCount, nil
}
