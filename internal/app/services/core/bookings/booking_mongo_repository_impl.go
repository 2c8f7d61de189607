package bookings

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

type BookingMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingMongoRepository(db *mongo.Client, dbName string) contracts.BookingRepository {
	return &BookingMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBookings),
	}
}

// EnsureIndexes creates the unique index over (treatment, date, patient).
// With it, two concurrent creates for the same triple cannot both insert;
// the loser surfaces as a duplicate-key error which the ledger maps to the
// ordinary conflict result.
func (r *BookingMongoRepository) EnsureIndexes(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys: bson.D{
			{Key: "treatment", Value: 1},
			{Key: "date", Value: 1},
			{Key: "patient", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}
	_, err := r.Collection.Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *BookingMongoRepository) FindByTriple(ctx context.Context, treatment, date, patient string) (*models.Booking, error) {
	filter := bson.M{
		"treatment": treatment,
		"date":      date,
		"patient":   patient,
	}

	var booking models.Booking
	err := r.Collection.FindOne(ctx, filter).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &booking, nil
}

func (r *BookingMongoRepository) Insert(ctx context.Context, booking *models.Booking) (string, bool, error) {
	now := time.Now()
	booking.ID = primitive.NewObjectID().Hex()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	_, err := r.Collection.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", true, nil
		}
		return "", false, exceptions.ErrMongoDBInsertDocument(err)
	}
	return booking.ID, false, nil
}

func (r *BookingMongoRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	if _, err := primitive.ObjectIDFromHex(bookingID); err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var booking models.Booking
	err := r.Collection.FindOne(ctx, bson.M{"_id": bookingID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &booking, nil
}

func (r *BookingMongoRepository) FindByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"patient": patient}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}

func (r *BookingMongoRepository) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}

// MarkPaid is an upsert-style set, repeating it with the same transaction
// id leaves the booking unchanged. A paid booking never reverts.
func (r *BookingMongoRepository) MarkPaid(ctx context.Context, bookingID, transactionID string) error {
	if _, err := primitive.ObjectIDFromHex(bookingID); err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{
		"$set": bson.M{
			"paid":          true,
			"transactionId": transactionID,
			"updatedAt":     time.Now(),
		},
	}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": bookingID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
