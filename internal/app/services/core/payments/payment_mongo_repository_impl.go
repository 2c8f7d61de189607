package payments

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

type PaymentMongoRepository struct {
	Collection *mongo.Collection
}

func NewPaymentMongoRepository(db *mongo.Client, dbName string) contracts.PaymentRepository {
	return &PaymentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPayments),
	}
}

// UpsertByTransactionID keeps the audit trail append-only per transaction:
// the first reconciliation writes the record, a replay of the same
// transaction id matches the existing document instead of appending a
// second, diverging one.
func (r *PaymentMongoRepository) UpsertByTransactionID(ctx context.Context, payment *models.Payment) error {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"transactionId": payment.TransactionID,
			"amount":        payment.Amount,
			"bookingId":     payment.BookingID,
			"patient":       payment.Patient,
			"updatedAt":     now,
		},
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID().Hex(),
			"createdAt": now,
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := r.Collection.UpdateOne(ctx, bson.M{"transactionId": payment.TransactionID}, update, opts)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
