package contracts

import (
	"context"
	"docportal-service/internal/app/models"
	"docportal-service/internal/pkg/dto/requests"
	"docportal-service/internal/pkg/dto/responses"
)

type BookingRepository interface {
	// EnsureIndexes creates the unique index over
	// (treatment, date, patient) that closes the check-then-insert race.
	EnsureIndexes(ctx context.Context) error
	FindByTriple(ctx context.Context, treatment, date, patient string) (*models.Booking, error)
	Insert(ctx context.Context, booking *models.Booking) (insertedID string, duplicate bool, err error)
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	// FindByPatient returns newest-first.
	FindByPatient(ctx context.Context, patient string) ([]models.Booking, error)
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
	MarkPaid(ctx context.Context, bookingID, transactionID string) error
}

type BookingUsecase interface {
	CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.CreateBooking, error)
	GetBookingByID(ctx context.Context, claimedEmail, bookingID string) (*models.Booking, error)
	GetBookingsByPatient(ctx context.Context, claimedEmail, patient string) ([]models.Booking, error)
	GetAvailability(ctx context.Context, date string) ([]responses.ServiceAvailability, error)
}
