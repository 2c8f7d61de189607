package bookings

import (
	"context"
	"docportal-service/internal/app/contracts"
	"docportal-service/internal/app/models"
	"docportal-service/internal/pkg/dto/requests"
	"docportal-service/internal/pkg/dto/responses"
	"docportal-service/internal/pkg/exceptions"
)

type bookingUsecase struct {
	BookingRepository contracts.BookingRepository
	ServiceRepository contracts.ServiceRepository
	RoleAuthority     contracts.RoleAuthority
}

func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	serviceRepository contracts.ServiceRepository,
	roleAuthority contracts.RoleAuthority,
) contracts.BookingUsecase {
	return &bookingUsecase{
		BookingRepository: bookingRepository,
		ServiceRepository: serviceRepository,
		RoleAuthority:     roleAuthority,
	}
}

// CreateBooking enforces one booking per (treatment, date, patient). A
// duplicate is a non-fatal conflict carrying the existing record, not an
// error. The requested slot is deliberately not re-checked against the
// availability set; two patients racing for the same slot on the same date
// remain possible at this level.
func (uc *bookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.CreateBooking, error) {
	existing, err := uc.BookingRepository.FindByTriple(ctx, request.Treatment, request.Date, request.Patient)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &responses.CreateBooking{
			Success: false,
			Booking: existing,
		}, nil
	}

	booking := &models.Booking{
		Treatment:   request.Treatment,
		Date:        request.Date,
		Slot:        request.Slot,
		Patient:     request.Patient,
		PatientName: request.PatientName,
		Price:       request.Price,
		Paid:        false,
	}

	insertedID, duplicate, err := uc.BookingRepository.Insert(ctx, booking)
	if err != nil {
		return nil, err
	}
	if duplicate {
		// Lost the race against a concurrent create for the same triple;
		// the unique index caught it. Same conflict contract as above.
		existing, err := uc.BookingRepository.FindByTriple(ctx, request.Treatment, request.Date, request.Patient)
		if err != nil {
			return nil, err
		}
		return &responses.CreateBooking{
			Success: false,
			Booking: existing,
		}, nil
	}

	booking.ID = insertedID
	return &responses.CreateBooking{
		Success:    true,
		Booking:    booking,
		InsertedID: insertedID,
	}, nil
}

// GetBookingByID serves the payment page; only the booking owner or an
// admin may read it. Not found yields an empty result, nothing is
// fabricated.
func (uc *bookingUsecase) GetBookingByID(ctx context.Context, claimedEmail, bookingID string) (*models.Booking, error) {
	booking, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, nil
	}

	if booking.Patient != claimedEmail {
		isAdmin, err := uc.RoleAuthority.IsAdmin(ctx, claimedEmail)
		if err != nil {
			return nil, err
		}
		if !isAdmin {
			return nil, exceptions.ErrNotOwnerNorAdmin(nil)
		}
	}
	return booking, nil
}

// GetBookingsByPatient is self-service only, the verified identity must
// equal the requested patient email exactly.
func (uc *bookingUsecase) GetBookingsByPatient(ctx context.Context, claimedEmail, patient string) ([]models.Booking, error) {
	if claimedEmail != patient {
		return nil, exceptions.ErrPatientMismatch(nil)
	}
	return uc.BookingRepository.FindByPatient(ctx, patient)
}

// GetAvailability recomputes per-service remaining slots for the target
// date on every call. Nothing is cached or persisted, so the result is
// always consistent with the current ledger. Slot labels are matched by
// exact string equality.
func (uc *bookingUsecase) GetAvailability(ctx context.Context, date string) ([]responses.ServiceAvailability, error) {
	services, err := uc.ServiceRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.BookingRepository.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	bookedSlots := make(map[string]map[string]struct{})
	for _, booking := range bookings {
		if bookedSlots[booking.Treatment] == nil {
			bookedSlots[booking.Treatment] = make(map[string]struct{})
		}
		bookedSlots[booking.Treatment][booking.Slot] = struct{}{}
	}

	availability := make([]responses.ServiceAvailability, 0, len(services))
	for _, service := range services {
		booked := bookedSlots[service.Name]

		// Catalog order is preserved by filtering in place of the
		// original slot sequence.
		available := make([]string, 0, len(service.Slots))
		for _, slot := range service.Slots {
			if _, taken := booked[slot]; !taken {
				available = append(available, slot)
			}
		}

		availability = append(availability, responses.ServiceAvailability{
			ID:    service.ID,
			Name:  service.Name,
			Slots: available,
			Price: service.Price,
		})
	}
	return availability, nil
}
