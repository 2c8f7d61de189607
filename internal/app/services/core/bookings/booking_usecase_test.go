package bookings

import (
	"context"
	"docportal-service/internal/app/models"
	"docportal-service/internal/pkg/dto/requests"
	"docportal-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByTriple(ctx context.Context, treatment, date, patient string) (*models.Booking, error) {
	args := m.Called(ctx, treatment, date, patient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) Insert(ctx context.Context, booking *models.Booking) (string, bool, error) {
	args := m.Called(ctx, booking)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	args := m.Called(ctx, patient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) MarkPaid(ctx context.Context, bookingID, transactionID string) error {
	args := m.Called(ctx, bookingID, transactionID)
	return args.Error(0)
}

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

type MockRoleAuthority struct {
	mock.Mock
}

func (m *MockRoleAuthority) ResolveRole(ctx context.Context, email string) (string, bool, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockRoleAuthority) IsAdmin(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func TestBookingUsecase_CreateBooking(t *testing.T) {
	ctx := context.Background()

	request := &requests.CreateBooking{
		Treatment:   "Teeth Cleaning",
		Date:        "May 16, 2022",
		Slot:        "10:00 AM - 11:00 AM",
		Patient:     "alice@example.com",
		PatientName: "Alice",
		Price:       60,
	}

	t.Run("New Booking", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		bookingRepo.On("FindByTriple", ctx, request.Treatment, request.Date, request.Patient).Return(nil, nil)
		bookingRepo.On("Insert", ctx, mock.AnythingOfType("*models.Booking")).Return("628236f3b87f5f746ab0b6a1", false, nil)

		usecase := NewBookingUsecase(bookingRepo, new(MockServiceRepository), new(MockRoleAuthority))

		result, err := usecase.CreateBooking(ctx, request)
		assert.NoError(t, err)
		assert.True(t, result.Success, "fresh booking should succeed")
		assert.Equal(t, "628236f3b87f5f746ab0b6a1", result.InsertedID)
		assert.Equal(t, request.Treatment, result.Booking.Treatment)
		assert.False(t, result.Booking.Paid, "a new booking starts unpaid")
		bookingRepo.AssertExpectations(t)
	})

	t.Run("Pre-existing Booking Is A Conflict", func(t *testing.T) {
		existing := &models.Booking{
			ID:        "628236f3b87f5f746ab0b6a1",
			Treatment: request.Treatment,
			Date:      request.Date,
			Slot:      "09:00 AM - 10:00 AM",
			Patient:   request.Patient,
		}

		bookingRepo := new(MockBookingRepository)
		bookingRepo.On("FindByTriple", ctx, request.Treatment, request.Date, request.Patient).Return(existing, nil)

		usecase := NewBookingUsecase(bookingRepo, new(MockServiceRepository), new(MockRoleAuthority))

		result, err := usecase.CreateBooking(ctx, request)
		assert.NoError(t, err, "a conflict is not a transport error")
		assert.False(t, result.Success)
		assert.Equal(t, existing, result.Booking, "conflict carries the prior booking")
		assert.Empty(t, result.InsertedID)
		bookingRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Lost Insert Race Is The Same Conflict", func(t *testing.T) {
		existing := &models.Booking{
			ID:        "628236f3b87f5f746ab0b6a2",
			Treatment: request.Treatment,
			Date:      request.Date,
			Patient:   request.Patient,
		}

		bookingRepo := new(MockBookingRepository)
		// The pre-check sees nothing, then the unique index rejects the
		// insert because a concurrent request won.
		bookingRepo.On("FindByTriple", ctx, request.Treatment, request.Date, request.Patient).Return(nil, nil).Once()
		bookingRepo.On("Insert", ctx, mock.AnythingOfType("*models.Booking")).Return("", true, nil)
		bookingRepo.On("FindByTriple", ctx, request.Treatment, request.Date, request.Patient).Return(existing, nil).Once()

		usecase := NewBookingUsecase(bookingRepo, new(MockServiceRepository), new(MockRoleAuthority))

		result, err := usecase.CreateBooking(ctx, request)
		assert.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, existing, result.Booking)
		bookingRepo.AssertExpectations(t)
	})
}

func TestBookingUsecase_GetBookingByID(t *testing.T) {
	ctx := context.Background()

	booking := &models.Booking{
		ID:        "628236f3b87f5f746ab0b6a1",
		Treatment: "Teeth Cleaning",
		Patient:   "alice@example.com",
	}

	t.Run("Owner Reads Own Booking", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		bookingRepo.On("FindByID", ctx, booking.ID).Return(booking, nil)

		roleAuthority := new(MockRoleAuthority)

		usecase := NewBookingUsecase(bookingRepo, new(MockServiceRepository), roleAuthority)

		result, err := usecase.GetBookingByID(ctx, "alice@example.com", booking.ID)
		assert.NoError(t, err)
		assert.Equal(t, booking, result)
		roleAuthority.AssertNotCalled(t, "IsAdmin", mock.Anything, mock.Anything)
	})

	t.Run("Admin Reads Someone Else's Booking", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		bookingRepo.On("FindByID", ctx, booking.ID).Return(booking, nil)

		roleAuthority := new(MockRoleAuthority)
		roleAuthority.On("IsAdmin", ctx, "admin@example.com").Return(true, nil)

		usecase := NewBookingUsecase(bookingRepo, new(MockServiceRepository), roleAuthority)

		result, err := usecase.GetBookingByID(ctx, "admin@example.com", booking.ID)
		assert.NoError(t, err)
		assert.Equal(t, booking, result)
	})

	t.Run("Stranger Is Rejected", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		bookingRepo.On("FindByID", ctx, booking.ID).Return(booking, nil)

		roleAuthority := new(MockRoleAuthority)
		roleAuthority.On("IsAdmin", ctx, "mallory@example.com").Return(false, nil)

		usecase := NewBookingUsecase(bookingRepo, new(MockServiceRepository), roleAuthority)

		result, err := usecase.GetBookingByID(ctx, "mallory@example.com", booking.ID)
		assert.Nil(t, result)
		assert.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok, "should surface a typed error")
		assert.Equal(t, 403, customErr.StatusCode)
	})

	t.Run("Unknown Booking Yields Empty Result", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		bookingRepo.On("FindByID", ctx, "ffffffffffffffffffffffff").Return(nil, nil)

		usecase := NewBookingUsecase(bookingRepo, new(MockServiceRepository), new(MockRoleAuthority))

		result, err := usecase.GetBookingByID(ctx, "alice@example.com", "ffffffffffffffffffffffff")
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestBookingUsecase_GetBookingsByPatient(t *testing.T) {
	ctx := context.Background()

	t.Run("Matching Identity", func(t *testing.T) {
		listed := []models.Booking{
			{ID: "b2", Treatment: "Teeth Whitening", Patient: "alice@example.com"},
			{ID: "b1", Treatment: "Teeth Cleaning", Patient: "alice@example.com"},
		}

		bookingRepo := new(MockBookingRepository)
		bookingRepo.On("FindByPatient", ctx, "alice@example.com").Return(listed, nil)

		usecase := NewBookingUsecase(bookingRepo, new(MockServiceRepository), new(MockRoleAuthority))

		result, err := usecase.GetBookingsByPatient(ctx, "alice@example.com", "alice@example.com")
		assert.NoError(t, err)
		assert.Equal(t, listed, result)
	})

	t.Run("Mismatched Identity Is Rejected Before Any Read", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)

		usecase := NewBookingUsecase(bookingRepo, new(MockServiceRepository), new(MockRoleAuthority))

		result, err := usecase.GetBookingsByPatient(ctx, "mallory@example.com", "alice@example.com")
		assert.Nil(t, result)
		assert.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 403, customErr.StatusCode)
		bookingRepo.AssertNotCalled(t, "FindByPatient", mock.Anything, mock.Anything)
	})
}

func TestBookingUsecase_GetAvailability(t *testing.T) {
	ctx := context.Background()
	date := "May 16, 2022"

	services := []models.Service{
		{
			ID:    "s1",
			Name:  "Teeth Cleaning",
			Slots: []string{"08:00 AM - 09:00 AM", "09:00 AM - 10:00 AM", "10:00 AM - 11:00 AM"},
			Price: 60,
		},
		{
			ID:    "s2",
			Name:  "Teeth Whitening",
			Slots: []string{"09:00 AM - 10:00 AM"},
			Price: 120,
		},
	}

	t.Run("Booked Slots Are Subtracted Per Service", func(t *testing.T) {
		serviceRepo := new(MockServiceRepository)
		serviceRepo.On("FindAll", ctx).Return(services, nil)

		bookingRepo := new(MockBookingRepository)
		bookingRepo.On("FindByDate", ctx, date).Return([]models.Booking{
			{Treatment: "Teeth Cleaning", Date: date, Slot: "09:00 AM - 10:00 AM", Patient: "alice@example.com"},
			{Treatment: "Teeth Cleaning", Date: date, Slot: "10:00 AM - 11:00 AM", Patient: "bob@example.com"},
		}, nil)

		usecase := NewBookingUsecase(bookingRepo, serviceRepo, new(MockRoleAuthority))

		result, err := usecase.GetAvailability(ctx, date)
		assert.NoError(t, err)
		assert.Len(t, result, 2)

		assert.Equal(t, "Teeth Cleaning", result[0].Name)
		assert.Equal(t, []string{"08:00 AM - 09:00 AM"}, result[0].Slots, "booked slots must disappear")
		assert.Equal(t, float64(60), result[0].Price)

		assert.Equal(t, "Teeth Whitening", result[1].Name)
		assert.Equal(t, []string{"09:00 AM - 10:00 AM"}, result[1].Slots, "same slot label on another service stays free")
	})

	t.Run("No Bookings Leaves Full Schedule", func(t *testing.T) {
		serviceRepo := new(MockServiceRepository)
		serviceRepo.On("FindAll", ctx).Return(services, nil)

		bookingRepo := new(MockBookingRepository)
		bookingRepo.On("FindByDate", ctx, date).Return([]models.Booking{}, nil)

		usecase := NewBookingUsecase(bookingRepo, serviceRepo, new(MockRoleAuthority))

		result, err := usecase.GetAvailability(ctx, date)
		assert.NoError(t, err)
		assert.Equal(t, services[0].Slots, result[0].Slots)
		assert.Equal(t, services[1].Slots, result[1].Slots)
	})

	t.Run("Fully Booked Service Returns Empty Slots", func(t *testing.T) {
		serviceRepo := new(MockServiceRepository)
		serviceRepo.On("FindAll", ctx).Return(services, nil)

		bookingRepo := new(MockBookingRepository)
		bookingRepo.On("FindByDate", ctx, date).Return([]models.Booking{
			{Treatment: "Teeth Whitening", Date: date, Slot: "09:00 AM - 10:00 AM", Patient: "alice@example.com"},
		}, nil)

		usecase := NewBookingUsecase(bookingRepo, serviceRepo, new(MockRoleAuthority))

		result, err := usecase.GetAvailability(ctx, date)
		assert.NoError(t, err)
		assert.Empty(t, result[1].Slots)
		assert.NotNil(t, result[1].Slots, "empty availability is an empty list, not null")
	})
}
