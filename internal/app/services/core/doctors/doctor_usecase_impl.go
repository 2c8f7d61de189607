package doctors

import (
	"context"
	"docportal-service/internal/app/contracts"
	"docportal-service/internal/app/models"
	"docportal-service/internal/pkg/dto/requests"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
}

func NewDoctorUsecase(doctorRepository contracts.DoctorRepository) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
	}
}

func (uc *doctorUsecase) GetDoctors(ctx context.Context) ([]models.Doctor, error) {
	return uc.DoctorRepository.FindAll(ctx)
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*models.Doctor, error) {
	doctor := &models.Doctor{
		Email:     request.Email,
		Name:      request.Name,
		Specialty: request.Specialty,
		Image:     request.Image,
	}

	insertedID, err := uc.DoctorRepository.Insert(ctx, doctor)
	if err != nil {
		return nil, err
	}

	doctor.ID = insertedID
	return doctor, nil
}

func (uc *doctorUsecase) DeleteDoctor(ctx context.Context, email string) (int64, error) {
	return uc.DoctorRepository.DeleteByEmail(ctx, email)
}
