package contracts

import (
	"context"
	"docportal-service/internal/app/models"
	"docportal-service/internal/pkg/dto/requests"
)

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	Insert(ctx context.Context, doctor *models.Doctor) (insertedID string, err error)
	DeleteByEmail(ctx context.Context, email string) (deletedCount int64, err error)
}

type DoctorUsecase interface {
	GetDoctors(ctx context.Context) ([]models.Doctor, error)
	CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*models.Doctor, error)
	DeleteDoctor(ctx context.Context, email string) (deletedCount int64, err error)
}
