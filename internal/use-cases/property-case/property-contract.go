package property_case

import (
	"context"

	property_dto "github.com/thomas0124/estate-portal/internal/dtos/property-dto"
	"github.com/thomas0124/estate-portal/internal/entity"
	app_errors "github.com/thomas0124/estate-portal/internal/errors"
)

type PropertyServiceContract interface {
	CreateProperty(ctx context.Context, actor *entity.UserEntity, req *property_dto.SavePropertyRequest) (*property_dto.SavePropertyResponse, *app_errors.AppError)
	UpdateProperty(ctx context.Context, propertyID string, req *property_dto.SavePropertyRequest) (*property_dto.SavePropertyResponse, *app_errors.AppError)
	DeleteProperty(ctx context.Context, propertyID string) *app_errors.AppError
	GetPropertyByID(ctx context.Context, propertyID string) (*entity.PropertyEntity, *app_errors.AppError)
	ListProperties(ctx context.Context, filter *property_dto.PropertyListFilter) ([]entity.PropertyEntity, *app_errors.AppError)
	SyncAthomePrices(ctx context.Context) ([]property_dto.SyncedPriceResponse, *app_errors.AppError)
}
