package admin_case

import (
	"context"

	admin_dto "github.com/thomas0124/estate-portal/internal/dtos/admin-dto"
	"github.com/thomas0124/estate-portal/internal/entity"
	app_errors "github.com/thomas0124/estate-portal/internal/errors"
)

// AdminServiceContract manages the reference data: handlers, building types
// and the owned-property display color. Every mutation is admin only.
type AdminServiceContract interface {
	ListHandlers(ctx context.Context) ([]entity.HandlerEntity, *app_errors.AppError)
	AddHandler(ctx context.Context, actor *entity.UserEntity, req *admin_dto.SaveHandlerRequest) (*entity.HandlerEntity, *app_errors.AppError)
	UpdateHandler(ctx context.Context, actor *entity.UserEntity, handlerID string, req *admin_dto.SaveHandlerRequest) (*entity.HandlerEntity, *app_errors.AppError)
	DeleteHandler(ctx context.Context, actor *entity.UserEntity, handlerID string) *app_errors.AppError

	ListBuildingTypes(ctx context.Context) ([]entity.BuildingTypeEntity, *app_errors.AppError)
	AddBuildingType(ctx context.Context, actor *entity.UserEntity, req *admin_dto.SaveBuildingTypeRequest) (*entity.BuildingTypeEntity, *app_errors.AppError)
	UpdateBuildingType(ctx context.Context, actor *entity.UserEntity, buildingTypeID string, req *admin_dto.SaveBuildingTypeRequest) (*entity.BuildingTypeEntity, *app_errors.AppError)
	DeleteBuildingType(ctx context.Context, actor *entity.UserEntity, buildingTypeID string) *app_errors.AppError

	GetOwnedPropertyColor(ctx context.Context) string
	UpdateOwnedPropertyColor(ctx context.Context, actor *entity.UserEntity, req *admin_dto.UpdateOwnedPropertyColorRequest) *app_errors.AppError
}
