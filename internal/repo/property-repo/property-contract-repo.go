package property_repo

import (
	"context"

	"github.com/thomas0124/estate-portal/internal/abstraction/tx"
	"github.com/thomas0124/estate-portal/internal/entity"
	app_errors "github.com/thomas0124/estate-portal/internal/errors"
)

type PropertyRepoContract interface {
	ListProperties(ctx context.Context) ([]entity.PropertyEntity, *app_errors.AppError)
	GetPropertyByID(ctx context.Context, propertyID string) (*entity.PropertyEntity, *app_errors.AppError)
	PropertyNumberTaken(ctx context.Context, number int, excludeID string) (bool, *app_errors.AppError)
	InsertProperty(ctx context.Context, tx tx.Tx, property *entity.PropertyEntity) *app_errors.AppError
	UpdateProperty(ctx context.Context, tx tx.Tx, property *entity.PropertyEntity) *app_errors.AppError
	DeleteProperty(ctx context.Context, tx tx.Tx, propertyID string) *app_errors.AppError
}
