package lookup_repo

import (
	"context"

	"github.com/thomas0124/estate-portal/internal/abstraction/tx"
	"github.com/thomas0124/estate-portal/internal/entity"
	app_errors "github.com/thomas0124/estate-portal/internal/errors"
	"github.com/thomas0124/estate-portal/internal/state"
)

const unknownHandlerColor = "#e5e7eb"

type LookupRepo struct {
	state *state.State
}

func NewLookupRepo(s *state.State) LookupRepoContract {
	return &LookupRepo{state: s}
}

func (r *LookupRepo) ListHandlers(ctx context.Context) ([]entity.HandlerEntity, *app_errors.AppError) {
	out := make([]entity.HandlerEntity, len(r.state.Handlers))
	copy(out, r.state.Handlers)
	return out, nil
}

func (r *LookupRepo) GetHandlerByID(ctx context.Context, handlerID string) (*entity.HandlerEntity, *app_errors.AppError) {
	for i := range r.state.Handlers {
		if r.state.Handlers[i].ID == handlerID {
			h := r.state.Handlers[i]
			return &h, nil
		}
	}
	return nil, app_errors.NewAppError(app_errors.CodeNotFound, app_errors.ErrNotFound, "not_found.handler", nil)
}

func (r *LookupRepo) GetHandlerColor(ctx context.Context, handlerName string) string {
	for i := range r.state.Handlers {
		if r.state.Handlers[i].Name == handlerName {
			return r.state.Handlers[i].Color
		}
	}
	return unknownHandlerColor
}

func (r *LookupRepo) HandlerNameTaken(ctx context.Context, name, excludeID string) (bool, *app_errors.AppError) {
	for i := range r.state.Handlers {
		if r.state.Handlers[i].Name == name && r.state.Handlers[i].ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *LookupRepo) InsertHandler(ctx context.Context, _ tx.Tx, handler *entity.HandlerEntity) *app_errors.AppError {
	r.state.Handlers = append(r.state.Handlers, *handler)
	r.state.MarkDirty(state.KeyHandlers)
	return nil
}

func (r *LookupRepo) UpdateHandler(ctx context.Context, _ tx.Tx, handler *entity.HandlerEntity) *app_errors.AppError {
	for i := range r.state.Handlers {
		if r.state.Handlers[i].ID == handler.ID {
			r.state.Handlers[i] = *handler
			r.state.MarkDirty(state.KeyHandlers)
			return nil
		}
	}
	return app_errors.NewAppError(app_errors.CodeNotFound, app_errors.ErrNotFound, "not_found.handler", nil)
}

func (r *LookupRepo) DeleteHandler(ctx context.Context, _ tx.Tx, handlerID string) *app_errors.AppError {
	for i := range r.state.Handlers {
		if r.state.Handlers[i].ID == handlerID {
			r.state.Handlers = append(r.state.Handlers[:i], r.state.Handlers[i+1:]...)
			r.state.MarkDirty(state.KeyHandlers)
			return nil
		}
	}
	return app_errors.NewAppError(app_errors.CodeNotFound, app_errors.ErrNotFound, "not_found.handler", nil)
}

func (r *LookupRepo) ListBuildingTypes(ctx context.Context) ([]entity.BuildingTypeEntity, *app_errors.AppError) {
	out := make([]entity.BuildingTypeEntity, len(r.state.BuildingTypes))
	copy(out, r.state.BuildingTypes)
	return out, nil
}

func (r *LookupRepo) InsertBuildingType(ctx context.Context, _ tx.Tx, buildingType *entity.BuildingTypeEntity) *app_errors.AppError {
	r.state.BuildingTypes = append(r.state.BuildingTypes, *buildingType)
	r.state.MarkDirty(state.KeyBuildingTypes)
	return nil
}

func (r *LookupRepo) UpdateBuildingType(ctx context.Context, _ tx.Tx, buildingType *entity.BuildingTypeEntity) *app_errors.AppError {
	for i := range r.state.BuildingTypes {
		if r.state.BuildingTypes[i].ID == buildingType.ID {
			r.state.BuildingTypes[i] = *buildingType
			r.state.MarkDirty(state.KeyBuildingTypes)
			return nil
		}
	}
	return app_errors.NewAppError(app_errors.CodeNotFound, app_errors.ErrNotFound, "not_found.building_type", nil)
}

func (r *LookupRepo) DeleteBuildingType(ctx context.Context, _ tx.Tx, buildingTypeID string) *app_errors.AppError {
	for i := range r.state.BuildingTypes {
		if r.state.BuildingTypes[i].ID == buildingTypeID {
			r.state.BuildingTypes = append(r.state.BuildingTypes[:i], r.state.BuildingTypes[i+1:]...)
			r.state.MarkDirty(state.KeyBuildingTypes)
			return nil
		}
	}
	return app_errors.NewAppError(app_errors.CodeNotFound, app_errors.ErrNotFound, "not_found.building_type", nil)
}

func (r *LookupRepo) GetOwnedPropertyColor(ctx context.Context) string {
	return r.state.OwnedPropertyColor
}

func (r *LookupRepo) SetOwnedPropertyColor(ctx context.Context, _ tx.Tx, color string) *app_errors.AppError {
	r.state.OwnedPropertyColor = color
	r.state.MarkDirty(state.KeySettings)
	return nil
}
