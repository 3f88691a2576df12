package admin_case

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/thomas0124/estate-portal/internal/abstraction/tx"
	admin_dto "github.com/thomas0124/estate-portal/internal/dtos/admin-dto"
	"github.com/thomas0124/estate-portal/internal/entity"
	app_errors "github.com/thomas0124/estate-portal/internal/errors"
	lookup_repo "github.com/thomas0124/estate-portal/internal/repo/lookup-repo"
	"github.com/thomas0124/estate-portal/internal/state"
	"github.com/thomas0124/estate-portal/internal/validation"
)

type AdminService struct {
	repo      lookup_repo.LookupRepoContract
	txManager tx.TxManager
}

func NewAdminService(s *state.State) AdminServiceContract {
	return &AdminService{
		repo:      lookup_repo.NewLookupRepo(s),
		txManager: tx.NewStateTxManager(s),
	}
}

func requireAdmin(actor *entity.UserEntity) *app_errors.AppError {
	if !actor.IsAdmin() {
		return app_errors.NewAppError(app_errors.CodeForbidden, app_errors.ErrForbidden, "forbidden.admin_only", nil)
	}
	return nil
}

func (s *AdminService) ListHandlers(ctx context.Context) ([]entity.HandlerEntity, *app_errors.AppError) {
	return s.repo.ListHandlers(ctx)
}

func (s *AdminService) AddHandler(ctx context.Context, actor *entity.UserEntity, req *admin_dto.SaveHandlerRequest) (*entity.HandlerEntity, *app_errors.AppError) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	taken, err := s.repo.HandlerNameTaken(ctx, req.Name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, app_errors.NewAppError(app_errors.CodeConflict, app_errors.ErrConflict, "conflict.handler_name_taken", nil)
	}

	handlerID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(app_errors.CodeInternal, app_errors.ErrInternal, "internal_error", idErr)
	}

	handler := &entity.HandlerEntity{
		ID:    handlerID.String(),
		Name:  req.Name,
		Color: req.Color,
	}

	txn, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer txn.Rollback(ctx)

	if err := s.repo.InsertHandler(ctx, txn, handler); err != nil {
		return nil, err
	}
	if err := txn.Commit(ctx); err != nil {
		return nil, err
	}

	log.Info().Str("handler_id", handler.ID).Str("name", handler.Name).Msg("handler added")
	return handler, nil
}

func (s *AdminService) UpdateHandler(ctx context.Context, actor *entity.UserEntity, handlerID string, req *admin_dto.SaveHandlerRequest) (*entity.HandlerEntity, *app_errors.AppError) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetHandlerByID(ctx, handlerID); err != nil {
		return nil, err
	}

	taken, err := s.repo.HandlerNameTaken(ctx, req.Name, handlerID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, app_errors.NewAppError(app_errors.CodeConflict, app_errors.ErrConflict, "conflict.handler_name_taken", nil)
	}

	// Properties and tasks reference handlers by name, not by id. A rename
	// does not cascade; existing records keep the old name.
	handler := &entity.HandlerEntity{
		ID:    handlerID,
		Name:  req.Name,
		Color: req.Color,
	}

	txn, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer txn.Rollback(ctx)

	if err := s.repo.UpdateHandler(ctx, txn, handler); err != nil {
		return nil, err
	}
	if err := txn.Commit(ctx); err != nil {
		return nil, err
	}

	log.Info().Str("handler_id", handlerID).Str("name", handler.Name).Msg("handler updated")
	return handler, nil
}

func (s *AdminService) DeleteHandler(ctx context.Context, actor *entity.UserEntity, handlerID string) *app_errors.AppError {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	if _, err := s.repo.GetHandlerByID(ctx, handlerID); err != nil {
		return err
	}

	txn, err := s.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer txn.Rollback(ctx)

	if err := s.repo.DeleteHandler(ctx, txn, handlerID); err != nil {
		return err
	}
	if err := txn.Commit(ctx); err != nil {
		return err
	}

	log.Info().Str("handler_id", handlerID).Msg("handler deleted")
	return nil
}

func (s *AdminService) ListBuildingTypes(ctx context.Context) ([]entity.BuildingTypeEntity, *app_errors.AppError) {
	return s.repo.ListBuildingTypes(ctx)
}

func (s *AdminService) AddBuildingType(ctx context.Context, actor *entity.UserEntity, req *admin_dto.SaveBuildingTypeRequest) (*entity.BuildingTypeEntity, *app_errors.AppError) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	buildingTypeID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(app_errors.CodeInternal, app_errors.ErrInternal, "internal_error", idErr)
	}

	buildingType := &entity.BuildingTypeEntity{
		ID:   buildingTypeID.String(),
		Name: req.Name,
		Icon: req.Icon,
	}

	txn, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer txn.Rollback(ctx)

	if err := s.repo.InsertBuildingType(ctx, txn, buildingType); err != nil {
		return nil, err
	}
	if err := txn.Commit(ctx); err != nil {
		return nil, err
	}

	log.Info().Str("building_type_id", buildingType.ID).Str("name", buildingType.Name).Msg("building type added")
	return buildingType, nil
}

func (s *AdminService) UpdateBuildingType(ctx context.Context, actor *entity.UserEntity, buildingTypeID string, req *admin_dto.SaveBuildingTypeRequest) (*entity.BuildingTypeEntity, *app_errors.AppError) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validation.ValidateStruct(req); err != nil {
		return nil, err
	}

	buildingType := &entity.BuildingTypeEntity{
		ID:   buildingTypeID,
		Name: req.Name,
		Icon: req.Icon,
	}

	txn, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer txn.Rollback(ctx)

	if err := s.repo.UpdateBuildingType(ctx, txn, buildingType); err != nil {
		return nil, err
	}
	if err := txn.Commit(ctx); err != nil {
		return nil, err
	}

	log.Info().Str("building_type_id", buildingTypeID).Msg("building type updated")
	return buildingType, nil
}

func (s *AdminService) DeleteBuildingType(ctx context.Context, actor *entity.UserEntity, buildingTypeID string) *app_errors.AppError {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	txn, err := s.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer txn.Rollback(ctx)

	if err := s.repo.DeleteBuildingType(ctx, txn, buildingTypeID); err != nil {
		return err
	}
	if err := txn.Commit(ctx); err != nil {
		return err
	}

	log.Info().Str("building_type_id", buildingTypeID).Msg("building type deleted")
	return nil
}

func (s *AdminService) GetOwnedPropertyColor(ctx context.Context) string {
	return s.repo.GetOwnedPropertyColor(ctx)
}

func (s *AdminService) UpdateOwnedPropertyColor(ctx context.Context, actor *entity.UserEntity, req *admin_dto.UpdateOwnedPropertyColorRequest) *app_errors.AppError {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := validation.ValidateStruct(req); err != nil {
		return err
	}

	txn, err := s.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer txn.Rollback(ctx)

	if err := s.repo.SetOwnedPropertyColor(ctx, txn, req.Color); err != nil {
		return err
	}
	if err := txn.Commit(ctx); err != nil {
		return err
	}

	log.Info().Str("color", req.Color).Msg("owned property color updated")
	return nil
}
