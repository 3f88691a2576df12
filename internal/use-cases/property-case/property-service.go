package property_case

import (
	"context"
	"time"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog/log"

	"github.com/thomas0124/estate-portal/internal/abstraction/tx"
	"github.com/thomas0124/estate-portal/internal/athome"
	property_dto "github.com/thomas0124/estate-portal/internal/dtos/property-dto"
	"github.com/thomas0124/estate-portal/internal/entity"
	app_errors "github.com/thomas0124/estate-portal/internal/errors"
	lookup_repo "github.com/thomas0124/estate-portal/internal/repo/lookup-repo"
	property_repo "github.com/thomas0124/estate-portal/internal/repo/property-repo"
	task_repo "github.com/thomas0124/estate-portal/internal/repo/task-repo"
	"github.com/thomas0124/estate-portal/internal/state"
	"github.com/thomas0124/estate-portal/internal/validation"
)

type PropertyService struct {
	repo       property_repo.PropertyRepoContract
	taskRepo   task_repo.TaskRepoContract
	lookupRepo lookup_repo.LookupRepoContract
	txManager  tx.TxManager
	prices     athome.PriceSource
}

func NewPropertyService(s *state.State, prices athome.PriceSource) PropertyServiceContract {
	return &PropertyService{
		repo:       property_repo.NewPropertyRepo(s),
		taskRepo:   task_repo.NewTaskRepo(s),
		lookupRepo: lookup_repo.NewLookupRepo(s),
		txManager:  tx.NewStateTxManager(s),
		prices:     prices,
	}
}

func (s *PropertyService) CreateProperty(ctx context.Context, actor *entity.UserEntity, req *property_dto.SavePropertyRequest) (*property_dto.SavePropertyResponse, *app_errors.AppError) {
	res := validation.ValidateProperty(req)
	if req.PropertyNumber == 0 {
		res.Valid = false
		res.Errors = append(res.Errors, app_errors.FieldError{
			Field:      "property_number",
			Reason:     "required",
			MessageKey: "validation.property_number",
		})
	}
	if err := res.Err(); err != nil {
		return nil, err
	}

	taken, err := s.repo.PropertyNumberTaken(ctx, req.PropertyNumber, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, app_errors.NewAppError(app_errors.CodeConflict, app_errors.ErrConflict, "conflict.property_number_taken", nil)
	}

	propertyID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(app_errors.CodeInternal, app_errors.ErrInternal, "internal_error", idErr)
	}

	createdBy := ""
	if actor != nil {
		createdBy = actor.ID
	}

	now := time.Now()
	property := propertyFromRequest(req)
	property.ID = propertyID.String()
	property.PropertyNumber = req.PropertyNumber
	property.CreatedAt = now
	property.UpdatedAt = now
	property.CreatedBy = createdBy

	txn, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer txn.Rollback(ctx)

	if err := s.repo.InsertProperty(ctx, txn, property); err != nil {
		return nil, err
	}

	taskCreated, err := s.syncPropertyToTask(ctx, txn, property)
	if err != nil {
		return nil, err
	}

	if err := txn.Commit(ctx); err != nil {
		return nil, err
	}

	log.Info().Str("property_id", property.ID).Int("property_number", property.PropertyNumber).Bool("task_created", taskCreated).Msg("property created")

	return &property_dto.SavePropertyResponse{
		PropertyID:     property.ID,
		PropertyNumber: property.PropertyNumber,
		PropertyName:   property.PropertyName,
		Status:         string(property.Status),
		TaskCreated:    taskCreated,
		UpdatedAt:      property.UpdatedAt,
	}, nil
}

func (s *PropertyService) UpdateProperty(ctx context.Context, propertyID string, req *property_dto.SavePropertyRequest) (*property_dto.SavePropertyResponse, *app_errors.AppError) {
	if err := validation.ValidateProperty(req).Err(); err != nil {
		return nil, err
	}

	original, err := s.repo.GetPropertyByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	// The property number is fixed at creation; whatever the request carries
	// is discarded.
	property := propertyFromRequest(req)
	property.ID = original.ID
	property.PropertyNumber = original.PropertyNumber
	property.CreatedAt = original.CreatedAt
	property.CreatedBy = original.CreatedBy
	property.UpdatedAt = time.Now()

	txn, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer txn.Rollback(ctx)

	if err := s.repo.UpdateProperty(ctx, txn, property); err != nil {
		return nil, err
	}

	taskCreated := false
	if property.Status == entity.StatusPostContract && original.Status != entity.StatusPostContract {
		taskCreated, err = s.syncPropertyToTask(ctx, txn, property)
		if err != nil {
			return nil, err
		}
	}

	if err := txn.Commit(ctx); err != nil {
		return nil, err
	}

	log.Info().Str("property_id", property.ID).Str("status", string(property.Status)).Bool("task_created", taskCreated).Msg("property updated")

	return &property_dto.SavePropertyResponse{
		PropertyID:     property.ID,
		PropertyNumber: property.PropertyNumber,
		PropertyName:   property.PropertyName,
		Status:         string(property.Status),
		TaskCreated:    taskCreated,
		UpdatedAt:      property.UpdatedAt,
	}, nil
}

func (s *PropertyService) DeleteProperty(ctx context.Context, propertyID string) *app_errors.AppError {
	if _, err := s.repo.GetPropertyByID(ctx, propertyID); err != nil {
		return err
	}

	txn, err := s.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer txn.Rollback(ctx)

	// Tasks already materialized for this property keep living on the board;
	// they carry their own snapshot of the identity fields.
	if err := s.repo.DeleteProperty(ctx, txn, propertyID); err != nil {
		return err
	}

	if err := txn.Commit(ctx); err != nil {
		return err
	}

	log.Info().Str("property_id", propertyID).Msg("property deleted")
	return nil
}

func (s *PropertyService) GetPropertyByID(ctx context.Context, propertyID string) (*entity.PropertyEntity, *app_errors.AppError) {
	return s.repo.GetPropertyByID(ctx, propertyID)
}

func (s *PropertyService) ListProperties(ctx context.Context, filter *property_dto.PropertyListFilter) ([]entity.PropertyEntity, *app_errors.AppError) {
	all, err := s.repo.ListProperties(ctx)
	if err != nil {
		return nil, err
	}

	list := FilterProperties(all, filter)
	if filter != nil {
		SortProperties(list, filter.SortField, filter.SortOrder)
	}
	return list, nil
}

func (s *PropertyService) SyncAthomePrices(ctx context.Context) ([]property_dto.SyncedPriceResponse, *app_errors.AppError) {
	all, err := s.repo.ListProperties(ctx)
	if err != nil {
		return nil, err
	}

	txn, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer txn.Rollback(ctx)

	synced := make([]property_dto.SyncedPriceResponse, 0)
	for _, p := range all {
		if p.AthomeNumber == nil || *p.AthomeNumber == "" {
			continue
		}

		newPrice, fetchErr := s.prices.FetchPrice(ctx, *p.AthomeNumber, p.Price)
		if fetchErr != nil {
			log.Warn().Err(fetchErr).Str("property_id", p.ID).Str("athome_number", *p.AthomeNumber).Msg("athome price fetch failed, skipping")
			continue
		}
		if newPrice == p.Price {
			continue
		}

		updated := ApplySyncedPrice(p, newPrice)
		if err := s.repo.UpdateProperty(ctx, txn, &updated); err != nil {
			return nil, err
		}

		synced = append(synced, property_dto.SyncedPriceResponse{
			PropertyID:   p.ID,
			AthomeNumber: *p.AthomeNumber,
			OldPrice:     p.Price,
			NewPrice:     newPrice,
		})
	}

	if err := txn.Commit(ctx); err != nil {
		return nil, err
	}

	log.Info().Int("synced", len(synced)).Msg("athome prices synced")
	return synced, nil
}

// syncPropertyToTask materializes the post-contract checklist for a property.
// Idempotent: a non post-contract property or one that already has a task is
// left alone. Returns whether a task was created.
func (s *PropertyService) syncPropertyToTask(ctx context.Context, txn tx.Tx, property *entity.PropertyEntity) (bool, *app_errors.AppError) {
	if property.Status != entity.StatusPostContract {
		return false, nil
	}

	existing, err := s.taskRepo.FindTaskByPropertyID(ctx, property.ID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	suffix, idErr := gonanoid.New()
	if idErr != nil {
		return false, app_errors.NewAppError(app_errors.CodeInternal, app_errors.ErrInternal, "internal_error", idErr)
	}

	now := time.Now()
	contractDate := now
	if property.ContractDate != nil {
		contractDate = *property.ContractDate
	}
	settlementDate := now
	if property.SettlementDate != nil {
		settlementDate = *property.SettlementDate
	}

	estimatedSales := "0/0"
	if property.EstimatedSales != nil && *property.EstimatedSales != "" {
		estimatedSales = *property.EstimatedSales
	}

	task := &entity.PropertyTaskEntity{
		ID:             "task-" + suffix,
		PropertyID:     property.ID,
		PropertyNumber: property.PropertyNumber,
		PropertyName:   property.PropertyName,
		CompanyName:    property.CompanyName,
		HandlerName:    property.HandlerName,
		HandlerColor:   s.lookupRepo.GetHandlerColor(ctx, property.HandlerName),
		ContractDate:   contractDate,
		SettlementDate: settlementDate,
		Price:          property.Price,
		EstimatedSales: estimatedSales,
		SellerName:     property.SellerName,
		BuyerName:      property.BuyerName,

		Reform:               entity.TaskDetail[entity.TaskStatus]{Status: entity.TaskInProgress},
		LoanProcedure:        entity.TaskDetail[entity.LoanProcedureStatus]{Status: entity.LoanUnassigned},
		Survey:               entity.TaskDetail[entity.TaskStatus]{Status: entity.TaskInProgress},
		Demolition:           entity.TaskDetail[entity.TaskStatus]{Status: entity.TaskInProgress},
		MortgageCancellation: entity.TaskDetail[entity.MortgageCancellationStatus]{Status: entity.MortgageInProgress},
		Registration:         entity.TaskDetail[entity.RegistrationStatus]{Status: entity.RegistrationInProgress},
		PostProcessing:       entity.TaskDetail[entity.PostProcessingStatus]{Status: entity.PostProcessingInProgress},

		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.taskRepo.InsertTask(ctx, txn, task); err != nil {
		return false, err
	}

	log.Info().Str("task_id", task.ID).Str("property_id", property.ID).Msg("post-contract task created")
	return true, nil
}
