package task_case

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/thomas0124/estate-portal/internal/abstraction/tx"
	task_dto "github.com/thomas0124/estate-portal/internal/dtos/task-dto"
	"github.com/thomas0124/estate-portal/internal/entity"
	app_errors "github.com/thomas0124/estate-portal/internal/errors"
	"github.com/thomas0124/estate-portal/internal/period"
	task_repo "github.com/thomas0124/estate-portal/internal/repo/task-repo"
	"github.com/thomas0124/estate-portal/internal/state"
	"github.com/thomas0124/estate-portal/internal/validation"
)

type TaskService struct {
	repo      task_repo.TaskRepoContract
	txManager tx.TxManager
}

func NewTaskService(s *state.State) TaskServiceContract {
	return &TaskService{
		repo:      task_repo.NewTaskRepo(s),
		txManager: tx.NewStateTxManager(s),
	}
}

func (s *TaskService) ListTasks(ctx context.Context, filter *task_dto.TaskListFilter) ([]task_dto.TaskListItem, *app_errors.AppError) {
	all, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	visible := FilterTasks(all, filter)
	items := make([]task_dto.TaskListItem, 0, len(visible))
	for _, task := range visible {
		items = append(items, task_dto.TaskListItem{
			Task:     task,
			Progress: CalculateTaskProgress(&task),
			Overdue:  TaskOverdue(&task, now),
		})
	}
	return items, nil
}

func (s *TaskService) GetTaskByID(ctx context.Context, taskID string) (*task_dto.TaskListItem, *app_errors.AppError) {
	task, err := s.repo.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	return &task_dto.TaskListItem{
		Task:     *task,
		Progress: CalculateTaskProgress(task),
		Overdue:  TaskOverdue(task, time.Now()),
	}, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, taskID string, req *task_dto.UpdateTaskRequest) (*entity.PropertyTaskEntity, *app_errors.AppError) {
	if err := validation.ValidateTask(req).Err(); err != nil {
		return nil, err
	}

	task, err := s.repo.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	updated := *task
	if req.EstimatedSales != nil {
		updated.EstimatedSales = *req.EstimatedSales
	}
	applyDetail(&updated.Reform, req.Reform)
	applyDetail(&updated.LoanProcedure, req.LoanProcedure)
	applyDetail(&updated.Survey, req.Survey)
	applyDetail(&updated.Demolition, req.Demolition)
	applyDetail(&updated.MortgageCancellation, req.MortgageCancellation)
	applyDetail(&updated.Registration, req.Registration)
	applyDetail(&updated.PostProcessing, req.PostProcessing)

	updated.IsCompleted = CalculateTaskProgress(&updated).Progress == 100
	updated.UpdatedAt = time.Now()

	txn, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer txn.Rollback(ctx)

	if err := s.repo.UpdateTask(ctx, txn, &updated); err != nil {
		return nil, err
	}

	if err := txn.Commit(ctx); err != nil {
		return nil, err
	}

	log.Info().Str("task_id", updated.ID).Bool("is_completed", updated.IsCompleted).Msg("task updated")
	return &updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, actor *entity.UserEntity, taskID string) *app_errors.AppError {
	// Admin only, and only once the checklist is fully done. Unknown actors
	// are treated as non-admins.
	if !actor.IsAdmin() {
		return app_errors.NewAppError(app_errors.CodeForbidden, app_errors.ErrForbidden, "forbidden.admin_only", nil)
	}

	task, err := s.repo.GetTaskByID(ctx, taskID)
	if err != nil {
		return err
	}

	if progress := CalculateTaskProgress(task); progress.Progress != 100 {
		log.Warn().Str("task_id", taskID).Int("progress", progress.Progress).Msg("refusing to delete unfinished task")
		return app_errors.NewAppError(app_errors.CodeConflict, app_errors.ErrConflict, "conflict.task_in_progress", nil)
	}

	txn, err := s.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer txn.Rollback(ctx)

	if err := s.repo.DeleteTask(ctx, txn, taskID); err != nil {
		return err
	}

	if err := txn.Commit(ctx); err != nil {
		return err
	}

	log.Info().Str("task_id", taskID).Msg("task deleted")
	return nil
}

func (s *TaskService) MonthlyStatistics(ctx context.Context, periods []period.Period) (map[string]task_dto.MonthStatistics, *app_errors.AppError) {
	all, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return MonthlyStatisticsFor(all, periods), nil
}

func (s *TaskService) HandlerStatistics(ctx context.Context, window period.Period) (map[string]task_dto.HandlerStatistics, *app_errors.AppError) {
	all, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return HandlerStatisticsFor(all, window), nil
}
