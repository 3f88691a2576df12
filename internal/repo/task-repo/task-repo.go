package task_repo

import (
	"context"

	"github.com/thomas0124/estate-portal/internal/abstraction/tx"
	"github.com/thomas0124/estate-portal/internal/entity"
	app_errors "github.com/thomas0124/estate-portal/internal/errors"
	"github.com/thomas0124/estate-portal/internal/state"
)

type TaskRepo struct {
	state *state.State
}

func NewTaskRepo(s *state.State) TaskRepoContract {
	return &TaskRepo{state: s}
}

func (r *TaskRepo) ListTasks(ctx context.Context) ([]entity.PropertyTaskEntity, *app_errors.AppError) {
	out := make([]entity.PropertyTaskEntity, len(r.state.Tasks))
	copy(out, r.state.Tasks)
	return out, nil
}

func (r *TaskRepo) GetTaskByID(ctx context.Context, taskID string) (*entity.PropertyTaskEntity, *app_errors.AppError) {
	for i := range r.state.Tasks {
		if r.state.Tasks[i].ID == taskID {
			t := r.state.Tasks[i]
			return &t, nil
		}
	}
	return nil, app_errors.NewAppError(app_errors.CodeNotFound, app_errors.ErrNotFound, "not_found.task", nil)
}

func (r *TaskRepo) FindTaskByPropertyID(ctx context.Context, propertyID string) (*entity.PropertyTaskEntity, *app_errors.AppError) {
	for i := range r.state.Tasks {
		if r.state.Tasks[i].PropertyID == propertyID {
			t := r.state.Tasks[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (r *TaskRepo) InsertTask(ctx context.Context, _ tx.Tx, task *entity.PropertyTaskEntity) *app_errors.AppError {
	r.state.Tasks = append(r.state.Tasks, *task)
	r.state.MarkDirty(state.KeyTasks)
	return nil
}

func (r *TaskRepo) UpdateTask(ctx context.Context, _ tx.Tx, task *entity.PropertyTaskEntity) *app_errors.AppError {
	for i := range r.state.Tasks {
		if r.state.Tasks[i].ID == task.ID {
			r.state.Tasks[i] = *task
			r.state.MarkDirty(state.KeyTasks)
			return nil
		}
	}
	return app_errors.NewAppError(app_errors.CodeNotFound, app_errors.ErrNotFound, "not_found.task", nil)
}

func (r *TaskRepo) DeleteTask(ctx context.Context, _ tx.Tx, taskID string) *app_errors.AppError {
	for i := range r.state.Tasks {
		if r.state.Tasks[i].ID == taskID {
			r.state.Tasks = append(r.state.Tasks[:i], r.state.Tasks[i+1:]...)
			r.state.MarkDirty(state.KeyTasks)
			return nil
		}
	}
	return app_errors.NewAppError(app_errors.CodeNotFound, app_errors.ErrNotFound, "not_found.task", nil)
}
