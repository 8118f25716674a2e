package service

import (
	"context"
	"strings"
	"time"

	"github.com/gumutoni/tasktidy/internal/model"
	appErr "github.com/gumutoni/tasktidy/internal/pkg/errors"
	"github.com/gumutoni/tasktidy/internal/pkg/timeutil"
)

type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	List(ctx context.Context) ([]*model.Task, error)
	GetByID(ctx context.Context, taskID string) (*model.Task, error)
	Update(ctx context.Context, taskID string, patch model.TaskPatch) error
	Delete(ctx context.Context, taskID string) error
}

type TaskService struct {
	tasks TaskStore
}

func NewTaskService(tasks TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

type TaskCreateInput struct {
	Title       string
	Description string
	DueDate     *time.Time
}

func (s *TaskService) Create(ctx context.Context, input TaskCreateInput) (*model.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, appErr.ErrInvalid
	}
	now := timeutil.NowUnix()
	task := &model.Task{
		ID:          newID(),
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Completed:   false,
		Ctime:       now,
		Mtime:       now,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) List(ctx context.Context) ([]*model.Task, error) {
	return s.tasks.List(ctx)
}

// Update applies the provided fields and returns the post-update task. An
// empty patch still proves the task exists.
func (s *TaskService) Update(ctx context.Context, taskID string, patch model.TaskPatch) (*model.Task, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, appErr.ErrInvalid
	}
	if patch.Empty() {
		return s.tasks.GetByID(ctx, taskID)
	}
	patch.Mtime = timeutil.NowUnix()
	if err := s.tasks.Update(ctx, taskID, patch); err != nil {
		return nil, err
	}
	return s.tasks.GetByID(ctx, taskID)
}

func (s *TaskService) Delete(ctx context.Context, taskID string) error {
	return s.tasks.Delete(ctx, taskID)
}
