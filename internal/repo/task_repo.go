package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"github.com/gumutoni/tasktidy/internal/model"
	"github.com/gumutoni/tasktidy/internal/pkg/dbutil"
	appErr "github.com/gumutoni/tasktidy/internal/pkg/errors"
)

var taskColumns = []string{"id", "title", "description", "due_date", "completed", "ctime", "mtime"}

type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

func (r *TaskRepo) Create(ctx context.Context, task *model.Task) error {
	data := map[string]interface{}{
		"id":          task.ID,
		"title":       task.Title,
		"description": task.Description,
		"due_date":    task.DueDate,
		"completed":   task.Completed,
		"ctime":       task.Ctime,
		"mtime":       task.Mtime,
	}
	sqlStr, args, err := builder.BuildInsert("tasks", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *TaskRepo) List(ctx context.Context) ([]*model.Task, error) {
	where := map[string]interface{}{"_orderby": "ctime"}
	sqlStr, args, err := builder.BuildSelect("tasks", where, taskColumns)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	tasks := make([]*model.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (r *TaskRepo) GetByID(ctx context.Context, taskID string) (*model.Task, error) {
	where := map[string]interface{}{"id": taskID}
	sqlStr, args, err := builder.BuildSelect("tasks", where, taskColumns)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	if !rows.Next() {
		return nil, appErr.ErrNotFound
	}
	return scanTask(rows)
}

func (r *TaskRepo) Update(ctx context.Context, taskID string, patch model.TaskPatch) error {
	update := map[string]interface{}{"mtime": patch.Mtime}
	if patch.Title != nil {
		update["title"] = *patch.Title
	}
	if patch.Description != nil {
		update["description"] = *patch.Description
	}
	if patch.DueDate != nil {
		update["due_date"] = *patch.DueDate
	}
	if patch.Completed != nil {
		update["completed"] = *patch.Completed
	}
	where := map[string]interface{}{"id": taskID}
	sqlStr, args, err := builder.BuildUpdate("tasks", where, update)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, taskID string) error {
	sqlStr, args, err := builder.BuildDelete("tasks", map[string]interface{}{"id": taskID})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}

func scanTask(rows *sql.Rows) (*model.Task, error) {
	var task model.Task
	var dueDate sql.NullTime
	if err := rows.Scan(&task.ID, &task.Title, &task.Description, &dueDate, &task.Completed, &task.Ctime, &task.Mtime); err != nil {
		return nil, err
	}
	if dueDate.Valid {
		due := dueDate.Time
		task.DueDate = &due
	}
	return &task, nil
}
