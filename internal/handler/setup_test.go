package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gumutoni/tasktidy/internal/handler"
	"github.com/gumutoni/tasktidy/internal/middleware"
	"github.com/gumutoni/tasktidy/internal/model"
	appErr "github.com/gumutoni/tasktidy/internal/pkg/errors"
	"github.com/gumutoni/tasktidy/internal/service"
)

type memUserStore struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]*model.User)}
}

func (s *memUserStore) Create(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Email]; ok {
		return appErr.ErrConflict
	}
	clone := *user
	s.users[user.Email] = &clone
	return nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return nil, appErr.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

type memTaskStore struct {
	mu    sync.Mutex
	tasks map[string]*model.Task
}

func newMemTaskStore() *memTaskStore {
	return &memTaskStore{tasks: make(map[string]*model.Task)}
}

func (s *memTaskStore) Create(_ context.Context, task *model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *task
	s.tasks[task.ID] = &clone
	return nil
}

func (s *memTaskStore) List(_ context.Context) ([]*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := make([]*model.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		clone := *task
		tasks = append(tasks, &clone)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Ctime < tasks[j].Ctime })
	return tasks, nil
}

func (s *memTaskStore) GetByID(_ context.Context, taskID string) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[taskID]
	if !ok {
		return nil, appErr.ErrNotFound
	}
	clone := *task
	return &clone, nil
}

func (s *memTaskStore) Update(_ context.Context, taskID string, patch model.TaskPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[taskID]
	if !ok {
		return appErr.ErrNotFound
	}
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.DueDate != nil {
		due := *patch.DueDate
		task.DueDate = &due
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}
	task.Mtime = patch.Mtime
	return nil
}

func (s *memTaskStore) Delete(_ context.Context, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[taskID]; !ok {
		return appErr.ErrNotFound
	}
	delete(s.tasks, taskID)
	return nil
}

var testJWTSecret = []byte("test-secret-" + uuid.NewString())

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authService := service.NewAuthService(newMemUserStore(), testJWTSecret, time.Hour)
	taskService := service.NewTaskService(newMemTaskStore())
	storeHealth := service.NewStoreHealth()

	engine := gin.New()
	engine.Use(middleware.RequestID(), middleware.CORS([]string{"http://localhost:3000"}))
	handler.RegisterRoutes(engine, handler.RouterDeps{
		Auth:   handler.NewAuthHandler(authService),
		Tasks:  handler.NewTaskHandler(taskService),
		System: handler.NewSystemHandler("test", storeHealth),
	})
	return engine
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(resp.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", resp.Body.String(), err)
	}
}
