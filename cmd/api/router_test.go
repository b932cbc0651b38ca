package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	authdomain "todo-backend/internal/auth/domain"
	authUsecase "todo-backend/internal/auth/usecase"
	tododomain "todo-backend/internal/todo/domain"
	todoRepo "todo-backend/internal/todo/repository"
	todoUsecase "todo-backend/internal/todo/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory repositories so the whole route table can be exercised
// without a database.

type memUserRepo struct {
	mu     sync.Mutex
	users  map[string]*authdomain.User
	tokens map[string]map[string]bool
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		users:  make(map[string]*authdomain.User),
		tokens: make(map[string]map[string]bool),
	}
}

func (r *memUserRepo) Create(user *authdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByID(id string) (*authdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) Update(user *authdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	delete(r.tokens, id)
	return nil
}

func (r *memUserRepo) AddToken(userID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tokens[userID] == nil {
		r.tokens[userID] = make(map[string]bool)
	}
	r.tokens[userID][token] = true
	return nil
}

func (r *memUserRepo) FindToken(userID, token string) (*authdomain.AuthToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tokens[userID][token] {
		return &authdomain.AuthToken{UserID: userID, Token: token, Access: "auth"}, nil
	}
	return nil, nil
}

func (r *memUserRepo) RemoveToken(userID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens[userID], token)
	return nil
}

type memTodoRepo struct {
	mu    sync.Mutex
	todos map[string]*tododomain.Todo
}

func newMemTodoRepo() *memTodoRepo {
	return &memTodoRepo{todos: make(map[string]*tododomain.Todo)}
}

func (r *memTodoRepo) Create(todo *tododomain.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if todo.ID == "" {
		todo.ID = uuid.New().String()
	}
	cp := *todo
	r.todos[todo.ID] = &cp
	return nil
}

func (r *memTodoRepo) FindByCreator(creatorID string) ([]*tododomain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*tododomain.Todo
	for _, td := range r.todos {
		if td.Creator == creatorID {
			cp := *td
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memTodoRepo) FindByIDAndCreator(id, creatorID string) (*tododomain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	td, ok := r.todos[id]
	if !ok || td.Creator != creatorID {
		return nil, nil
	}
	cp := *td
	return &cp, nil
}

func (r *memTodoRepo) UpdateByIDAndCreator(id, creatorID string, update todoRepo.TodoUpdate) (*tododomain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	td, ok := r.todos[id]
	if !ok || td.Creator != creatorID {
		return nil, nil
	}
	if update.Text != nil {
		td.Text = *update.Text
	}
	if update.Completed != nil {
		td.Completed = *update.Completed
		td.CompletedAt = update.CompletedAt
	}
	cp := *td
	return &cp, nil
}

func (r *memTodoRepo) DeleteByIDAndCreator(id, creatorID string) (*tododomain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	td, ok := r.todos[id]
	if !ok || td.Creator != creatorID {
		return nil, nil
	}
	delete(r.todos, id)
	return td, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	authUc := authUsecase.NewAuthUsecase(newMemUserRepo(), "test-secret")
	todoUc := todoUsecase.NewTodoUsecase(newMemTodoRepo())
	r := gin.New()
	SetupRoutes(r, authUc, todoUc)
	return r
}

func do(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("x-auth", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	w := do(r, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTodosRequireAuth(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	w := do(r, http.MethodPost, "/todos", "", `{"text":"buy milk"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestFullScenario(t *testing.T) {
	t.Parallel()

	r := newTestRouter()

	// Register
	w := do(r, http.MethodPost, "/users", "", `{"email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	registerToken := w.Header().Get("x-auth")
	require.NotEmpty(t, registerToken)
	assert.NotContains(t, w.Body.String(), "password")

	// Login yields a second, distinct session token
	w = do(r, http.MethodPost, "/users/login", "", `{"email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	loginToken := w.Header().Get("x-auth")
	require.NotEmpty(t, loginToken)
	assert.NotEqual(t, registerToken, loginToken)

	// Create a todo with the login token
	w = do(r, http.MethodPost, "/todos", loginToken, `{"text":"buy milk"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var created tododomain.Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "buy milk", created.Text)
	assert.False(t, created.Completed)

	// The list contains exactly that todo
	w = do(r, http.MethodGet, "/todos", loginToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Todos []tododomain.Todo `json:"todos"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Todos, 1)
	assert.Equal(t, created.ID, list.Todos[0].ID)

	// A different user gets a 404 for the same id
	w = do(r, http.MethodPost, "/users", "", `{"email":"b@x.com","password":"secret2"}`)
	require.Equal(t, http.StatusOK, w.Code)
	otherToken := w.Header().Get("x-auth")

	w = do(r, http.MethodGet, "/todos/"+created.ID, otherToken, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())

	// Complete, then un-complete: completedAt tracks completed
	w = do(r, http.MethodPatch, "/todos/"+created.ID, loginToken, `{"completed":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	var patched struct {
		Todo tododomain.Todo `json:"todo"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &patched))
	assert.True(t, patched.Todo.Completed)
	require.NotNil(t, patched.Todo.CompletedAt)
	assert.Positive(t, *patched.Todo.CompletedAt)

	w = do(r, http.MethodPatch, "/todos/"+created.ID, loginToken, `{"completed":false}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &patched))
	assert.False(t, patched.Todo.Completed)
	assert.Nil(t, patched.Todo.CompletedAt)

	// Logout with the register token: only that session dies
	w = do(r, http.MethodDelete, "/users/me/token", registerToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(r, http.MethodGet, "/users/me", registerToken, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodGet, "/users/me", loginToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"a@x.com"`)
}

func TestDuplicateRegistration(t *testing.T) {
	t.Parallel()

	r := newTestRouter()

	w := do(r, http.MethodPost, "/users", "", `{"email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/users", "", `{"email":"a@x.com","password":"secret1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMalformedTodoID(t *testing.T) {
	t.Parallel()

	r := newTestRouter()

	w := do(r, http.MethodPost, "/users", "", `{"email":"a@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	token := w.Header().Get("x-auth")

	// Not-a-uuid and unknown-uuid answer identically
	w = do(r, http.MethodGet, "/todos/123abc", token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(r, http.MethodDelete, "/todos/"+uuid.New().String(), token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
