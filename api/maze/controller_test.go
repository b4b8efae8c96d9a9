package mazeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/api/identity"
	"github.com/beka-birhanu/vinom-maze/infrastruture/lock"
	"github.com/beka-birhanu/vinom-maze/infrastruture/repo"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	handler http.Handler
	repo    *repo.MemoryMazeRepo
	token   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	mazeRepo := repo.NewMemoryMazeRepo()
	testLogger, err := logger.New("TEST", logger.ColorBlue, io.Discard)
	require.NoError(t, err)
	svc, err := service.NewMazeService(mazeRepo, lock.NewLocalLocker(), testLogger, &service.Options{MaxDimension: 20})
	require.NoError(t, err)
	controller, err := NewMazeController(svc)
	require.NoError(t, err)

	tokenizer := token.NewJwtService("test-secret", "vinom-identity")
	tok, err := tokenizer.Generate(map[string]interface{}{"sub": "editor", "scope": identity.ScopeMazeWrite}, time.Minute)
	require.NoError(t, err)

	router := api.NewRouter(api.Config{
		BaseURL:                 "/api",
		Mode:                    "test",
		Controllers:             []api_i.Controller{controller},
		AuthorizationMiddleware: identity.Authoriz(tokenizer, identity.ScopeMazeWrite),
	})

	return &testServer{handler: router.Handler(), repo: mazeRepo, token: tok}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, authorized bool) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, "/api/v1"+path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

// seed stores a fully walled maze.
func (s *testServer) seed(t *testing.T, width, height int) uuid.UUID {
	t.Helper()
	g, err := maze.NewGrid(width, height)
	require.NoError(t, err)
	id := uuid.New()
	require.NoError(t, s.repo.Save(context.Background(), id, g))
	return id
}

func (s *testServer) cell(t *testing.T, id uuid.UUID, row, col int) CellResponse {
	t.Helper()
	w := s.do(t, http.MethodGet, "/mazes/"+id.String()+"/cells/"+strconv.Itoa(row)+"/"+strconv.Itoa(col), nil, false)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var c CellResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
	return c
}

func TestCreateMaze(t *testing.T) {
	s := newTestServer(t)
	request := CreateMazeRequest{Width: 5, Height: 4, Algorithm: "wilson", Seed: 9}

	t.Run("Requires a token", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/mazes", request, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Creates a perfect maze", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/mazes", request, true)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created CreateMazeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

		w = s.do(t, http.MethodGet, "/mazes/"+created.ID, nil, false)
		require.Equal(t, http.StatusOK, w.Code)
		var m MazeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
		assert.Equal(t, 5, m.Width)
		assert.Equal(t, 4, m.Height)
		require.Len(t, m.Cells, 20)

		passages := 0
		for _, c := range m.Cells {
			assert.Subset(t, c.Neighbors, c.AccessibleNeighbors)
			assert.False(t, c.Visited)
			passages += len(c.AccessibleNeighbors)
		}
		assert.Equal(t, 2*19, passages)

		w = s.do(t, http.MethodGet, "/mazes/"+created.ID+"/render", nil, false)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "+---+")
	})

	t.Run("Rejects invalid requests", func(t *testing.T) {
		for _, bad := range []CreateMazeRequest{
			{Width: 0, Height: 4},
			{Width: 21, Height: 4},
			{Width: 4, Height: 4, Algorithm: "prim"},
		} {
			w := s.do(t, http.MethodPost, "/mazes", bad, true)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		}
	})
}

func TestGetCell(t *testing.T) {
	s := newTestServer(t)
	id := s.seed(t, 5, 5)

	c := s.cell(t, id, 1, 0)
	assert.Equal(t, 1, c.Row)
	assert.Equal(t, 0, c.Column)
	assert.False(t, c.Visited)
	assert.Equal(t, [4]bool{true, true, true, true}, c.Walls)
	assert.Equal(t, []Position{{0, 0}, {1, 1}, {2, 0}}, c.Neighbors)
	assert.Empty(t, c.AccessibleNeighbors)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"unknown maze", "/mazes/" + uuid.NewString() + "/cells/0/0", http.StatusNotFound},
		{"bad maze id", "/mazes/not-a-uuid/cells/0/0", http.StatusBadRequest},
		{"bad row", "/mazes/" + id.String() + "/cells/x/0", http.StatusBadRequest},
		{"outside grid", "/mazes/" + id.String() + "/cells/5/0", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodGet, tt.path, nil, false)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestCarvePassage(t *testing.T) {
	s := newTestServer(t)
	id := s.seed(t, 5, 5)
	path := "/mazes/" + id.String() + "/passages"

	w := s.do(t, http.MethodPost, path, PassageRequest{From: Position{1, 0}, To: Position{0, 0}}, true)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	assert.Equal(t, [4]bool{false, true, true, true}, s.cell(t, id, 1, 0).Walls)
	assert.Equal(t, [4]bool{true, true, false, true}, s.cell(t, id, 0, 0).Walls)
	assert.Equal(t, []Position{{1, 0}}, s.cell(t, id, 0, 0).AccessibleNeighbors)

	w = s.do(t, http.MethodPost, path, PassageRequest{From: Position{1, 3}, To: Position{1, 4}}, true)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = s.do(t, http.MethodPost, path, PassageRequest{From: Position{1, 3}, To: Position{1, 2}}, true)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, [4]bool{true, false, true, false}, s.cell(t, id, 1, 3).Walls)
	assert.Equal(t, [4]bool{true, true, true, false}, s.cell(t, id, 1, 4).Walls)
	assert.Equal(t, [4]bool{true, false, true, true}, s.cell(t, id, 1, 2).Walls)

	w = s.do(t, http.MethodPost, path, PassageRequest{From: Position{2, 2}, To: Position{4, 4}}, true)
	assert.Equal(t, http.StatusConflict, w.Code)
	w = s.do(t, http.MethodPost, path, PassageRequest{From: Position{2, 2}, To: Position{2, 2}}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, [4]bool{true, true, true, true}, s.cell(t, id, 2, 2).Walls)

	w = s.do(t, http.MethodPost, path, PassageRequest{From: Position{0, 0}, To: Position{0, 1}}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSetWalls(t *testing.T) {
	s := newTestServer(t)
	id := s.seed(t, 1, 1)
	path := "/mazes/" + id.String() + "/cells/0/0/walls"

	w := s.do(t, http.MethodPut, path, map[string]interface{}{"walls": []interface{}{true, 1, true, true}}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = s.do(t, http.MethodPut, path, map[string]interface{}{"walls": []interface{}{true, false}}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = s.do(t, http.MethodPut, path, map[string]interface{}{}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, [4]bool{true, true, true, true}, s.cell(t, id, 0, 0).Walls)

	w = s.do(t, http.MethodPut, path, map[string]interface{}{"walls": []interface{}{false, true, false, true}}, true)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	assert.Equal(t, [4]bool{false, true, false, true}, s.cell(t, id, 0, 0).Walls)

	other := s.seed(t, 2, 1)
	w = s.do(t, http.MethodPut, "/mazes/"+other.String()+"/cells/0/0/walls", map[string]interface{}{"walls": []interface{}{true, false, true, true}}, true)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRemoveWall(t *testing.T) {
	s := newTestServer(t)
	id := s.seed(t, 3, 3)
	base := "/mazes/" + id.String() + "/cells/0/1/walls/"

	w := s.do(t, http.MethodDelete, base+"north", nil, true)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	assert.Equal(t, [4]bool{false, true, true, true}, s.cell(t, id, 0, 1).Walls)

	w = s.do(t, http.MethodDelete, base+"south", nil, true)
	assert.Equal(t, http.StatusConflict, w.Code)
	w = s.do(t, http.MethodDelete, base+"up", nil, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetVisited(t *testing.T) {
	s := newTestServer(t)
	id := s.seed(t, 2, 2)
	path := "/mazes/" + id.String() + "/cells/1/1/visited"

	w := s.do(t, http.MethodPut, path, map[string]interface{}{"visited": true}, true)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	assert.True(t, s.cell(t, id, 1, 1).Visited)

	w = s.do(t, http.MethodPut, path, map[string]interface{}{"visited": false}, true)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.False(t, s.cell(t, id, 1, 1).Visited)

	w = s.do(t, http.MethodPut, path, map[string]interface{}{}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
