package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/benbeisheim/hotseat-chess/internal/model"
	"github.com/benbeisheim/hotseat-chess/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap/zaptest"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	logger := zaptest.NewLogger(t)
	gs := service.NewGameService(service.NewGameManager(logger))
	return NewApp(gs, "http://localhost:5173", logger)
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("X-Player-ID", "player-1")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, raw
}

func createGame(t *testing.T, app *fiber.App) string {
	t.Helper()
	status, raw := do(t, app, http.MethodPost, "/api/game/create", "")
	if status != fiber.StatusOK {
		t.Fatalf("create status = %d: %s", status, raw)
	}
	var created struct {
		GameID string `json:"game_id"`
	}
	if err := json.Unmarshal(raw, &created); err != nil || created.GameID == "" {
		t.Fatalf("create body %s: %v", raw, err)
	}
	return created.GameID
}

type clickResponse struct {
	Result string          `json:"result"`
	State  model.GameState `json:"state"`
}

func click(t *testing.T, app *fiber.App, gameID string, file, rank int) clickResponse {
	t.Helper()
	body, _ := json.Marshal(map[string]int{"file": file, "rank": rank})
	status, raw := do(t, app, http.MethodPost, "/api/game/"+gameID+"/click", string(body))
	if status != fiber.StatusOK {
		t.Fatalf("click status = %d: %s", status, raw)
	}
	var resp clickResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatalf("decode click: %v", err)
	}
	return resp
}

func TestPlayerIDRequired(t *testing.T) {
	app := newTestApp(t)
	req := httptest.NewRequest(http.MethodPost, "/api/game/create", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/game/create?playerId=abc", nil)
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("query player id: status = %d, want 200", resp.StatusCode)
	}
}

func TestClickFlow(t *testing.T) {
	app := newTestApp(t)
	id := createGame(t, app)

	// e2 is file 4, rank 6 in board order.
	resp := click(t, app, id, 4, 6)
	if resp.Result != "selected" {
		t.Fatalf("result = %s", resp.Result)
	}
	if len(resp.State.Highlights.Quiet) != 2 {
		t.Fatalf("highlights = %+v", resp.State.Highlights)
	}

	resp = click(t, app, id, 4, 4)
	if resp.Result != "committed" || resp.State.ToMove != model.Black {
		t.Fatalf("commit response = %+v", resp)
	}

	resp = click(t, app, id, 12, 40)
	if resp.Result != "ignored" {
		t.Fatalf("off-board click result = %s", resp.Result)
	}

	status, raw := do(t, app, http.MethodGet, "/api/game/"+id, "")
	if status != fiber.StatusOK {
		t.Fatalf("get status = %d", status)
	}
	var state model.GameState
	if err := json.Unmarshal(raw, &state); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if len(state.MoveHistory) != 1 || state.Board[4][4] == nil {
		t.Fatalf("state after e2e4 = %+v", state)
	}

	status, raw = do(t, app, http.MethodPost, "/api/game/"+id+"/reset", "")
	if status != fiber.StatusOK {
		t.Fatalf("reset status = %d", status)
	}
	if err := json.Unmarshal(raw, &state); err != nil || len(state.MoveHistory) != 0 || state.ToMove != model.White {
		t.Fatalf("reset state = %+v, %v", state, err)
	}
}

func TestUnknownGameIs404(t *testing.T) {
	app := newTestApp(t)
	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/api/game/nope", ""},
		{http.MethodPost, "/api/game/nope/click", `{"file":1,"rank":1}`},
		{http.MethodPost, "/api/game/nope/reset", ""},
		{http.MethodDelete, "/api/game/nope", ""},
	} {
		if status, raw := do(t, app, tc.method, tc.path, tc.body); status != fiber.StatusNotFound {
			t.Errorf("%s %s = %d: %s", tc.method, tc.path, status, raw)
		}
	}
}

func TestMalformedClickBody(t *testing.T) {
	app := newTestApp(t)
	id := createGame(t, app)
	if status, _ := do(t, app, http.MethodPost, "/api/game/"+id+"/click", `{"file":`); status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestDeleteGame(t *testing.T) {
	app := newTestApp(t)
	id := createGame(t, app)
	if status, _ := do(t, app, http.MethodDelete, "/api/game/"+id, ""); status != fiber.StatusNoContent {
		t.Fatalf("delete status = %d", status)
	}
	if status, _ := do(t, app, http.MethodGet, "/api/game/"+id, ""); status != fiber.StatusNotFound {
		t.Fatalf("get after delete = %d", status)
	}
}

func TestWebSocketRouteRequiresUpgrade(t *testing.T) {
	app := newTestApp(t)
	id := createGame(t, app)
	if status, _ := do(t, app, http.MethodGet, "/ws/game/"+id, ""); status != fiber.StatusUpgradeRequired {
		t.Fatalf("status = %d, want 426", status)
	}
}
