package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/cloudwego/hertz/pkg/route/param"

	"worldforge/internal/adapter/metrics/inmemory"
	"worldforge/internal/adapter/repo/memory"
	"worldforge/internal/adapter/world/generator"
	"worldforge/internal/app/explore"
	"worldforge/internal/app/navigate"
	"worldforge/internal/app/worldgen"
	"worldforge/internal/domain/world"
)

func newTestHandler() Handler {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	gen := generator.New(generator.Config{
		Now:     func() time.Time { return now },
		NewRand: func() *rand.Rand { return rand.New(rand.NewSource(1)) },
	})
	repo := memory.NewWorldMapRepo(memory.NewStore())
	metrics := inmemory.NewRecorder()
	return Handler{
		CreateUC:   worldgen.UseCase{Generator: gen, Repo: repo, Metrics: metrics, MaxWidth: 256, MaxHeight: 256},
		GetUC:      worldgen.GetUseCase{Repo: repo},
		StartUC:    worldgen.StartPositionUseCase{Generator: gen, Rand: rand.New(rand.NewSource(2))},
		PathUC:     navigate.UseCase{Repo: repo, Metrics: metrics},
		RevealUC:   explore.RevealUseCase{Repo: repo, Metrics: metrics},
		ViewUC:     explore.ViewUseCase{Repo: repo, Now: func() time.Time { return now }},
		InteractUC: explore.InteractUseCase{Repo: repo},
		KPI:        metrics,
	}
}

func decodeBody(t *testing.T, ctx *app.RequestContext) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("decode response: %v (%s)", err, ctx.Response.Body())
	}
	return body
}

func errorCode(body map[string]any) string {
	e, _ := body["error"].(map[string]any)
	code, _ := e["code"].(string)
	return code
}

func createWorld(t *testing.T, h Handler, payload string) string {
	t.Helper()
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(payload))
	h.createWorld(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusCreated; got != want {
		t.Fatalf("create status: got=%d want=%d body=%s", got, want, ctx.Response.Body())
	}
	id, _ := decodeBody(t, ctx)["world_id"].(string)
	if id == "" {
		t.Fatalf("expected world_id in %s", ctx.Response.Body())
	}
	return id
}

func TestCreateWorld_InvalidJSON(t *testing.T) {
	h := newTestHandler()
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte("{"))
	h.createWorld(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if code := errorCode(decodeBody(t, ctx)); code != "invalid_json" {
		t.Fatalf("unexpected code %q", code)
	}
}

func TestCreateWorld_RejectsNonPositiveDimensions(t *testing.T) {
	h := newTestHandler()
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"width":0,"height":10}`))
	h.createWorld(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if code := errorCode(decodeBody(t, ctx)); code != "bad_request" {
		t.Fatalf("unexpected code %q", code)
	}
}

func TestCreateThenGetWorld(t *testing.T) {
	h := newTestHandler()
	id := createWorld(t, h, `{"width":24,"height":24,"seed":"handler","town_count":2}`)

	ctx := &app.RequestContext{}
	ctx.Params = param.Params{{Key: "id", Value: id}}
	h.getWorld(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	body := decodeBody(t, ctx)
	if body["seed"] != "handler" {
		t.Fatalf("unexpected seed: %v", body["seed"])
	}
	if tiles, _ := body["tiles"].([]any); len(tiles) != 24 {
		t.Fatalf("expected 24 tile rows, got %d", len(tiles))
	}
}

func TestGetWorld_NotFound(t *testing.T) {
	h := newTestHandler()
	ctx := &app.RequestContext{}
	ctx.Params = param.Params{{Key: "id", Value: "missing"}}
	h.getWorld(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusNotFound; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
}

func TestFindPath_TrivialAndBlocked(t *testing.T) {
	h := newTestHandler()
	id := createWorld(t, h, `{"width":10,"height":10,"seed":"test","town_count":1}`)

	ctx := &app.RequestContext{}
	ctx.Params = param.Params{{Key: "id", Value: id}}
	ctx.Request.SetBody([]byte(`{"start_x":5,"start_y":5,"end_x":5,"end_y":5}`))
	h.findPath(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	body := decodeBody(t, ctx)
	if body["found"] != true {
		t.Fatalf("expected trivial path to be found: %v", body)
	}
	if path, _ := body["path"].([]any); len(path) != 0 {
		t.Fatalf("expected empty path, got %v", path)
	}

	ctx = &app.RequestContext{}
	ctx.Params = param.Params{{Key: "id", Value: id}}
	ctx.Request.SetBody([]byte(`{"start_x":5,"start_y":5,"end_x":50,"end_y":50}`))
	h.findPath(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if body := decodeBody(t, ctx); body["found"] != false {
		t.Fatalf("expected out-of-bounds destination to be unreachable: %v", body)
	}
}

func TestRevealThenView(t *testing.T) {
	h := newTestHandler()
	id := createWorld(t, h, `{"width":20,"height":20,"seed":"fog"}`)

	ctx := &app.RequestContext{}
	ctx.Params = param.Params{{Key: "id", Value: id}}
	ctx.Request.SetBody([]byte(`{"x":10,"y":10,"radius":2}`))
	h.reveal(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("reveal status: got=%d want=%d", got, want)
	}
	if body := decodeBody(t, ctx); body["revealed"] != float64(25) {
		t.Fatalf("expected 25 revealed tiles, got %v", body["revealed"])
	}

	ctx = &app.RequestContext{}
	ctx.Params = param.Params{{Key: "id", Value: id}}
	ctx.Request.SetRequestURI(fmt.Sprintf("/api/worlds/%s/view?x=10&y=10&radius=4", id))
	h.view(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("view status: got=%d want=%d body=%s", got, want, ctx.Response.Body())
	}
	snapshot, _ := decodeBody(t, ctx)["snapshot"].(map[string]any)
	if tiles, _ := snapshot["visible_tiles"].([]any); len(tiles) != 25 {
		t.Fatalf("expected 25 visible tiles, got %d", len(tiles))
	}
}

func TestView_RejectsBadQuery(t *testing.T) {
	h := newTestHandler()
	ctx := &app.RequestContext{}
	ctx.Params = param.Params{{Key: "id", Value: "w"}}
	ctx.Request.SetRequestURI("/api/worlds/w/view?x=abc&y=1")
	h.view(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
}

func TestStartPosition(t *testing.T) {
	h := newTestHandler()
	ctx := &app.RequestContext{}
	ctx.Request.SetRequestURI("/api/start-position?width=100&height=100")
	h.startPosition(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d body=%s", got, want, ctx.Response.Body())
	}
	pos, _ := decodeBody(t, ctx)["position"].(map[string]any)
	if _, ok := pos["x"]; !ok {
		t.Fatalf("expected position.x in %s", ctx.Response.Body())
	}

	ctx = &app.RequestContext{}
	ctx.Request.SetRequestURI("/api/start-position?width=0&height=100")
	h.startPosition(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
}

func TestKPI(t *testing.T) {
	h := newTestHandler()
	createWorld(t, h, `{"width":12,"height":12,"seed":"kpi"}`)
	ctx := &app.RequestContext{}
	h.kpi(context.Background(), ctx)
	if body := decodeBody(t, ctx); body["generations"] != float64(1) {
		t.Fatalf("expected one generation, got %v", body["generations"])
	}

	ctx = &app.RequestContext{}
	Handler{}.kpi(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusNotFound; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
}

func TestWriteError_Mapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("wrap: %w", world.ErrWrongObjectKind), consts.StatusConflict, "wrong_object_kind"},
		{explore.ErrInvalidRequest, consts.StatusBadRequest, "bad_request"},
		{errors.New("boom"), consts.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		ctx := &app.RequestContext{}
		Handler{}.writeError(ctx, tc.err)
		if got := ctx.Response.StatusCode(); got != tc.status {
			t.Fatalf("%v: status got=%d want=%d", tc.err, got, tc.status)
		}
		if code := errorCode(decodeBody(t, ctx)); code != tc.code {
			t.Fatalf("%v: code got=%q want=%q", tc.err, code, tc.code)
		}
	}
}
