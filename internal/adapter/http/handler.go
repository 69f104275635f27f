package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"go.uber.org/zap"

	"worldforge/internal/app/explore"
	"worldforge/internal/app/navigate"
	"worldforge/internal/app/ports"
	"worldforge/internal/app/worldgen"
	"worldforge/internal/domain/world"
)

type Handler struct {
	CreateUC   worldgen.UseCase
	GetUC      worldgen.GetUseCase
	StartUC    worldgen.StartPositionUseCase
	PathUC     navigate.UseCase
	RevealUC   explore.RevealUseCase
	ViewUC     explore.ViewUseCase
	InteractUC explore.InteractUseCase
	KPI        kpiSnapshotProvider
	Logger     *zap.Logger

	// AllowOrigins lists CORS origins; empty allows any.
	AllowOrigins []string
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware(h.AllowOrigins))

	api := s.Group("/api")
	api.POST("/worlds", h.createWorld)
	api.GET("/worlds/:id", h.getWorld)
	api.POST("/worlds/:id/path", h.findPath)
	api.POST("/worlds/:id/reveal", h.reveal)
	api.GET("/worlds/:id/view", h.view)
	api.POST("/worlds/:id/objects/:object_id/interact", h.interact)
	api.GET("/start-position", h.startPosition)

	s.GET("/ops/kpi", h.kpi)
}

func (h Handler) createWorld(c context.Context, ctx *app.RequestContext) {
	var body worldgen.Request
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.CreateUC.Execute(c, body)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) getWorld(c context.Context, ctx *app.RequestContext) {
	resp, err := h.GetUC.Execute(c, worldgen.GetRequest{WorldID: ctx.Param("id")})
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp.World)
}

func (h Handler) findPath(c context.Context, ctx *app.RequestContext) {
	var body navigate.Request
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	body.WorldID = ctx.Param("id")
	resp, err := h.PathUC.Execute(c, body)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) reveal(c context.Context, ctx *app.RequestContext) {
	var body explore.RevealRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	body.WorldID = ctx.Param("id")
	resp, err := h.RevealUC.Execute(c, body)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) view(c context.Context, ctx *app.RequestContext) {
	x, errX := strconv.Atoi(strings.TrimSpace(ctx.Query("x")))
	y, errY := strconv.Atoi(strings.TrimSpace(ctx.Query("y")))
	if errX != nil || errY != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_query", "x and y must be integers")
		return
	}
	req := explore.ViewRequest{WorldID: ctx.Param("id"), X: x, Y: y}
	if raw := strings.TrimSpace(ctx.Query("radius")); raw != "" {
		r, err := strconv.Atoi(raw)
		if err != nil {
			writeErrorBody(ctx, consts.StatusBadRequest, "invalid_query", "radius must be an integer")
			return
		}
		req.Radius = &r
	}
	resp, err := h.ViewUC.Execute(c, req)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) interact(c context.Context, ctx *app.RequestContext) {
	var body explore.InteractRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	body.WorldID = ctx.Param("id")
	body.ObjectID = ctx.Param("object_id")
	resp, err := h.InteractUC.Execute(c, body)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) startPosition(_ context.Context, ctx *app.RequestContext) {
	width, errW := strconv.Atoi(strings.TrimSpace(ctx.Query("width")))
	height, errH := strconv.Atoi(strings.TrimSpace(ctx.Query("height")))
	if errW != nil || errH != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_query", "width and height must be integers")
		return
	}
	resp, err := h.StartUC.Execute(worldgen.StartPositionRequest{Width: width, Height: height})
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func (h Handler) writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, worldgen.ErrInvalidRequest),
		errors.Is(err, navigate.ErrInvalidRequest),
		errors.Is(err, explore.ErrInvalidRequest),
		errors.Is(err, world.ErrOutOfBounds):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, world.ErrWrongObjectKind):
		writeErrorBody(ctx, consts.StatusConflict, "wrong_object_kind", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		if h.Logger != nil {
			h.Logger.Error("request failed", zap.String("path", string(ctx.Path())), zap.Error(err))
		}
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
