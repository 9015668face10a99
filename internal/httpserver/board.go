package httpserver

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hyeonbin/boardhub/internal/events"
	"github.com/hyeonbin/boardhub/internal/middleware"
	"github.com/hyeonbin/boardhub/internal/service"
	"github.com/hyeonbin/boardhub/internal/transport"
	"github.com/hyeonbin/boardhub/pkg/logging"
)

type BoardHTTP struct {
	Svc      *service.BoardService
	Producer events.Publisher
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is not a number")
	}
	return uint(id), nil
}

func (h *BoardHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "board.create")

	var req transport.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("board_create_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := req.Validate(); err != nil {
		l.Warn("board_create_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	principal := middleware.Principal(c)
	board, err := h.Svc.Create(ctx, principal, req.Title, req.Contents)
	if err != nil {
		l.Error("board_create_error", "status", 500, "error", err)
		return toHTTPError(err)
	}

	h.publish(c, board.ID, map[string]any{
		"type":     "board_created",
		"board_id": board.ID,
		"author":   board.Author,
	})

	l.Info("board_created", "board_id", board.ID)
	return c.JSON(http.StatusCreated, board)
}

func (h *BoardHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()

	boards, err := h.Svc.List(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("board_list_error", "status", 500, "error", err)
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, boards)
}

func (h *BoardHTTP) ListMine(c echo.Context) error {
	ctx := c.Request().Context()

	boards, err := h.Svc.ListMine(ctx, middleware.Principal(c))
	if err != nil {
		logging.FromContext(ctx).Error("board_list_mine_error", "status", 500, "error", err)
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, boards)
}

func (h *BoardHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return err
	}

	board, err := h.Svc.Get(ctx, id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, board)
}

func (h *BoardHTTP) ByAuthor(c echo.Context) error {
	ctx := c.Request().Context()

	author := c.QueryParam("author")
	if author == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "author query parameter is required")
	}

	boards, err := h.Svc.ByAuthor(ctx, author)
	if err != nil {
		logging.FromContext(ctx).Error("board_search_error", "status", 500, "error", err)
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, boards)
}

func (h *BoardHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "board.update")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req transport.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("board_update_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := req.Validate(); err != nil {
		l.Warn("board_update_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	board, err := h.Svc.Update(ctx, middleware.Principal(c), id, req.Title, req.Contents)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, board)
}

func (h *BoardHTTP) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "board.update_status")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req transport.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("board_status_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.UpdateStatus(ctx, id, req.Status); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *BoardHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "board.delete")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(ctx, middleware.Principal(c), id); err != nil {
		return toHTTPError(err)
	}

	h.publish(c, id, map[string]any{
		"type":     "board_deleted",
		"board_id": id,
	})

	l.Info("board_deleted", "board_id", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *BoardHTTP) publish(c echo.Context, id uint, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Producer.Publish(ctx, events.TopicBoardEvents, strconv.FormatUint(uint64(id), 10), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("event_publish_failed", "topic", events.TopicBoardEvents, "error", err)
	}
}
