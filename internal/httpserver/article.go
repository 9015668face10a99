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

type ArticleHTTP struct {
	Svc      *service.ArticleService
	Producer events.Publisher
}

func (h *ArticleHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "article.create")

	var req transport.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("article_create_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := req.Validate(); err != nil {
		l.Warn("article_create_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.Svc.Create(ctx, middleware.Principal(c), req.Title, req.Contents)
	if err != nil {
		l.Error("article_create_error", "status", 500, "error", err)
		return toHTTPError(err)
	}

	h.publish(c, article.ID, map[string]any{
		"type":       "article_created",
		"article_id": article.ID,
		"author":     article.Author,
	})

	l.Info("article_created", "article_id", article.ID)
	return c.JSON(http.StatusCreated, article)
}

func (h *ArticleHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()

	articles, err := h.Svc.List(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("article_list_error", "status", 500, "error", err)
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, articles)
}

func (h *ArticleHTTP) ListMine(c echo.Context) error {
	ctx := c.Request().Context()

	articles, err := h.Svc.ListMine(ctx, middleware.Principal(c))
	if err != nil {
		logging.FromContext(ctx).Error("article_list_mine_error", "status", 500, "error", err)
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, articles)
}

func (h *ArticleHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return err
	}

	article, err := h.Svc.Get(ctx, id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, article)
}

func (h *ArticleHTTP) ByAuthor(c echo.Context) error {
	ctx := c.Request().Context()

	author := c.QueryParam("author")
	if author == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "author query parameter is required")
	}

	articles, err := h.Svc.ByAuthor(ctx, author)
	if err != nil {
		logging.FromContext(ctx).Error("article_search_error", "status", 500, "error", err)
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, articles)
}

func (h *ArticleHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "article.update")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req transport.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("article_update_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := req.Validate(); err != nil {
		l.Warn("article_update_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.Svc.Update(ctx, middleware.Principal(c), id, req.Title, req.Contents)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, article)
}

func (h *ArticleHTTP) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "article.update_status")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req transport.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("article_status_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.UpdateStatus(ctx, id, req.Status); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ArticleHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "article.delete")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(ctx, middleware.Principal(c), id); err != nil {
		return toHTTPError(err)
	}

	h.publish(c, id, map[string]any{
		"type":       "article_deleted",
		"article_id": id,
	})

	l.Info("article_deleted", "article_id", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *ArticleHTTP) publish(c echo.Context, id uint, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Producer.Publish(ctx, events.TopicArticleEvents, strconv.FormatUint(uint64(id), 10), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("event_publish_failed", "topic", events.TopicArticleEvents, "error", err)
	}
}
