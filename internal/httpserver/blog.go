package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hyeonbin/boardhub/internal/service"
	"github.com/hyeonbin/boardhub/internal/transport"
	"github.com/hyeonbin/boardhub/pkg/logging"
)

type BlogHTTP struct {
	Svc *service.BlogService
}

func (h *BlogHTTP) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Svc.List())
}

func (h *BlogHTTP) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	post, err := h.Svc.Get(id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, post)
}

func (h *BlogHTTP) ByAuthor(c echo.Context) error {
	author := c.QueryParam("author")
	if author == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "author query parameter is required")
	}
	return c.JSON(http.StatusOK, h.Svc.ByAuthor(author))
}

func (h *BlogHTTP) Create(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "blog.create")

	var req transport.CreateBlogRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("blog_create_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := req.Validate(); err != nil {
		l.Warn("blog_create_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.Svc.Create(req.Author, req.Title, req.Contents)
	if err != nil {
		return toHTTPError(err)
	}

	l.Info("blog_created", "post_id", post.ID)
	return c.JSON(http.StatusCreated, post)
}

func (h *BlogHTTP) Update(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "blog.update")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req transport.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("blog_update_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := req.Validate(); err != nil {
		l.Warn("blog_update_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.Svc.Update(id, req.Title, req.Contents)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, post)
}

func (h *BlogHTTP) UpdateStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req transport.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	post, err := h.Svc.UpdateStatus(id, req.Status)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, post)
}

func (h *BlogHTTP) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(id); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
