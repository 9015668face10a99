package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hyeonbin/boardhub/internal/service"
	"github.com/hyeonbin/boardhub/pkg/logging"
)

const defaultPageSize = 20

type SearchHTTP struct {
	Svc *service.SearchService
}

func (h *SearchHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "search")

	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q query parameter is required")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(c.QueryParam("size"))
	if size < 1 || size > 100 {
		size = defaultPageSize
	}
	from := (page - 1) * size

	total, docs, err := h.Svc.Search(ctx, q, from, size)
	if err != nil {
		if errors.Is(err, service.ErrSearchUnavailable) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "search is not available")
		}
		l.Error("search_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}

	return c.JSON(http.StatusOK, echo.Map{"total": total, "results": docs})
}
