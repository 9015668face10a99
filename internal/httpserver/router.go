package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hyeonbin/boardhub/internal/domain"
	appmw "github.com/hyeonbin/boardhub/internal/middleware"
)

type Deps struct {
	Auth           *appmw.Auth
	AuthHandler    *AuthHTTP
	BoardHandler   *BoardHTTP
	ArticleHandler *ArticleHTTP
	BlogHandler    *BlogHTTP
	SearchHandler  *SearchHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", d.AuthHandler.SignUp)
	auth.POST("/signin", d.AuthHandler.SignIn)

	api.GET("/search", d.SearchHandler.Search)

	boards := api.Group("/boards", d.Auth.RequireAuth)
	boards.GET("", d.BoardHandler.List, appmw.RequireRoles(domain.RoleUser, domain.RoleAdmin))
	boards.GET("/my", d.BoardHandler.ListMine)
	boards.GET("/search", d.BoardHandler.ByAuthor)
	boards.GET("/:id", d.BoardHandler.Get)
	boards.POST("", d.BoardHandler.Create)
	boards.PUT("/:id", d.BoardHandler.Update)
	boards.PATCH("/:id/status", d.BoardHandler.UpdateStatus, appmw.RequireRoles(domain.RoleAdmin))
	boards.DELETE("/:id", d.BoardHandler.Delete)

	articles := api.Group("/articles", d.Auth.RequireAuth)
	articles.GET("", d.ArticleHandler.List, appmw.RequireRoles(domain.RoleUser, domain.RoleAdmin))
	articles.GET("/my", d.ArticleHandler.ListMine)
	articles.GET("/search", d.ArticleHandler.ByAuthor)
	articles.GET("/:id", d.ArticleHandler.Get)
	articles.POST("", d.ArticleHandler.Create)
	articles.PUT("/:id", d.ArticleHandler.Update)
	articles.PATCH("/:id/status", d.ArticleHandler.UpdateStatus, appmw.RequireRoles(domain.RoleAdmin))
	articles.DELETE("/:id", d.ArticleHandler.Delete)

	// The blog predates the auth pipeline and stays open.
	blog := api.Group("/blog")
	blog.GET("", d.BlogHandler.List)
	blog.GET("/search", d.BlogHandler.ByAuthor)
	blog.GET("/:id", d.BlogHandler.Get)
	blog.POST("", d.BlogHandler.Create)
	blog.PUT("/:id", d.BlogHandler.Update)
	blog.PATCH("/:id/status", d.BlogHandler.UpdateStatus)
	blog.DELETE("/:id", d.BlogHandler.Delete)
}
