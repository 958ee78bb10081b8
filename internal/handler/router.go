// internal/handler/router.go
package handler

import (
	"net/http"
	"strings"

	"product-intel/internal/catalog"
	"product-intel/internal/middleware"
	"product-intel/internal/storage"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	Catalog   *catalog.Catalog
	Users     storage.UserStorage
	Tokens    middleware.TokenParser
	SignInURL string
	SignUpURL string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// sign-in/sign-up UI is hosted by the auth provider
	router.GET("/sign-in/*path", redirect(deps.SignInURL))
	router.GET("/sign-up/*path", redirect(deps.SignUpURL))

	catalogHandler := NewCatalogHandler(deps.Catalog)
	userHandler := NewUserHandler(deps.Users)
	authMiddleware := middleware.NewAuthMiddleware(deps.Tokens)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/categories", catalogHandler.ListCategories)
		v1.GET("/categories/:id", catalogHandler.GetCategory)
		v1.GET("/categories/:id/prompt", catalogHandler.GetPrompt)
		v1.POST("/extension/events", ExtensionEvent)
	}

	private := v1.Group("")
	private.Use(authMiddleware.RequireAuth())
	{
		private.GET("/me", userHandler.Me)
	}

	return router
}

// redirect sends auth pages to the hosted provider, keeping the sub-path
// (e.g. /sign-in/factor-one) and query string.
func redirect(base string) gin.HandlerFunc {
	base = strings.TrimSuffix(base, "/")
	return func(c *gin.Context) {
		target := base
		if path := c.Param("path"); path != "" && path != "/" {
			target += path
		}
		if q := c.Request.URL.RawQuery; q != "" {
			target += "?" + q
		}
		c.Redirect(http.StatusFound, target)
	}
}
