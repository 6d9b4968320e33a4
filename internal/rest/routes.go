package rest

import (
	"net/http"
	"strconv"

	"github.com/daniilsolovey/article-publisher/internal/newsportal"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
)

const (
	// API paths
	apiV1Prefix = "/api/v1"

	scopePath      = apiV1Prefix + "/:scope"
	articlesPath   = "/articles"
	articlePath    = "/articles/:id"
	addFormPath    = "/articles/form"
	editFormPath   = "/articles/:id/form"
	categoriesPath = "/categories"
	healthPath     = "/health"
	metricsPath    = "/metrics"
	swaggerPath    = "/swagger/doc.json"
	headerActorID  = "X-User-Id"
)

// RegisterRoutes registers all routes for the handler
func (h *ArticleHandler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(h.requestLogger())
	e.Use(ActorMiddleware)

	h.registerAPIRoutes(e)
	h.registerHealthCheck(e)

	e.GET(metricsPath, echo.WrapHandler(promhttp.Handler()))
	e.GET(swaggerPath, h.handleSwagger)

	return e
}

func (h *ArticleHandler) registerAPIRoutes(e *echo.Echo) {
	g := e.Group(scopePath, RequireActor)

	g.GET(articlesPath, h.List)
	g.GET(categoriesPath, h.Categories)
	g.GET(addFormPath, h.AddForm)
	g.GET(articlePath, h.ByID)
	g.GET(editFormPath, h.EditForm)
	g.POST(articlesPath, h.Add)
	g.PUT(articlePath, h.Edit)
	g.DELETE(articlePath, h.Delete)
}

func (h *ArticleHandler) registerHealthCheck(e *echo.Echo) {
	e.GET(healthPath, h.handleHealth)
}

func (h *ArticleHandler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleSwagger serves the registered OpenAPI document.
func (h *ArticleHandler) handleSwagger(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		h.log.ErrorContext(c.Request().Context(), "swagger doc unavailable", "error", err)
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "api documentation is not registered"})
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}

func (h *ArticleHandler) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			h.log.InfoContext(c.Request().Context(), "HTTP request",
				"method", v.Method,
				"path", v.URI,
				"status", v.Status,
				"duration_ms", v.Latency.Milliseconds(),
				"remote_addr", v.RemoteIP,
			)
			return nil
		},
	})
}

// ActorMiddleware puts the acting user from the X-User-Id header into the
// request context. Authentication happens in front of this service.
func ActorMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(headerActorID)
		if header == "" {
			return next(c)
		}

		userID, err := strconv.Atoi(header)
		if err != nil || userID <= 0 {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid " + headerActorID + " header"})
		}

		r := c.Request()
		c.SetRequest(r.WithContext(newsportal.ContextWithActor(r.Context(), userID)))

		return next(c)
	}
}

// RequireActor rejects requests without an acting user.
func RequireActor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := newsportal.ActorFromContext(c.Request().Context()); !ok {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing " + headerActorID + " header"})
		}

		return next(c)
	}
}
