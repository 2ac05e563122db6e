package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"booking-crm/internal/domain/user"
	"booking-crm/internal/handler/api"
	"booking-crm/internal/handler/middleware"
	"booking-crm/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Booking   *api.BookingHandler
	Comment   *api.CommentHandler
	Admin     *api.AdminHandler
	Portal    *api.PortalHandler
	Dashboard *api.DashboardHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware, metricsReg *prometheus.Registry) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware, metricsReg)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, handlers Handlers, authMiddleware *middleware.AuthMiddleware, metricsReg *prometheus.Registry) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metricsReg, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: handlers.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: handlers.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: handlers.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: handlers.Auth.Me},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Booking.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: handlers.Booking.ListBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: handlers.Booking.GetBooking},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: handlers.Booking.TransitionBooking},
				{Method: http.MethodPost, Path: "/:id/comments", Handler: handlers.Comment.CreateComment},
				{Method: http.MethodGet, Path: "/:id/comments", Handler: handlers.Comment.ListComments},
				{Method: http.MethodGet, Path: "/:id/comments/stream", Handler: handlers.Comment.StreamComments},
			})
		}

		dashboard := apiGroup.Group("/dashboard")
		dashboard.Use(authMiddleware.RequireAuth())
		{
			addRoutes(dashboard, []route{
				{Method: http.MethodGet, Path: "/stats", Handler: handlers.Dashboard.GetStats},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/create-user", Handler: handlers.Admin.CreateUser},
				{Method: http.MethodPost, Path: "/reset-password", Handler: handlers.Admin.ResetPassword},
			})
		}

		// Customer portal: token in the path is the only credential.
		portal := apiGroup.Group("/portal")
		{
			addRoutes(portal, []route{
				{Method: http.MethodGet, Path: "/bookings/:token", Handler: handlers.Portal.GetBooking},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
