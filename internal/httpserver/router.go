package httpserver

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, allowedOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(metricsMiddleware())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = allowedOrigins
	}
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.POST("/auth/register", registerHandler(deps.Auth))
		api.POST("/auth/login", loginHandler(deps.Auth))
		api.POST("/auth/logout", logoutHandler(deps.Auth))

		api.GET("/restaurants/:accessId", restaurantLookupHandler(deps.Auth))
		api.GET("/restaurants/:accessId/menu", publicMenuHandler(deps.Auth, deps.Menu))

		api.POST("/orders/create", createOrderHandler(deps.Orders))
		api.POST("/payments/process", processPaymentHandler(deps.Payments))
		api.GET("/tips/popular", popularTipHandler(deps.Payments))

		state := api.Group("/state/:deviceId")
		{
			state.GET("/:key", getStateHandler(deps.State))
			state.PUT("/:key", putStateHandler(deps.State))
			state.GET("/:key/watch", watchStateHandler(deps.State))
		}

		methods := api.Group("/devices/:deviceId/payment-methods")
		{
			methods.GET("", listPaymentMethodsHandler(deps.Methods))
			methods.POST("", addPaymentMethodHandler(deps.Methods))
			methods.PUT("/:methodId/default", setDefaultPaymentMethodHandler(deps.Methods))
			methods.DELETE("/:methodId", removePaymentMethodHandler(deps.Methods))
		}

		owner := api.Group("")
		owner.Use(sessionMiddleware(deps.Auth))
		{
			owner.GET("/auth/me", currentRestaurantHandler())
			owner.GET("/menu", listMenuItemsHandler(deps.Menu))
			owner.POST("/menu", createMenuItemHandler(deps.Menu))
			owner.PUT("/menu/:id", updateMenuItemHandler(deps.Menu))
			owner.DELETE("/menu/:id", deleteMenuItemHandler(deps.Menu))
			owner.GET("/categories", listCategoriesHandler(deps.Menu))
			owner.POST("/categories", createCategoryHandler(deps.Menu))
			owner.GET("/orders", listOrdersHandler(deps.Orders))
		}
	}

	return router
}
