package handlers

import (
	"net/http"

	"github.com/iwtcode/flashforgeService/internal/config"
	"github.com/iwtcode/flashforgeService/internal/interfaces"
	"github.com/iwtcode/flashforgeService/internal/middleware/logging"
	"github.com/iwtcode/flashforgeService/internal/middleware/swagger"

	"github.com/gin-gonic/gin"
)

// Handler - структура для обработчиков HTTP-запросов
type Handler struct {
	usecase interfaces.Usecases
	logger  *logging.Logger
}

// NewHandler создает новый экземпляр Handler
func NewHandler(usecase interfaces.Usecases, logger *logging.Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger.WithPrefix("HANDLER"),
	}
}

// ProvideRouter настраивает и возвращает HTTP-роутер
func ProvideRouter(h *Handler, cfg *config.AppConfig, swagCfg *swagger.Config) http.Handler {
	gin.SetMode(cfg.GinMode)

	router := gin.Default()

	// Swagger
	swagger.Setup(router, swagCfg)

	// Logger Middleware
	router.Use(LoggingMiddleware(h.logger))

	// Группа API v1
	v1 := router.Group("/api/v1")
	{
		printers := v1.Group("/printers")
		{
			printers.POST("", h.RegisterPrinter)
			printers.GET("", h.GetPrinters)
			printers.DELETE("", h.DeletePrinter)
			printers.POST("/check", h.CheckPrinter)

			printers.GET("/:ip/telemetry", h.GetTelemetry)
			printers.GET("/:ip/history", h.GetHistory)
			printers.GET("/:ip/info", h.GetInfo)
			printers.GET("/:ip/position", h.GetPosition)
			printers.GET("/:ip/temperature", h.GetTemperatures)
			printers.GET("/:ip/progress", h.GetProgress)
			printers.GET("/:ip/status", h.GetStatus)

			control := printers.Group("/:ip/control")
			{
				control.POST("/led", h.SetLed)
				control.POST("/pause", h.Pause)
				control.POST("/resume", h.Resume)
				control.POST("/cancel", h.Cancel)
				control.POST("/home", h.Home)
			}
		}

		v1.GET("/ws", h.ServeWS)
	}

	return router
}
