package app

import (
	"context"
	"net/http"
	"time"

	"github.com/iwtcode/flashforgeService/internal/adapters/handlers"
	"github.com/iwtcode/flashforgeService/internal/adapters/repositories/postgres"
	"github.com/iwtcode/flashforgeService/internal/config"
	"github.com/iwtcode/flashforgeService/internal/interfaces"
	"github.com/iwtcode/flashforgeService/internal/middleware/logging"
	"github.com/iwtcode/flashforgeService/internal/middleware/swagger"
	"github.com/iwtcode/flashforgeService/internal/services/kafka"
	"github.com/iwtcode/flashforgeService/internal/services/printer_service"
	"github.com/iwtcode/flashforgeService/internal/usecases"

	"go.uber.org/fx"
)

// New создает новый экземпляр fx.App
func New() *fx.App {
	return fx.New(
		ConfigModule,
		LoggingModule,
		RepositoryModule,
		ProducerModule,
		ServiceModule,
		UsecaseModule,
		HttpServerModule,
		// Invoke-функции для запуска фоновых задач и хуков жизненного цикла
		fx.Invoke(InvokeRestorePrinters),
		fx.Invoke(InvokeShutdownHooks),
	)
}

// --- Модули FX ---

var ConfigModule = fx.Module("config_module",
	fx.Provide(config.LoadConfiguration),
)

func ProvideLogger(cfg *config.AppConfig) *logging.Logger {
	loggerCfg := &logging.Config{
		Enabled:    cfg.Logging.Enable,
		Level:      cfg.Logging.Level,
		LogsDir:    cfg.Logging.LogsDir,
		SavingDays: uint(cfg.Logging.SavingDays),
	}
	return logging.NewLogger(loggerCfg, "FlashforgeServiceApp")
}

var LoggingModule = fx.Module("logging_module",
	fx.Provide(ProvideLogger),
)

var RepositoryModule = fx.Module("repository_module",
	fx.Provide(postgres.NewRepository),
)

var ProducerModule = fx.Module("producer_module",
	fx.Provide(kafka.NewKafkaProducer),
)

var ServiceModule = fx.Module("service_module",
	fx.Provide(printer_service.NewPrinterService),
)

var UsecaseModule = fx.Module("usecases_module",
	fx.Provide(usecases.NewUsecases),
)

func NewSwaggerConfig() *swagger.Config {
	return &swagger.Config{
		Enabled: true,
		Path:    "/swagger",
	}
}

var HttpServerModule = fx.Module("http_server_module",
	fx.Provide(
		NewSwaggerConfig,
		handlers.NewHandler,
		handlers.ProvideRouter,
	),
	fx.Invoke(InvokeHttpServer),
)

// InvokeRestorePrinters восстанавливает пул принтеров из базы при старте.
// Опрос восстановленных принтеров не возобновляется: циклы опроса живут
// только пока есть наблюдатели, а наблюдателей после рестарта еще нет.
func InvokeRestorePrinters(lc fx.Lifecycle, svc interfaces.Usecases, dbRepo interfaces.PrinterRepository, logger *logging.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Restoring printers from the database...")
			printers, err := dbRepo.GetAll()
			if err != nil {
				logger.Error("Failed to get printer list from DB", "error", err)
				return nil // Не фатально, просто продолжаем
			}

			if len(printers) == 0 {
				logger.Info("No saved printers found to restore.")
				return nil
			}

			for _, printer := range printers {
				logger.Info("Attempting to restore printer", "sessionID", printer.SessionID, "ip", printer.IP)

				session, _ := svc.RestorePrinter(printer)

				if session != nil && session.IsHealthy {
					logger.Info("Printer restored successfully in pool", "sessionID", printer.SessionID)
				} else {
					logger.Warn("Printer restored in pool but is unhealthy.", "sessionID", printer.SessionID)
				}
			}
			return nil
		},
	})
}

// InvokeShutdownHooks останавливает циклы опроса и продюсер Kafka при остановке.
func InvokeShutdownHooks(lc fx.Lifecycle, svc interfaces.PrinterService, producer interfaces.KafkaService, logger *logging.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping polling loops...")
			svc.Shutdown()
			logger.Info("Closing Kafka producer...")
			if err := producer.Close(); err != nil {
				logger.Warn("Failed to close Kafka producer", "error", err)
			}
			return nil
		},
	})
}

// InvokeHttpServer запускает HTTP-сервер.
func InvokeHttpServer(lc fx.Lifecycle, cfg *config.AppConfig, h http.Handler, logger *logging.Logger) {
	serverAddr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      h,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("HTTP Server is starting", "address", serverAddr)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("Failed to start server", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server...")
			return server.Shutdown(ctx)
		},
	})
}
