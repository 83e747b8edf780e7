package interfaces

import (
	"time"

	"github.com/iwtcode/flashforgeService/internal/domain/entities"
	"github.com/iwtcode/flashforgeService/internal/domain/models"
)

// PrinterService - это агрегирующий интерфейс для всей бизнес-логики.
type PrinterService interface {
	RegistryManager
	SubscriptionHub
	TelemetryService
	ControlService
}

// RegistryManager определяет контракт для управления реестром принтеров.
type RegistryManager interface {
	RegisterPrinter(req models.RegisterPrinterRequest) (*models.PrinterSession, error)
	RestorePrinter(printer entities.Printer) (*models.PrinterSession, error)
	GetAllPrinters() []*models.PrinterSession
	DeletePrinter(sessionID string) error
	CheckPrinter(sessionID string) (*models.PrinterSession, error)
}

// Subscriber - непрозрачный идентификатор одного наблюдателя. Хаб хранит
// ссылки на наблюдателей, но не владеет ими: жизненным циклом соединения
// управляет транспортный слой.
type Subscriber interface {
	Key() string
	Send(msg models.PushMessage) error
}

// SubscriptionHub определяет контракт для управления циклами опроса и
// рассылкой снапшотов наблюдателям.
type SubscriptionHub interface {
	// Subscribe регистрирует наблюдателя на принтере и возвращает
	// действующий интервал опроса записи.
	Subscribe(ip string, interval time.Duration, sub Subscriber) time.Duration
	Unsubscribe(ip string, sub Subscriber)
	Disconnect(sub Subscriber)
	RequestOnce(ip string) *models.Snapshot
	History(ip string) []*models.Snapshot
	// Shutdown останавливает все активные циклы опроса.
	Shutdown()
}

// TelemetryService определяет контракт для разовых запросов телеметрии.
type TelemetryService interface {
	Assemble(ip string) *models.Snapshot
	QueryInfo(ip string) (models.PrinterInfo, error)
	QueryPosition(ip string) (models.HeadPosition, error)
	QueryTemperatures(ip string) (models.Temperatures, error)
	QueryProgress(ip string) (models.Progress, error)
	QueryStatus(ip string) (models.StatusInfo, error)
}

// ControlService определяет контракт для управляющих команд принтера.
type ControlService interface {
	SetLed(ip string, r, g, b int) (string, error)
	Pause(ip string) (string, error)
	Resume(ip string) (string, error)
	Cancel(ip string) (string, error)
	Home(ip string) (string, error)
}
