package interfaces

import (
	"time"

	"github.com/iwtcode/flashforgeService/internal/domain/entities"
	"github.com/iwtcode/flashforgeService/internal/domain/models"
)

// Usecases - это агрегирующий интерфейс для всех use cases
type Usecases interface {
	RegisterPrinter(req models.RegisterPrinterRequest) (*models.PrinterSession, error)
	RestorePrinter(printer entities.Printer) (*models.PrinterSession, error)
	GetAllPrinters() []*models.PrinterSession
	DeletePrinter(sessionID string) error
	CheckPrinter(sessionID string) (*models.PrinterSession, error)

	Subscribe(ip string, interval time.Duration, sub Subscriber) time.Duration
	Unsubscribe(ip string, sub Subscriber)
	Disconnect(sub Subscriber)

	GetSnapshot(ip string) *models.Snapshot
	GetHistory(ip string) []*models.Snapshot
	GetInfo(ip string) (models.PrinterInfo, error)
	GetPosition(ip string) (models.HeadPosition, error)
	GetTemperatures(ip string) (models.Temperatures, error)
	GetProgress(ip string) (models.Progress, error)
	GetStatus(ip string) (models.StatusInfo, error)

	SetLed(ip string, r, g, b int) (string, error)
	Pause(ip string) (string, error)
	Resume(ip string) (string, error)
	Cancel(ip string) (string, error)
	Home(ip string) (string, error)
}
