package interfaces

import (
	"github.com/iwtcode/flashforgeService/internal/domain/entities"
)

// PrinterRepository определяет контракт для работы с сохраненными принтерами в БД
type PrinterRepository interface {
	Create(printer *entities.Printer) error
	GetByIP(ip string) (*entities.Printer, error)
	GetBySessionID(sessionID string) (*entities.Printer, error)
	GetAll() ([]entities.Printer, error)
	UpdateObservedState(ip, status string, interval int) error
	Delete(sessionID string) error
}
