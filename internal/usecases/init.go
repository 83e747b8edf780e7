package usecases

import "github.com/iwtcode/flashforgeService/internal/interfaces"

// UseCases - агрегатор всех use case интерфейсов
type UseCases struct {
	interfaces.Usecases
}

// NewUsecases - конструктор для UseCases
func NewUsecases(
	printerSvc interfaces.PrinterService,
) interfaces.Usecases {
	return NewUsecase(printerSvc)
}
