package printer

import (
	"github.com/iwtcode/flashforgeService/internal/interfaces"
	"gorm.io/gorm"
)

type PrinterRepositoryImpl struct {
	db *gorm.DB
}

func NewPrinterRepository(db *gorm.DB) interfaces.PrinterRepository {
	return &PrinterRepositoryImpl{db: db}
}
