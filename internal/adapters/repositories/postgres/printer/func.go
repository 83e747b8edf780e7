package printer

import (
	"github.com/iwtcode/flashforgeService/internal/domain/entities"
	"gorm.io/gorm"
)

func (r *PrinterRepositoryImpl) Create(printer *entities.Printer) error {
	return r.db.Create(printer).Error
}

func (r *PrinterRepositoryImpl) GetByIP(ip string) (*entities.Printer, error) {
	var printer entities.Printer
	err := r.db.Where("ip = ?", ip).First(&printer).Error
	if err != nil {
		return nil, err
	}
	return &printer, nil
}

func (r *PrinterRepositoryImpl) GetBySessionID(sessionID string) (*entities.Printer, error) {
	var printer entities.Printer
	err := r.db.Where("session_id = ?", sessionID).First(&printer).Error
	if err != nil {
		return nil, err
	}
	return &printer, nil
}

// GetAll возвращает все сохраненные принтеры
func (r *PrinterRepositoryImpl) GetAll() ([]entities.Printer, error) {
	var printers []entities.Printer
	if err := r.db.Find(&printers).Error; err != nil {
		return nil, err
	}
	return printers, nil
}

// UpdateObservedState обновляет статус наблюдения и интервал опроса
func (r *PrinterRepositoryImpl) UpdateObservedState(ip, status string, interval int) error {
	updates := map[string]interface{}{
		"status":   status,
		"interval": interval,
	}
	result := r.db.Model(&entities.Printer{}).Where("ip = ?", ip).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PrinterRepositoryImpl) Delete(sessionID string) error {
	result := r.db.Where("session_id = ?", sessionID).Delete(&entities.Printer{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
