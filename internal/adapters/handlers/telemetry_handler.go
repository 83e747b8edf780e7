package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetTelemetry возвращает полный снапшот телеметрии принтера.
// @Summary Полный снапшот телеметрии
// @Description Немедленно опрашивает принтер по всем категориям. Ответ всегда полностью сформирован: недоступные категории заполнены значениями по умолчанию, сбои перечислены в snapshot.errors.
// @Tags Telemetry
// @Produce json
// @Param ip path string true "IP-адрес принтера"
// @Success 200 {object} models.SnapshotResponse "Снапшот телеметрии"
// @Failure 400 {object} models.ErrorResponse "Некорректный IP-адрес"
// @Router /printers/{ip}/telemetry [get]
func (h *Handler) GetTelemetry(c *gin.Context) {
	ip, ok := h.paramIP(c)
	if !ok {
		return
	}

	snapshot := h.usecase.GetSnapshot(ip)
	c.JSON(http.StatusOK, gin.H{"status": "ok", "snapshot": snapshot})
}

// GetHistory возвращает окно последних снапшотов принтера.
// @Summary История снапшотов
// @Description Возвращает ограниченное окно последних собранных снапшотов из памяти.
// @Tags Telemetry
// @Produce json
// @Param ip path string true "IP-адрес принтера"
// @Success 200 {object} models.HistoryResponse "Окно снапшотов"
// @Failure 400 {object} models.ErrorResponse "Некорректный IP-адрес"
// @Router /printers/{ip}/history [get]
func (h *Handler) GetHistory(c *gin.Context) {
	ip, ok := h.paramIP(c)
	if !ok {
		return
	}

	snapshots := h.usecase.GetHistory(ip)
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"size":      len(snapshots),
		"snapshots": snapshots,
	})
}

// GetInfo возвращает идентификацию принтера.
// @Summary Информация о принтере
// @Tags Telemetry
// @Produce json
// @Param ip path string true "IP-адрес принтера"
// @Success 200 {object} models.PrinterInfo
// @Failure 400 {object} models.ErrorResponse "Некорректный IP-адрес"
// @Failure 502 {object} models.ErrorResponse "Принтер недоступен"
// @Router /printers/{ip}/info [get]
func (h *Handler) GetInfo(c *gin.Context) {
	ip, ok := h.paramIP(c)
	if !ok {
		return
	}

	info, err := h.usecase.GetInfo(ip)
	if err != nil {
		h.DeviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "info": info})
}

// GetPosition возвращает позицию печатающей головки.
// @Summary Позиция головки
// @Tags Telemetry
// @Produce json
// @Param ip path string true "IP-адрес принтера"
// @Success 200 {object} models.HeadPosition
// @Failure 400 {object} models.ErrorResponse "Некорректный IP-адрес"
// @Failure 502 {object} models.ErrorResponse "Принтер недоступен"
// @Router /printers/{ip}/position [get]
func (h *Handler) GetPosition(c *gin.Context) {
	ip, ok := h.paramIP(c)
	if !ok {
		return
	}

	position, err := h.usecase.GetPosition(ip)
	if err != nil {
		h.DeviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "position": position})
}

// GetTemperatures возвращает температуры экструдеров и стола.
// @Summary Температуры
// @Tags Telemetry
// @Produce json
// @Param ip path string true "IP-адрес принтера"
// @Success 200 {object} models.Temperatures
// @Failure 400 {object} models.ErrorResponse "Некорректный IP-адрес"
// @Failure 502 {object} models.ErrorResponse "Принтер недоступен"
// @Router /printers/{ip}/temperature [get]
func (h *Handler) GetTemperatures(c *gin.Context) {
	ip, ok := h.paramIP(c)
	if !ok {
		return
	}

	temps, err := h.usecase.GetTemperatures(ip)
	if err != nil {
		h.DeviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "temperatures": temps})
}

// GetProgress возвращает ход текущей печати.
// @Summary Прогресс печати
// @Tags Telemetry
// @Produce json
// @Param ip path string true "IP-адрес принтера"
// @Success 200 {object} models.Progress
// @Failure 400 {object} models.ErrorResponse "Некорректный IP-адрес"
// @Failure 502 {object} models.ErrorResponse "Принтер недоступен"
// @Router /printers/{ip}/progress [get]
func (h *Handler) GetProgress(c *gin.Context) {
	ip, ok := h.paramIP(c)
	if !ok {
		return
	}

	progress, err := h.usecase.GetProgress(ip)
	if err != nil {
		h.DeviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "progress": progress})
}

// GetStatus возвращает состояние принтера.
// @Summary Статус принтера
// @Tags Telemetry
// @Produce json
// @Param ip path string true "IP-адрес принтера"
// @Success 200 {object} models.StatusInfo
// @Failure 400 {object} models.ErrorResponse "Некорректный IP-адрес"
// @Failure 502 {object} models.ErrorResponse "Принтер недоступен"
// @Router /printers/{ip}/status [get]
func (h *Handler) GetStatus(c *gin.Context) {
	ip, ok := h.paramIP(c)
	if !ok {
		return
	}

	status, err := h.usecase.GetStatus(ip)
	if err != nil {
		h.DeviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "printer_status": status})
}
