package handlers

import (
	"net/http"

	"github.com/iwtcode/flashforgeService/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// SetLed устанавливает цвет подсветки принтера.
// @Summary Установить подсветку
// @Description Отправляет принтеру команду установки цвета подсветки. r255 g255 b255 - включить, r0 g0 b0 - выключить.
// @Tags Control
// @Accept json
// @Produce json
// @Param ip path string true "IP-адрес принтера"
// @Param input body models.LedRequest true "Каналы подсветки 0-255"
// @Success 200 {object} models.ControlResponse "Сырой ответ принтера"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 502 {object} models.ErrorResponse "Принтер недоступен"
// @Router /printers/{ip}/control/led [post]
func (h *Handler) SetLed(c *gin.Context) {
	ip, ok := h.paramIP(c)
	if !ok {
		return
	}

	var req models.LedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid LED payload")
		return
	}

	reply, err := h.usecase.SetLed(ip, req.R, req.G, req.B)
	if err != nil {
		h.DeviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "reply": reply})
}

// Pause приостанавливает текущую печать.
// @Summary Пауза печати
// @Tags Control
// @Produce json
// @Param ip path string true "IP-адрес принтера"
// @Success 200 {object} models.ControlResponse "Сырой ответ принтера"
// @Failure 400 {object} models.ErrorResponse "Некорректный IP-адрес"
// @Failure 502 {object} models.ErrorResponse "Принтер недоступен"
// @Router /printers/{ip}/control/pause [post]
func (h *Handler) Pause(c *gin.Context) {
	h.control(c, h.usecase.Pause)
}

// Resume возобновляет приостановленную печать.
// @Summary Возобновление печати
// @Tags Control
// @Produce json
// @Param ip path string true "IP-адрес принтера"
// @Success 200 {object} models.ControlResponse "Сырой ответ принтера"
// @Failure 400 {object} models.ErrorResponse "Некорректный IP-адрес"
// @Failure 502 {object} models.ErrorResponse "Принтер недоступен"
// @Router /printers/{ip}/control/resume [post]
func (h *Handler) Resume(c *gin.Context) {
	h.control(c, h.usecase.Resume)
}

// Cancel отменяет текущую печать.
// @Summary Отмена печати
// @Tags Control
// @Produce json
// @Param ip path string true "IP-адрес принтера"
// @Success 200 {object} models.ControlResponse "Сырой ответ принтера"
// @Failure 400 {object} models.ErrorResponse "Некорректный IP-адрес"
// @Failure 502 {object} models.ErrorResponse "Принтер недоступен"
// @Router /printers/{ip}/control/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	h.control(c, h.usecase.Cancel)
}

// Home возвращает головку в исходное положение.
// @Summary Возврат в исходное положение
// @Tags Control
// @Produce json
// @Param ip path string true "IP-адрес принтера"
// @Success 200 {object} models.ControlResponse "Сырой ответ принтера"
// @Failure 400 {object} models.ErrorResponse "Некорректный IP-адрес"
// @Failure 502 {object} models.ErrorResponse "Принтер недоступен"
// @Router /printers/{ip}/control/home [post]
func (h *Handler) Home(c *gin.Context) {
	h.control(c, h.usecase.Home)
}

func (h *Handler) control(c *gin.Context, action func(ip string) (string, error)) {
	ip, ok := h.paramIP(c)
	if !ok {
		return
	}

	reply, err := action(ip)
	if err != nil {
		h.DeviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "reply": reply})
}
