package handlers

import (
	"net/http"

	"github.com/iwtcode/flashforgeService/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// RegisterPrinter регистрирует новый принтер в реестре.
// @Summary Зарегистрировать принтер
// @Description Проверяет доступность принтера по IP и сохраняет его в реестре.
// @Tags Printers
// @Accept json
// @Produce json
// @Param input body models.RegisterPrinterRequest true "Данные принтера (e.g., '192.168.1.50')"
// @Success 200 {object} models.RegisterPrinterResponse "Успешная регистрация"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 500 {object} models.ErrorResponse "Внутренняя ошибка сервера или принтер недоступен"
// @Router /printers [post]
func (h *Handler) RegisterPrinter(c *gin.Context) {
	var req models.RegisterPrinterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	h.logger.Info("Attempting to register a new printer", "ip", req.IP)

	session, err := h.usecase.RegisterPrinter(req)
	if err != nil {
		h.InternalError(c, err)
		return
	}

	h.logger.Info("Successfully registered printer", "sessionID", session.SessionID)
	c.JSON(http.StatusOK, gin.H{"status": "ok", "printer": session})
}

// GetPrinters возвращает список всех зарегистрированных принтеров.
// @Summary Получить список принтеров
// @Description Возвращает текущий пул зарегистрированных принтеров.
// @Tags Printers
// @Produce json
// @Success 200 {object} models.GetPrintersResponse "Список принтеров"
// @Router /printers [get]
func (h *Handler) GetPrinters(c *gin.Context) {
	printers := h.usecase.GetAllPrinters()
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"pool_size": len(printers),
		"printers":  printers,
	})
}

// DeletePrinter удаляет принтер по SessionID.
// @Summary Удалить принтер
// @Description Удаляет принтер из реестра и из БД.
// @Tags Printers
// @Accept json
// @Produce json
// @Param input body models.SessionRequest true "ID сессии для удаления"
// @Success 200 {object} models.MessageResponse "Сообщение об успешном удалении"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 404 {object} models.ErrorResponse "Принтер не найден"
// @Router /printers [delete]
func (h *Handler) DeletePrinter(c *gin.Context) {
	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Missing or invalid SessionID")
		return
	}

	h.logger.Info("Attempting to delete printer", "sessionID", req.SessionID)

	if err := h.usecase.DeletePrinter(req.SessionID); err != nil {
		h.NotFound(c, err)
		return
	}

	h.logger.Info("Successfully deleted printer", "sessionID", req.SessionID)
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Session " + req.SessionID + " deleted successfully",
	})
}

// CheckPrinter проверяет доступность принтера по SessionID.
// @Summary Проверить доступность принтера
// @Description Проверяет доступность управляющего порта принтера для указанного SessionID.
// @Tags Printers
// @Accept json
// @Produce json
// @Param input body models.SessionRequest true "ID сессии для проверки"
// @Success 200 {object} models.CheckPrinterResponse "Статус 'healthy' или 'unhealthy'"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 404 {object} models.ErrorResponse "Принтер не найден"
// @Router /printers/check [post]
func (h *Handler) CheckPrinter(c *gin.Context) {
	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Missing or invalid SessionID")
		return
	}

	session, err := h.usecase.CheckPrinter(req.SessionID)

	if session == nil {
		h.NotFound(c, err)
		return
	}

	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "unhealthy", "error": err.Error(), "printer": session})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "healthy", "printer": session})
}
