package handlers

import (
	"net"
	"net/http"

	"github.com/iwtcode/flashforgeService/pkg/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse возвращает стандартизированный ответ с ошибкой
func (h *Handler) ErrorResponse(c *gin.Context, err error, statusCode int, message string, showError bool) {
	errorMessage := message
	if showError && err != nil {
		errorMessage = message + ": " + err.Error()
	}

	h.logger.Error(message, "error", err, "statusCode", statusCode)
	c.AbortWithStatusJSON(statusCode, gin.H{
		"status": "error",
		"error": gin.H{
			"code":    statusCode,
			"message": errorMessage,
		},
	})
}

// BadRequest возвращает ошибку 400
func (h *Handler) BadRequest(c *gin.Context, err error, message string) {
	if message == "" {
		message = errors.BadRequest
	}
	h.ErrorResponse(c, err, http.StatusBadRequest, message, true)
}

// InternalError возвращает ошибку 500
func (h *Handler) InternalError(c *gin.Context, err error) {
	h.ErrorResponse(c, err, http.StatusInternalServerError, errors.InternalServerError, false)
}

// NotFound возвращает ошибку 404
func (h *Handler) NotFound(c *gin.Context, err error) {
	h.ErrorResponse(c, err, http.StatusNotFound, errors.NotFound, true)
}

// DeviceError возвращает ошибку 502: принтер недоступен или не ответил
func (h *Handler) DeviceError(c *gin.Context, err error) {
	h.ErrorResponse(c, err, http.StatusBadGateway, errors.DeviceUnavailable, true)
}

// paramIP извлекает и проверяет IP-адрес принтера из пути запроса.
// Второе значение - false, если адрес некорректен (ответ уже отправлен).
func (h *Handler) paramIP(c *gin.Context) (string, bool) {
	ip := c.Param("ip")
	if net.ParseIP(ip) == nil {
		h.BadRequest(c, nil, "Invalid printer IP '"+ip+"'")
		return "", false
	}
	return ip, true
}
