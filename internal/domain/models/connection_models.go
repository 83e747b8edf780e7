package models

import "time"

// RegisterPrinterRequest определяет структуру запроса на регистрацию принтера.
type RegisterPrinterRequest struct {
	IP   string `json:"ip" binding:"required"` // "192.168.1.50"
	Name string `json:"name"`
}

// SessionRequest определяет структуру для запросов, использующих SessionID.
type SessionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// LedRequest определяет структуру запроса на установку цвета подсветки.
type LedRequest struct {
	R int `json:"r" binding:"min=0,max=255"`
	G int `json:"g" binding:"min=0,max=255"`
	B int `json:"b" binding:"min=0,max=255"`
}

// PrinterSession представляет зарегистрированный принтер в пуле.
type PrinterSession struct {
	SessionID string    `json:"session_id"`
	IP        string    `json:"ip"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	LastUsed  time.Time `json:"last_used"`
	UseCount  int64     `json:"use_count"`
	IsHealthy bool      `json:"is_healthy"`
}
