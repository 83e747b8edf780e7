package entities

import "time"

const (
	// StatusRegistered - принтер сохранен в реестре, активных наблюдателей нет.
	StatusRegistered = "registered"
	// StatusObserved - на принтере есть хотя бы один наблюдатель, опрос идет.
	StatusObserved = "observed"
)

type Printer struct {
	SessionID string    `gorm:"primaryKey;not null" json:"session_id"`
	IP        string    `gorm:"not null;unique" json:"ip"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Status    string    `gorm:"not null" json:"status"` // registered / observed
	Interval  int       `json:"interval"`               // Текущий интервал опроса в мс
}
