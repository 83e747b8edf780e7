package models

// ErrorResponse представляет стандартный ответ с ошибкой.
type ErrorResponse struct {
	Status string `json:"status" example:"error"`
	Error  struct {
		Code    int    `json:"code" example:"404"`
		Message string `json:"message" example:"Принтер не найден"`
	} `json:"error"`
}

// MessageResponse представляет стандартный успешный ответ с сообщением.
type MessageResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message" example:"Session deleted successfully"`
}

// RegisterPrinterResponse представляет ответ при успешной регистрации принтера.
type RegisterPrinterResponse struct {
	Status  string          `json:"status" example:"ok"`
	Printer *PrinterSession `json:"printer"`
}

// GetPrintersResponse представляет ответ со списком зарегистрированных принтеров.
type GetPrintersResponse struct {
	Status   string            `json:"status" example:"ok"`
	PoolSize int               `json:"pool_size" example:"2"`
	Printers []*PrinterSession `json:"printers"`
}

// CheckPrinterResponse представляет ответ при проверке доступности принтера.
type CheckPrinterResponse struct {
	Status  string          `json:"status" example:"healthy"`
	Printer *PrinterSession `json:"printer"`
}

// SnapshotResponse представляет ответ с полным снапшотом телеметрии.
type SnapshotResponse struct {
	Status   string    `json:"status" example:"ok"`
	Snapshot *Snapshot `json:"snapshot"`
}

// HistoryResponse представляет ответ с окном последних снапшотов.
type HistoryResponse struct {
	Status    string      `json:"status" example:"ok"`
	Size      int         `json:"size" example:"12"`
	Snapshots []*Snapshot `json:"snapshots"`
}

// ControlResponse представляет ответ на управляющую команду.
type ControlResponse struct {
	Status string `json:"status" example:"ok"`
	Reply  string `json:"reply"` // Сырой ответ принтера
}
