package models

// Типы сообщений push-протокола наблюдателей.
const (
	WSTypeSubscribe    = "subscribe"
	WSTypeUnsubscribe  = "unsubscribe"
	WSTypeSnapshot     = "snapshot"
	WSTypeSubscribed   = "subscribed"
	WSTypeUnsubscribed = "unsubscribed"
	WSTypeError        = "error"
)

// ClientMessage - входящее сообщение наблюдателя.
type ClientMessage struct {
	Type       string `json:"type"`
	IP         string `json:"ip"`
	IntervalMs int64  `json:"interval_ms"`
}

// PushMessage - исходящее сообщение наблюдателю.
type PushMessage struct {
	Type       string    `json:"type"`
	IP         string    `json:"ip,omitempty"`
	IntervalMs int64     `json:"interval_ms,omitempty"`
	Data       *Snapshot `json:"data,omitempty"`
	Error      string    `json:"error,omitempty"`
}
