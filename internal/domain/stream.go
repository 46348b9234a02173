package domain

import "github.com/google/uuid"

// Stream names (должны совпадать с продюсерами событий)
const (
	StreamAttractionSync   = "stream:attraction:sync"
	StreamAttractionSynced = "stream:attraction:synced"
)

// AttractionSyncEvent - входящее событие на обновление данных из TripAdvisor
type AttractionSyncEvent struct {
	RequestID    uuid.UUID `json:"request_id"`
	AttractionID int64     `json:"attraction_id"`
	Force        bool      `json:"force,omitempty"`
}

// AttractionSyncedEvent - результат обработки события синхронизации
type AttractionSyncedEvent struct {
	RequestID    uuid.UUID `json:"request_id"`
	AttractionID int64     `json:"attraction_id"`
	Error        string    `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
