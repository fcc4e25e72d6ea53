package telemetry

import (
	"encoding/json"
	"sync"
	"time"
)

// Repository stores activity events.
type Repository interface {
	RecordEvent(eventType EventType, metadata EventMetadata) error
	GetEvents(since time.Time, eventTypes []EventType) ([]Event, error)
	Clear() error
}

// MemoryRepository keeps events in memory. Events are advisory and do not
// survive a restart.
type MemoryRepository struct {
	mu     sync.RWMutex
	events []Event
	nextID int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) RecordEvent(eventType EventType, metadata EventMetadata) error {
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, Event{
		ID:        r.nextID,
		Type:      eventType,
		Timestamp: time.Now(),
		Metadata:  string(metadataJSON),
	})
	r.nextID++
	return nil
}

func (r *MemoryRepository) GetEvents(since time.Time, eventTypes []EventType) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[EventType]bool, len(eventTypes))
	for _, t := range eventTypes {
		wanted[t] = true
	}

	result := make([]Event, 0)
	for _, event := range r.events {
		if event.Timestamp.Before(since) {
			continue
		}
		if len(wanted) > 0 && !wanted[event.Type] {
			continue
		}
		result = append(result, event)
	}
	return result, nil
}

func (r *MemoryRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
	r.nextID = 1
	return nil
}
