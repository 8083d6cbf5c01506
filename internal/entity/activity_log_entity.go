package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLog records a pipeline event (artifacts generated, summary written)
// for the owning user, written asynchronously by the consumer service.
type ActivityLog struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	EventType string
	Detail    map[string]interface{}
	CreatedAt time.Time
}
