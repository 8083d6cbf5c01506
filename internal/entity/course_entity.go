package entity

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Code      string
	Title     string
	Term      string
	CreatedAt time.Time
}
