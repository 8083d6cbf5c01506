package dto

import (
	"time"

	"github.com/google/uuid"
)

// Title and Term may be omitted; the service then resolves them from the
// institutional catalog by course code.
type CreateCourseRequest struct {
	Code  string `json:"code" validate:"required"`
	Title string `json:"title"`
	Term  string `json:"term"`
}

type CreateCourseResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowCourseResponse struct {
	Id        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Title     string    `json:"title"`
	Term      string    `json:"term"`
	CreatedAt time.Time `json:"created_at"`
}

// CatalogCourse is an entry from the institutional course catalog, looked up
// through the outlines API rather than our own storage.
type CatalogCourse struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}
