package dto

import "github.com/google/uuid"

// ArtifactsGeneratedEvent is published on the internal bus after a
// generation batch commits, and consumed into the activity log.
type ArtifactsGeneratedEvent struct {
	UserId       uuid.UUID `json:"user_id"`
	NoteId       uuid.UUID `json:"note_id"`
	ArtifactKind string    `json:"artifact_kind"`
	Count        int       `json:"count"`
}
