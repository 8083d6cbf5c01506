package service

import (
	"context"
	"encoding/json"
	"time"

	"lecture-notes-be/internal/dto"
	"lecture-notes-be/internal/entity"
	"lecture-notes-be/internal/pkg/logger"
	"lecture-notes-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains generation events off the in-process bus and turns
// them into activity-log rows, keeping the write out of the request path.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		log:        log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ArtifactsGeneratedEvent
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		// Ack invalid messages, retrying cannot fix them.
		cs.log.Error("ConsumerService", "failed to unmarshal message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	logEntry := &entity.ActivityLog{
		Id:        uuid.New(),
		UserId:    payload.UserId,
		EventType: "STUDY_ARTIFACTS_GENERATED",
		Detail: map[string]interface{}{
			"note_id": payload.NoteId.String(),
			"kind":    payload.ArtifactKind,
			"count":   payload.Count,
		},
		CreatedAt: time.Now(),
	}

	if err := uow.ActivityLogRepository().Create(ctx, logEntry); err != nil {
		cs.log.Error("ConsumerService", "failed to record activity", map[string]interface{}{
			"note_id": payload.NoteId.String(),
			"error":   err.Error(),
		})
		msg.Nack()
		return
	}

	msg.Ack()
}
