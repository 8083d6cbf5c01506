package mapper

import (
	"encoding/json"

	"lecture-notes-be/internal/entity"
	"lecture-notes-be/internal/model"

	"gorm.io/datatypes"
)

type ActivityLogMapper struct{}

func NewActivityLogMapper() *ActivityLogMapper {
	return &ActivityLogMapper{}
}

func (m *ActivityLogMapper) ToEntity(a *model.ActivityLog) *entity.ActivityLog {
	if a == nil {
		return nil
	}

	detail := make(map[string]interface{})
	if len(a.Detail) > 0 {
		_ = json.Unmarshal(a.Detail, &detail)
	}

	return &entity.ActivityLog{
		Id:        a.Id,
		UserId:    a.UserId,
		EventType: a.EventType,
		Detail:    detail,
		CreatedAt: a.CreatedAt,
	}
}

func (m *ActivityLogMapper) ToModel(a *entity.ActivityLog) *model.ActivityLog {
	if a == nil {
		return nil
	}

	var detail datatypes.JSON
	if a.Detail != nil {
		if raw, err := json.Marshal(a.Detail); err == nil {
			detail = datatypes.JSON(raw)
		}
	}

	return &model.ActivityLog{
		Id:        a.Id,
		UserId:    a.UserId,
		EventType: a.EventType,
		Detail:    detail,
		CreatedAt: a.CreatedAt,
	}
}

func (m *ActivityLogMapper) ToEntities(logs []*model.ActivityLog) []*entity.ActivityLog {
	entities := make([]*entity.ActivityLog, len(logs))
	for i, a := range logs {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
