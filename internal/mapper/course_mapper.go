package mapper

import (
	"lecture-notes-be/internal/entity"
	"lecture-notes-be/internal/model"
)

type CourseMapper struct{}

func NewCourseMapper() *CourseMapper {
	return &CourseMapper{}
}

func (m *CourseMapper) ToEntity(c *model.Course) *entity.Course {
	if c == nil {
		return nil
	}
	return &entity.Course{
		Id:        c.Id,
		UserId:    c.UserId,
		Code:      c.Code,
		Title:     c.Title,
		Term:      c.Term,
		CreatedAt: c.CreatedAt,
	}
}

func (m *CourseMapper) ToModel(c *entity.Course) *model.Course {
	if c == nil {
		return nil
	}
	return &model.Course{
		Id:        c.Id,
		UserId:    c.UserId,
		Code:      c.Code,
		Title:     c.Title,
		Term:      c.Term,
		CreatedAt: c.CreatedAt,
	}
}

func (m *CourseMapper) ToEntities(courses []*model.Course) []*entity.Course {
	entities := make([]*entity.Course, len(courses))
	for i, c := range courses {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
