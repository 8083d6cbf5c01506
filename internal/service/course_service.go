package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"lecture-notes-be/internal/dto"
	"lecture-notes-be/internal/entity"
	"lecture-notes-be/internal/pkg/serverutils"
	"lecture-notes-be/internal/repository/specification"
	"lecture-notes-be/internal/repository/unitofwork"
	"lecture-notes-be/pkg/catalog"

	"github.com/google/uuid"
)

type ICourseService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCourseRequest) (*dto.CreateCourseResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ShowCourseResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	SearchCatalog(ctx context.Context, year, term, department string) ([]dto.CatalogCourse, error)
}

type courseService struct {
	uowFactory    unitofwork.RepositoryFactory
	catalogClient *catalog.Client
}

func NewCourseService(uowFactory unitofwork.RepositoryFactory, catalogClient *catalog.Client) ICourseService {
	return &courseService{
		uowFactory:    uowFactory,
		catalogClient: catalogClient,
	}
}

// currentTermYear maps the clock onto the institutional term calendar:
// spring is Jan-Apr, summer is May-Aug, fall is Sep-Dec.
func currentTermYear(now time.Time) (term, year string) {
	term = "spring"
	switch {
	case now.Month() >= 5 && now.Month() <= 8:
		term = "summer"
	case now.Month() >= 9:
		term = "fall"
	}
	return term, strconv.Itoa(now.Year())
}

func (s *courseService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCourseRequest) (*dto.CreateCourseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	title := req.Title
	term := req.Term
	if title == "" {
		parts := strings.Fields(req.Code)
		if len(parts) != 2 {
			return nil, serverutils.NewValidationError("course code must be a department and a number, e.g. \"CMPT 310\"")
		}
		curTerm, year := currentTermYear(time.Now())
		entries, err := s.catalogClient.ListCourses(ctx, year, curTerm, strings.ToLower(parts[0]))
		if err != nil {
			return nil, err
		}
		code := strings.ToUpper(parts[0]) + " " + parts[1]
		for _, e := range entries {
			if e.Code == code {
				title = e.Title
				break
			}
		}
		if title == "" {
			return nil, serverutils.NewValidationError("course %s not found in catalog", req.Code)
		}
		if term == "" {
			term = curTerm + " " + year
		}
	}

	course := &entity.Course{
		Id:        uuid.New(),
		UserId:    userId,
		Code:      req.Code,
		Title:     title,
		Term:      term,
		CreatedAt: time.Now(),
	}

	if err := uow.CourseRepository().Create(ctx, course); err != nil {
		return nil, err
	}

	return &dto.CreateCourseResponse{Id: course.Id}, nil
}

func (s *courseService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ShowCourseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	courses, err := uow.CourseRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ShowCourseResponse, 0, len(courses))
	for _, c := range courses {
		responses = append(responses, &dto.ShowCourseResponse{
			Id:        c.Id,
			Code:      c.Code,
			Title:     c.Title,
			Term:      c.Term,
			CreatedAt: c.CreatedAt,
		})
	}
	return responses, nil
}

func (s *courseService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	course, err := uow.CourseRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if course == nil {
		return serverutils.NewNotFoundError("course")
	}
	if course.UserId != userId {
		return serverutils.NewForbiddenError("course")
	}

	return uow.CourseRepository().Delete(ctx, id)
}

func (s *courseService) SearchCatalog(ctx context.Context, year, term, department string) ([]dto.CatalogCourse, error) {
	if year == "" || term == "" || department == "" {
		return nil, serverutils.NewValidationError("year, term and department are required")
	}
	return s.catalogClient.ListCourses(ctx, year, term, department)
}
