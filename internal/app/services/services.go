// Package services holds the business logic between the HTTP controllers and
// the repositories. Each service depends on narrow repository interfaces so
// scenario tests can run against in-memory fakes.
package services

import (
	"context"

	"github.com/nmcleod/rollcall/internal/app/models"
	"github.com/nmcleod/rollcall/internal/app/repositories"
	"github.com/nmcleod/rollcall/internal/config"
	"github.com/nmcleod/rollcall/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// SchoolStore is the directory access the school and favorite services need.
type SchoolStore interface {
	GetAll(ctx context.Context) ([]*models.School, error)
	GetBySchoolID(ctx context.Context, schoolID string) (*models.School, error)
	ReplaceAll(ctx context.Context, schools []models.School) (int, error)
	DeleteAll(ctx context.Context) error
}

// UserStore covers users and their school favorites.
type UserStore interface {
	GetByCredential(ctx context.Context, credential string) (*models.User, error)
	GetByUserID(ctx context.Context, userID string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	TouchLastLogin(ctx context.Context, userID string) error
	AddFavorite(ctx context.Context, userID, schoolID, notes string) error
	RemoveFavorite(ctx context.Context, userID, schoolID string) error
	GetFavorites(ctx context.Context, userID string) ([]*models.FavoriteSchool, error)
	HasFavorite(ctx context.Context, userID, schoolID string) (bool, error)
	GetFavoriteSchoolIDs(ctx context.Context, userID string) ([]string, error)
}

// GroupStore covers groups and group membership.
type GroupStore interface {
	Create(ctx context.Context, group *models.Group) error
	GetByGroupID(ctx context.Context, groupID string) (*models.Group, error)
	GetBySchool(ctx context.Context, userID, schoolID string) ([]*models.Group, error)
	GetAllByUser(ctx context.Context, userID string) ([]*models.Group, error)
	UpdateName(ctx context.Context, groupID, groupName string) error
	Delete(ctx context.Context, groupID string) error
	GetStudents(ctx context.Context, groupID string) ([]models.Student, error)
	AddGeneratedStudents(ctx context.Context, groupID string, students []models.Student) error
	RemoveStudent(ctx context.Context, groupID, studentID string) error
}

// StudentStore covers the flat student roster.
type StudentStore interface {
	GetAll(ctx context.Context) ([]models.Student, error)
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	InsertMany(ctx context.Context, students []models.Student) error
	Update(ctx context.Context, studentID string, fields map[string]interface{}) error
	DeleteAll(ctx context.Context) error
	GetAllNSNs(ctx context.Context) ([]string, error)
}

// Services holds all the service instances
type Services struct {
	AuthService     AuthService
	SchoolService   SchoolService
	FavoriteService FavoriteService
	GroupService    GroupService
	StudentService  StudentService
	ASTService      ASTService
}

// NewServices wires the services to the concrete repositories
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	cfg *config.Config,
	logger zerolog.Logger,
) *Services {
	return &Services{
		AuthService: NewAuthService(repos.UserRepository, jwtService, logger),
		SchoolService: NewSchoolService(repos.SchoolRepository,
			cfg.Schools.DirectoryURL, cfg.Schools.MaxUploadSize, logger),
		FavoriteService: NewFavoriteService(repos.UserRepository, repos.SchoolRepository, logger),
		GroupService:    NewGroupService(repos.GroupRepository, repos.UserRepository, repos.StudentRepository, logger),
		StudentService:  NewStudentService(repos.StudentRepository, logger),
		ASTService:      NewASTService(repos.GroupRepository, logger),
	}
}
