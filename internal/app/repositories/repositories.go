package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	SchoolRepository  *SchoolRepository
	UserRepository    *UserRepository
	GroupRepository   *GroupRepository
	StudentRepository *StudentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		SchoolRepository:  NewSchoolRepository(db),
		UserRepository:    NewUserRepository(db),
		GroupRepository:   NewGroupRepository(db),
		StudentRepository: NewStudentRepository(db),
	}
}
