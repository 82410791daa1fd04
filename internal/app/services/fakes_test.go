package services

import (
	"context"
	"sort"
	"time"

	"github.com/nmcleod/rollcall/internal/app/models"
	"github.com/nmcleod/rollcall/internal/app/repositories"
)

// In-memory stores for scenario tests. They reproduce the repository error
// contracts (sentinel errors, uniqueness rules) without a database.

type fakeSchoolStore struct {
	schools map[string]models.School
}

func newFakeSchoolStore() *fakeSchoolStore {
	return &fakeSchoolStore{schools: map[string]models.School{}}
}

func (f *fakeSchoolStore) GetAll(_ context.Context) ([]*models.School, error) {
	schools := []*models.School{}
	for _, s := range f.schools {
		s := s
		schools = append(schools, &s)
	}
	sort.Slice(schools, func(i, j int) bool { return schools[i].SchoolName < schools[j].SchoolName })
	return schools, nil
}

func (f *fakeSchoolStore) GetBySchoolID(_ context.Context, schoolID string) (*models.School, error) {
	if s, ok := f.schools[schoolID]; ok {
		return &s, nil
	}
	return nil, repositories.ErrSchoolNotFound
}

func (f *fakeSchoolStore) ReplaceAll(_ context.Context, schools []models.School) (int, error) {
	f.schools = map[string]models.School{}
	for _, s := range schools {
		f.schools[s.SchoolID] = s
	}
	return len(f.schools), nil
}

func (f *fakeSchoolStore) DeleteAll(_ context.Context) error {
	f.schools = map[string]models.School{}
	return nil
}

type fakeUserStore struct {
	users     map[string]*models.User // keyed by user_id
	favorites map[string]map[string]bool
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:     map[string]*models.User{},
		favorites: map[string]map[string]bool{},
	}
}

func (f *fakeUserStore) GetByCredential(_ context.Context, credential string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == credential || u.Email == credential {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserStore) GetByUserID(_ context.Context, userID string) (*models.User, error) {
	if u, ok := f.users[userID]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	user.ID = int64(len(f.users) + 1)
	user.CreatedAt = time.Now()
	f.users[user.UserID] = user
	return nil
}

func (f *fakeUserStore) TouchLastLogin(_ context.Context, userID string) error {
	if u, ok := f.users[userID]; ok {
		now := time.Now()
		u.LastLogin = &now
	}
	return nil
}

func (f *fakeUserStore) AddFavorite(_ context.Context, userID, schoolID, _ string) error {
	if f.favorites[userID] == nil {
		f.favorites[userID] = map[string]bool{}
	}
	if f.favorites[userID][schoolID] {
		return repositories.ErrFavoriteExists
	}
	f.favorites[userID][schoolID] = true
	return nil
}

func (f *fakeUserStore) RemoveFavorite(_ context.Context, userID, schoolID string) error {
	if !f.favorites[userID][schoolID] {
		return repositories.ErrFavoriteNotFound
	}
	delete(f.favorites[userID], schoolID)
	return nil
}

func (f *fakeUserStore) GetFavorites(_ context.Context, userID string) ([]*models.FavoriteSchool, error) {
	favs := []*models.FavoriteSchool{}
	for schoolID := range f.favorites[userID] {
		fav := &models.FavoriteSchool{}
		fav.SchoolID = schoolID
		favs = append(favs, fav)
	}
	return favs, nil
}

func (f *fakeUserStore) HasFavorite(_ context.Context, userID, schoolID string) (bool, error) {
	return f.favorites[userID][schoolID], nil
}

func (f *fakeUserStore) GetFavoriteSchoolIDs(_ context.Context, userID string) ([]string, error) {
	ids := []string{}
	for schoolID := range f.favorites[userID] {
		ids = append(ids, schoolID)
	}
	sort.Strings(ids)
	return ids, nil
}

type fakeGroupStore struct {
	groups   map[string]*models.Group // keyed by group_id
	members  map[string][]models.Student
	students *fakeStudentStore
}

func newFakeGroupStore(students *fakeStudentStore) *fakeGroupStore {
	return &fakeGroupStore{
		groups:   map[string]*models.Group{},
		members:  map[string][]models.Student{},
		students: students,
	}
}

func (f *fakeGroupStore) Create(_ context.Context, group *models.Group) error {
	for _, g := range f.groups {
		if g.UserID == group.UserID && g.SchoolID == group.SchoolID && g.GroupName == group.GroupName {
			return repositories.ErrGroupExists
		}
	}
	group.ID = int64(len(f.groups) + 1)
	group.CreatedAt = time.Now()
	group.UpdatedAt = group.CreatedAt
	f.groups[group.GroupID] = group
	return nil
}

func (f *fakeGroupStore) GetByGroupID(_ context.Context, groupID string) (*models.Group, error) {
	if g, ok := f.groups[groupID]; ok {
		return g, nil
	}
	return nil, repositories.ErrGroupNotFound
}

func (f *fakeGroupStore) GetBySchool(_ context.Context, userID, schoolID string) ([]*models.Group, error) {
	groups := []*models.Group{}
	for _, g := range f.groups {
		if g.UserID == userID && g.SchoolID == schoolID {
			groups = append(groups, g)
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].GroupName < groups[j].GroupName })
	return groups, nil
}

func (f *fakeGroupStore) GetAllByUser(_ context.Context, userID string) ([]*models.Group, error) {
	groups := []*models.Group{}
	for _, g := range f.groups {
		if g.UserID == userID {
			groups = append(groups, g)
		}
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].SchoolID != groups[j].SchoolID {
			return groups[i].SchoolID < groups[j].SchoolID
		}
		return groups[i].GroupName < groups[j].GroupName
	})
	return groups, nil
}

func (f *fakeGroupStore) UpdateName(_ context.Context, groupID, groupName string) error {
	g, ok := f.groups[groupID]
	if !ok {
		return repositories.ErrGroupNotFound
	}
	g.GroupName = groupName
	g.UpdatedAt = time.Now()
	return nil
}

func (f *fakeGroupStore) Delete(_ context.Context, groupID string) error {
	if _, ok := f.groups[groupID]; !ok {
		return repositories.ErrGroupNotFound
	}
	members := f.members[groupID]
	delete(f.groups, groupID)
	delete(f.members, groupID)
	for _, s := range members {
		f.purgeIfOrphan(s.StudentID)
	}
	return nil
}

func (f *fakeGroupStore) GetStudents(_ context.Context, groupID string) ([]models.Student, error) {
	students := append([]models.Student{}, f.members[groupID]...)
	sort.Slice(students, func(i, j int) bool { return students[i].StudentID < students[j].StudentID })
	return students, nil
}

func (f *fakeGroupStore) AddGeneratedStudents(_ context.Context, groupID string, students []models.Student) error {
	for _, s := range students {
		f.students.students[s.StudentID] = s
	}
	f.members[groupID] = append(f.members[groupID], students...)
	return nil
}

func (f *fakeGroupStore) RemoveStudent(_ context.Context, groupID, studentID string) error {
	members := f.members[groupID]
	for i, s := range members {
		if s.StudentID == studentID {
			f.members[groupID] = append(members[:i], members[i+1:]...)
			f.purgeIfOrphan(studentID)
			return nil
		}
	}
	return repositories.ErrMemberAbsent
}

func (f *fakeGroupStore) purgeIfOrphan(studentID string) {
	for _, members := range f.members {
		for _, s := range members {
			if s.StudentID == studentID {
				return
			}
		}
	}
	delete(f.students.students, studentID)
}

type fakeStudentStore struct {
	students map[string]models.Student
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: map[string]models.Student{}}
}

func (f *fakeStudentStore) GetAll(_ context.Context) ([]models.Student, error) {
	students := []models.Student{}
	for _, s := range f.students {
		students = append(students, s)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].StudentID < students[j].StudentID })
	return students, nil
}

func (f *fakeStudentStore) GetByStudentID(_ context.Context, studentID string) (*models.Student, error) {
	if s, ok := f.students[studentID]; ok {
		return &s, nil
	}
	return nil, repositories.ErrStudentNotFound
}

func (f *fakeStudentStore) InsertMany(_ context.Context, students []models.Student) error {
	for _, s := range students {
		f.students[s.StudentID] = s
	}
	return nil
}

func (f *fakeStudentStore) Update(_ context.Context, studentID string, fields map[string]interface{}) error {
	s, ok := f.students[studentID]
	if !ok {
		return repositories.ErrStudentNotFound
	}
	for column, value := range fields {
		v := value.(string)
		switch column {
		case "first_name":
			s.FirstName = v
		case "last_name":
			s.LastName = v
		case "level":
			s.Level = v
		case "ethnicity":
			s.Ethnicity = v
		case "gender":
			s.Gender = v
		case "nsn":
			for id, other := range f.students {
				if id != studentID && other.NSN == v {
					return repositories.ErrNSNTaken
				}
			}
			s.NSN = v
		case "language":
			s.Language = v
		}
	}
	f.students[studentID] = s
	return nil
}

func (f *fakeStudentStore) DeleteAll(_ context.Context) error {
	f.students = map[string]models.Student{}
	return nil
}

func (f *fakeStudentStore) GetAllNSNs(_ context.Context) ([]string, error) {
	nsns := []string{}
	for _, s := range f.students {
		nsns = append(nsns, s.NSN)
	}
	return nsns, nil
}
