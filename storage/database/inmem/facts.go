package inmemdb

import (
	"sort"

	"github.com/trezcool/tathmini/core/analytics"
)

type factsRepository struct {
	db *factsTable
}

var _ analytics.FactsRepository = (*factsRepository)(nil)

func NewFactsRepository(db *DB) *factsRepository {
	return &factsRepository{db: db.facts}
}

// SetStudent registers a student with their facts. Test helper; the real
// records live with the project/user collaborators.
func (repo *factsRepository) SetStudent(
	info analytics.StudentInfo,
	progress analytics.ProgressFacts,
	stress analytics.StressFacts,
) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.students[info.ID] = &info
	repo.db.progress[info.ID] = progress
	repo.db.stress[info.ID] = stress
}

func (repo *factsRepository) QueryStudents() ([]analytics.StudentInfo, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	students := make([]analytics.StudentInfo, 0, len(repo.db.students))
	for _, s := range repo.db.students {
		students = append(students, *s)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	return students, nil
}

func (repo *factsRepository) GetStudent(id string) (analytics.StudentInfo, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if s, ok := repo.db.students[id]; ok {
		return *s, nil
	}
	return analytics.StudentInfo{}, analytics.ErrStudentNotFound
}

func (repo *factsRepository) GetProgressFacts(studentID string) (analytics.ProgressFacts, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if _, ok := repo.db.students[studentID]; !ok {
		return analytics.ProgressFacts{}, analytics.ErrStudentNotFound
	}
	return repo.db.progress[studentID], nil
}

func (repo *factsRepository) GetStressFacts(studentID string) (analytics.StressFacts, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if _, ok := repo.db.students[studentID]; !ok {
		return analytics.StressFacts{}, analytics.ErrStudentNotFound
	}
	return repo.db.stress[studentID], nil
}
