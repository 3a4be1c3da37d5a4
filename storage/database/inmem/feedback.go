package inmemdb

import (
	"sort"

	"github.com/trezcool/tathmini/core/feedback"
)

type feedbackRepository struct {
	db *feedbackTable
}

var _ feedback.Repository = (*feedbackRepository)(nil)

func NewFeedbackRepository(db *DB) feedback.Repository {
	return &feedbackRepository{db: db.feedback}
}

func (repo *feedbackRepository) CreateSignal(sig feedback.Signal) (feedback.Signal, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.table[sig.ID] = &sig
	return sig, nil
}

func (repo *feedbackRepository) GetSignalByID(id string) (feedback.Signal, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if sig, ok := repo.db.table[id]; ok {
		return *sig, nil
	}
	return feedback.Signal{}, feedback.ErrNotFound
}

func (repo *feedbackRepository) QuerySignalsByStudent(studentID string) ([]feedback.Signal, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	sigs := make([]feedback.Signal, 0)
	for _, sig := range repo.db.table {
		if sig.StudentID == studentID {
			sigs = append(sigs, *sig)
		}
	}
	sort.Slice(sigs, func(i, j int) bool { return sigs[i].Date.Before(sigs[j].Date) })
	return sigs, nil
}

func (repo *feedbackRepository) UpdateSignal(sig feedback.Signal) (feedback.Signal, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[sig.ID]; !ok {
		return feedback.Signal{}, feedback.ErrNotFound
	}
	repo.db.table[sig.ID] = &sig
	return sig, nil
}

func (repo *feedbackRepository) DeleteSignalsByID(ids ...string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}
