package sqlxrepos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/tathmini/core/analytics"
)

// factsRepository reads the student and fact rows the project/activity
// collaborators keep up to date. This side only ever reads them.
type factsRepository struct {
	db *sqlx.DB
}

var _ analytics.FactsRepository = (*factsRepository)(nil) // interface compliance check

func NewFactsRepository(db *sqlx.DB) *factsRepository {
	return &factsRepository{db: db}
}

type studentRow struct {
	ID              string `db:"id"`
	Name            string `db:"name"`
	SupervisorEmail string `db:"supervisor_email"`
}

func (repo factsRepository) unrow(row studentRow) analytics.StudentInfo {
	return analytics.StudentInfo{
		ID:              row.ID,
		Name:            row.Name,
		SupervisorEmail: row.SupervisorEmail,
	}
}

func (repo *factsRepository) QueryStudents() ([]analytics.StudentInfo, error) {
	var rows []studentRow
	err := repo.db.Select(&rows, `SELECT id, name, supervisor_email FROM student ORDER BY id ASC`)
	if err != nil {
		return nil, errors.Wrap(err, "querying students")
	}
	students := make([]analytics.StudentInfo, 0, len(rows))
	for _, row := range rows {
		students = append(students, repo.unrow(row))
	}
	return students, nil
}

func (repo *factsRepository) GetStudent(id string) (analytics.StudentInfo, error) {
	var row studentRow
	err := repo.db.Get(&row, `SELECT id, name, supervisor_email FROM student WHERE id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return analytics.StudentInfo{}, analytics.ErrStudentNotFound
		}
		return analytics.StudentInfo{}, errors.Wrap(err, "getting student")
	}
	return repo.unrow(row), nil
}

func (repo *factsRepository) GetProgressFacts(studentID string) (analytics.ProgressFacts, error) {
	var row struct {
		DeliverableCompletion float64 `db:"deliverable_completion"`
		AverageMark           float64 `db:"average_mark"`
		ActivityLevel         float64 `db:"activity_level"`
	}
	err := repo.db.Get(&row, `
		SELECT deliverable_completion, average_mark, activity_level
		FROM student_progress_facts WHERE student_id = $1`, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			// a student with no recorded facts scores from zeros
			return analytics.ProgressFacts{}, nil
		}
		return analytics.ProgressFacts{}, errors.Wrap(err, "getting progress facts")
	}
	return analytics.ProgressFacts{
		DeliverableCompletion: row.DeliverableCompletion,
		AverageMark:           row.AverageMark,
		ActivityLevel:         row.ActivityLevel,
	}, nil
}

func (repo *factsRepository) GetStressFacts(studentID string) (analytics.StressFacts, error) {
	var row struct {
		WorkloadRatio  float64 `db:"workload_ratio"`
		DeadlineRatio  float64 `db:"deadline_ratio"`
		IsolationRatio float64 `db:"isolation_ratio"`
	}
	err := repo.db.Get(&row, `
		SELECT workload_ratio, deadline_ratio, isolation_ratio
		FROM student_stress_facts WHERE student_id = $1`, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return analytics.StressFacts{}, nil
		}
		return analytics.StressFacts{}, errors.Wrap(err, "getting stress facts")
	}
	return analytics.StressFacts{
		WorkloadRatio:  row.WorkloadRatio,
		DeadlineRatio:  row.DeadlineRatio,
		IsolationRatio: row.IsolationRatio,
	}, nil
}
