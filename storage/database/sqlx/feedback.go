package sqlxrepos

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/tathmini/core/feedback"
	"github.com/trezcool/tathmini/core/sentiment"
)

type feedbackRepository struct {
	db *sqlx.DB
}

var _ feedback.Repository = (*feedbackRepository)(nil) // interface compliance check

func NewFeedbackRepository(db *sqlx.DB) *feedbackRepository {
	return &feedbackRepository{db: db}
}

type signalRow struct {
	ID                string    `db:"id"`
	StudentID         string    `db:"student_id"`
	SupervisorID      string    `db:"supervisor_id"`
	Date              time.Time `db:"date"`
	Rating            int       `db:"rating"`
	Remarks           string    `db:"remarks"`
	SentimentScore    float64   `db:"sentiment_score"`
	SentimentCategory string    `db:"sentiment_category"`
	ActionRequired    bool      `db:"action_required"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func (repo feedbackRepository) row(sig feedback.Signal) signalRow {
	return signalRow{
		ID:                sig.ID,
		StudentID:         sig.StudentID,
		SupervisorID:      sig.SupervisorID,
		Date:              sig.Date.UTC(),
		Rating:            sig.Rating,
		Remarks:           sig.Remarks,
		SentimentScore:    sig.SentimentScore,
		SentimentCategory: string(sig.SentimentCategory),
		ActionRequired:    sig.ActionRequired,
		CreatedAt:         sig.CreatedAt.UTC(),
		UpdatedAt:         sig.UpdatedAt.UTC(),
	}
}

func (repo feedbackRepository) unrow(row signalRow) feedback.Signal {
	return feedback.Signal{
		ID:                row.ID,
		StudentID:         row.StudentID,
		SupervisorID:      row.SupervisorID,
		Date:              row.Date,
		Rating:            row.Rating,
		Remarks:           row.Remarks,
		SentimentScore:    row.SentimentScore,
		SentimentCategory: sentiment.Category(row.SentimentCategory),
		ActionRequired:    row.ActionRequired,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}

func (repo *feedbackRepository) CreateSignal(sig feedback.Signal) (feedback.Signal, error) {
	const q = `
		INSERT INTO feedback_signal (
			id, student_id, supervisor_id, date, rating, remarks,
			sentiment_score, sentiment_category, action_required, created_at, updated_at
		) VALUES (
			:id, :student_id, :supervisor_id, :date, :rating, :remarks,
			:sentiment_score, :sentiment_category, :action_required, :created_at, :updated_at
		)`
	if _, err := repo.db.NamedExec(q, repo.row(sig)); err != nil {
		return feedback.Signal{}, errors.Wrap(err, "inserting feedback signal")
	}
	return sig, nil
}

func (repo *feedbackRepository) GetSignalByID(id string) (feedback.Signal, error) {
	var row signalRow
	err := repo.db.Get(&row, `SELECT * FROM feedback_signal WHERE id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return feedback.Signal{}, feedback.ErrNotFound
		}
		return feedback.Signal{}, errors.Wrap(err, "getting feedback signal")
	}
	return repo.unrow(row), nil
}

func (repo *feedbackRepository) QuerySignalsByStudent(studentID string) ([]feedback.Signal, error) {
	var rows []signalRow
	err := repo.db.Select(&rows, `SELECT * FROM feedback_signal WHERE student_id = $1 ORDER BY date ASC`, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "querying feedback signals")
	}
	sigs := make([]feedback.Signal, 0, len(rows))
	for _, row := range rows {
		sigs = append(sigs, repo.unrow(row))
	}
	return sigs, nil
}

func (repo *feedbackRepository) UpdateSignal(sig feedback.Signal) (feedback.Signal, error) {
	const q = `
		UPDATE feedback_signal SET
			remarks = :remarks,
			sentiment_score = :sentiment_score,
			sentiment_category = :sentiment_category,
			action_required = :action_required,
			updated_at = :updated_at
		WHERE id = :id`
	res, err := repo.db.NamedExec(q, repo.row(sig))
	if err != nil {
		return feedback.Signal{}, errors.Wrap(err, "updating feedback signal")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return feedback.Signal{}, feedback.ErrNotFound
	}
	return sig, nil
}

func (repo *feedbackRepository) DeleteSignalsByID(ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	q, args, err := sqlx.In(`DELETE FROM feedback_signal WHERE id IN (?)`, ids)
	if err != nil {
		return errors.Wrap(err, "building delete query")
	}
	if _, err = repo.db.Exec(repo.db.Rebind(q), args...); err != nil {
		return errors.Wrap(err, "deleting feedback signals")
	}
	return nil
}
