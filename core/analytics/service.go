package analytics

import (
	"errors"
	"fmt"
	"net/mail"
	"sync"
	"time"

	"github.com/trezcool/tathmini/core"
	"github.com/trezcool/tathmini/core/feedback"
)

var (
	// errors
	ErrStudentNotFound = errors.New("student not found")
)

type (
	// StudentInfo identifies a student and the supervisor to notify on
	// high-stress alerts. User management itself lives elsewhere; this is
	// the read-only slice of it the reports need.
	StudentInfo struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		SupervisorEmail string `json:"-"`
	}

	// ProgressFacts are the raw per-student progress inputs, gathered by the
	// storage adapter from the collaborator-owned records.
	ProgressFacts struct {
		DeliverableCompletion float64 // 0..1
		AverageMark           float64 // 0..100
		ActivityLevel         float64 // 0..100
	}

	// StressFacts are the raw per-student pressure ratios (0..1); the
	// service scales them to the calculator's 0..100 axes.
	StressFacts struct {
		WorkloadRatio  float64
		DeadlineRatio  float64
		IsolationRatio float64
	}

	FactsRepository interface {
		QueryStudents() ([]StudentInfo, error)
		GetStudent(id string) (StudentInfo, error)
		GetProgressFacts(studentID string) (ProgressFacts, error)
		GetStressFacts(studentID string) (StressFacts, error)
	}

	Service struct {
		repo    FactsRepository
		fbSvc   *feedback.Service
		mailSvc core.EmailService
		logger  core.Logger
		weights Weights

		alertThreshold float64
		alertCooldown  time.Duration
		alertMu        sync.Mutex
		lastAlertAt    map[string]time.Time
	}

	// StudentReport is the dashboard view for one student.
	StudentReport struct {
		Student       StudentInfo `json:"student"`
		ProgressScore float64     `json:"progress_score"`
		Stress        Stress      `json:"stress"`
		Performance   Performance `json:"performance"`
		FeedbackCount int         `json:"feedback_count"`
	}

	// StudentStress is one entry of the high-stress watchlist.
	StudentStress struct {
		Student StudentInfo `json:"student"`
		Stress  Stress      `json:"stress"`
	}

	// Overview is the system-wide dashboard view.
	Overview struct {
		StudentCount       int                 `json:"student_count"`
		AverageProgress    float64             `json:"average_progress"`
		StressDistribution map[StressLevel]int `json:"stress_distribution"`
		HighStress         []StudentStress     `json:"high_stress"`
	}
)

func NewService(
	repo FactsRepository,
	fbSvc *feedback.Service,
	mailSvc core.EmailService,
	logger core.Logger,
	conf *core.Config,
) *Service {
	return &Service{
		repo:           repo,
		fbSvc:          fbSvc,
		mailSvc:        mailSvc,
		logger:         logger,
		weights:        WeightsFromConfig(conf.Performance),
		alertThreshold: conf.Alerts.StressThreshold,
		alertCooldown:  conf.Alerts.Cooldown,
		lastAlertAt:    make(map[string]time.Time),
	}
}

// StudentReport computes the full scoring view for one student: progress,
// stress (with a high-stress alert side effect) and performance.
func (svc *Service) StudentReport(studentID string) (StudentReport, error) {
	student, err := svc.repo.GetStudent(core.CleanString(studentID))
	if err != nil {
		return StudentReport{}, err
	}
	return svc.report(student)
}

func (svc *Service) report(student StudentInfo) (StudentReport, error) {
	agg, err := svc.fbSvc.Aggregate(student.ID)
	if err != nil {
		return StudentReport{}, err
	}

	progressFacts, err := svc.repo.GetProgressFacts(student.ID)
	if err != nil {
		return StudentReport{}, err
	}
	progressScore := ComputeProgress(ProgressInput{
		DeliverableCompletion: progressFacts.DeliverableCompletion,
		AverageMark:           progressFacts.AverageMark,
		ActivityLevel:         progressFacts.ActivityLevel,
		FeedbackSentiment:     agg.MeanSentiment,
	})

	stressFacts, err := svc.repo.GetStressFacts(student.ID)
	if err != nil {
		return StudentReport{}, err
	}
	stress := ComputeStress(StressInput{
		Workload:          stressFacts.WorkloadRatio * 100,
		DeadlinePressure:  stressFacts.DeadlineRatio * 100,
		Isolation:         stressFacts.IsolationRatio * 100,
		FeedbackSentiment: agg.MeanSentiment,
	})
	svc.maybeAlert(student, stress)

	ratings, err := svc.fbSvc.Ratings(student.ID)
	if err != nil {
		return StudentReport{}, err
	}
	perf, err := ComputePerformance(progressScore, stress.Score, ratings, svc.weights)
	if err != nil {
		return StudentReport{}, err
	}

	return StudentReport{
		Student:       student,
		ProgressScore: progressScore,
		Stress:        stress,
		Performance:   perf,
		FeedbackCount: agg.Count,
	}, nil
}

// Overview computes the system-wide dashboard numbers.
func (svc *Service) Overview() (Overview, error) {
	students, err := svc.repo.QueryStudents()
	if err != nil {
		return Overview{}, err
	}

	ov := Overview{
		StudentCount: len(students),
		StressDistribution: map[StressLevel]int{
			StressLow: 0, StressModerate: 0, StressHigh: 0, StressCritical: 0,
		},
		HighStress: make([]StudentStress, 0),
	}

	progressScores := make([]float64, 0, len(students))
	for _, student := range students {
		report, err := svc.report(student)
		if err != nil {
			return Overview{}, err
		}
		progressScores = append(progressScores, report.ProgressScore)
		ov.StressDistribution[report.Stress.Level]++
		if report.Stress.Score >= svc.alertThreshold {
			ov.HighStress = append(ov.HighStress, StudentStress{Student: student, Stress: report.Stress})
		}
	}
	ov.AverageProgress = core.Mean(progressScores)
	return ov, nil
}

// StressReports recomputes the stress score of every student, oldest-ID
// first. Used by the admin CLI to refresh the watchlist on demand; the same
// alerting policy applies as for on-request reports.
func (svc *Service) StressReports() ([]StudentStress, error) {
	students, err := svc.repo.QueryStudents()
	if err != nil {
		return nil, err
	}

	reports := make([]StudentStress, 0, len(students))
	for _, student := range students {
		agg, err := svc.fbSvc.Aggregate(student.ID)
		if err != nil {
			return nil, err
		}
		facts, err := svc.repo.GetStressFacts(student.ID)
		if err != nil {
			return nil, err
		}
		stress := ComputeStress(StressInput{
			Workload:          facts.WorkloadRatio * 100,
			DeadlinePressure:  facts.DeadlineRatio * 100,
			Isolation:         facts.IsolationRatio * 100,
			FeedbackSentiment: agg.MeanSentiment,
		})
		svc.maybeAlert(student, stress)
		reports = append(reports, StudentStress{Student: student, Stress: stress})
	}
	return reports, nil
}

// maybeAlert emails the student's supervisor when the stress score crosses
// the configured threshold, at most once per cooldown window per student.
func (svc *Service) maybeAlert(student StudentInfo, stress Stress) {
	if stress.Score < svc.alertThreshold || student.SupervisorEmail == "" {
		return
	}

	svc.alertMu.Lock()
	last, seen := svc.lastAlertAt[student.ID]
	now := time.Now().UTC()
	if seen && now.Sub(last) < svc.alertCooldown {
		svc.alertMu.Unlock()
		return
	}
	svc.lastAlertAt[student.ID] = now
	svc.alertMu.Unlock()

	svc.logger.Warn(
		fmt.Sprintf("high stress alert: %s at %.1f (%s)", student.Name, stress.Score, stress.Level),
		map[string]interface{}{"student_id": student.ID, "score": stress.Score, "level": string(stress.Level)},
	)
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Address: student.SupervisorEmail}},
		Subject: "High stress alert: " + student.Name,
		BodyStr: fmt.Sprintf(
			"%s has a computed stress score of %.1f (%s).\n"+
				"Consider scheduling a check-in meeting.",
			student.Name, stress.Score, stress.Level,
		),
	})
}
