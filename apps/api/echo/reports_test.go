package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/tathmini/core/analytics"
)

func TestReportsAPI_studentReport(t *testing.T) {
	env := setup(t)
	env.factsRepo.SetStudent(
		analytics.StudentInfo{ID: "stu-1", Name: "Amina"},
		analytics.ProgressFacts{DeliverableCompletion: 0.8, AverageMark: 75, ActivityLevel: 60},
		analytics.StressFacts{WorkloadRatio: 0.2, DeadlineRatio: 0.3, IsolationRatio: 0.1},
	)

	req, rec := newRequest(http.MethodGet, "/v1/reports/students/stu-1")
	env.server.ServeHTTP(rec, req)
	checkCode(t, rec, http.StatusOK)

	var report analytics.StudentReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("unmarshalling response failed: %v", err)
	}
	assert.Equal(t, "stu-1", report.Student.ID)
	assert.InDelta(t, 74.5, report.ProgressScore, 0.001)
	assert.Equal(t, analytics.StressLow, report.Stress.Level)
	assert.NotEmpty(t, report.Performance.Grade)

	req, rec = newRequest(http.MethodGet, "/v1/reports/students/ghost")
	env.server.ServeHTTP(rec, req)
	checkCode(t, rec, http.StatusNotFound)
}

func TestReportsAPI_overview(t *testing.T) {
	env := setup(t)
	env.factsRepo.SetStudent(
		analytics.StudentInfo{ID: "stu-1", Name: "Amina"},
		analytics.ProgressFacts{DeliverableCompletion: 0.8, AverageMark: 75, ActivityLevel: 60},
		analytics.StressFacts{WorkloadRatio: 0.2, DeadlineRatio: 0.3, IsolationRatio: 0.1},
	)
	env.factsRepo.SetStudent(
		analytics.StudentInfo{ID: "stu-2", Name: "Bakari"},
		analytics.ProgressFacts{DeliverableCompletion: 0.5, AverageMark: 50, ActivityLevel: 50},
		analytics.StressFacts{WorkloadRatio: 1, DeadlineRatio: 1, IsolationRatio: 1},
	)

	req, rec := newRequest(http.MethodGet, "/v1/reports/overview")
	env.server.ServeHTTP(rec, req)
	checkCode(t, rec, http.StatusOK)

	var ov analytics.Overview
	if err := json.Unmarshal(rec.Body.Bytes(), &ov); err != nil {
		t.Fatalf("unmarshalling response failed: %v", err)
	}
	assert.Equal(t, 2, ov.StudentCount)
	if assert.Len(t, ov.HighStress, 1) {
		assert.Equal(t, "stu-2", ov.HighStress[0].Student.ID)
	}
}
