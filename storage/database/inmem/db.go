package inmemdb

import (
	"sync"

	"github.com/trezcool/tathmini/core/analytics"
	"github.com/trezcool/tathmini/core/feedback"
)

type (
	DB struct {
		feedback *feedbackTable
		facts    *factsTable
	}

	feedbackTable struct {
		table map[string]*feedback.Signal
		mutex sync.RWMutex
	}

	factsTable struct {
		students map[string]*analytics.StudentInfo
		progress map[string]analytics.ProgressFacts
		stress   map[string]analytics.StressFacts
		mutex    sync.RWMutex
	}
)

func Open() (*DB, error) {
	db := &DB{
		feedback: &feedbackTable{table: make(map[string]*feedback.Signal)},
		facts: &factsTable{
			students: make(map[string]*analytics.StudentInfo),
			progress: make(map[string]analytics.ProgressFacts),
			stress:   make(map[string]analytics.StressFacts),
		},
	}
	return db, nil
}
