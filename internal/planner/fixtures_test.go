package planner

import (
	"time"

	"github.com/muzmmils/Skill-Learning-Buddy/internal/model"
)

// fixedNow 导出时间固定，保证 UID / DTSTAMP 可预期
var fixedNow = time.Date(2026, time.January, 1, 8, 30, 0, 0, time.UTC)

func newTestExporter() *Exporter {
	return NewExporter(Options{Now: func() time.Time { return fixedNow }})
}

func samplePlan() *model.Plan {
	return &model.Plan{
		SkillName:         "Go Concurrency",
		Timeline:          "6 weeks",
		Complexity:        model.ComplexityMedium,
		TotalHours:        8,
		Feasibility:       model.FeasibilityRealistic,
		FeasibilityReason: "Achievable with steady practice, 2 hours a day.",
		Topics: []model.Topic{
			{
				Title:          "Goroutines",
				Description:    "Lightweight threads managed by the runtime.",
				EstimatedHours: 5,
				DetailedGuidance: []string{
					"Read the Tour of Go concurrency chapter",
					"Write a worker pool",
				},
				Resources: []model.Resource{
					{Title: "Tour of Go", URL: "https://go.dev/tour/concurrency/1", SearchQuery: "tour of go", Type: model.ResourceCourse},
					{Title: "Concurrency Patterns", SearchQuery: "go concurrency patterns talk", Type: model.ResourceVideo},
				},
			},
			{
				Title:          "Channels",
				Description:    "Typed conduits between goroutines.",
				EstimatedHours: 3,
			},
		},
	}
}
