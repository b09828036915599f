package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/muzmmils/Skill-Learning-Buddy/internal/model"
	apperrors "github.com/muzmmils/Skill-Learning-Buddy/pkg/errors"
)

// ── Mock PlanRepository ──

type mockPlanRepo struct {
	plans   map[string]*model.PlanRecord
	seq     int
	failErr error // 非 nil 时所有调用返回该错误
}

func newMockPlanRepo() *mockPlanRepo {
	return &mockPlanRepo{plans: make(map[string]*model.PlanRecord)}
}

func (m *mockPlanRepo) Create(_ context.Context, rec *model.PlanRecord) error {
	if m.failErr != nil {
		return m.failErr
	}
	m.seq++
	if rec.PlanID == "" {
		rec.PlanID = fmt.Sprintf("00000000-0000-4000-8000-%012d", m.seq)
	}
	rec.CreatedAt = time.Date(2026, 1, 1, 0, 0, m.seq, 0, time.UTC)
	m.plans[rec.PlanID] = rec
	return nil
}

func (m *mockPlanRepo) GetByID(_ context.Context, learnerID, planID string) (*model.PlanRecord, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	if p, ok := m.plans[planID]; ok && p.LearnerID == learnerID {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPlanRepo) ListByLearner(_ context.Context, learnerID string, offset, limit int) ([]model.PlanRecord, int64, error) {
	if m.failErr != nil {
		return nil, 0, m.failErr
	}
	var all []model.PlanRecord
	for _, p := range m.plans {
		if p.LearnerID == learnerID {
			all = append(all, *p)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	total := int64(len(all))
	if offset >= len(all) {
		return []model.PlanRecord{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

// ── Mock ScheduleCache ──

type mockCache struct {
	data    map[string][]byte
	gets    int
	sets    int
	failGet bool
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string][]byte)}
}

func (m *mockCache) GetSchedule(_ context.Context, key string) ([]byte, error) {
	m.gets++
	if m.failGet {
		return nil, errors.New("connection refused")
	}
	b, ok := m.data[key]
	if !ok {
		return nil, apperrors.ErrCacheMiss
	}
	return b, nil
}

func (m *mockCache) SetSchedule(_ context.Context, key string, payload []byte, _ time.Duration) error {
	m.sets++
	m.data[key] = payload
	return nil
}
