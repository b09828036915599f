package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/muzmmils/Skill-Learning-Buddy/internal/dto"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/model"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/repository"
)

// ── 测试辅助 ──

const (
	learnerA = "11111111-1111-4111-8111-111111111111"
	learnerB = "22222222-2222-4222-8222-222222222222"
)

func setupTestPlanService(t *testing.T) (PlanService, *mockPlanRepo) {
	t.Helper()
	planRepo := newMockPlanRepo()
	repo := &repository.Repository{Plan: planRepo}
	svc := NewPlanService(repo, setupTestExportService(t), zap.NewNop())
	return svc, planRepo
}

func createPlan(t *testing.T, svc PlanService, learnerID, skill string) *dto.PlanDetailResponse {
	t.Helper()
	plan := testPlan()
	plan.SkillName = skill
	resp, err := svc.Create(context.Background(), learnerID, &dto.CreatePlanRequest{
		Goal: "learn " + skill,
		Plan: *plan,
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	return resp
}

// ── Create 测试 ──

func TestPlanService_Create_Success(t *testing.T) {
	svc, planRepo := setupTestPlanService(t)

	resp := createPlan(t, svc, learnerA, "Go")
	if resp.ID == "" || resp.SkillName != "Go" || resp.TopicCount != 2 {
		t.Errorf("响应字段错误: %+v", resp.PlanSummaryResponse)
	}
	if resp.Plan == nil || len(resp.Plan.Topics) != 2 {
		t.Error("详情应包含计划正文")
	}
	if len(planRepo.plans) != 1 {
		t.Errorf("期望写入 1 条记录，实际 %d", len(planRepo.plans))
	}
}

func TestPlanService_Create_InvalidPlan(t *testing.T) {
	svc, planRepo := setupTestPlanService(t)

	plan := testPlan()
	plan.Complexity = "Extreme"
	_, err := svc.Create(context.Background(), learnerA, &dto.CreatePlanRequest{Goal: "x", Plan: *plan})
	if !errors.Is(err, model.ErrInvalidPlan) {
		t.Errorf("期望 ErrInvalidPlan，实际: %v", err)
	}
	if len(planRepo.plans) != 0 {
		t.Error("无效计划不应写入")
	}
}

func TestPlanService_Create_RepoError(t *testing.T) {
	svc, planRepo := setupTestPlanService(t)
	planRepo.failErr = errors.New("db down")

	_, err := svc.Create(context.Background(), learnerA, &dto.CreatePlanRequest{Goal: "x", Plan: *testPlan()})
	if err == nil || errors.Is(err, ErrPlanNotFound) {
		t.Errorf("期望透传数据库错误，实际: %v", err)
	}
}

// ── GetByID 测试 ──

func TestPlanService_GetByID(t *testing.T) {
	svc, _ := setupTestPlanService(t)
	created := createPlan(t, svc, learnerA, "Go")

	got, err := svc.GetByID(context.Background(), learnerA, created.ID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if got.Plan.SkillName != "Go" {
		t.Errorf("期望 Go，实际 %s", got.Plan.SkillName)
	}
}

func TestPlanService_GetByID_NotFound(t *testing.T) {
	svc, _ := setupTestPlanService(t)
	created := createPlan(t, svc, learnerA, "Go")

	tests := []struct {
		name      string
		learnerID string
		planID    string
	}{
		{"他人计划", learnerB, created.ID},
		{"不存在", learnerA, "99999999-9999-4999-8999-999999999999"},
		{"非法 UUID", learnerA, "not-a-uuid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.GetByID(context.Background(), tt.learnerID, tt.planID); !errors.Is(err, ErrPlanNotFound) {
				t.Errorf("期望 ErrPlanNotFound，实际: %v", err)
			}
		})
	}
}

// ── List 测试 ──

func TestPlanService_List(t *testing.T) {
	svc, _ := setupTestPlanService(t)
	createPlan(t, svc, learnerA, "Go")
	createPlan(t, svc, learnerA, "SQL")
	createPlan(t, svc, learnerA, "Kubernetes")
	createPlan(t, svc, learnerB, "Rust")

	list, total, err := svc.List(context.Background(), learnerA, &dto.PlanListRequest{
		PaginationRequest: dto.PaginationRequest{Page: 1, PageSize: 2},
	})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if total != 3 {
		t.Errorf("期望 total=3，实际 %d", total)
	}
	if len(list) != 2 || list[0].SkillName != "Kubernetes" {
		t.Errorf("应按创建时间倒序分页，实际 %+v", list)
	}
}

// ── Export 测试 ──

func TestPlanService_Export(t *testing.T) {
	svc, _ := setupTestPlanService(t)
	created := createPlan(t, svc, learnerA, "Go")

	a, err := svc.Export(context.Background(), learnerA, created.ID, "csv", dto.CadenceRequest{StartDate: "2026-01-05"})
	if err != nil {
		t.Fatalf("Export 应成功: %v", err)
	}
	if a.Filename != "go-schedule.csv" {
		t.Errorf("文件名错误: %s", a.Filename)
	}
	if !strings.Contains(string(a.Body), `2026-01-05,"Mon, Jan 5","Goroutines",1,2,No`) {
		t.Errorf("CSV 内容错误:\n%s", a.Body)
	}

	if _, err := svc.Export(context.Background(), learnerB, created.ID, "csv", dto.CadenceRequest{}); !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("他人计划导出应返回 ErrPlanNotFound，实际: %v", err)
	}
}
