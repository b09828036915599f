package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/muzmmils/Skill-Learning-Buddy/config"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/dto"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/model"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/planner"
)

// ── 测试辅助 ──

func setupTestExportService(t *testing.T) ExportService {
	t.Helper()
	return NewExportService(config.ExportConfig{
		ProductID:      "-//Test//EN",
		CalendarDomain: "example.test",
		StartHour:      18,
	}, setupTestScheduleService(t, nil), zap.NewNop())
}

func testPlan() *model.Plan {
	return &model.Plan{
		SkillName:         "Go & Rust",
		Timeline:          "2 weeks",
		Complexity:        model.ComplexityMedium,
		TotalHours:        8,
		Feasibility:       model.FeasibilityChallenging,
		FeasibilityReason: "Tight but doable",
		Topics:            testTopics(),
	}
}

// ── Export 测试 ──

func TestExportService_Export_AllFormats(t *testing.T) {
	svc := setupTestExportService(t)

	tests := []struct {
		format   string
		filename string
		contains string
	}{
		{"ics", "go-rust-schedule.ics", "PRODID:-//Test//EN"},
		{"csv", "go-rust-schedule.csv", "Date,Day,Topic,Module #,Hours,Completed"},
		{"markdown", "go-rust-plan.md", "# 📚 Go & Rust"},
		{"xlsx", "go-rust-schedule.xlsx", ""},
	}
	for _, tt := range tests {
		a, err := svc.Export(context.Background(), tt.format, testPlan(), dto.CadenceRequest{StartDate: "2026-01-05"})
		if err != nil {
			t.Fatalf("Export(%s) 应成功: %v", tt.format, err)
		}
		if a.Filename != tt.filename {
			t.Errorf("%s 文件名期望 %s，实际 %s", tt.format, tt.filename, a.Filename)
		}
		if tt.contains != "" && !strings.Contains(string(a.Body), tt.contains) {
			t.Errorf("%s 内容缺少 %q", tt.format, tt.contains)
		}
	}
}

func TestExportService_Export_UsesConfiguredDomain(t *testing.T) {
	svc := setupTestExportService(t)

	a, err := svc.Export(context.Background(), "ics", testPlan(), dto.CadenceRequest{StartDate: "2026-01-05"})
	if err != nil {
		t.Fatalf("Export 应成功: %v", err)
	}
	if !strings.Contains(string(a.Body), "@example.test") {
		t.Error("UID 应使用配置的日历域名")
	}
}

func TestExportService_Export_Errors(t *testing.T) {
	svc := setupTestExportService(t)
	ctx := context.Background()

	if _, err := svc.Export(ctx, "pdf", testPlan(), dto.CadenceRequest{}); !errors.Is(err, planner.ErrUnknownFormat) {
		t.Errorf("期望 ErrUnknownFormat，实际: %v", err)
	}

	bad := testPlan()
	bad.SkillName = ""
	if _, err := svc.Export(ctx, "csv", bad, dto.CadenceRequest{}); !errors.Is(err, model.ErrInvalidPlan) {
		t.Errorf("期望 ErrInvalidPlan，实际: %v", err)
	}

	if _, err := svc.Export(ctx, "ics", testPlan(), dto.CadenceRequest{DaysPerWeek: intPtr(9)}); !errors.Is(err, planner.ErrInvalidCadence) {
		t.Errorf("期望 ErrInvalidCadence，实际: %v", err)
	}
}

func TestExportService_Export_MarkdownIgnoresCadence(t *testing.T) {
	svc := setupTestExportService(t)

	// Markdown 不排课，非法节奏也不影响
	if _, err := svc.Export(context.Background(), "md", testPlan(), dto.CadenceRequest{DaysPerWeek: intPtr(9)}); err != nil {
		t.Errorf("Markdown 导出不应依赖节奏参数: %v", err)
	}
}
