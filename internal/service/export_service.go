package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/muzmmils/Skill-Learning-Buddy/config"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/dto"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/model"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/planner"
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 支持 ics / csv / md / xlsx 四种格式
//   - Markdown 只依赖计划本身，其余格式先按节奏参数排课
//   - 产物以字节返回，由 Handler 层设置下载响应头
type ExportService interface {
	Export(ctx context.Context, format string, plan *model.Plan, req dto.CadenceRequest) (*planner.Artifact, error)
}

type exportService struct {
	schedule ScheduleService
	exporter *planner.Exporter
	logger   *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(cfg config.ExportConfig, schedule ScheduleService, logger *zap.Logger) ExportService {
	return &exportService{
		schedule: schedule,
		exporter: planner.NewExporter(planner.Options{
			ProductID:      cfg.ProductID,
			CalendarDomain: cfg.CalendarDomain,
			StartHour:      cfg.StartHour,
			SearchBaseURL:  cfg.SearchBaseURL,
		}),
		logger: logger,
	}
}

// ═══════════════════════════════════════════════════════════
// Export — 按格式导出学习计划
// ═══════════════════════════════════════════════════════════

func (s *exportService) Export(ctx context.Context, format string, plan *model.Plan, req dto.CadenceRequest) (*planner.Artifact, error) {
	f, err := planner.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	var schedule *model.Schedule
	if f.NeedsSchedule() {
		schedule, err = s.schedule.Build(plan.Topics, req)
		if err != nil {
			return nil, err
		}
	}

	artifact, err := s.exporter.Export(f, plan, schedule)
	if err != nil {
		s.logger.Error("导出失败", zap.String("format", string(f)), zap.String("skill", plan.SkillName), zap.Error(err))
		return nil, err
	}

	s.logger.Debug("导出完成",
		zap.String("format", string(f)),
		zap.String("filename", artifact.Filename),
		zap.Int("bytes", len(artifact.Body)),
	)
	return artifact, nil
}
