package service

import (
	"go.uber.org/zap"

	"github.com/muzmmils/Skill-Learning-Buddy/config"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/repository"
	"github.com/muzmmils/Skill-Learning-Buddy/pkg/jwt"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Session  SessionService
	Preset   PresetService
	Schedule ScheduleService
	Export   ExportService
	Plan     PlanService
}

// NewService 创建 Service 聚合
// cache 为 nil 时排课预览不做缓存
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	cache ScheduleCache,
	jwtMgr *jwt.Manager,
	logger *zap.Logger,
) (*Service, error) {
	presets, err := NewPresetService(logger)
	if err != nil {
		return nil, err
	}
	schedule, err := NewScheduleService(cfg.Schedule, cache, logger)
	if err != nil {
		return nil, err
	}
	export := NewExportService(cfg.Export, schedule, logger)

	return &Service{
		Session:  NewSessionService(jwtMgr, logger),
		Preset:   presets,
		Schedule: schedule,
		Export:   export,
		Plan:     NewPlanService(repo, export, logger),
	}, nil
}
