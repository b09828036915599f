package handler

import "github.com/muzmmils/Skill-Learning-Buddy/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Session  *SessionHandler
	Preset   *PresetHandler
	Schedule *ScheduleHandler
	Export   *ExportHandler
	Plan     *PlanHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Session:  NewSessionHandler(svc.Session),
		Preset:   NewPresetHandler(svc.Preset),
		Schedule: NewScheduleHandler(svc.Schedule),
		Export:   NewExportHandler(svc.Export),
		Plan:     NewPlanHandler(svc.Plan),
	}
}
