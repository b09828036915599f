package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/muzmmils/Skill-Learning-Buddy/internal/dto"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/model"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/planner"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/repository"
)

// ── 计划历史业务错误 ──

var (
	ErrPlanNotFound = errors.New("学习计划不存在")
)

// PlanService 计划历史业务接口（只追加）
type PlanService interface {
	Create(ctx context.Context, learnerID string, req *dto.CreatePlanRequest) (*dto.PlanDetailResponse, error)
	GetByID(ctx context.Context, learnerID, planID string) (*dto.PlanDetailResponse, error)
	List(ctx context.Context, learnerID string, req *dto.PlanListRequest) ([]dto.PlanSummaryResponse, int64, error)
	Export(ctx context.Context, learnerID, planID, format string, req dto.CadenceRequest) (*planner.Artifact, error)
}

type planService struct {
	repo   *repository.Repository
	export ExportService
	logger *zap.Logger
}

// NewPlanService 创建 PlanService 实例
func NewPlanService(repo *repository.Repository, export ExportService, logger *zap.Logger) PlanService {
	return &planService{repo: repo, export: export, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *planService) Create(ctx context.Context, learnerID string, req *dto.CreatePlanRequest) (*dto.PlanDetailResponse, error) {
	if err := req.Plan.Validate(); err != nil {
		return nil, err
	}

	rec := &model.PlanRecord{
		LearnerID:   learnerID,
		Goal:        req.Goal,
		Background:  req.Background,
		SkillName:   req.Plan.SkillName,
		Complexity:  req.Plan.Complexity,
		Feasibility: req.Plan.Feasibility,
		TotalHours:  req.Plan.TotalHours,
		TopicCount:  len(req.Plan.Topics),
		Content:     model.PlanContent(req.Plan),
	}

	if err := s.repo.Plan.Create(ctx, rec); err != nil {
		s.logger.Error("保存学习计划失败", zap.String("learner_id", learnerID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("学习计划已保存",
		zap.String("plan_id", rec.PlanID),
		zap.String("learner_id", learnerID),
		zap.String("skill", rec.SkillName),
	)
	return toPlanDetail(rec), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *planService) GetByID(ctx context.Context, learnerID, planID string) (*dto.PlanDetailResponse, error) {
	rec, err := s.find(ctx, learnerID, planID)
	if err != nil {
		return nil, err
	}
	return toPlanDetail(rec), nil
}

// ────────────────────── List ──────────────────────

func (s *planService) List(ctx context.Context, learnerID string, req *dto.PlanListRequest) ([]dto.PlanSummaryResponse, int64, error) {
	records, total, err := s.repo.Plan.ListByLearner(ctx, learnerID, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询计划历史失败", zap.String("learner_id", learnerID), zap.Error(err))
		return nil, 0, err
	}

	list := make([]dto.PlanSummaryResponse, len(records))
	for i := range records {
		list[i] = toPlanSummary(&records[i])
	}
	return list, total, nil
}

// ────────────────────── Export ──────────────────────

func (s *planService) Export(ctx context.Context, learnerID, planID, format string, req dto.CadenceRequest) (*planner.Artifact, error) {
	rec, err := s.find(ctx, learnerID, planID)
	if err != nil {
		return nil, err
	}
	return s.export.Export(ctx, format, rec.Plan(), req)
}

// find 非法 UUID 与他人的计划一律视为不存在
func (s *planService) find(ctx context.Context, learnerID, planID string) (*model.PlanRecord, error) {
	if _, err := uuid.Parse(planID); err != nil {
		return nil, ErrPlanNotFound
	}
	rec, err := s.repo.Plan.GetByID(ctx, learnerID, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		s.logger.Error("查询学习计划失败", zap.String("plan_id", planID), zap.Error(err))
		return nil, err
	}
	return rec, nil
}

// ── 响应转换 ──

func toPlanSummary(rec *model.PlanRecord) dto.PlanSummaryResponse {
	return dto.PlanSummaryResponse{
		ID:          rec.PlanID,
		Goal:        rec.Goal,
		SkillName:   rec.SkillName,
		Complexity:  rec.Complexity,
		Feasibility: rec.Feasibility,
		TotalHours:  rec.TotalHours,
		TopicCount:  rec.TopicCount,
		CreatedAt:   rec.CreatedAt.Format(time.RFC3339),
	}
}

func toPlanDetail(rec *model.PlanRecord) *dto.PlanDetailResponse {
	return &dto.PlanDetailResponse{
		PlanSummaryResponse: toPlanSummary(rec),
		Background:          rec.Background,
		Plan:                rec.Plan(),
	}
}
