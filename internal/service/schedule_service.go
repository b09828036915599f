package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/muzmmils/Skill-Learning-Buddy/config"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/dto"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/model"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/planner"
	apperrors "github.com/muzmmils/Skill-Learning-Buddy/pkg/errors"
)

// ScheduleCache 排课预览缓存（Redis 实现见 pkg/redis）
// 未命中返回 apperrors.ErrCacheMiss
type ScheduleCache interface {
	GetSchedule(ctx context.Context, key string) ([]byte, error)
	SetSchedule(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}

// ScheduleService 排课业务接口
type ScheduleService interface {
	// Preview 排课 + 周/月分组 + 时间投入估算
	Preview(ctx context.Context, req *dto.SchedulePreviewRequest) (*dto.SchedulePreviewResponse, error)
	// Build 仅排课，供导出使用
	Build(topics []model.Topic, req dto.CadenceRequest) (*model.Schedule, error)
}

type scheduleService struct {
	cadence  *cadenceResolver
	cache    ScheduleCache // 可为 nil
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewScheduleService 创建 ScheduleService 实例；cache 为 nil 时每次重新计算
func NewScheduleService(cfg config.ScheduleConfig, cache ScheduleCache, logger *zap.Logger) (ScheduleService, error) {
	resolver, err := newCadenceResolver(cfg)
	if err != nil {
		return nil, err
	}
	return &scheduleService{cadence: resolver, cache: cache, cacheTTL: cfg.CacheTTL, logger: logger}, nil
}

// ────────────────────── Build ──────────────────────

func (s *scheduleService) Build(topics []model.Topic, req dto.CadenceRequest) (*model.Schedule, error) {
	c, err := s.cadence.resolve(req)
	if err != nil {
		return nil, err
	}
	return planner.GenerateSchedule(topics, c.hoursPerDay, c.daysPerWeek, c.start)
}

// ═══════════════════════════════════════════════════════════
// Preview — 排课预览
// ═══════════════════════════════════════════════════════════
//
// 1. 补全节奏参数（缺省取配置，start_date 缺省为今天）
// 2. 以 (模块标题/学时, 节奏, 开始日期) 为键查缓存
// 3. 未命中则排课、分组、估算，并回写缓存
// 缓存读写失败只记日志，不影响结果

func (s *scheduleService) Preview(ctx context.Context, req *dto.SchedulePreviewRequest) (*dto.SchedulePreviewResponse, error) {
	c, err := s.cadence.resolve(req.CadenceRequest)
	if err != nil {
		return nil, err
	}

	key := previewCacheKey(req.Topics, c)
	if resp, ok := s.readCache(ctx, key); ok {
		return resp, nil
	}

	schedule, err := planner.GenerateSchedule(req.Topics, c.hoursPerDay, c.daysPerWeek, c.start)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, t := range req.Topics {
		total += t.EstimatedHours
	}
	commitment, err := planner.EstimateCommitment(total, c.hoursPerDay, c.daysPerWeek, c.start)
	if err != nil {
		return nil, err
	}

	resp := toPreviewResponse(schedule, commitment, total)
	s.writeCache(ctx, key, resp)
	return resp, nil
}

func (s *scheduleService) readCache(ctx context.Context, key string) (*dto.SchedulePreviewResponse, bool) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return nil, false
	}
	payload, err := s.cache.GetSchedule(ctx, key)
	if err != nil {
		if !errors.Is(err, apperrors.ErrCacheMiss) {
			s.logger.Warn("读取排课缓存失败，回落到重新计算", zap.Error(err))
		}
		return nil, false
	}
	var resp dto.SchedulePreviewResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		s.logger.Warn("排课缓存内容损坏", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	resp.Cached = true
	return &resp, true
}

func (s *scheduleService) writeCache(ctx context.Context, key string, resp *dto.SchedulePreviewResponse) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		s.logger.Warn("序列化排课结果失败", zap.Error(err))
		return
	}
	if err := s.cache.SetSchedule(ctx, key, payload, s.cacheTTL); err != nil {
		s.logger.Warn("写入排课缓存失败", zap.Error(err))
	}
}

// previewCacheKey 排课结果只取决于模块标题、学时与节奏参数
func previewCacheKey(topics []model.Topic, c cadence) string {
	type topicKey struct {
		T string  `json:"t"`
		H float64 `json:"h"`
	}
	input := struct {
		Topics []topicKey `json:"topics"`
		HPD    float64    `json:"hpd"`
		DPW    int        `json:"dpw"`
		Start  string     `json:"start"`
	}{
		Topics: make([]topicKey, len(topics)),
		HPD:    c.hoursPerDay,
		DPW:    c.daysPerWeek,
		Start:  c.start.Format(time.RFC3339),
	}
	for i, t := range topics {
		input.Topics[i] = topicKey{T: t.Title, H: t.EstimatedHours}
	}
	b, _ := json.Marshal(input)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// ── 响应转换 ──

func toPreviewResponse(schedule *model.Schedule, commitment *planner.Commitment, total float64) *dto.SchedulePreviewResponse {
	sessions := make([]dto.SessionResponse, len(schedule.Sessions))
	for i, ss := range schedule.Sessions {
		sessions[i] = toSessionResponse(ss)
	}

	weeks := planner.GroupByWeek(schedule)
	weekResp := make([]dto.WeekResponse, len(weeks))
	offset := 0
	for i, w := range weeks {
		weekResp[i] = dto.WeekResponse{Week: i + 1, Sessions: sessions[offset : offset+len(w)]}
		offset += len(w)
	}

	months := planner.GroupByMonth(weeks)
	monthResp := make([]dto.MonthResponse, len(months))
	weekIdx := 0
	for i, m := range months {
		monthResp[i] = dto.MonthResponse{Label: m.Label, Weeks: weekResp[weekIdx : weekIdx+len(m.Weeks)]}
		weekIdx += len(m.Weeks)
	}

	return &dto.SchedulePreviewResponse{
		StartDate:   schedule.StartDate.Format("2006-01-02"),
		EndDate:     schedule.EndDate.Format("2006-01-02"),
		TotalWeeks:  schedule.TotalWeeks,
		HoursPerDay: schedule.Cadence.HoursPerDay,
		DaysPerWeek: schedule.Cadence.DaysPerWeek,
		Sessions:    sessions,
		Months:      monthResp,
		Commitment: dto.CommitmentResponse{
			TotalHours:   total,
			WeeklyHours:  commitment.WeeklyHours,
			WeeksNeeded:  commitment.WeeksNeeded,
			MonthsNeeded: commitment.MonthsNeeded,
			EndDate:      commitment.EndDate.Format("2006-01-02"),
		},
	}
}

func toSessionResponse(s model.Session) dto.SessionResponse {
	return dto.SessionResponse{
		Date:       s.Date.Format("2006-01-02"),
		Day:        s.Date.Format("Mon, Jan 2"),
		TopicIndex: s.TopicIndex,
		TopicTitle: s.TopicTitle,
		Hours:      s.Hours,
		Phase:      s.Phase,
	}
}
