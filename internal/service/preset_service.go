package service

import (
	"embed"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muzmmils/Skill-Learning-Buddy/internal/dto"
)

//go:embed presets/*.yaml
var presetFS embed.FS

// PresetService 内置预设（转行背景、社区示例计划）
// 数据随二进制发布，启动时加载一次，之后只读
type PresetService interface {
	Careers() []dto.CareerPresetResponse
	CommunityPlans() []dto.CommunityPlanResponse
}

type presetService struct {
	careers []dto.CareerPresetResponse
	plans   []dto.CommunityPlanResponse
}

// NewPresetService 加载并校验内置预设
func NewPresetService(logger *zap.Logger) (PresetService, error) {
	var careers []dto.CareerPresetResponse
	if err := loadPreset("presets/careers.yaml", &careers); err != nil {
		return nil, err
	}

	var plans []dto.CommunityPlanResponse
	if err := loadPreset("presets/community_plans.yaml", &plans); err != nil {
		return nil, err
	}
	for i := range plans {
		if err := plans[i].Plan.Validate(); err != nil {
			return nil, fmt.Errorf("社区计划 %s 无效: %w", plans[i].ID, err)
		}
	}

	logger.Info("内置预设加载完成", zap.Int("careers", len(careers)), zap.Int("community_plans", len(plans)))
	return &presetService{careers: careers, plans: plans}, nil
}

func loadPreset(name string, out interface{}) error {
	b, err := presetFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("读取预设 %s 失败: %w", name, err)
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("解析预设 %s 失败: %w", name, err)
	}
	return nil
}

func (s *presetService) Careers() []dto.CareerPresetResponse {
	return s.careers
}

func (s *presetService) CommunityPlans() []dto.CommunityPlanResponse {
	return s.plans
}
