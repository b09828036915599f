package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ── 学习计划领域模型 ──
//
// Plan 由上游生成器（语言模型）产出，之后只读。
// JSON 字段沿用生成器输出的 camelCase 键名，便于直接反序列化。

// ErrInvalidPlan 计划结构不合法
var ErrInvalidPlan = errors.New("学习计划结构不合法")

// ErrMalformedTopic 模块学时非正数，无法排入学习日
var ErrMalformedTopic = errors.New("模块预计学时必须为正数")

// Complexity 技能复杂度（封闭枚举）
type Complexity string

const (
	ComplexityLow    Complexity = "Low"
	ComplexityMedium Complexity = "Medium"
	ComplexityHigh   Complexity = "High"
)

// Valid 是否为已知取值
func (c Complexity) Valid() bool {
	switch c {
	case ComplexityLow, ComplexityMedium, ComplexityHigh:
		return true
	}
	return false
}

// UnmarshalText JSON / YAML 解码时拒绝未知取值
func (c *Complexity) UnmarshalText(text []byte) error {
	v := Complexity(text)
	if !v.Valid() {
		return fmt.Errorf("未知的复杂度 %q", string(text))
	}
	*c = v
	return nil
}

// Feasibility 可行性评估（封闭枚举）
type Feasibility string

const (
	FeasibilityRealistic   Feasibility = "Realistic"
	FeasibilityChallenging Feasibility = "Challenging"
	FeasibilityUnrealistic Feasibility = "Unrealistic"
)

// Valid 是否为已知取值
func (f Feasibility) Valid() bool {
	switch f {
	case FeasibilityRealistic, FeasibilityChallenging, FeasibilityUnrealistic:
		return true
	}
	return false
}

// UnmarshalText JSON / YAML 解码时拒绝未知取值
func (f *Feasibility) UnmarshalText(text []byte) error {
	v := Feasibility(text)
	if !v.Valid() {
		return fmt.Errorf("未知的可行性评估 %q", string(text))
	}
	*f = v
	return nil
}

// ResourceType 学习资源类型（封闭枚举）
type ResourceType string

const (
	ResourceVideo   ResourceType = "video"
	ResourceArticle ResourceType = "article"
	ResourceCourse  ResourceType = "course"
	ResourceTool    ResourceType = "tool"
)

// Valid 是否为已知取值
func (t ResourceType) Valid() bool {
	switch t {
	case ResourceVideo, ResourceArticle, ResourceCourse, ResourceTool:
		return true
	}
	return false
}

// UnmarshalText JSON / YAML 解码时拒绝未知取值
func (t *ResourceType) UnmarshalText(text []byte) error {
	v := ResourceType(text)
	if !v.Valid() {
		return fmt.Errorf("未知的资源类型 %q", string(text))
	}
	*t = v
	return nil
}

// Resource 学习资源
// URL 为空时由导出器按 SearchQuery 构造搜索链接
type Resource struct {
	Title       string       `json:"title"                  yaml:"title"`
	URL         string       `json:"url,omitempty"          yaml:"url,omitempty"`
	SearchQuery string       `json:"searchQuery"            yaml:"searchQuery"`
	Type        ResourceType `json:"type"                   yaml:"type"`
}

// Topic 课程模块
type Topic struct {
	Title            string     `json:"title"            yaml:"title"`
	Description      string     `json:"description"      yaml:"description"`
	EstimatedHours   float64    `json:"estimatedHours"   yaml:"estimatedHours"`
	DetailedGuidance []string   `json:"detailedGuidance" yaml:"detailedGuidance"`
	Resources        []Resource `json:"resources"        yaml:"resources"`
}

// Validate 校验单个模块
func (t *Topic) Validate() error {
	if !(t.EstimatedHours > 0) || math.IsInf(t.EstimatedHours, 0) {
		return fmt.Errorf("%w: %q 的学时为 %v", ErrMalformedTopic, t.Title, t.EstimatedHours)
	}
	return nil
}

// Plan 完整学习计划
// TotalHours 仅供参考，排课以各模块 EstimatedHours 为准
type Plan struct {
	SkillName         string      `json:"skillName"         yaml:"skillName"`
	Timeline          string      `json:"timeline"          yaml:"timeline"`
	Complexity        Complexity  `json:"complexity"        yaml:"complexity"`
	TotalHours        float64     `json:"totalHours"        yaml:"totalHours"`
	Feasibility       Feasibility `json:"feasibility"       yaml:"feasibility"`
	FeasibilityReason string      `json:"feasibilityReason" yaml:"feasibilityReason"`
	Topics            []Topic     `json:"topics"            yaml:"topics"`
}

// Validate 校验计划结构
// 导出器假定输入已通过此校验，不再逐项检查
func (p *Plan) Validate() error {
	if strings.TrimSpace(p.SkillName) == "" {
		return fmt.Errorf("%w: skillName 不能为空", ErrInvalidPlan)
	}
	if !p.Complexity.Valid() {
		return fmt.Errorf("%w: 未知的复杂度 %q", ErrInvalidPlan, p.Complexity)
	}
	if !p.Feasibility.Valid() {
		return fmt.Errorf("%w: 未知的可行性评估 %q", ErrInvalidPlan, p.Feasibility)
	}
	for i := range p.Topics {
		if err := p.Topics[i].Validate(); err != nil {
			return err
		}
		for _, r := range p.Topics[i].Resources {
			if !r.Type.Valid() {
				return fmt.Errorf("%w: 模块 %d 含未知资源类型 %q", ErrInvalidPlan, i+1, r.Type)
			}
		}
	}
	return nil
}

// TopicHours 各模块学时之和（排课的真实依据）
func (p *Plan) TopicHours() float64 {
	var sum float64
	for _, t := range p.Topics {
		sum += t.EstimatedHours
	}
	return sum
}
