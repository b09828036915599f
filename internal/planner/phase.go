package planner

import "github.com/muzmmils/Skill-Learning-Buddy/internal/model"

// PhaseOf 按模块位置推导阶段：前 1/3 Foundation，中 1/3 Intermediate，其余 Applied
// 边界为 count/3 与 2*count/3（实数比较），排课与 Markdown 导出共用此函数
func PhaseOf(index, count int) model.Phase {
	switch {
	case 3*index < count:
		return model.PhaseFoundation
	case 3*index < 2*count:
		return model.PhaseIntermediate
	default:
		return model.PhaseApplied
	}
}
