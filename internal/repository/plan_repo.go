package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/muzmmils/Skill-Learning-Buddy/internal/model"
)

// PlanRepository 学习计划历史数据访问接口
// 只追加：没有 Update / Delete
type PlanRepository interface {
	Create(ctx context.Context, rec *model.PlanRecord) error
	GetByID(ctx context.Context, learnerID, planID string) (*model.PlanRecord, error)
	ListByLearner(ctx context.Context, learnerID string, offset, limit int) ([]model.PlanRecord, int64, error)
}

type planRepo struct {
	db *gorm.DB
}

// NewPlanRepo 创建 PlanRepository 实例
func NewPlanRepo(db *gorm.DB) PlanRepository {
	return &planRepo{db: db}
}

func (r *planRepo) Create(ctx context.Context, rec *model.PlanRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// GetByID 只返回属于该学习者的记录，其他学习者的计划视为不存在
func (r *planRepo) GetByID(ctx context.Context, learnerID, planID string) (*model.PlanRecord, error) {
	var rec model.PlanRecord
	err := r.db.WithContext(ctx).
		Where("plan_id = ? AND learner_id = ?", planID, learnerID).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListByLearner 按创建时间倒序分页
func (r *planRepo) ListByLearner(ctx context.Context, learnerID string, offset, limit int) ([]model.PlanRecord, int64, error) {
	var records []model.PlanRecord
	var total int64

	db := r.db.WithContext(ctx).Model(&model.PlanRecord{}).Where("learner_id = ?", learnerID)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}
