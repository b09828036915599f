package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/muzmmils/Skill-Learning-Buddy/config"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/dto"
)

// ErrInvalidStartDate start_date 不是 YYYY-MM-DD
var ErrInvalidStartDate = errors.New("开始日期格式错误，应为 YYYY-MM-DD")

// cadence 已解析的学习节奏
type cadence struct {
	hoursPerDay float64
	daysPerWeek int
	start       time.Time
}

// cadenceResolver 把请求中的可选节奏参数补全为具体值
// 缺省字段取配置默认值，start_date 缺省取排课时区的 "今天"
type cadenceResolver struct {
	defaults config.ScheduleConfig
	loc      *time.Location
	now      func() time.Time
}

func newCadenceResolver(cfg config.ScheduleConfig) (*cadenceResolver, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("加载排课时区失败: %w", err)
	}
	return &cadenceResolver{defaults: cfg, loc: loc, now: time.Now}, nil
}

func (r *cadenceResolver) resolve(req dto.CadenceRequest) (cadence, error) {
	c := cadence{
		hoursPerDay: r.defaults.HoursPerDay,
		daysPerWeek: r.defaults.DaysPerWeek,
	}
	if req.HoursPerDay != nil {
		c.hoursPerDay = *req.HoursPerDay
	}
	if req.DaysPerWeek != nil {
		c.daysPerWeek = *req.DaysPerWeek
	}

	if req.StartDate == "" {
		y, m, d := r.now().In(r.loc).Date()
		c.start = time.Date(y, m, d, 0, 0, 0, 0, r.loc)
		return c, nil
	}
	start, err := time.ParseInLocation("2006-01-02", req.StartDate, r.loc)
	if err != nil {
		return cadence{}, fmt.Errorf("%w: %q", ErrInvalidStartDate, req.StartDate)
	}
	c.start = start
	return c, nil
}
