package planner

import (
	"time"
)

// Options 导出器配置
// 零值字段使用默认值，见字段注释
type Options struct {
	ProductID      string           // 空 → "-//Skill Learning Buddy//EN"
	CalendarDomain string           // 空 → "skilllearningbuddy"，用于事件 UID 后缀
	StartHour      int              // 学习开始时刻（0-23），零值即 09:00 的默认值
	SearchBaseURL  string           // 空 → Google 搜索
	Now            func() time.Time // nil → time.Now
}

const (
	defaultProductID      = "-//Skill Learning Buddy//EN"
	defaultCalendarDomain = "skilllearningbuddy"
	defaultStartHour      = 9
	defaultSearchBaseURL  = "https://www.google.com/search?q="
)

// Exporter 各格式导出器的入口
// 不持有可变状态，每次调用产生独立的输出
type Exporter struct {
	productID      string
	calendarDomain string
	startHour      int
	searchBaseURL  string
	now            func() time.Time
}

// NewExporter 按配置创建导出器
func NewExporter(opts Options) *Exporter {
	e := &Exporter{
		productID:      opts.ProductID,
		calendarDomain: opts.CalendarDomain,
		startHour:      opts.StartHour,
		searchBaseURL:  opts.SearchBaseURL,
		now:            opts.Now,
	}
	if e.productID == "" {
		e.productID = defaultProductID
	}
	if e.calendarDomain == "" {
		e.calendarDomain = defaultCalendarDomain
	}
	if e.startHour <= 0 || e.startHour > 23 {
		e.startHour = defaultStartHour
	}
	if e.searchBaseURL == "" {
		e.searchBaseURL = defaultSearchBaseURL
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}
