package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muzmmils/Skill-Learning-Buddy/config"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/dto"
	"github.com/muzmmils/Skill-Learning-Buddy/internal/service"
	applogger "github.com/muzmmils/Skill-Learning-Buddy/pkg/logger"
)

// options 各子命令共享的参数
type options struct {
	planPath    string
	hoursPerDay float64
	daysPerWeek int
	start       string
	timezone    string
	startHour   int
	verbose     bool
}

// NewRootCmd 构建 planctl 命令树
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "planctl",
		Short:        "离线生成学习排课与导出文件",
		Long:         `planctl 读取 JSON 或 YAML 格式的学习计划，按学习节奏排课，并导出为 ics / csv / md / xlsx。`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.planPath, "plan", "p", "", "学习计划文件（.json / .yaml / .yml）")
	pf.Float64Var(&opts.hoursPerDay, "hours-per-day", 2, "每个学习日的学时")
	pf.IntVar(&opts.daysPerWeek, "days-per-week", 5, "每周学习天数（1-7，从周一起）")
	pf.StringVar(&opts.start, "start", "", "开始日期 YYYY-MM-DD，默认今天")
	pf.StringVar(&opts.timezone, "timezone", "Local", "\"今天\" 与日历事件所在时区")
	pf.IntVar(&opts.startHour, "start-hour", 9, "日历事件每天的开始时刻（0-23）")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "输出调试日志")
	_ = root.MarkPersistentFlagRequired("plan")

	root.AddCommand(newScheduleCmd(opts), newExportCmd(opts))
	return root
}

// Execute 运行 planctl
func Execute() error {
	return NewRootCmd().Execute()
}

// cadence 命令行参数 → 节奏请求
func (o *options) cadence() dto.CadenceRequest {
	hpd, dpw := o.hoursPerDay, o.daysPerWeek
	return dto.CadenceRequest{HoursPerDay: &hpd, DaysPerWeek: &dpw, StartDate: o.start}
}

// logger 默认只输出警告以上
func (o *options) logger() (*zap.Logger, error) {
	level := "warn"
	if o.verbose {
		level = "debug"
	}
	return applogger.NewLogger(&config.LogConfig{Level: level, Format: "console"})
}

// services 组装离线使用的排课与导出服务（无缓存）
func (o *options) services(logger *zap.Logger) (service.ScheduleService, service.ExportService, error) {
	schedule, err := service.NewScheduleService(config.ScheduleConfig{
		Timezone:    o.timezone,
		HoursPerDay: o.hoursPerDay,
		DaysPerWeek: o.daysPerWeek,
	}, nil, logger)
	if err != nil {
		return nil, nil, err
	}
	// 其余导出参数留空，取导出器内置默认值
	export := service.NewExportService(config.ExportConfig{StartHour: o.startHour}, schedule, logger)
	return schedule, export, nil
}
