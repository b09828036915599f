package planner

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/muzmmils/Skill-Learning-Buddy/internal/model"
)

// ErrUnknownFormat 不支持的导出格式
var ErrUnknownFormat = errors.New("不支持的导出格式")

// Format 导出格式（封闭枚举）
type Format string

const (
	FormatICS      Format = "ics"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "md"
	FormatXLSX     Format = "xlsx"
)

// ParseFormat 解析导出格式，"markdown" 视为 "md"
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatICS, FormatCSV, FormatMarkdown, FormatXLSX:
		return f, nil
	case "markdown":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ContentType 下载时使用的 MIME 类型
func (f Format) ContentType() string {
	switch f {
	case FormatICS:
		return "text/calendar; charset=utf-8"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}

// fileSuffix 文件名后缀：日历与表格为排课表，Markdown 为计划文档
func (f Format) fileSuffix() string {
	if f == FormatMarkdown {
		return "plan"
	}
	return "schedule"
}

var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// Filename 由技能名生成下载文件名
// 小写后每段非字母数字字符替换为一个 "-"，例如 "Go & Rust" → "go-rust-schedule.ics"
func Filename(skillName string, f Format) string {
	slug := strings.Trim(nonAlnumRun.ReplaceAllString(strings.ToLower(skillName), "-"), "-")
	if slug == "" {
		slug = "learning"
	}
	return fmt.Sprintf("%s-%s.%s", slug, f.fileSuffix(), f)
}

// Artifact 导出产物，交由调用方保存或下载
type Artifact struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Export 按格式导出；Markdown 不需要 schedule，可传 nil
func (e *Exporter) Export(f Format, plan *model.Plan, schedule *model.Schedule) (*Artifact, error) {
	var body []byte
	switch f {
	case FormatICS:
		body = []byte(e.GenerateICS(plan, schedule))
	case FormatCSV:
		body = []byte(e.GenerateCSV(plan, schedule))
	case FormatMarkdown:
		body = []byte(e.GenerateMarkdown(plan))
	case FormatXLSX:
		buf, err := e.GenerateXLSX(plan, schedule)
		if err != nil {
			return nil, err
		}
		body = buf.Bytes()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return &Artifact{
		Filename:    Filename(plan.SkillName, f),
		ContentType: f.ContentType(),
		Body:        body,
	}, nil
}

// NeedsSchedule 该格式是否依赖排课结果
func (f Format) NeedsSchedule() bool {
	return f != FormatMarkdown
}
