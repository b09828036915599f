// Package errors 定义跨层共享的业务错误码
package errors

import "errors"

// ErrCacheMiss 缓存未命中（含缓存不可用），调用方应回落到重新计算
var ErrCacheMiss = errors.New("缓存未命中")

// ── 业务错误码（与 API 文档约定一致）──

const (
	CodeBadParams      = 10001
	CodeUnauthorized   = 10002
	CodeRateLimited    = 10004
	CodeBodyTooLarge   = 10005
	CodeInvalidCadence = 20001
	CodeMalformedTopic = 20002
	CodeInvalidPlan    = 20003
	CodeUnknownFormat  = 20004
	CodeScheduleTooBig = 20005
	CodePlanNotFound   = 20101
	CodeInternal       = 50000
)
