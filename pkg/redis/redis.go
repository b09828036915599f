package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/muzmmils/Skill-Learning-Buddy/config"
	apperrors "github.com/muzmmils/Skill-Learning-Buddy/pkg/errors"
)

// Client Redis 客户端封装
// 用于接口限流与排课预览缓存；两者都不是正确性的前提
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── 滑动窗口限流 ──

const rateLimitPrefix = "ratelimit:"

// CheckRateLimit 记录一次请求并判断是否超限
// 使用有序集合保存窗口内每次请求的时间戳，返回 (是否放行, 窗口内剩余次数)
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, int, error) {
	now := time.Now()
	redisKey := rateLimitPrefix + key
	windowStart := now.Add(-window).UnixMicro()

	pipe := c.rdb.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, redisKey, goredis.Z{
		Score:  float64(now.UnixMicro()),
		Member: uuid.NewString(),
	})
	count := pipe.ZCard(ctx, redisKey)
	pipe.Expire(ctx, redisKey, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("限流计数失败: %w", err)
	}

	n := int(count.Val())
	remaining := limit - n
	if remaining < 0 {
		remaining = 0
	}
	return n <= limit, remaining, nil
}

// ── 排课预览缓存 ──

const schedulePrefix = "schedule:preview:"

// GetSchedule 读取缓存；未命中返回 apperrors.ErrCacheMiss
func (c *Client) GetSchedule(ctx context.Context, key string) ([]byte, error) {
	b, err := c.rdb.Get(ctx, schedulePrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, apperrors.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("读取排课缓存失败: %w", err)
	}
	return b, nil
}

// SetSchedule 写入缓存，ttl <= 0 时不写
func (c *Client) SetSchedule(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.rdb.Set(ctx, schedulePrefix+key, payload, ttl).Err()
}

// Ping 健康检查
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}
