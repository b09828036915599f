package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 应用全局配置结构体
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"db"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Log       LogConfig       `mapstructure:"log"`
	Schedule  ScheduleConfig  `mapstructure:"schedule"`
	Export    ExportConfig    `mapstructure:"export"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Port int        `mapstructure:"port"`
	CORS CORSConfig `mapstructure:"cors"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig PostgreSQL 数据库配置
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Name            string `mapstructure:"name"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	SSLMode         string `mapstructure:"sslmode"`
	Timezone        string `mapstructure:"timezone"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // 分钟
}

// DSN 生成 PostgreSQL 连接字符串
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// RedisConfig Redis 配置；Addr 为空时不启用限流与排课缓存
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig 学习者令牌配置
type AuthConfig struct {
	JWTSecret      string        `mapstructure:"jwt_secret"`
	AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ScheduleConfig 排课默认参数
type ScheduleConfig struct {
	Timezone    string        `mapstructure:"timezone"`      // 未给出 start_date 时，"今天" 所在时区
	HoursPerDay float64       `mapstructure:"hours_per_day"` // 请求未指定时的默认值
	DaysPerWeek int           `mapstructure:"days_per_week"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"` // 0 表示不缓存
}

// Location 解析排课时区
func (c *ScheduleConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// ExportConfig 导出参数
type ExportConfig struct {
	ProductID      string `mapstructure:"product_id"`
	CalendarDomain string `mapstructure:"calendar_domain"`
	StartHour      int    `mapstructure:"start_hour"`
	SearchBaseURL  string `mapstructure:"search_base_url"`
}

// RateLimitConfig 接口限流（滑动窗口）
type RateLimitConfig struct {
	Limit  int           `mapstructure:"limit"`
	Window time.Duration `mapstructure:"window"`
}

// Load 从配置文件与环境变量加载配置
// 优先级：环境变量（含 .env.local / .env）> 配置文件 > 默认值
func Load(path string) (*Config, error) {
	// .env 文件不存在是正常情况；已存在的环境变量不会被覆盖
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	v := viper.New()
	setDefaults(v)

	// ── 配置文件 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 环境变量 ──
	v.SetEnvPrefix("SLB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "skill_learning_buddy")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "UTC")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.conn_max_lifetime", 60)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.access_token_ttl", "720h")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("schedule.timezone", "UTC")
	v.SetDefault("schedule.hours_per_day", 2)
	v.SetDefault("schedule.days_per_week", 5)
	v.SetDefault("schedule.cache_ttl", "10m")

	v.SetDefault("export.product_id", "-//Skill Learning Buddy//EN")
	v.SetDefault("export.calendar_domain", "skilllearningbuddy")
	v.SetDefault("export.start_hour", 9)
	v.SetDefault("export.search_base_url", "https://www.google.com/search?q=")

	v.SetDefault("rate_limit.limit", 100)
	v.SetDefault("rate_limit.window", "15m")
}

// Validate 校验关键配置项
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("配置校验失败: auth.jwt_secret 不能为空")
	}
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("配置校验失败: auth.jwt_secret 长度不能少于 16 字符")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("配置校验失败: server.port 必须在 1-65535 之间")
	}
	if !(c.Schedule.HoursPerDay > 0) || c.Schedule.HoursPerDay > 24 {
		return fmt.Errorf("配置校验失败: schedule.hours_per_day 必须在 (0, 24] 之间")
	}
	if c.Schedule.DaysPerWeek < 1 || c.Schedule.DaysPerWeek > 7 {
		return fmt.Errorf("配置校验失败: schedule.days_per_week 必须在 1-7 之间")
	}
	if _, err := c.Schedule.Location(); err != nil {
		return fmt.Errorf("配置校验失败: schedule.timezone 无效: %w", err)
	}
	if c.Export.StartHour < 0 || c.Export.StartHour > 23 {
		return fmt.Errorf("配置校验失败: export.start_hour 必须在 0-23 之间")
	}
	if c.RateLimit.Limit < 0 || (c.RateLimit.Limit > 0 && c.RateLimit.Window <= 0) {
		return fmt.Errorf("配置校验失败: rate_limit 配置无效")
	}
	return nil
}
