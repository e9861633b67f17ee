package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	MySQL     MySQLConfig     `mapstructure:"mysql"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Lmstfy    LmstfyConfig    `mapstructure:"lmstfy"`
	Listener  ListenerConfig  `mapstructure:"listener"`
	Broadcast BroadcastConfig `mapstructure:"broadcast"`
	Cleanup   CleanupConfig   `mapstructure:"cleanup"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LmstfyConfig Lmstfy 配置（订单变更事件队列）
type LmstfyConfig struct {
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	Namespace  string `mapstructure:"namespace"`
	EventQueue string `mapstructure:"event_queue"`
	Token      string `mapstructure:"token"`
}

// ListenerConfig 变更监听器配置
type ListenerConfig struct {
	Timeout      int           `mapstructure:"timeout"`       // 拉取消息超时（秒）
	TTR          int           `mapstructure:"ttr"`           // Time-To-Run（秒）
	PollInterval time.Duration `mapstructure:"poll_interval"` // 出错后的轮询间隔
}

// BroadcastConfig 实时广播配置
type BroadcastConfig struct {
	Channel string `mapstructure:"channel"`
}

// CleanupConfig 清理任务配置
type CleanupConfig struct {
	Interval      time.Duration `mapstructure:"interval"`       // 执行间隔
	RetentionDays int           `mapstructure:"retention_days"` // 保留天数
	PassTimeout   time.Duration `mapstructure:"pass_timeout"`   // 单次执行超时
}

// Load 从配置文件加载配置
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config failed: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	// 兼容性处理：缺省值填充
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Broadcast.Channel == "" {
		cfg.Broadcast.Channel = "priority_dashboard"
	}
	if cfg.Lmstfy.EventQueue == "" {
		cfg.Lmstfy.EventQueue = "order_events"
	}
	if cfg.Listener.Timeout == 0 {
		cfg.Listener.Timeout = 3
	}
	if cfg.Listener.TTR == 0 {
		cfg.Listener.TTR = 30
	}
	if cfg.Listener.PollInterval == 0 {
		cfg.Listener.PollInterval = time.Second
	}
	if cfg.Cleanup.Interval == 0 {
		cfg.Cleanup.Interval = time.Hour
	}
	if cfg.Cleanup.RetentionDays == 0 {
		cfg.Cleanup.RetentionDays = 7
	}
	if cfg.Cleanup.PassTimeout == 0 {
		cfg.Cleanup.PassTimeout = 5 * time.Minute
	}

	return &cfg, nil
}

// LoadDefault 加载默认配置文件路径
func LoadDefault() (*Config, error) {
	return Load("config/config.yaml")
}

// Validate 验证配置完整性
func (c *Config) Validate() error {
	if c.MySQL.DSN == "" {
		return fmt.Errorf("mysql dsn is required")
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("redis addr is required")
	}
	if c.Lmstfy.Host == "" {
		return fmt.Errorf("lmstfy host is required")
	}
	if c.Lmstfy.Token == "" {
		return fmt.Errorf("lmstfy token is required")
	}
	return nil
}
