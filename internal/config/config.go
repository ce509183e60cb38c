package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

type MainConfig struct {
	AppName string `toml:"appName"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
}

type LogConfig struct {
	LogPath string `toml:"logPath"`
}

type JwtConfig struct {
	Key         string `toml:"key"`
	ExpireHours int    `toml:"expireHours"`
	Issuer      string `toml:"issuer"`
}

// AISuggestionConfig AI 回复建议（Perplexity）配置
// API key 不放配置文件：由前端会话内提供，服务端不落盘
type AISuggestionConfig struct {
	BaseURL        string `toml:"baseURL"`
	Model          string `toml:"model"`
	TimeoutSeconds int    `toml:"timeoutSeconds"`
}

type NotificationConfig struct {
	IntervalSeconds int     `toml:"intervalSeconds"` // 模拟通知生成周期
	MaxFeedSize     int     `toml:"maxFeedSize"`     // 通知流保留上限
	UrgentRatio     float64 `toml:"urgentRatio"`     // 紧急通知占比
}

type Config struct {
	MainConfig         `toml:"mainConfig"`
	LogConfig          `toml:"logConfig"`
	JwtConfig          `toml:"jwtConfig"`
	AISuggestionConfig `toml:"aiSuggestionConfig"`
	NotificationConfig `toml:"notificationConfig"`
}

var config *Config

func LoadConfig() error {
	configPath := "configs/config_local.toml"
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		log.Printf("加载配置文件失败: %v, 尝试使用默认设置", err)
		return err
	}
	return nil
}

func GetConfig() *Config {
	if config == nil {
		config = new(Config)
		_ = LoadConfig()
		config.applyDefaults()
	}
	return config
}

func (c *Config) applyDefaults() {
	if c.AISuggestionConfig.BaseURL == "" {
		c.AISuggestionConfig.BaseURL = "https://api.perplexity.ai"
	}
	if c.AISuggestionConfig.Model == "" {
		c.AISuggestionConfig.Model = "llama-3.1-sonar-small-128k-online"
	}
	if c.AISuggestionConfig.TimeoutSeconds <= 0 {
		c.AISuggestionConfig.TimeoutSeconds = 30
	}
	if c.NotificationConfig.IntervalSeconds <= 0 {
		c.NotificationConfig.IntervalSeconds = 30
	}
	if c.NotificationConfig.MaxFeedSize <= 0 {
		c.NotificationConfig.MaxFeedSize = 10
	}
	if c.NotificationConfig.UrgentRatio <= 0 || c.NotificationConfig.UrgentRatio >= 1 {
		c.NotificationConfig.UrgentRatio = 0.3
	}
}
