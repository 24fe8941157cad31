package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	defaultPort            = 5000
	defaultSerpEndpoint    = "https://serpapi.com/search.json"
	defaultSerpEngine      = "google"
	defaultHFBaseURL       = "https://api-inference.huggingface.co"
	defaultHFModel         = "facebook/bart-large-cnn"
	defaultOutboundTimeout = 30
)

type Config struct {
	Server struct {
		Host               string `yaml:"host"`
		Port               int    `yaml:"port"`
		Addr               string `yaml:"-"` // 不从配置文件读取，而是在加载后计算
		ReadTimeoutSec     int    `yaml:"read_timeout_sec"`
		WriteTimeoutSec    int    `yaml:"write_timeout_sec"`
		ShutdownTimeoutSec int    `yaml:"shutdown_timeout_sec"`
	} `yaml:"server"`
	SerpAPI struct {
		APIKey     string `yaml:"api_key"`
		Endpoint   string `yaml:"endpoint"`
		Engine     string `yaml:"engine"`
		TimeoutSec int    `yaml:"timeout_sec"` // 请求超时时间,单位:秒
	} `yaml:"serpapi"`
	HuggingFace struct {
		APIToken   string `yaml:"api_token"`
		BaseURL    string `yaml:"base_url"`
		Model      string `yaml:"model"`
		TimeoutSec int    `yaml:"timeout_sec"` // 请求超时时间,单位:秒
	} `yaml:"huggingface"`
	Log struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Output   string `yaml:"output"`
		FilePath string `yaml:"file_path"`
	} `yaml:"log"`
	Runtime struct {
		Env string `yaml:"env"` // development 时向调用方返回错误详情
	} `yaml:"runtime"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

// IsDevelopment 是否处于开发模式
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(strings.TrimSpace(c.Runtime.Env), EnvDevelopment)
}

// Load 加载配置：.env -> yaml 文件 -> 环境变量覆盖。path 为空时使用 config.yaml
func Load(path string) *Config {
	// 首先尝试加载.env文件中的环境变量
	_ = godotenv.Load() // 忽略错误，如果.env文件不存在，继续使用系统环境变量

	if path == "" {
		path = "config.yaml"
	}

	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		// 如果配置文件不存在，则完全从环境变量加载配置
		return loadFromEnv()
	}

	if err = yaml.Unmarshal(data, &cfg); err != nil {
		log.Printf("Error loading %s: %v, falling back to environment variables", path, err)
		return loadFromEnv()
	}
	log.Printf("Loading configuration from %s", path)

	applyEnv(&cfg)
	applyDefaults(&cfg)
	return &cfg
}

func loadFromEnv() *Config {
	var cfg Config
	applyEnv(&cfg)
	applyDefaults(&cfg)

	log.Println("配置从环境变量加载，部分配置可能缺失")
	return &cfg
}

// resolveEnvRef 配置值形如 ${NAME} 时从环境变量中获取
func resolveEnvRef(v string) string {
	if strings.HasPrefix(v, "${") && strings.HasSuffix(v, "}") {
		return os.Getenv(v[2 : len(v)-1])
	}
	return v
}

// applyEnv 从环境变量中加载敏感信息和运行模式
func applyEnv(cfg *Config) {
	cfg.SerpAPI.APIKey = resolveEnvRef(cfg.SerpAPI.APIKey)
	cfg.HuggingFace.APIToken = resolveEnvRef(cfg.HuggingFace.APIToken)

	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}

	// SerpAPI密钥
	if apiKey := os.Getenv("SERPAPI_KEY"); apiKey != "" {
		cfg.SerpAPI.APIKey = apiKey
	}

	// Hugging Face Token
	if token := os.Getenv("HF_API_TOKEN"); token != "" {
		cfg.HuggingFace.APIToken = token
	}

	if env := os.Getenv("APP_ENV"); env != "" {
		cfg.Runtime.Env = env
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = defaultPort
	}
	// 计算 Server.Addr 字段
	cfg.Server.Addr = fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	if cfg.SerpAPI.Endpoint == "" {
		cfg.SerpAPI.Endpoint = defaultSerpEndpoint
	}
	if cfg.SerpAPI.Engine == "" {
		cfg.SerpAPI.Engine = defaultSerpEngine
	}
	if cfg.SerpAPI.TimeoutSec <= 0 {
		cfg.SerpAPI.TimeoutSec = defaultOutboundTimeout
	}

	if cfg.HuggingFace.BaseURL == "" {
		cfg.HuggingFace.BaseURL = defaultHFBaseURL
	}
	if cfg.HuggingFace.Model == "" {
		cfg.HuggingFace.Model = defaultHFModel
	}
	if cfg.HuggingFace.TimeoutSec <= 0 {
		cfg.HuggingFace.TimeoutSec = defaultOutboundTimeout
	}

	if cfg.Runtime.Env == "" {
		cfg.Runtime.Env = EnvProduction
	}

	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}
}
