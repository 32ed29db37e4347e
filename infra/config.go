package infra

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"dbname"`
	// sqlite のファイル。空ならインメモリ
	Path string `yaml:"path"`
}

type Config struct {
	Mode          string         `yaml:"mode"`
	Env           string         `yaml:"env"`
	Port          string         `yaml:"port"`
	AutoMigrate   bool           `yaml:"auto_migrate"`
	ServiceSecret string         `yaml:"service_secret"`
	ServerURL     string         `yaml:"server_url"`
	UserCacheTTL  time.Duration  `yaml:"user_cache_ttl"`
	DB            DatabaseConfig `yaml:"database"`
}

func defaultConfig() Config {
	return Config{
		Mode:         "dev",
		ServerURL:    "http://localhost:9090",
		UserCacheTTL: 5 * time.Minute,
	}
}

// loadEnvFile は ENV_FILE (既定 .env) を環境変数に読み込む。既に設定済みの変数は上書きしない
func loadEnvFile() {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		log.Printf("[INFO] No %s file found; using environment variables", path)
	}
}

// LoadConfig は .env、CONFIG_FILE の YAML、環境変数の順に設定を重ねる
func LoadConfig() (*Config, error) {
	loadEnvFile()

	cfg := defaultConfig()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		buf, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("設定ファイルの読み込み失敗: %w", err)
		}
		if err := yaml.Unmarshal(buf, &cfg); err != nil {
			return nil, fmt.Errorf("設定ファイルのパース失敗: %w", err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Mode, "MODE")
	setString(&cfg.Env, "ENV")
	setString(&cfg.Port, "PORT")
	setString(&cfg.ServiceSecret, "SERVICE_SECRET")
	setString(&cfg.ServerURL, "SHAREIT_SERVER_URL")
	setString(&cfg.DB.Driver, "DB_DRIVER")
	setString(&cfg.DB.Host, "DB_HOST")
	setString(&cfg.DB.Port, "DB_PORT")
	setString(&cfg.DB.User, "DB_USER")
	setString(&cfg.DB.Password, "DB_PASSWORD")
	setString(&cfg.DB.Name, "DB_NAME")
	setString(&cfg.DB.Path, "DB_PATH")

	if v := os.Getenv("AUTO_MIGRATE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("AUTO_MIGRATE: %w", err)
		}
		cfg.AutoMigrate = b
	}
	if v := os.Getenv("USER_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("USER_CACHE_TTL: %w", err)
		}
		cfg.UserCacheTTL = d
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// ListenPort は PORT が無ければ fallback を返す
func (c *Config) ListenPort(fallback string) string {
	if c.Port == "" {
		return fallback
	}
	return c.Port
}

func (c *Config) IsRelease() bool {
	return c.Mode == "release"
}
