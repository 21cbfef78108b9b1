// Package config loads settings for the studysync CLI and the sandbox platform server.
//
// Sources are applied in order: built-in defaults, an optional YAML file,
// STUDYSYNC_* environment variables (a .env file is loaded into the environment
// best-effort beforehand), then command-line flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// AppName is the directory name used under the user config dir.
const AppName = "studysync"

// Имена файлов в каталоге настроек
const (
	FileName         = "config.yaml"
	UsersFileName    = "users.json"
	ProjectsFileName = "projects.json"
)

// Client is the configuration of the studysync CLI.
type Client struct {
	Platform PlatformConfig `yaml:"platform"`
	GitHost  GitHostConfig  `yaml:"githost"`
	Session  SessionConfig  `yaml:"session"`
	Storage  StorageConfig  `yaml:"storage"`
	Log      LogConfig      `yaml:"log"`
}

// PlatformConfig описывает адреса платформы
type PlatformConfig struct {
	APIURL             string `yaml:"api_url"`
	ClientURL          string `yaml:"client_url"`
	LoginURL           string `yaml:"login_url"`
	MaximumAllowedTime int    `yaml:"maximum_allowed_time,omitempty"` // 0 = значение клиента по умолчанию
	TimeoutSeconds     int    `yaml:"timeout_seconds"`                // 0 = без таймаута
}

// GitHostConfig описывает git-хостинг с репозиториями исследований
type GitHostConfig struct {
	APIURL         string `yaml:"api_url"`
	Token          string `yaml:"token,omitempty"`
	Namespace      string `yaml:"namespace,omitempty"` // пространство для форков; пусто = username текущей сессии
	SSHKeyPath     string `yaml:"ssh_key_path,omitempty"`
	KnownHostsPath string `yaml:"known_hosts_path,omitempty"`
}

// SessionConfig описывает поведение сессии
type SessionConfig struct {
	Token      string `yaml:"token,omitempty"`     // токен по умолчанию для первой сессии процесса
	LastUser   string `yaml:"last_user,omitempty"` // последний вошедший пользователь из users.json
	RememberMe bool   `yaml:"remember_me"`
}

// StorageConfig описывает каталог локальных JSON-хранилищ
type StorageConfig struct {
	Dir string `yaml:"dir"`
}

// LogConfig describes logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Server is the configuration of the sandbox platform server.
type Server struct {
	Pricing PricingConfig `yaml:"pricing"`
	Listen  ListenConfig  `yaml:"server"`
	DB      DBConfig      `yaml:"db"`
	JWT     JWTConfig     `yaml:"jwt"`
	Log     LogConfig     `yaml:"log"`
}

type ListenConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	TTLMinutes int    `yaml:"ttl_minutes"`
}

// PricingConfig задает комиссию платформы в процентах от суммы вознаграждений
type PricingConfig struct {
	FeePercent decimal.Decimal `yaml:"fee_percent"`
}

// Addr returns host:port for http.Server.
func (l ListenConfig) Addr() string {
	return fmt.Sprintf("%s:%d", l.Host, l.Port)
}

// SlogLevel maps the configured level name to a slog level; unknown names give info.
func (l LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// DefaultDir returns {user config dir}/studysync.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// DefaultClient returns the built-in client settings.
func DefaultClient() Client {
	return Client{
		Platform: PlatformConfig{
			APIURL:         "https://test.prolific.co/api/v1",
			ClientURL:      "https://test-client.prolific.co",
			LoginURL:       "https://test.prolific.co/auth/accounts/login/",
			TimeoutSeconds: 30,
		},
		GitHost: GitHostConfig{
			APIURL: "https://gitlab.com/api/v4",
		},
		Session: SessionConfig{RememberMe: true},
		Log:     LogConfig{Level: "warn"},
	}
}

// DefaultServer returns the built-in sandbox settings.
func DefaultServer() Server {
	return Server{
		Listen:  ListenConfig{Host: "127.0.0.1", Port: 8080},
		DB:      DBConfig{Path: "studysync-sandbox.db"},
		JWT:     JWTConfig{TTLMinutes: 24 * 60},
		Pricing: PricingConfig{FeePercent: decimal.RequireFromString("33.33")},
		Log:     LogConfig{Level: "info"},
	}
}

// LoadDotenv loads .env from the working directory if present. Errors are ignored:
// a missing .env is the common case.
func LoadDotenv() {
	_ = godotenv.Load()
}

// LoadClient reads client settings. An empty path means {DefaultDir}/config.yaml,
// which may be missing; an explicit path must exist.
func LoadClient(path string) (Client, error) {
	cfg := DefaultClient()

	explicit := path != ""
	if !explicit {
		dir, err := DefaultDir()
		if err == nil {
			path = filepath.Join(dir, FileName)
		}
	}
	if path != "" {
		if err := loadFromFile(path, &cfg, explicit); err != nil {
			return Client{}, err
		}
	}

	if err := applyClientEnv(&cfg); err != nil {
		return Client{}, err
	}

	if cfg.Storage.Dir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return Client{}, err
		}
		cfg.Storage.Dir = dir
	}
	cfg.Storage.Dir = ExpandHome(cfg.Storage.Dir)
	cfg.GitHost.SSHKeyPath = ExpandHome(cfg.GitHost.SSHKeyPath)
	cfg.GitHost.KnownHostsPath = ExpandHome(cfg.GitHost.KnownHostsPath)

	return cfg, nil
}

// LoadServer reads sandbox settings from an optional YAML file and the environment.
func LoadServer(path string) (Server, error) {
	cfg := DefaultServer()

	if path != "" {
		if err := loadFromFile(path, &cfg, true); err != nil {
			return Server{}, err
		}
	}

	if v := os.Getenv("STUDYSYNC_SANDBOX_HOST"); v != "" {
		cfg.Listen.Host = v
	}
	if v := os.Getenv("STUDYSYNC_SANDBOX_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Server{}, fmt.Errorf("invalid STUDYSYNC_SANDBOX_PORT: %w", err)
		}
		cfg.Listen.Port = port
	}
	if v := os.Getenv("STUDYSYNC_SANDBOX_DB_PATH"); v != "" {
		cfg.DB.Path = v
	}
	if v := os.Getenv("STUDYSYNC_SANDBOX_JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("STUDYSYNC_SANDBOX_FEE_PERCENT"); v != "" {
		fee, err := decimal.NewFromString(v)
		if err != nil {
			return Server{}, fmt.Errorf("invalid STUDYSYNC_SANDBOX_FEE_PERCENT: %w", err)
		}
		cfg.Pricing.FeePercent = fee
	}
	if v := os.Getenv("STUDYSYNC_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	return cfg, nil
}

func applyClientEnv(cfg *Client) error {
	strs := []struct {
		dst *string
		key string
	}{
		{&cfg.Platform.APIURL, "STUDYSYNC_API_URL"},
		{&cfg.Platform.ClientURL, "STUDYSYNC_CLIENT_URL"},
		{&cfg.Platform.LoginURL, "STUDYSYNC_LOGIN_URL"},
		{&cfg.Session.Token, "STUDYSYNC_TOKEN"},
		{&cfg.GitHost.APIURL, "STUDYSYNC_GITHOST_URL"},
		{&cfg.GitHost.Token, "STUDYSYNC_GITHOST_TOKEN"},
		{&cfg.GitHost.SSHKeyPath, "STUDYSYNC_SSH_KEY"},
		{&cfg.Storage.Dir, "STUDYSYNC_PREFS_DIR"},
		{&cfg.Log.Level, "STUDYSYNC_LOG_LEVEL"},
	}
	for _, s := range strs {
		if v := os.Getenv(s.key); v != "" {
			*s.dst = v
		}
	}

	if v := os.Getenv("STUDYSYNC_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid STUDYSYNC_TIMEOUT_SECONDS: %w", err)
		}
		cfg.Platform.TimeoutSeconds = n
	}
	if v := os.Getenv("STUDYSYNC_REMEMBER_ME"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid STUDYSYNC_REMEMBER_ME: %w", err)
		}
		cfg.Session.RememberMe = b
	}
	return nil
}

func loadFromFile(path string, cfg any, mustExist bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !mustExist {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// Save writes cfg as YAML, creating parent directories. The file may hold tokens,
// so it is created with 0600.
func Save(path string, cfg any) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// UpdateClientFile applies update to the client settings stored at path and writes
// them back. Environment overrides are not read, so they never end up in the file.
func UpdateClientFile(path string, update func(*Client)) error {
	cfg := DefaultClient()
	if err := loadFromFile(path, &cfg, false); err != nil {
		return err
	}
	update(&cfg)
	return Save(path, cfg)
}

// UsersPath returns the path of the known-users store.
func (c Client) UsersPath() string {
	return filepath.Join(c.Storage.Dir, UsersFileName)
}

// ProjectsPath returns the path of the known-projects store.
func (c Client) ProjectsPath() string {
	return filepath.Join(c.Storage.Dir, ProjectsFileName)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return ExpandHomeDir(path, home)
}

// ExpandHomeDir replaces a leading "~" with home. "~user" forms are left as is.
func ExpandHomeDir(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		return filepath.Join(home, path[2:])
	}
	return path
}
