package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath                = "."
	defaultMaxRequestBodySize  = "100KB"
	defaultMaxUploadBodySize   = "10MB"
	defaultTokenTTL            = 30 * 24 * time.Hour
	defaultBcryptCost          = 10
	defaultDBRetryInterval     = 5 * time.Second
	defaultTMDBTimeout         = 10 * time.Second
	defaultGeminiTimeout       = 30 * time.Second
	defaultOutboundAttempts    = 3
	defaultCatalogCacheSize    = 512
	defaultCatalogCacheTTL     = time.Hour
	defaultProfileImageMaxSize = 2 << 20
	defaultTMDBBaseURL         = "https://api.themoviedb.org/3"
	defaultTMDBLanguage        = "pt-BR"
	defaultTMDBRegion          = "BR"
	defaultGeminiBaseURL       = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel         = "gemini-2.0-flash"

	// EnvProduction switches database startup from fail-fast to retry.
	EnvProduction = "production"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		MaxUploadBodySize  string `json:"maxUploadBodySize" yaml:"maxUploadBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Database holds startup behaviour that go-lib's DBConn does not cover.
	Database DatabaseConfig `json:"database" yaml:"database"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	CORS CORSConfig `json:"cors" yaml:"cors"`

	RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	Storage StorageConfig `json:"storage" yaml:"storage"`

	TMDB TMDBConfig `json:"tmdb" yaml:"tmdb"`

	Gemini GeminiConfig `json:"gemini" yaml:"gemini"`

	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`
}

// IsProduction reports whether the service runs with production semantics.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env.Env, EnvProduction)
}

// DatabaseConfig controls how the service reacts to an unreachable database.
type DatabaseConfig struct {
	RetryInterval      time.Duration `json:"retryInterval" yaml:"retryInterval"`
	AutoMigrate        bool          `json:"autoMigrate" yaml:"autoMigrate"`
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	JWTSecret  string        `json:"jwtSecret" yaml:"jwtSecret" validate:"required"`
	TokenTTL   time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
}

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
}

// RateLimitConfig throttles the unauthenticated auth endpoints per client IP.
type RateLimitConfig struct {
	Enabled        bool    `json:"enabled" yaml:"enabled"`
	AuthPerMinute  float64 `json:"authPerMinute" yaml:"authPerMinute"`
	AuthBurst      int     `json:"authBurst" yaml:"authBurst"`
	RetryAfterSecs int     `json:"retryAfterSecs" yaml:"retryAfterSecs"`
}

// StorageConfig points at the blob bucket that hosts profile images.
type StorageConfig struct {
	BucketURL           string `json:"bucketURL" yaml:"bucketURL" validate:"required"`
	PublicBaseURL       string `json:"publicBaseURL" yaml:"publicBaseURL" validate:"required"`
	DefaultImageURL     string `json:"defaultImageURL" yaml:"defaultImageURL"`
	ProfileImageMaxSize int64  `json:"profileImageMaxSize" yaml:"profileImageMaxSize"`
	ServeLocal          bool   `json:"serveLocal" yaml:"serveLocal"`
}

// TMDBConfig configures the metadata provider client.
type TMDBConfig struct {
	BaseURL        string        `json:"baseURL" yaml:"baseURL"`
	APIKey         string        `json:"apiKey" yaml:"apiKey"`
	Language       string        `json:"language" yaml:"language"`
	Region         string        `json:"region" yaml:"region"`
	Timeout        time.Duration `json:"timeout" yaml:"timeout"`
	MaxAttempts    uint          `json:"maxAttempts" yaml:"maxAttempts"`
	RequestsPerSec float64       `json:"requestsPerSec" yaml:"requestsPerSec"`
	CacheSize      int           `json:"cacheSize" yaml:"cacheSize"`
	CacheTTL       time.Duration `json:"cacheTTL" yaml:"cacheTTL"`
}

// GeminiConfig configures the generative-language client.
type GeminiConfig struct {
	BaseURL     string        `json:"baseURL" yaml:"baseURL"`
	APIKey      string        `json:"apiKey" yaml:"apiKey"`
	Model       string        `json:"model" yaml:"model"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
	MaxAttempts uint          `json:"maxAttempts" yaml:"maxAttempts"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

type Log struct {
	Pretty bool     `json:"pretty" yaml:"pretty"`
	Level  string   `json:"level" yaml:"level"`
	File   *LogFile `json:"file" yaml:"file"`
}

// LogFile enables rotated file output next to stdout.
type LogFile struct {
	Path       string `json:"path" yaml:"path"`
	MaxSizeMB  int    `json:"maxSizeMB" yaml:"maxSizeMB"`
	MaxBackups int    `json:"maxBackups" yaml:"maxBackups"`
	MaxAgeDays int    `json:"maxAgeDays" yaml:"maxAgeDays"`
	Compress   bool   `json:"compress" yaml:"compress"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: TMDB_APIKEY -> tmdb.apiKey, POSTGRES_SSLMODE -> postgres.sslMode
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			key := canonicalizeEnvKey(k, existingConfigMap)
			if isListKey(key) {
				return key, splitList(v)
			}

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the fields the service cannot start without.
func Validate(cfg *Config) error {
	if cfg.Auth == nil {
		return errors.New("auth section is required")
	}

	v := validator.New()
	if err := v.Struct(cfg.Auth); err != nil {
		return errors.Wrap(err, "invalid auth config")
	}
	if err := v.Struct(cfg.Storage); err != nil {
		return errors.Wrap(err, "invalid storage config")
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if strings.TrimSpace(cfg.HTTP.MaxUploadBodySize) == "" {
		cfg.HTTP.MaxUploadBodySize = defaultMaxUploadBodySize
	}
	if cfg.Database.RetryInterval <= 0 {
		cfg.Database.RetryInterval = defaultDBRetryInterval
	}
	if cfg.Auth != nil {
		if cfg.Auth.TokenTTL <= 0 {
			cfg.Auth.TokenTTL = defaultTokenTTL
		}
		if cfg.Auth.BcryptCost == 0 {
			cfg.Auth.BcryptCost = defaultBcryptCost
		}
	}
	if cfg.Storage.ProfileImageMaxSize <= 0 {
		cfg.Storage.ProfileImageMaxSize = defaultProfileImageMaxSize
	}
	if cfg.TMDB.BaseURL == "" {
		cfg.TMDB.BaseURL = defaultTMDBBaseURL
	}
	if cfg.TMDB.Language == "" {
		cfg.TMDB.Language = defaultTMDBLanguage
	}
	if cfg.TMDB.Region == "" {
		cfg.TMDB.Region = defaultTMDBRegion
	}
	if cfg.TMDB.Timeout <= 0 {
		cfg.TMDB.Timeout = defaultTMDBTimeout
	}
	if cfg.TMDB.MaxAttempts == 0 {
		cfg.TMDB.MaxAttempts = defaultOutboundAttempts
	}
	if cfg.TMDB.CacheSize <= 0 {
		cfg.TMDB.CacheSize = defaultCatalogCacheSize
	}
	if cfg.TMDB.CacheTTL <= 0 {
		cfg.TMDB.CacheTTL = defaultCatalogCacheTTL
	}
	if cfg.Gemini.BaseURL == "" {
		cfg.Gemini.BaseURL = defaultGeminiBaseURL
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = defaultGeminiModel
	}
	if cfg.Gemini.Timeout <= 0 {
		cfg.Gemini.Timeout = defaultGeminiTimeout
	}
	if cfg.Gemini.MaxAttempts == 0 {
		cfg.Gemini.MaxAttempts = defaultOutboundAttempts
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// isListKey marks env overrides that carry comma separated values.
func isListKey(key string) bool {
	return key == "cors.allowOrigins"
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
