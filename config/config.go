package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const defaultPath = "."

// Session initialization policies.
// EnvPrefix scopes the environment overrides. Other process variables are ignored.
const EnvPrefix = "PORTAL_"

const (
	InitPolicyTrustCache   = "trust_cache"
	InitPolicyAlwaysVerify = "always_verify"
)

// Storage drivers.
const (
	StorageDriverBlob     = "blob"
	StorageDriverRedis    = "redis"
	StorageDriverPostgres = "postgres"
)

// EnvDevelop is the local development environment name.
const EnvDevelop = "develop"

// PubSub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderHTTP   = "http"
	PubSubProviderGoogle = "google"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// API is the upstream HR / insurance backend.
	API *APIConfig `json:"api" yaml:"api"`

	Session *SessionConfig `json:"session" yaml:"session"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Guard *GuardConfig `json:"guard" yaml:"guard"`

	Verification *VerificationConfig `json:"verification" yaml:"verification"`

	// PubSub configuration for entity status change events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	// Worker receives status change pushes from other instances
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// APIConfig defines how the upstream API is reached.
type APIConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// SessionConfig defines session lifecycle behavior.
type SessionConfig struct {
	// InitPolicy is either "trust_cache" or "always_verify".
	InitPolicy    string        `json:"initPolicy" yaml:"initPolicy"`
	LogoutTimeout time.Duration `json:"logoutTimeout" yaml:"logoutTimeout"`
}

// StorageConfig selects where the session snapshot is persisted.
type StorageConfig struct {
	Driver string `json:"driver" yaml:"driver"`

	// Key identifies the snapshot record in every backend.
	Key string `json:"key" yaml:"key"`

	// EncryptionKey is a base64 32-byte key. When set, tokens are sealed at rest.
	EncryptionKey string `json:"encryptionKey" yaml:"encryptionKey"`

	Blob struct {
		URL string `json:"url" yaml:"url"`
	} `json:"blob" yaml:"blob"`

	Redis struct {
		Addr     string        `json:"addr" yaml:"addr"`
		Password string        `json:"password" yaml:"password"`
		DB       int           `json:"db" yaml:"db"`
		TTL      time.Duration `json:"ttl" yaml:"ttl"`
	} `json:"redis" yaml:"redis"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`
}

// GuardRoute declares a protected route prefix and the role codes allowed on it.
// An empty AllowedRoles list admits any authenticated identity.
type GuardRoute struct {
	Prefix       string   `json:"prefix" yaml:"prefix"`
	AllowedRoles []string `json:"allowedRoles" yaml:"allowedRoles"`
}

// GuardConfig defines the route guard.
type GuardConfig struct {
	LoginRoute          string        `json:"loginRoute" yaml:"loginRoute"`
	RestrictedRoute     string        `json:"restrictedRoute" yaml:"restrictedRoute"`
	ExemptRoutes        []string      `json:"exemptRoutes" yaml:"exemptRoutes"`
	Routes              []GuardRoute  `json:"routes" yaml:"routes"`
	RedirectVerifyDelay time.Duration `json:"redirectVerifyDelay" yaml:"redirectVerifyDelay"`
	InitWaitTimeout     time.Duration `json:"initWaitTimeout" yaml:"initWaitTimeout"`
}

// VerificationConfig defines the email verification sub-flow.
type VerificationConfig struct {
	ResendCooldown time.Duration `json:"resendCooldown" yaml:"resendCooldown"`
}

// PubSubConfig defines where entity status change events go
type PubSubConfig struct {
	// Provider type: "local" for in-process, "http" for an HTTP push endpoint, "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// HTTP push endpoint (for http provider)
	Endpoint string `json:"endpoint" yaml:"endpoint"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// WorkerConfig defines the push receiver.
type WorkerConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Port    int    `json:"port" yaml:"port"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(k, v string) (string, any) {
			// Example: PORTAL_STORAGE_REDIS_ADDR -> storage.redis.addr, PORTAL_GUARD_LOGINROUTE -> guard.loginRoute
			key := canonicalizeEnvKey(strings.TrimPrefix(k, EnvPrefix), existingConfigMap)

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
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Storage.Postgres != nil {
		cfg.Storage.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills every optional section so callers never nil-check.
func (cfg *Config) ApplyDefaults() {
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}

	if cfg.API == nil {
		cfg.API = &APIConfig{}
	}
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = 15 * time.Second
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.InitPolicy == "" {
		cfg.Session.InitPolicy = InitPolicyTrustCache
	}
	if cfg.Session.LogoutTimeout <= 0 {
		cfg.Session.LogoutTimeout = 5 * time.Second
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageDriverBlob
	}
	if cfg.Storage.Key == "" {
		cfg.Storage.Key = "portal-session"
	}
	if cfg.Storage.Blob.URL == "" {
		cfg.Storage.Blob.URL = "file://" + filepath.ToSlash(filepath.Join(os.TempDir(), "portal")) + "?create_dir=true"
	}

	if cfg.Guard == nil {
		cfg.Guard = &GuardConfig{}
	}
	if cfg.Guard.LoginRoute == "" {
		cfg.Guard.LoginRoute = "/login"
	}
	if cfg.Guard.RestrictedRoute == "" {
		cfg.Guard.RestrictedRoute = "/access-restricted"
	}
	if len(cfg.Guard.ExemptRoutes) == 0 {
		cfg.Guard.ExemptRoutes = []string{cfg.Guard.LoginRoute, cfg.Guard.RestrictedRoute, "/register", "/verify-email"}
	}
	if len(cfg.Guard.Routes) == 0 {
		cfg.Guard.Routes = DefaultGuardRoutes()
	}
	if cfg.Guard.RedirectVerifyDelay <= 0 {
		cfg.Guard.RedirectVerifyDelay = 100 * time.Millisecond
	}
	if cfg.Guard.InitWaitTimeout <= 0 {
		cfg.Guard.InitWaitTimeout = 10 * time.Second
	}

	if cfg.Verification == nil {
		cfg.Verification = &VerificationConfig{}
	}
	if cfg.Verification.ResendCooldown <= 0 {
		cfg.Verification.ResendCooldown = 60 * time.Second
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.PubSub.Provider == "" {
		cfg.PubSub.Provider = PubSubProviderLocal
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{Enabled: true}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = 8081
	}
	if cfg.Worker.Path == "" {
		cfg.Worker.Path = "/push"
	}
}

// DefaultGuardRoutes is the role matrix of the operator console.
func DefaultGuardRoutes() []GuardRoute {
	return []GuardRoute{
		{Prefix: "/admin", AllowedRoles: []string{"SYSTEM_ADMIN"}},
		{Prefix: "/labor-office", AllowedRoles: []string{"LABOR_OFFICE_ADMIN", "LABOR_OFFICE_OFFICER"}},
		{Prefix: "/company", AllowedRoles: []string{"COMPANY_ADMIN", "COMPANY_HR"}},
		{Prefix: "/worker", AllowedRoles: []string{"WORKER"}},
		{Prefix: "/dashboard"},
		{Prefix: "/profile"},
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: PORTAL_STORAGE_POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := EnvPrefix + "STORAGE_POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

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
