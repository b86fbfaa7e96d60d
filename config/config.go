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

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "20MB"
	defaultSessionCookieName  = "pixorva_session"
	defaultSessionTTL         = 7 * 24 * time.Hour
	defaultSessionIdleTimeout = 30 * time.Minute
	defaultSessionLoadingWait = 2 * time.Second
	defaultUploadTimeout      = 60 * time.Second
	defaultStoreCallTimeout   = 10 * time.Second
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
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Session SessionConfig `json:"session" yaml:"session"`

	// Firebase backs the identity provider and the Firestore store driver
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Store StoreConfig `json:"store" yaml:"store"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Redis holds browser sessions; nil keeps them in process memory
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Cloudinary *CloudinaryConfig `json:"cloudinary" yaml:"cloudinary"`

	Media MediaConfig `json:"media" yaml:"media"`

	Upload UploadConfig `json:"upload" yaml:"upload"`

	// PubSub configuration for domain event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Kafka *KafkaConfig `json:"kafka" yaml:"kafka"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SessionConfig defines browser session settings
type SessionConfig struct {
	CookieName  string        `json:"cookieName" yaml:"cookieName"`
	Secret      string        `json:"secret" yaml:"secret"`
	Secure      bool          `json:"secure" yaml:"secure"`
	TTL         time.Duration `json:"ttl" yaml:"ttl"`
	IdleTimeout time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	LoadingWait time.Duration `json:"loadingWait" yaml:"loadingWait"`
	SweepEvery  time.Duration `json:"sweepEvery" yaml:"sweepEvery"`
}

// FirebaseConfig defines Firebase project access
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	// APIKey is the web API key used for password sign-in
	APIKey string `json:"apiKey" yaml:"apiKey"`
}

// StoreConfig selects the profile and product store
type StoreConfig struct {
	// Driver is "firestore" or "postgres"
	Driver      string        `json:"driver" yaml:"driver"`
	CallTimeout time.Duration `json:"callTimeout" yaml:"callTimeout"`
}

// RedisConfig defines the session store connection
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	Prefix   string `json:"prefix" yaml:"prefix"`
}

// CloudinaryConfig defines the media upload destination.
// CloudName and UploadPreset have no defaults.
type CloudinaryConfig struct {
	CloudName    string `json:"cloudName" yaml:"cloudName"`
	UploadPreset string `json:"uploadPreset" yaml:"uploadPreset"`
	// APIKey and APISecret switch to signed uploads through the SDK
	APIKey    string `json:"apiKey" yaml:"apiKey"`
	APISecret string `json:"apiSecret" yaml:"apiSecret"`
	// BaseURL overrides https://api.cloudinary.com for unsigned uploads
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	Folder  string `json:"folder" yaml:"folder"`
}

// MediaConfig selects the media uploader
type MediaConfig struct {
	// Driver is "cloudinary" or "bucket"
	Driver string `json:"driver" yaml:"driver"`

	// BucketURL is a gocloud.dev blob URL, e.g. gs://bucket, s3://bucket, file:///var/media
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// PublicBaseURL prefixes object keys to build the retrievable URL
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
}

// UploadConfig bounds the submission workflows
type UploadConfig struct {
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
	MaxFileSize int64         `json:"maxFileSize" yaml:"maxFileSize"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google" or "kafka"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// KafkaConfig defines the kafka event publisher
type KafkaConfig struct {
	Brokers  []string `json:"brokers" yaml:"brokers"`
	Topic    string   `json:"topic" yaml:"topic"`
	Username string   `json:"username" yaml:"username"`
	Password string   `json:"password" yaml:"password"`
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
		TransformFunc: func(k, v string) (string, any) {
			// CLOUDINARY_UPLOADPRESET -> cloudinary.uploadPreset
			key := canonicalizeEnvKey(k, existingConfigMap)

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
	// .env is optional; real environment variables win over it
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = defaultSessionCookieName
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = defaultSessionTTL
	}
	if cfg.Session.IdleTimeout <= 0 {
		cfg.Session.IdleTimeout = defaultSessionIdleTimeout
	}
	if cfg.Session.LoadingWait < 0 {
		cfg.Session.LoadingWait = 0
	} else if cfg.Session.LoadingWait == 0 {
		cfg.Session.LoadingWait = defaultSessionLoadingWait
	}
	if cfg.Session.SweepEvery <= 0 {
		cfg.Session.SweepEvery = cfg.Session.IdleTimeout / 2
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = StoreDriverFirestore
	}
	if cfg.Store.CallTimeout <= 0 {
		cfg.Store.CallTimeout = defaultStoreCallTimeout
	}
	if cfg.Media.Driver == "" {
		cfg.Media.Driver = MediaDriverCloudinary
	}
	if cfg.Upload.Timeout <= 0 {
		cfg.Upload.Timeout = defaultUploadTimeout
	}
}

const (
	StoreDriverFirestore = "firestore"
	StoreDriverPostgres  = "postgres"

	MediaDriverCloudinary = "cloudinary"
	MediaDriverBucket     = "bucket"
)

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
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
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
