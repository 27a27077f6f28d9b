package cfg

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultAPIBaseURL  = "http://localhost:8080/api"
	DefaultAppPort     = "3000"
	DefaultServiceName = "travelbuddy-web"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// Enabled reports whether a Redis host was configured.
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

type TravelAPIConfig struct {
	BaseURL string
}

type FlashConfig struct {
	TTLMinutes int
}

type RateLimitConfig struct {
	PlanPerMinute int
	PlanBurst     int
}

type ObservabilityConfig struct {
	OTLPEndpoint string
	ServiceName  string
	Environment  string
}

// Enabled reports whether telemetry should be exported.
func (o ObservabilityConfig) Enabled() bool {
	return o.OTLPEndpoint != ""
}

type Config struct {
	AppEnv          string
	AppPort         string
	SnowflakeNodeID int64
	TravelAPI       TravelAPIConfig
	Redis           RedisConfig
	Flash           FlashConfig
	RateLimit       RateLimitConfig
	Observability   ObservabilityConfig
}

// Load reads the process configuration once at startup. Values from a .env
// file are applied first when the file exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.New("failed load cfg: " + err.Error())
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary environment lookup.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	var errs []error

	env := func(key, def string) string {
		value, exists := lookup(key)
		if !exists || strings.TrimSpace(value) == "" {
			return def
		}
		return strings.TrimSpace(value)
	}

	appEnv := env("APP_ENV", "development")
	appPort := env("APP_PORT", DefaultAppPort)

	baseURL := strings.TrimRight(env("TRAVEL_API_BASE_URL", DefaultAPIBaseURL), "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		errs = append(errs, errors.New("invalid env: TRAVEL_API_BASE_URL must be an http(s) url"))
	}

	flashTTL := atoiEnv(env, "FLASH_TTL_MINUTES", 5, &errs)
	nodeID := atoiEnv(env, "SNOWFLAKE_NODE_ID", 1, &errs)
	planRate := atoiEnv(env, "PLAN_RATE_PER_MINUTE", 10, &errs)
	planBurst := atoiEnv(env, "PLAN_RATE_BURST", 3, &errs)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{
		AppEnv:          appEnv,
		AppPort:         appPort,
		SnowflakeNodeID: int64(nodeID),
		TravelAPI: TravelAPIConfig{
			BaseURL: baseURL,
		},
		Redis: RedisConfig{
			Host:     env("REDIS_HOST", ""),
			Port:     env("REDIS_PORT", "6379"),
			Password: env("REDIS_PASSWORD", ""),
		},
		Flash: FlashConfig{
			TTLMinutes: flashTTL,
		},
		RateLimit: RateLimitConfig{
			PlanPerMinute: planRate,
			PlanBurst:     planBurst,
		},
		Observability: ObservabilityConfig{
			OTLPEndpoint: env("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			ServiceName:  env("OTEL_SERVICE_NAME", DefaultServiceName),
			Environment:  appEnv,
		},
	}, nil
}

func atoiEnv(env func(string, string) string, key string, def int, errs *[]error) int {
	raw := env(key, strconv.Itoa(def))
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return def
	}
	return n
}
