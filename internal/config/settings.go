package config

import "time"

// Backend selectors
const (
	TextGeneratorStub   = "stub"
	TextGeneratorGemini = "gemini"

	DecisionLogStub     = "stub"
	DecisionLogPostgres = "postgres"
	DecisionLogKafka    = "kafka"
)

// Config is the full process configuration, read once at startup.
type Config struct {
	Port         string
	AllowOrigins string
	AIRateLimit  int

	Data DataConfig
	AI   AIConfig

	DecisionLogBackend string
	DB                 DBConfig
	Redis              RedisConfig
	Kafka              KafkaConfig
}

type DataConfig struct {
	Companies    int
	Transactions int
	Seed         int64
	// NoiseSeed fixes the scorer noise term. Zero means time-seeded.
	NoiseSeed int64
}

type AIConfig struct {
	Backend  string
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

type DBConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		Port:         GetEnv("PORT", "8000"),
		AllowOrigins: GetEnv("CORS_ALLOW_ORIGINS", "*"),
		AIRateLimit:  GetIntEnv("AI_RATE_LIMIT", 30),
		Data: DataConfig{
			Companies:    GetIntEnv("DATA_COMPANIES", 50),
			Transactions: GetIntEnv("DATA_TRANSACTIONS", 300),
			Seed:         GetInt64Env("DATA_SEED", 0),
			NoiseSeed:    GetInt64Env("RISK_NOISE_SEED", 0),
		},
		AI: AIConfig{
			Backend:  GetEnv("TEXT_GENERATOR", TextGeneratorStub),
			APIKey:   GetEnv("GEMINI_API_KEY", ""),
			Model:    GetEnv("GEMINI_MODEL", "gemini-pro"),
			BaseURL:  GetEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
			Timeout:  GetDurationEnv("GEMINI_TIMEOUT", 20*time.Second),
			CacheTTL: GetDurationEnv("AI_CACHE_TTL", time.Hour),
		},
		DecisionLogBackend: GetEnv("DECISION_LOG_BACKEND", DecisionLogStub),
		DB: DBConfig{
			Host:            GetEnv("DB_HOST", "localhost"),
			Port:            GetEnv("DB_PORT", "5432"),
			User:            GetEnv("DB_USER", "postgres"),
			Password:        GetEnv("DB_PASSWORD", "postgres"),
			Name:            GetEnv("DB_NAME", "shellwatch"),
			SSLMode:         GetEnv("DB_SSLMODE", "disable"),
			MaxIdleConns:    GetIntEnv("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    GetIntEnv("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: GetDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			ConnMaxIdleTime: GetDurationEnv("DB_CONN_MAX_IDLE_TIME", 30*time.Minute),
		},
		Redis: RedisConfig{
			Enabled:  GetBoolEnv("REDIS_ENABLED", false),
			Host:     GetEnv("REDIS_HOST", "localhost"),
			Port:     GetEnv("REDIS_PORT", "6379"),
			Password: GetEnv("REDIS_PASSWORD", ""),
			DB:       GetIntEnv("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers: GetListEnv("KAFKA_BROKERS", []string{"localhost:9092"}),
			Topic:   GetEnv("KAFKA_DECISION_TOPIC", "decision-logs"),
		},
	}
}
