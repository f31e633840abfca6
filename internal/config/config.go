package config

import (
	"fmt"
	"time"
	_ "time/tzdata"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Cart      CartConfig      `yaml:"cart"      validate:"required"`
	Pesapal   PesapalConfig   `yaml:"pesapal"   validate:"required"`
	Reconcile ReconcileConfig `yaml:"reconcile" validate:"required"`
	Redis     RedisConfig     `yaml:"redis"`
	RabbitMQ  RabbitMQConfig  `yaml:"rabbitmq"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	HTTP      HTTPConfig      `yaml:"http"      validate:"required"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"30s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

// LogLevel maps the configured level onto the wbf logger level.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"  validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"       validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"   validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"   validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"natuasili"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"    validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"         validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"          validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"         validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// SchedulerConfig holds the periodic job intervals. A zero interval disables the job.
type SchedulerConfig struct {
	CartSweep      time.Duration `yaml:"cart_sweep"      env:"SCHEDULER_CART_SWEEP"      env-default:"1m"  validate:"gte=0"`
	BookingCancel  time.Duration `yaml:"booking_cancel"  env:"SCHEDULER_BOOKING_CANCEL"  env-default:"1m"  validate:"gte=0"`
	ReconcileRetry time.Duration `yaml:"reconcile_retry" env:"SCHEDULER_RECONCILE_RETRY" env-default:"15s" validate:"gte=0"`
	OutboxRelay    time.Duration `yaml:"outbox_relay"    env:"SCHEDULER_OUTBOX_RELAY"    env-default:"5s"  validate:"gte=0"`
}

type CartConfig struct {
	InactivityWindow  time.Duration `yaml:"inactivity_window"    env:"CART_INACTIVITY_WINDOW"    env-default:"5m"             validate:"gt=0"`
	HoldWindow        time.Duration `yaml:"hold_window"          env:"CART_HOLD_WINDOW"          env-default:"10m"            validate:"gt=0"`
	TouchThrottle     time.Duration `yaml:"touch_throttle"       env:"CART_TOUCH_THROTTLE"       env-default:"15s"            validate:"gte=0"`
	SameDayCutoffHour int           `yaml:"same_day_cutoff_hour" env:"CART_SAME_DAY_CUTOFF_HOUR" env-default:"12"             validate:"min=0,max=24"`
	TimeZone          string        `yaml:"time_zone"            env:"CART_TIME_ZONE"            env-default:"Africa/Nairobi" validate:"required"`
}

// Location resolves the time zone used for booking dates and the same-day cutoff.
func (c CartConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

type PesapalConfig struct {
	BaseURL        string        `yaml:"base_url"        env:"PESAPAL_BASE_URL"        env-default:"https://cybqa.pesapal.com/pesapalv3" validate:"required,url"`
	ConsumerKey    string        `yaml:"consumer_key"    env:"PESAPAL_CONSUMER_KEY"    validate:"required"`
	ConsumerSecret string        `yaml:"consumer_secret" env:"PESAPAL_CONSUMER_SECRET" validate:"required"`
	NotificationID string        `yaml:"notification_id" env:"PESAPAL_NOTIFICATION_ID"`
	IPNURL         string        `yaml:"ipn_url"         env:"PESAPAL_IPN_URL"         validate:"required,url"`
	CallbackURL    string        `yaml:"callback_url"    env:"PESAPAL_CALLBACK_URL"    validate:"required,url"`
	Timeout        time.Duration `yaml:"timeout"         env:"PESAPAL_TIMEOUT"         env-default:"15s" validate:"gt=0"`
	RetryAttempts  int           `yaml:"retry_attempts"  env:"PESAPAL_RETRY_ATTEMPTS"  env-default:"3"   validate:"min=1,max=10"`
	RetryDelay     time.Duration `yaml:"retry_delay"     env:"PESAPAL_RETRY_DELAY"     env-default:"500ms" validate:"gte=0"`
	RetryBackoff   float64       `yaml:"retry_backoff"   env:"PESAPAL_RETRY_BACKOFF"   env-default:"2"   validate:"gte=1"`
	TokenMaxTTL    time.Duration `yaml:"token_max_ttl"   env:"PESAPAL_TOKEN_MAX_TTL"   env-default:"4m"  validate:"gt=0"`
	TokenMargin    time.Duration `yaml:"token_margin"    env:"PESAPAL_TOKEN_MARGIN"    env-default:"30s" validate:"gte=0"`
}

func (p PesapalConfig) RetryStrategy() retry.Strategy {
	return retry.Strategy{Attempts: p.RetryAttempts, Delay: p.RetryDelay, Backoff: p.RetryBackoff}
}

type ReconcileConfig struct {
	BaseDelay   time.Duration `yaml:"base_delay"   env:"RECONCILE_BASE_DELAY"   env-default:"30s" validate:"gt=0"`
	MaxDelay    time.Duration `yaml:"max_delay"    env:"RECONCILE_MAX_DELAY"    env-default:"10m" validate:"gtefield=BaseDelay"`
	MaxAttempts int           `yaml:"max_attempts" env:"RECONCILE_MAX_ATTEMPTS" env-default:"5"   validate:"min=1"`
	BatchSize   int           `yaml:"batch_size"   env:"RECONCILE_BATCH_SIZE"   env-default:"20"  validate:"min=1"`
	Lease       time.Duration `yaml:"lease"        env:"RECONCILE_LEASE"        env-default:"2m"  validate:"gt=0"`
}

// RedisConfig is optional. Without an address the token cache and the
// notification dedup keys live in process memory.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB" env-default:"0" validate:"min=0"`
	TokenKey string `yaml:"token_key" env:"REDIS_TOKEN_KEY" env-default:"natuasili:pesapal:token"`
}

// RabbitMQConfig is optional. Without a URL outbox messages are delivered
// in process.
type RabbitMQConfig struct {
	URL            string        `yaml:"url"             env:"RABBITMQ_URL"`
	Exchange       string        `yaml:"exchange"        env:"RABBITMQ_EXCHANGE"        env-default:"natuasili.events"`
	Queue          string        `yaml:"queue"           env:"RABBITMQ_QUEUE"           env-default:"natuasili.notifications"`
	Workers        int           `yaml:"workers"         env:"RABBITMQ_WORKERS"         env-default:"2"  validate:"min=1"`
	PrefetchCount  int           `yaml:"prefetch_count"  env:"RABBITMQ_PREFETCH_COUNT"  env-default:"10" validate:"min=1"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"RABBITMQ_CONNECT_TIMEOUT" env-default:"5s" validate:"gt=0"`
	Heartbeat      time.Duration `yaml:"heartbeat"       env:"RABBITMQ_HEARTBEAT"       env-default:"10s" validate:"gt=0"`
}

type SMTPConfig struct {
	Host     string        `yaml:"host"      env:"SMTP_HOST"`
	Port     int           `yaml:"port"      env:"SMTP_PORT"      env-default:"587" validate:"min=1,max=65535"`
	Username string        `yaml:"username"  env:"SMTP_USERNAME"`
	Password string        `yaml:"password"  env:"SMTP_PASSWORD"`
	From     string        `yaml:"from"      env:"SMTP_FROM"      env-default:"bookings@natuasili.com"`
	FromName string        `yaml:"from_name" env:"SMTP_FROM_NAME" env-default:"Natuasili"`
	Timeout  time.Duration `yaml:"timeout"   env:"SMTP_TIMEOUT"   env-default:"10s" validate:"gt=0"`
	DedupTTL time.Duration `yaml:"dedup_ttl" env:"SMTP_DEDUP_TTL" env-default:"72h" validate:"gt=0"`
}

type TelegramConfig struct {
	BotToken  string `yaml:"bot_token"   env:"TELEGRAM_BOT_TOKEN"   env-default:""`
	OpsChatID int64  `yaml:"ops_chat_id" env:"TELEGRAM_OPS_CHAT_ID" env-default:"0"`
}

type HTTPConfig struct {
	FrontendURL    string   `yaml:"frontend_url"    env:"HTTP_FRONTEND_URL"    env-default:"http://localhost:3000" validate:"required,url"`
	AllowedOrigins []string `yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS" env-separator:","`
	AdminToken     string   `yaml:"admin_token"     env:"HTTP_ADMIN_TOKEN"`
}

// LoadPath reads and validates the config file at path.
func LoadPath(path string) (*Config, error) {
	var cfg Config
	if err := cleanenvport.LoadPath(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
