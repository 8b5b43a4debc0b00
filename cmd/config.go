package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPPort      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	DBAutoMigrate bool

	JWTSecret string

	PricingBaseFee   decimal.Decimal
	PricingPerKmRate decimal.Decimal
	PricingRadiusKm  float64
	MerchantLat      *float64
	MerchantLon      *float64

	GeocoderURL       string
	GeocoderUserAgent string

	GeocodeTimeout          time.Duration
	AssignTimeout           time.Duration
	PublishTimeout          time.Duration
	AssignmentJobTimeout    time.Duration
	ReassignMaxActiveOrders int
	PaymentTokenTTL         time.Duration

	KafkaHost              string
	KafkaOrderChangedTopic string

	OtelExporterEndpoint string
	ServiceVersion       string
}

// LoadConfig reads .env from path when it exists and then the process
// environment. Variables already set in the environment win over the file.
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}

	r := envReader{}
	cfg := Config{
		HTTPPort:      r.str("HTTP_PORT", "8080"),
		DBHost:        r.str("DB_HOST", "localhost"),
		DBPort:        r.str("DB_PORT", "5432"),
		DBUser:        r.str("DB_USER", "postgres"),
		DBPassword:    r.str("DB_PASSWORD", ""),
		DBName:        r.str("DB_NAME", "fooddelivery"),
		DBSslMode:     r.str("DB_SSLMODE", "disable"),
		DBAutoMigrate: r.boolean("DB_AUTO_MIGRATE", false),

		JWTSecret: r.str("JWT_SECRET", ""),

		PricingBaseFee:   r.money("PRICING_BASE_FEE", decimal.NewFromInt(5)),
		PricingPerKmRate: r.money("PRICING_PER_KM_RATE", decimal.NewFromInt(1)),
		PricingRadiusKm:  r.float("PRICING_RADIUS_KM", 3),
		MerchantLat:      r.optionalFloat("MERCHANT_LATITUDE"),
		MerchantLon:      r.optionalFloat("MERCHANT_LONGITUDE"),

		GeocoderURL:       r.str("GEOCODER_URL", ""),
		GeocoderUserAgent: r.str("GEOCODER_USER_AGENT", "fooddelivery"),

		GeocodeTimeout:          r.duration("GEOCODE_TIMEOUT", 3*time.Second),
		AssignTimeout:           r.duration("ASSIGN_TIMEOUT", 5*time.Second),
		PublishTimeout:          r.duration("PUBLISH_TIMEOUT", 2*time.Second),
		AssignmentJobTimeout:    r.duration("ASSIGNMENT_JOB_TIMEOUT", 5*time.Second),
		ReassignMaxActiveOrders: r.integer("REASSIGN_MAX_ACTIVE_ORDERS", 0),
		PaymentTokenTTL:         r.duration("PAYMENT_TOKEN_TTL", 15*time.Minute),

		KafkaHost:              r.str("KAFKA_HOST", ""),
		KafkaOrderChangedTopic: r.str("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),

		OtelExporterEndpoint: r.str("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ServiceVersion:       r.str("SERVICE_VERSION", "dev"),
	}

	if cfg.JWTSecret == "" {
		r.errs = append(r.errs, errors.New("JWT_SECRET is required"))
	}
	if (cfg.MerchantLat == nil) != (cfg.MerchantLon == nil) {
		r.errs = append(r.errs, errors.New("MERCHANT_LATITUDE and MERCHANT_LONGITUDE must be set together"))
	}

	if err := errors.Join(r.errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// MigrateURL returns the postgres URL used by golang-migrate.
func (c Config) MigrateURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSslMode)
}

// KafkaBrokers splits KAFKA_HOST on commas. Empty means Kafka is disabled.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

type envReader struct {
	errs []error
}

func (r *envReader) str(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func (r *envReader) boolean(key string, def bool) bool {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return b
}

func (r *envReader) integer(key string, def int) int {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func (r *envReader) float(key string, def float64) float64 {
	if f := r.optionalFloat(key); f != nil {
		return *f
	}
	return def
}

func (r *envReader) optionalFloat(key string) *float64 {
	v := r.str(key, "")
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return nil
	}
	return &f
}

func (r *envReader) money(key string, def decimal.Decimal) decimal.Decimal {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}

func (r *envReader) duration(key string, def time.Duration) time.Duration {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}
