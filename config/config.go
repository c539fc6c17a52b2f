package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/viper"
)

type Config struct {
	Service     string
	HTTP        HTTPConfig        `mapstructure:"http"`
	Persistence PersistenceConfig `mapstructure:"persistence"`
	Postgres    PostgresConfig    `mapstructure:"postgres"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Kafka       KafkaConfig       `mapstructure:"kafka"`
	QR          QRConfig          `mapstructure:"qr"`
	Kitchen     KitchenConfig     `mapstructure:"kitchen"`
	Gateway     GatewayConfig     `mapstructure:"gateway"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

// PersistenceConfig selects where pos-svc keeps its state snapshot.
// Backend is one of redis, postgres or memory.
type PersistenceConfig struct {
	Backend string `mapstructure:"backend"`
	Key     string `mapstructure:"key"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

func (p PostgresConfig) DSN() string {
	return "host=" + p.Host + " port=" + p.Port + " user=" + p.User +
		" password=" + p.Password + " dbname=" + p.Name + " sslmode=disable"
}

type RedisConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

func (r RedisConfig) Addr() string {
	return net.JoinHostPort(r.Host, r.Port)
}

type KafkaConfig struct {
	Broker  string `mapstructure:"broker"`
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

type QRConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

type KitchenConfig struct {
	DedupeTTL time.Duration `mapstructure:"dedupe_ttl"`
}

type GatewayConfig struct {
	PosURL     string `mapstructure:"pos_url"`
	KitchenURL string `mapstructure:"kitchen_url"`
}

var defaultAddrs = map[string]string{
	"pos-svc":     ":8081",
	"kitchen-svc": ":8082",
	"api-gateway": ":8080",
}

// Load reads configuration for service from defaults, an optional file named
// by CAFE_CONFIG and CAFE_* environment variables, in increasing priority.
// CAFE_KAFKA_GROUP_ID overrides kafka.group_id, and so on.
func Load(service string) (Config, error) {
	v := viper.New()

	addr, ok := defaultAddrs[service]
	if !ok {
		addr = ":8080"
	}
	v.SetDefault("http.addr", addr)
	v.SetDefault("persistence.backend", "redis")
	v.SetDefault("persistence.key", "agentic-cafe-pos")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.name", "cafe")
	v.SetDefault("postgres.user", "cafe")
	v.SetDefault("postgres.password", "")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("kafka.broker", "")
	v.SetDefault("kafka.topic", "floor-events")
	v.SetDefault("kafka.group_id", service)
	v.SetDefault("qr.base_url", "http://localhost")
	v.SetDefault("kitchen.dedupe_ttl", "24h")
	v.SetDefault("gateway.pos_url", "http://pos-svc:8081")
	v.SetDefault("gateway.kitchen_url", "http://kitchen-svc:8082")

	if cfgPath := os.Getenv("CAFE_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	v.SetEnvPrefix("CAFE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Service = service
	return c, nil
}

func MustInitPostgres(cfg PostgresConfig) *sql.DB {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(cfg KafkaConfig) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Broker},
		Topic:   cfg.Topic,
		GroupID: cfg.GroupID,
	})
}

func NewKafkaWriter(cfg KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.Broker),
		Topic:    cfg.Topic,
		Balancer: &kafka.Hash{},
	}
}
