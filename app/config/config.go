package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type ServerCfg struct {
	Port             string `yaml:"port" json:"port"`
	Env              string `yaml:"env" json:"env"`
	RequestTimeoutMs int    `yaml:"request_timeout_ms" json:"request_timeout_ms"`
}

type MongoCfg struct {
	URL      string `yaml:"url" json:"url"`
	Database string `yaml:"database" json:"database"`
}

type RedisCfg struct {
	URL      string `yaml:"url" json:"url"`
	QueueKey string `yaml:"queue_key" json:"queue_key"`
}

type MeiliCfg struct {
	URL            string `yaml:"url" json:"url"`
	MasterKey      string `yaml:"master_key" json:"master_key"`
	IndexName      string `yaml:"index_name" json:"index_name"`
	TimeoutSeconds int    `yaml:"timeout_seconds" json:"timeout_seconds"`
}

type CacheCfg struct {
	L1Size        int `yaml:"l1_size" json:"l1_size"`
	RedisTTLHours int `yaml:"redis_ttl_hours" json:"redis_ttl_hours"`
	WarmupLimit   int `yaml:"warmup_limit" json:"warmup_limit"`
}

// ScoringCfg carries the per-field confidence weights. Changing them
// changes confidence levels, so overrides should come with a re-run of
// the golden corpus.
type ScoringCfg struct {
	Origin       float64 `yaml:"origin" json:"origin"`
	Destination  float64 `yaml:"destination" json:"destination"`
	Vehicle      float64 `yaml:"vehicle" json:"vehicle"`
	Phone        float64 `yaml:"phone" json:"phone"`
	Weight       float64 `yaml:"weight" json:"weight"`
	Contact      float64 `yaml:"contact" json:"contact"`
	CargoType    float64 `yaml:"cargo_type" json:"cargo_type"`
	BodyType     float64 `yaml:"body_type" json:"body_type"`
	RouteBonus   float64 `yaml:"route_bonus" json:"route_bonus"`
	ContactBonus float64 `yaml:"contact_bonus" json:"contact_bonus"`
}

type ParserCfg struct {
	ReviewEnabled    bool    `yaml:"review_enabled" json:"review_enabled"`
	ReviewThreshold  float64 `yaml:"review_threshold" json:"review_threshold"`
	BatchMaxMessages int     `yaml:"batch_max_messages" json:"batch_max_messages"`
}

type Config struct {
	Server  ServerCfg  `yaml:"server" json:"server"`
	Mongo   MongoCfg   `yaml:"mongo" json:"mongo"`
	Redis   RedisCfg   `yaml:"redis" json:"redis"`
	Meili   MeiliCfg   `yaml:"meili" json:"meili"`
	Cache   CacheCfg   `yaml:"cache" json:"cache"`
	Scoring ScoringCfg `yaml:"scoring" json:"scoring"`
	Parser  ParserCfg  `yaml:"parser" json:"parser"`
}

var C Config

// Load fills C from the yaml file at path. Every key has a default, so
// a missing file is not an error, and env vars override file values
// (server.port -> SERVER_PORT).
func Load(path string) error {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	C.Server.Port = v.GetString("server.port")
	C.Server.Env = v.GetString("server.env")
	C.Server.RequestTimeoutMs = v.GetInt("server.request_timeout_ms")

	C.Mongo.URL = v.GetString("mongo.url")
	C.Mongo.Database = v.GetString("mongo.database")

	C.Redis.URL = v.GetString("redis.url")
	C.Redis.QueueKey = v.GetString("redis.queue_key")

	C.Meili.URL = v.GetString("meili.url")
	C.Meili.MasterKey = v.GetString("meili.master_key")
	C.Meili.IndexName = v.GetString("meili.index_name")
	C.Meili.TimeoutSeconds = v.GetInt("meili.timeout_seconds")

	C.Cache.L1Size = v.GetInt("cache.l1_size")
	C.Cache.RedisTTLHours = v.GetInt("cache.redis_ttl_hours")
	C.Cache.WarmupLimit = v.GetInt("cache.warmup_limit")

	C.Scoring.Origin = v.GetFloat64("scoring.origin")
	C.Scoring.Destination = v.GetFloat64("scoring.destination")
	C.Scoring.Vehicle = v.GetFloat64("scoring.vehicle")
	C.Scoring.Phone = v.GetFloat64("scoring.phone")
	C.Scoring.Weight = v.GetFloat64("scoring.weight")
	C.Scoring.Contact = v.GetFloat64("scoring.contact")
	C.Scoring.CargoType = v.GetFloat64("scoring.cargo_type")
	C.Scoring.BodyType = v.GetFloat64("scoring.body_type")
	C.Scoring.RouteBonus = v.GetFloat64("scoring.route_bonus")
	C.Scoring.ContactBonus = v.GetFloat64("scoring.contact_bonus")

	C.Parser.ReviewEnabled = v.GetBool("parser.review_enabled")
	C.Parser.ReviewThreshold = v.GetFloat64("parser.review_threshold")
	C.Parser.BatchMaxMessages = v.GetInt("parser.batch_max_messages")

	// ENV overrides
	switch os.Getenv("REVIEW_QUEUE") {
	case "0":
		C.Parser.ReviewEnabled = false
	case "1":
		C.Parser.ReviewEnabled = true
	}

	return nil
}

// LoadScoring overlays C.Scoring from a standalone weights file. Keys
// absent from the file keep their current values, so a tuning file may
// carry only the weights it changes.
func LoadScoring(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	overlay := struct {
		Scoring ScoringCfg `yaml:"scoring"`
	}{Scoring: C.Scoring}
	if err := yaml.Unmarshal(b, &overlay); err != nil {
		return err
	}
	C.Scoring = overlay.Scoring
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("server.request_timeout_ms", 1500)

	v.SetDefault("mongo.url", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "freight_parser")

	v.SetDefault("redis.url", "redis://localhost:6379/0")
	v.SetDefault("redis.queue_key", "freight:parse:queue")

	v.SetDefault("meili.url", "http://localhost:7700")
	v.SetDefault("meili.master_key", "")
	v.SetDefault("meili.index_name", "places")
	v.SetDefault("meili.timeout_seconds", 30)

	v.SetDefault("cache.l1_size", 1000)
	v.SetDefault("cache.redis_ttl_hours", 24)
	v.SetDefault("cache.warmup_limit", 500)

	v.SetDefault("scoring.origin", 0.25)
	v.SetDefault("scoring.destination", 0.25)
	v.SetDefault("scoring.vehicle", 0.15)
	v.SetDefault("scoring.phone", 0.15)
	v.SetDefault("scoring.weight", 0.05)
	v.SetDefault("scoring.contact", 0.05)
	v.SetDefault("scoring.cargo_type", 0.05)
	v.SetDefault("scoring.body_type", 0.05)
	v.SetDefault("scoring.route_bonus", 0.10)
	v.SetDefault("scoring.contact_bonus", 0.05)

	v.SetDefault("parser.review_enabled", true)
	v.SetDefault("parser.review_threshold", 0.4)
	v.SetDefault("parser.batch_max_messages", 10000)
}

// RequestTimeout is the per-request parse deadline for the HTTP layer.
func RequestTimeout() time.Duration {
	ms := C.Server.RequestTimeoutMs
	if ms <= 0 {
		ms = 1500
	}
	return time.Duration(ms) * time.Millisecond
}
