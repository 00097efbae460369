package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Log       LogConfig
	Mail      MailConfig
	AWS       AWSConfig
	RabbitMQ  RabbitMQConfig
	Scheduler SchedulerConfig
	Backup    BackupConfig
}

type ServerConfig struct {
	Addr string
}

type DatabaseConfig struct {
	// URL is a pgx connection string. Empty selects the in-memory repositories.
	URL string
}

type LogConfig struct {
	Level       string
	Format      string
	ElkURL      string
	ElkIndex    string
	LogstashURL string
}

type MailConfig struct {
	Driver string
	From   string
}

type AWSConfig struct {
	Region string
}

type RabbitMQConfig struct {
	// URL is an amqp:// URL. Empty runs notification tasks in-process.
	URL   string
	Queue string
}

type SchedulerConfig struct {
	Enabled  bool
	Timezone string
}

type BackupConfig struct {
	Dir string
}

var defaults = map[string]any{
	"server.addr":        ":8080",
	"log.level":          "info",
	"log.format":         "text",
	"log.elk.index":      "sanaresoma",
	"mail.driver":        "log",
	"mail.from":          "no-reply@sanaresoma.app",
	"aws.region":         "us-east-1",
	"rabbitmq.queue":     "sanaresoma.notifications",
	"scheduler.enabled":  true,
	"scheduler.timezone": "UTC",
	"backup.dir":         "backups",
}

// Load reads .env (if any), then config.yml from the working directory (if
// any); environment variables win over both. Keys map to env names by
// replacing "." with "_", so database.url is DATABASE_URL.
func Load() (Config, error) {
	_ = godotenv.Load()
	return load(viper.New(), ".")
}

func load(v *viper.Viper, dir string) (Config, error) {
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(dir)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Server: ServerConfig{Addr: v.GetString("server.addr")},
		Database: DatabaseConfig{
			URL: v.GetString("database.url"),
		},
		Log: LogConfig{
			Level:       v.GetString("log.level"),
			Format:      v.GetString("log.format"),
			ElkURL:      v.GetString("log.elk.url"),
			ElkIndex:    v.GetString("log.elk.index"),
			LogstashURL: v.GetString("log.logstash.url"),
		},
		Mail: MailConfig{
			Driver: strings.ToLower(v.GetString("mail.driver")),
			From:   v.GetString("mail.from"),
		},
		AWS: AWSConfig{Region: v.GetString("aws.region")},
		RabbitMQ: RabbitMQConfig{
			URL:   v.GetString("rabbitmq.url"),
			Queue: v.GetString("rabbitmq.queue"),
		},
		Scheduler: SchedulerConfig{
			Enabled:  v.GetBool("scheduler.enabled"),
			Timezone: v.GetString("scheduler.timezone"),
		},
		Backup: BackupConfig{Dir: v.GetString("backup.dir")},
	}

	if cfg.Mail.Driver != "log" && cfg.Mail.Driver != "ses" {
		return Config{}, fmt.Errorf("unsupported mail.driver %q", cfg.Mail.Driver)
	}
	return cfg, nil
}
