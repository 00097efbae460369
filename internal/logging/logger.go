package logging

import (
	"io"
	"net"
	"os"

	logrustash "github.com/bshuster-repo/logrus-logstash-hook"
	"github.com/elastic/go-elasticsearch/v7"
	"github.com/sirupsen/logrus"
	"gopkg.in/go-extras/elogrus.v7"

	"github.com/sanaresoma/sanaresoma-backend/internal/config"
)

const timestampFormat = "2006-01-02 15:04:05"

// New builds the process logger. service tags every entry shipped to
// Elasticsearch or Logstash so the API and the worker can be told apart.
func New(cfg config.LogConfig, service string) *logrus.Logger {
	return newLogger(cfg, service, os.Stdout)
}

func newLogger(cfg config.LogConfig, service string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.Out = out

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: timestampFormat})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: timestampFormat,
			FullTimestamp:   true,
		})
	}

	if cfg.ElkURL != "" {
		client, err := elasticsearch.NewClient(elasticsearch.Config{
			Addresses: []string{cfg.ElkURL},
		})
		if err != nil {
			logger.WithError(err).Warn("elasticsearch client unavailable")
		} else if hook, err := elogrus.NewAsyncElasticHook(client, service, level, cfg.ElkIndex); err != nil {
			logger.WithError(err).Warn("elasticsearch hook unavailable")
		} else {
			logger.Hooks.Add(hook)
		}
	}

	if cfg.LogstashURL != "" {
		conn, err := net.Dial("udp", cfg.LogstashURL)
		if err != nil {
			logger.WithError(err).Warn("logstash unreachable")
		} else {
			hook := logrustash.New(conn, logrustash.DefaultFormatter(logrus.Fields{"type": service}))
			logger.Hooks.Add(hook)
		}
	}

	return logger
}
