package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "", cfg.Database.URL)
	assert.Equal(t, "log", cfg.Mail.Driver)
	assert.Equal(t, "sanaresoma.notifications", cfg.RabbitMQ.Queue)
	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, "UTC", cfg.Scheduler.Timezone)
	assert.Equal(t, "backups", cfg.Backup.Dir)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	yml := "server:\n  addr: \":9000\"\ndatabase:\n  url: postgres://file\nrabbitmq:\n  queue: from-file\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o600))

	t.Setenv("DATABASE_URL", "postgres://env")

	cfg, err := load(viper.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "postgres://env", cfg.Database.URL)
	assert.Equal(t, "from-file", cfg.RabbitMQ.Queue)
}

func TestLoad_RejectsUnknownMailDriver(t *testing.T) {
	t.Setenv("MAIL_DRIVER", "carrier-pigeon")

	_, err := load(viper.New(), t.TempDir())
	assert.Error(t, err)
}
