package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	conf, err := Load()
	require.NoError(t, err)

	assert.Contains(t, conf.DataDir, ".studylog")
	assert.Equal(t, "warn", conf.LogLevel)
	assert.Equal(t, 7, conf.RetentionDays)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Setenv("STUDYLOG_DATA_DIR", dir)
	t.Setenv("STUDYLOG_LOG_LEVEL", "debug")
	t.Setenv("STUDYLOG_RETENTION_DAYS", "14")

	conf, err := Load()
	require.NoError(t, err)

	assert.Equal(t, dir, conf.DataDir)
	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, 14, conf.RetentionDays)
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STUDYLOG_LOG_LEVEL", "loud")

	_, err := Load()
	assert.Error(t, err)
}

func TestStorePathAndRetention(t *testing.T) {
	conf := &Config{DataDir: "/tmp/studylog-test", RetentionDays: 7}
	assert.Equal(t, filepath.Join("/tmp/studylog-test", "studylog.db"), conf.StorePath())
	assert.Equal(t, 7*24*time.Hour, conf.Retention())
}
