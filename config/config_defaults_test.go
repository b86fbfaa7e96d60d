package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults_FillsUnsetValues(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultSessionCookieName, cfg.Session.CookieName)
	assert.Equal(t, defaultSessionTTL, cfg.Session.TTL)
	assert.Equal(t, defaultSessionLoadingWait, cfg.Session.LoadingWait)
	assert.Equal(t, defaultSessionIdleTimeout/2, cfg.Session.SweepEvery)
	assert.Equal(t, StoreDriverFirestore, cfg.Store.Driver)
	assert.Equal(t, MediaDriverCloudinary, cfg.Media.Driver)
	assert.Equal(t, defaultUploadTimeout, cfg.Upload.Timeout)
	assert.Nil(t, cfg.Cloudinary, "cloudinary settings have no defaults")
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{}
	cfg.Session.LoadingWait = -1
	cfg.Store.Driver = StoreDriverPostgres
	cfg.Upload.Timeout = 5 * time.Second

	applyDefaults(cfg)

	assert.Zero(t, cfg.Session.LoadingWait, "negative wait disables waiting")
	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, 5*time.Second, cfg.Upload.Timeout)
}
