package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/valentinobarber/site-api/internal/config"
)

func TestNewUploader_DisabledWithoutFullConfig(t *testing.T) {
	full := func() *config.Config {
		return &config.Config{
			S3Region:        "auto",
			S3Bucket:        "gallery",
			S3AccessKey:     "ak",
			S3SecretKey:     "sk",
			S3PublicBaseURL: "https://cdn.example.com",
		}
	}

	assert.True(t, NewUploader(full()).Enabled())

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"no access key", func(c *config.Config) { c.S3AccessKey = "" }},
		{"no secret key", func(c *config.Config) { c.S3SecretKey = "" }},
		{"no public base url", func(c *config.Config) { c.S3PublicBaseURL = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := full()
			tt.mutate(cfg)
			assert.False(t, NewUploader(cfg).Enabled())
		})
	}
}

func TestNewUploader_TrimsBaseURLSlash(t *testing.T) {
	cfg := &config.Config{
		S3AccessKey:     "ak",
		S3SecretKey:     "sk",
		S3Bucket:        "gallery",
		S3PublicBaseURL: "https://cdn.example.com/",
	}

	u := NewUploader(cfg)
	assert.Equal(t, "https://cdn.example.com", u.publicBaseURL)
}
