package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("KAFKA_TOPIC", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "event-notifications", cfg.KafkaTopic)
	assert.Equal(t, 100, cfg.RateLimitPerMinute)
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "30")

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 30, cfg.RateLimitPerMinute)
}

func TestUseMemoryStore(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"explicit memory", Config{Store: "memory", DBHost: "db"}, true},
		{"explicit postgres", Config{Store: "postgres"}, false},
		{"no db config", Config{}, true},
		{"db host set", Config{DBHost: "db"}, false},
		{"database url set", Config{DatabaseURL: "postgres://localhost/events"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.cfg.UseMemoryStore())
		})
	}
}
