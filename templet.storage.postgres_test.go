package templet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostgresStorage_BadConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  PostgresConfig
		wantMsg string
	}{
		{
			name:    "empty connection string",
			config:  PostgresConfig{},
			wantMsg: ErrMsgPostgresEmptyConnString,
		},
		{
			name: "unreachable server",
			config: PostgresConfig{
				ConnectionString: "invalid://not-a-valid-connection-string",
				QueryTimeout:     2 * time.Second,
			},
			wantMsg: ErrMsgPostgresConnectionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, err := NewPostgresStorage(tt.config)
			require.Error(t, err)
			assert.Nil(t, storage)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestPostgresConfig_WithDefaults(t *testing.T) {
	t.Run("zero values are filled", func(t *testing.T) {
		cfg := PostgresConfig{ConnectionString: "postgres://localhost/test?sslmode=disable"}.withDefaults()

		assert.Equal(t, PostgresDefaultMaxOpenConns, cfg.MaxOpenConns)
		assert.Equal(t, PostgresDefaultMaxIdleConns, cfg.MaxIdleConns)
		assert.Equal(t, PostgresDefaultConnMaxLifetime, cfg.ConnMaxLifetime)
		assert.Equal(t, PostgresDefaultConnMaxIdleTime, cfg.ConnMaxIdleTime)
		assert.Equal(t, PostgresDefaultQueryTimeout, cfg.QueryTimeout)
	})

	t.Run("explicit values survive", func(t *testing.T) {
		cfg := PostgresConfig{
			ConnectionString: "postgres://localhost/test?sslmode=disable",
			MaxOpenConns:     3,
			QueryTimeout:     time.Second,
		}.withDefaults()

		assert.Equal(t, 3, cfg.MaxOpenConns)
		assert.Equal(t, time.Second, cfg.QueryTimeout)
		assert.Equal(t, PostgresDefaultMaxIdleConns, cfg.MaxIdleConns)
	})
}
