package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfiguration(t *testing.T) {
	t.Run(`AllowedOrigins check`, func(t *testing.T) {
		conf := new(Configuration)
		require.Empty(t, conf.AllowedOrigins())

		conf.App.CorsOrigins = " https://a.example.com, ,https://b.example.com ,"
		require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, conf.AllowedOrigins())
	})

	t.Run(`TrustProxyEnabled check`, func(t *testing.T) {
		conf := new(Configuration)
		conf.App.Environment = "development"
		require.False(t, conf.TrustProxyEnabled())

		enabled := true
		conf.App.TrustProxy = &enabled
		require.True(t, conf.TrustProxyEnabled())

		disabled := false
		conf.App.TrustProxy = &disabled
		conf.App.Environment = EnvProduction
		require.True(t, conf.TrustProxyEnabled())
		require.True(t, conf.IsProduction())
	})
}
