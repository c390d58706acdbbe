package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load(t *testing.T) {
	t.Run("default load", func(t *testing.T) {
		// given
		expectedConfig := getDefaultAppConfig()

		// when
		actualConfig, err := Load()
		require.NoError(t, err, "error loading config")

		// then
		assert.Equal(t, expectedConfig, actualConfig)
	})

	t.Run("partial file override", func(t *testing.T) {
		// given
		expectedConfig := getDefaultAppConfig()

		// when
		actualConfig, err := Load("./test_files/")
		require.NoError(t, err, "error loading config")

		// then
		// verify not overridden default values
		assert.Equal(t, expectedConfig.API.Address, actualConfig.API.Address)
		assert.Equal(t, expectedConfig.Node.User, actualConfig.Node.User)
		assert.Equal(t, expectedConfig.Node.Password, actualConfig.Node.Password)

		// verify correct override
		assert.Equal(t, "DEBUG", actualConfig.LogLevel)
		assert.Equal(t, "tint", actualConfig.LogFormat)
		assert.Equal(t, "signet", actualConfig.Network)
		assert.Equal(t, "bitcoin-1", actualConfig.Node.Host)
		assert.Equal(t, 38442, actualConfig.Node.Port)
		assert.NotNil(t, actualConfig.Tracing)
		assert.Equal(t, "http://tracing:4317", actualConfig.Tracing.DialAddr)
	})

	t.Run("environment override", func(t *testing.T) {
		// given
		t.Setenv("TXRELAY_NETWORK", "testnet")
		t.Setenv("TXRELAY_NODE_HOST", "bitcoin-2")
		t.Setenv("TXRELAY_API_ADDRESS", "0.0.0.0:5558")

		// when
		actualConfig, err := Load()
		require.NoError(t, err, "error loading config")

		// then
		assert.Equal(t, "testnet", actualConfig.Network)
		assert.Equal(t, "bitcoin-2", actualConfig.Node.Host)
		assert.Equal(t, "0.0.0.0:5558", actualConfig.API.Address)
	})

	t.Run("non-existent config dir", func(t *testing.T) {
		// when
		_, err := Load("./no_such_dir/")

		// then
		require.ErrorIs(t, err, ErrConfigPath)
	})
}
