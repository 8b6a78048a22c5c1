package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/lending-service/lending/config"
)

func TestStorageOverride(t *testing.T) {
	t.Parallel()
	require.Empty(t, storageOverride(""))

	cfg := &config.Config{Lending: config.Lending{Storage: config.StoragePostgres}}
	for _, op := range storageOverride("memory") {
		op(cfg)
	}
	require.Equal(t, config.StorageMemory, cfg.Lending.Storage)
}

func TestServeCmdStorageFlag(t *testing.T) {
	t.Parallel()
	cmd := serveCmd()
	require.NoError(t, cmd.Flags().Set("storage", "memory"))
	v, err := cmd.Flags().GetString("storage")
	require.NoError(t, err)
	require.Equal(t, "memory", v)
}
