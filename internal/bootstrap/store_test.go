package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamsynchub/pkg/config"
)

func TestOpenStore_Memory(t *testing.T) {
	store, err := OpenStore(context.Background(), &config.Config{StoreDriver: config.StoreDriverMemory})
	require.NoError(t, err)
	defer store.Close()

	assert.NotNil(t, store.Repositories.Users)
	assert.NotNil(t, store.Repositories.Topics)
	assert.NotNil(t, store.Repositories.SalesRecords)
	assert.NotNil(t, store.Repositories.Shipments)
	assert.NotNil(t, store.Repositories.Seeder)
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	_, err := OpenStore(context.Background(), &config.Config{StoreDriver: "postgres"})
	assert.Error(t, err)
}
