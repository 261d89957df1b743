package importer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeRegistryDeduplicatesQuoteVariants(t *testing.T) {
	store := newFakeStore()
	reg := NewSizeRegistry(store, 1)
	ctx := context.Background()

	a, err := reg.Resolve(ctx, `10"`)
	require.NoError(t, err)
	b, err := reg.Resolve(ctx, "10''")
	require.NoError(t, err)
	c, err := reg.Resolve(ctx, "10")
	require.NoError(t, err)

	require.NotNil(t, a)
	assert.Equal(t, *a, *b)
	assert.Equal(t, *a, *c)
	assert.Len(t, store.sizes, 1)
	assert.Equal(t, "10", store.sizes[0].code)
	assert.Equal(t, "10", store.sizes[0].name)
}

func TestSizeRegistryTrimsLabels(t *testing.T) {
	store := newFakeStore()
	reg := NewSizeRegistry(store, 1)

	id, err := reg.Resolve(context.Background(), ` 12" `)
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, "12", store.sizes[0].code)
}

func TestSizeRegistryBlankLabel(t *testing.T) {
	store := newFakeStore()
	reg := NewSizeRegistry(store, 1)

	id, err := reg.Resolve(context.Background(), `""''`)
	require.NoError(t, err)
	assert.Nil(t, id)
	assert.Empty(t, store.sizes)
}
