package customdict

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDict(t *testing.T, key string) (*CustomDict, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, key), mr
}

func TestCustomDict_AddAllRemove(t *testing.T) {
	ctx := context.Background()
	cd, mr := newDict(t, "")

	require.NoError(t, cd.Add(ctx, "Kubernetes"))
	require.NoError(t, cd.Add(ctx, "grpc"))
	require.NoError(t, cd.Add(ctx, "grpc"))

	words, err := cd.All(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"kubernetes", "grpc"}, words)

	ok, err := mr.SIsMember(DefaultKey, "kubernetes")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, cd.Remove(ctx, "KUBERNETES"))
	words, err = cd.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"grpc"}, words)
}

func TestCustomDict_customKey(t *testing.T) {
	ctx := context.Background()
	cd, mr := newDict(t, "txtclean:words")

	require.NoError(t, cd.Add(ctx, "golang"))
	assert.True(t, mr.Exists("txtclean:words"))
	assert.False(t, mr.Exists(DefaultKey))
}

func TestCustomDict_emptySet(t *testing.T) {
	cd, _ := newDict(t, "")
	words, err := cd.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestCustomDict_unreachable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	client := redis.NewClient(&redis.Options{Addr: addr, MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	err = New(client, "").Add(context.Background(), "word")
	assert.Error(t, err)
}
