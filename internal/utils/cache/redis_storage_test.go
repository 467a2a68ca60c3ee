package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRedisStorageEmptyKeys(t *testing.T) {
	// Nothing listens here; empty keys must short-circuit before touching the network.
	s := NewRedisStorage(NewRedisClient("127.0.0.1:1", ""), "limiter:")
	defer s.Close()

	val, err := s.Get("")
	assert.NoError(t, err)
	assert.Nil(t, val)

	assert.NoError(t, s.Set("", []byte("1"), time.Second))
	assert.NoError(t, s.Set("k", nil, time.Second))
	assert.NoError(t, s.Delete(""))
}

func TestRedisStorageUnreachable(t *testing.T) {
	s := NewRedisStorage(NewRedisClient("127.0.0.1:1", ""), "limiter:")
	defer s.Close()

	_, err := s.Get("key")
	assert.Error(t, err)
}
