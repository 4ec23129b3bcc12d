package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvBool(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", "y"} {
		t.Setenv("TESTUTIL_FLAG", v)
		assert.True(t, envBool("TESTUTIL_FLAG"), v)
	}
	for _, v := range []string{"", "0", "no", "off"} {
		t.Setenv("TESTUTIL_FLAG", v)
		assert.False(t, envBool("TESTUTIL_FLAG"), v)
	}
}

func TestRedisDBOverride(t *testing.T) {
	t.Setenv("TEST_REDIS_DB", "7")
	i, ok := redisDBOverride(t)
	assert.True(t, ok)
	assert.Equal(t, 7, i)

	t.Setenv("TEST_REDIS_DB", "-1")
	_, ok = redisDBOverride(t)
	assert.False(t, ok)

	t.Setenv("TEST_REDIS_DB", "")
	_, ok = redisDBOverride(t)
	assert.False(t, ok)
}
