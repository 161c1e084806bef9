package util

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitURLNilLimiterAdmits(t *testing.T) {
	var hl *HostLimiter
	assert.NoError(t, hl.WaitURL(context.Background(), "https://example.com/jobs"))
}

func TestWaitURLAdmitsWithinBurst(t *testing.T) {
	hl := NewHostLimiter(1, 3)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := 0; i < 3; i++ {
		require.NoError(t, hl.WaitURL(ctx, "https://example.com/jobs"))
	}
}

func TestWaitURLSeparateBucketsPerHost(t *testing.T) {
	hl := NewHostLimiter(1, 1)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// One token per host; two hosts consume theirs independently.
	require.NoError(t, hl.WaitURL(ctx, "https://a.example/jobs"))
	require.NoError(t, hl.WaitURL(ctx, "https://b.example/jobs"))
}

func TestWaitURLHonorsContext(t *testing.T) {
	hl := NewHostLimiter(0.001, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	require.NoError(t, hl.WaitURL(ctx, "https://example.com/jobs"))
	assert.Error(t, hl.WaitURL(ctx, "https://example.com/jobs"))
}
