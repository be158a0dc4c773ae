package limiter

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAttemptLimiter_Allow(t *testing.T) {
	asserts := assert.New(t)
	l := NewAttemptLimiter()

	// 桶容量内的请求全部放行
	for i := 0; i < 3; i++ {
		asserts.True(l.Allow("share_1", 0.1, 3))
	}

	// 超出后被拒绝
	asserts.False(l.Allow("share_1", 0.1, 3))

	// 不同键值互不影响
	asserts.True(l.Allow("share_2", 0.1, 3))
}

func TestAttemptLimiter_SweepIdleBuckets(t *testing.T) {
	asserts := assert.New(t)
	l := NewAttemptLimiter().(*multipleBucketLimiter)

	// 大量不同键值产生大量桶
	for i := 0; i < 1000; i++ {
		l.Allow(fmt.Sprintf("share|10.0.%d.%d", i/256, i%256), 0.1, 3)
	}
	asserts.Len(l.buckets, 1000)

	// 闲置超时的桶在下次请求时被回收
	past := time.Now().Add(-2 * bucketIdleTTL)
	l.mu.Lock()
	for _, bucket := range l.buckets {
		bucket.lastUsed = past
	}
	l.lastSweep = past
	l.mu.Unlock()

	l.Allow("share|10.1.0.1", 0.1, 3)
	asserts.Len(l.buckets, 1)

	// 活跃的桶不被回收
	l.mu.Lock()
	l.lastSweep = past
	l.mu.Unlock()
	l.Allow("share|10.1.0.1", 0.1, 3)
	asserts.Len(l.buckets, 1)
}
