package limiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// sweepInterval 两次闲置回收之间的最小间隔
	sweepInterval = 5 * time.Minute
	// bucketIdleTTL 令牌桶闲置多久后被回收
	bucketIdleTTL = 10 * time.Minute
)

// AttemptLimiter 按键值划分的令牌桶限流器
type AttemptLimiter interface {
	Allow(token string, r float64, burst int) bool
}

// NewAttemptLimiter 创建新的限流器
func NewAttemptLimiter() AttemptLimiter {
	return &multipleBucketLimiter{
		buckets:   make(map[string]*tokenBucket),
		lastSweep: time.Now(),
	}
}

// tokenBucket 单个键值的令牌桶及其最近使用时间
type tokenBucket struct {
	limiter  *rate.Limiter
	lastUsed time.Time
}

// multipleBucketLimiter 支持多个令牌桶的限流器
// 键值来自请求方，桶闲置超时后回收，防止数量无限增长
type multipleBucketLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*tokenBucket
	lastSweep time.Time
}

// Allow 返回给定键值的请求是否被放行，若桶不存在或限速变更则新建
func (m *multipleBucketLimiter) Allow(token string, r float64, burst int) bool {
	now := time.Now()

	m.mu.Lock()
	if now.Sub(m.lastSweep) > sweepInterval {
		m.sweep(now)
	}

	bucket, ok := m.buckets[token]
	if !ok || float64(bucket.limiter.Limit()) != r || bucket.limiter.Burst() != burst {
		bucket = &tokenBucket{limiter: rate.NewLimiter(rate.Limit(r), burst)}
		m.buckets[token] = bucket
	}
	bucket.lastUsed = now
	m.mu.Unlock()

	return bucket.limiter.Allow()
}

// sweep 回收闲置超时的令牌桶，调用前需持有锁
func (m *multipleBucketLimiter) sweep(now time.Time) {
	for token, bucket := range m.buckets {
		if now.Sub(bucket.lastUsed) > bucketIdleTTL {
			delete(m.buckets, token)
		}
	}
	m.lastSweep = now
}
