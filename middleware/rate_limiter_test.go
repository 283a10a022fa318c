package middleware

import (
	"testing"
	"time"
)

// TestTokenBucketBurst 测试桶容量内的请求全部放行，超出后拒绝
func TestTokenBucketBurst(t *testing.T) {
	tb := NewTokenBucket(1, 5)

	for i := 0; i < 5; i++ {
		if !tb.Allow() {
			t.Fatalf("第%d个请求应当放行", i+1)
		}
	}

	if tb.Allow() {
		t.Error("桶耗尽后的请求应当被拒绝")
	}
}

// TestTokenBucketRefill 测试令牌随时间补充
func TestTokenBucketRefill(t *testing.T) {
	tb := NewTokenBucket(100, 1)

	if !tb.Allow() {
		t.Fatal("首个请求应当放行")
	}
	if tb.Allow() {
		t.Fatal("桶耗尽后的请求应当被拒绝")
	}

	time.Sleep(50 * time.Millisecond)

	if !tb.Allow() {
		t.Error("补充令牌后的请求应当放行")
	}
}
