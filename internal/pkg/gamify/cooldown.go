package gamify

import "time"

// CooldownRemaining 刷新冷却的纯判定：返回还需等待的时长，0 表示可以刷新。
// lastRun 为零值（从未刷新过）时总是放行。这只是建议性限流，
// 并发抢跑导致的重复刷新结果幂等，由存储层的去重约束兜底。
func CooldownRemaining(now, lastRun time.Time, cooldown time.Duration) time.Duration {
	if lastRun.IsZero() {
		return 0
	}

	elapsed := now.Sub(lastRun)
	if elapsed >= cooldown {
		return 0
	}

	return cooldown - elapsed
}
