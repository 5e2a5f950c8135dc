package gamify

// NewlyQualified 本轮达标集合减去已解锁集合，保持输入顺序。
// 解锁是单向棘轮：数据回落也不回收，落库去重由调用方保证。
func NewlyQualified(qualifying []string, unlocked []string) []string {
	unlockedSet := make(map[string]struct{}, len(unlocked))
	for _, id := range unlocked {
		unlockedSet[id] = struct{}{}
	}

	newIDs := make([]string, 0)
	for _, id := range qualifying {
		if _, ok := unlockedSet[id]; !ok {
			newIDs = append(newIDs, id)
		}
	}

	return newIDs
}
