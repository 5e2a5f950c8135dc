package gamify

import "github.com/goccy/go-json"

// Category 成就分类的封闭枚举，新增分类必须同步修改 evaluate.go 的分支
type Category uint8

const (
	CategoryFollowers Category = iota
	CategoryLikes
	CategoryVideos
	CategoryViews
	CategoryRatio
	CategoryGrowthDaily
	CategoryGrowthWeekly
	CategoryPosition
)

func (c Category) String() string {
	switch c {
	case CategoryFollowers:
		return "followers"
	case CategoryLikes:
		return "likes"
	case CategoryVideos:
		return "videos"
	case CategoryViews:
		return "views"
	case CategoryRatio:
		return "ratio"
	case CategoryGrowthDaily:
		return "growth_daily"
	case CategoryGrowthWeekly:
		return "growth_weekly"
	case CategoryPosition:
		return "position"
	}
	return "unknown"
}

func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

type AchievementDefinition struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Category    Category `json:"category"`
	Threshold   int      `json:"threshold"`
	XPReward    int      `json:"xpReward"`
}

// Achievements 成就目录，运行期不可变
var Achievements = []AchievementDefinition{
	// 粉丝数
	{ID: "followers_100", Name: "First Steps", Description: "Reach 100 followers", Icon: "👣", Category: CategoryFollowers, Threshold: 100, XPReward: 500},
	{ID: "followers_500", Name: "Getting Traction", Description: "Reach 500 followers", Icon: "📈", Category: CategoryFollowers, Threshold: 500, XPReward: 1000},
	{ID: "followers_1k", Name: "Thousand Club", Description: "Reach 1,000 followers", Icon: "🎯", Category: CategoryFollowers, Threshold: 1000, XPReward: 2000},
	{ID: "followers_5k", Name: "Rising Star", Description: "Reach 5,000 followers", Icon: "⭐", Category: CategoryFollowers, Threshold: 5000, XPReward: 5000},
	{ID: "followers_10k", Name: "The Goal", Description: "Reach 10,000 followers", Icon: "🏆", Category: CategoryFollowers, Threshold: 10000, XPReward: 10000},

	// 获赞数
	{ID: "likes_10k", Name: "Heart Collector", Description: "Reach 10,000 total likes", Icon: "❤️", Category: CategoryLikes, Threshold: 10000, XPReward: 2000},
	{ID: "likes_100k", Name: "Love Magnet", Description: "Reach 100,000 total likes", Icon: "💕", Category: CategoryLikes, Threshold: 100000, XPReward: 5000},
	{ID: "likes_1m", Name: "Million Hearts", Description: "Reach 1,000,000 total likes", Icon: "💖", Category: CategoryLikes, Threshold: 1000000, XPReward: 10000},

	// 作品数
	{ID: "videos_10", Name: "Content Machine", Description: "Post 10 videos", Icon: "🎬", Category: CategoryVideos, Threshold: 10, XPReward: 1000},
	{ID: "videos_50", Name: "Prolific Creator", Description: "Post 50 videos", Icon: "🎥", Category: CategoryVideos, Threshold: 50, XPReward: 5000},

	// 单条最高播放
	{ID: "views_100k", Name: "Viral Moment", Description: "Get a video with 100K+ views", Icon: "🔥", Category: CategoryViews, Threshold: 100000, XPReward: 3000},
	{ID: "views_1m", Name: "Million Club", Description: "Get a video with 1M+ views", Icon: "🚀", Category: CategoryViews, Threshold: 1000000, XPReward: 10000},
	{ID: "views_10m", Name: "Internet Famous", Description: "Get a video with 10M+ views", Icon: "👑", Category: CategoryViews, Threshold: 10000000, XPReward: 25000},

	// 赞播比
	{ID: "ratio_100", Name: "Crowd Pleaser", Description: "Average 100 likes per video", Icon: "💯", Category: CategoryRatio, Threshold: 100, XPReward: 2000},
	{ID: "ratio_500", Name: "Engagement Magnet", Description: "Average 500 likes per video", Icon: "🧲", Category: CategoryRatio, Threshold: 500, XPReward: 5000},

	// 涨粉速度
	{ID: "growth_daily_100", Name: "On Fire", Description: "Gain 100 followers in a day", Icon: "⚡", Category: CategoryGrowthDaily, Threshold: 100, XPReward: 2000},
	{ID: "growth_weekly_500", Name: "Momentum", Description: "Gain 500 followers in a week", Icon: "🌊", Category: CategoryGrowthWeekly, Threshold: 500, XPReward: 5000},

	// 榜单名次
	{ID: "position_1", Name: "Top Dog", Description: "Hold 1st place on the leaderboard", Icon: "🥇", Category: CategoryPosition, Threshold: 1, XPReward: 5000},
	{ID: "position_top3", Name: "Podium Finish", Description: "Hold a top 3 spot on the leaderboard", Icon: "🏅", Category: CategoryPosition, Threshold: 3, XPReward: 2500},
}

var achievementIndex = func() map[string]AchievementDefinition {
	index := make(map[string]AchievementDefinition, len(Achievements))
	for _, a := range Achievements {
		index[a.ID] = a
	}
	return index
}()

// FindAchievement 按 id 查找成就定义
func FindAchievement(id string) (AchievementDefinition, bool) {
	a, ok := achievementIndex[id]
	return a, ok
}

// AchievementOrdinal 返回成就在目录里的序号（1 起始），未知 id 返回 0。
// 每个成就唯一，可用作按人去重的数值键
func AchievementOrdinal(id string) int {
	for i, a := range Achievements {
		if a.ID == id {
			return i + 1
		}
	}
	return 0
}
