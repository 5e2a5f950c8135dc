package tiktok

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/goccy/go-json"
)

// 页面内嵌 JSON 的脚本标签 id
const rehydrationScriptID = "__UNIVERSAL_DATA_FOR_REHYDRATION__"

type universalData struct {
	DefaultScope struct {
		UserDetail struct {
			UserInfo struct {
				User struct {
					UniqueID     string `json:"uniqueId"`
					Nickname     string `json:"nickname"`
					AvatarLarger string `json:"avatarLarger"`
					AvatarMedium string `json:"avatarMedium"`
					AvatarThumb  string `json:"avatarThumb"`
				} `json:"user"`
				Stats struct {
					FollowerCount int `json:"followerCount"`
					HeartCount    int `json:"heartCount"`
					Heart         int `json:"heart"`
					VideoCount    int `json:"videoCount"`
				} `json:"stats"`
			} `json:"userInfo"`
		} `json:"webapp.user-detail"`
	} `json:"__DEFAULT_SCOPE__"`
}

var (
	followerRegex = regexp.MustCompile(`"followerCount"\s*:\s*(\d+)`)
	heartCntRegex = regexp.MustCompile(`"heartCount"\s*:\s*(\d+)`)
	heartRegex    = regexp.MustCompile(`"heart"\s*:\s*(\d+)`)
	videoRegex    = regexp.MustCompile(`"videoCount"\s*:\s*(\d+)`)
	nicknameRegex = regexp.MustCompile(`"nickname"\s*:\s*"([^"]+)"`)
)

// ParseProfileHTML 优先解析内嵌 JSON，失败时退化为正则提取
func ParseProfileHTML(html string, cleanUsername string) (*ProfileStats, error) {
	if stats := parseRehydrationData(html, cleanUsername); stats != nil {
		return stats, nil
	}

	if stats := parseByRegex(html, cleanUsername); stats != nil {
		return stats, nil
	}

	return nil, ErrProfileParse
}

func parseRehydrationData(html string, cleanUsername string) *ProfileStats {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	raw := doc.Find("script#" + rehydrationScriptID).Text()
	if raw == "" {
		return nil
	}

	var data universalData
	if err = json.Unmarshal([]byte(raw), &data); err != nil {
		return nil
	}

	info := data.DefaultScope.UserDetail.UserInfo
	if info.User.UniqueID == "" {
		return nil
	}

	likes := info.Stats.HeartCount
	if likes == 0 {
		likes = info.Stats.Heart
	}

	stats := &ProfileStats{
		Username:  info.User.UniqueID,
		Nickname:  info.User.Nickname,
		Followers: info.Stats.FollowerCount,
		Likes:     likes,
		Videos:    info.Stats.VideoCount,
	}
	if stats.Nickname == "" {
		stats.Nickname = cleanUsername
	}

	for _, avatar := range []string{info.User.AvatarLarger, info.User.AvatarMedium, info.User.AvatarThumb} {
		if avatar != "" {
			stats.Avatar = &avatar
			break
		}
	}

	return stats
}

func parseByRegex(html string, cleanUsername string) *ProfileStats {
	followerMatch := followerRegex.FindStringSubmatch(html)
	if followerMatch == nil {
		return nil
	}

	stats := &ProfileStats{
		Username:  cleanUsername,
		Nickname:  cleanUsername,
		Followers: mustAtoi(followerMatch[1]),
	}

	if m := heartCntRegex.FindStringSubmatch(html); m != nil {
		stats.Likes = mustAtoi(m[1])
	} else if m = heartRegex.FindStringSubmatch(html); m != nil {
		stats.Likes = mustAtoi(m[1])
	}

	if m := videoRegex.FindStringSubmatch(html); m != nil {
		stats.Videos = mustAtoi(m[1])
	}

	if m := nicknameRegex.FindStringSubmatch(html); m != nil {
		stats.Nickname = m[1]
	}

	return stats
}

func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
