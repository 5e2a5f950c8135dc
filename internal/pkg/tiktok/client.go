package tiktok

import (
	"context"
	"strings"
	"time"

	"Hypeboard/internal/api/config"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// ProfileStats 抓取并归一化后的公开主页数据
type ProfileStats struct {
	Username  string  `json:"username"`
	Nickname  string  `json:"nickname"`
	Avatar    *string `json:"avatar"`
	Followers int     `json:"followers"`
	Likes     int     `json:"likes"`
	Videos    int     `json:"videos"`
}

var (
	ErrProfileFetch = errors.New("无法访问主页，账号可能不存在")
	ErrProfileParse = errors.New("主页解析失败，账号可能是私密账号")
)

type Client struct {
	http    *resty.Client
	baseURL string
}

func NewClient(cfg config.TikTokConfig) *Client {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8").
		SetHeader("Accept-Language", "en-US,en;q=0.5")

	return &Client{
		http:    client,
		baseURL: cfg.BaseURL,
	}
}

// FetchProfile 抓取公开主页并解析出统计数据
func (s *Client) FetchProfile(ctx context.Context, username string) (*ProfileStats, error) {
	cleanUsername := CleanUsername(username)

	resp, err := s.http.R().
		SetContext(ctx).
		Get(s.baseURL + "/@" + cleanUsername)
	if err != nil {
		return nil, errors.Wrap(err, "fetch profile page")
	}

	if resp.StatusCode() != 200 {
		return nil, ErrProfileFetch
	}

	return ParseProfileHTML(resp.String(), cleanUsername)
}

// CleanUsername 去掉前导 @ 和空白
func CleanUsername(username string) string {
	return strings.TrimPrefix(strings.TrimSpace(username), "@")
}
