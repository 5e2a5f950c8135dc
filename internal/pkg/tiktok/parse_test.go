package tiktok

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const rehydrationHTML = `<!DOCTYPE html><html><head><title>creator</title></head><body>
<script id="__UNIVERSAL_DATA_FOR_REHYDRATION__" type="application/json">{"__DEFAULT_SCOPE__":{"webapp.user-detail":{"userInfo":{"user":{"uniqueId":"creator_one","nickname":"Creator One","avatarLarger":"https://cdn.example.com/avatar-large.jpg","avatarThumb":"https://cdn.example.com/avatar-thumb.jpg"},"stats":{"followerCount":4321,"heartCount":98765,"videoCount":42}}}}}</script>
</body></html>`

const legacyHeartHTML = `<html><body>
<script id="__UNIVERSAL_DATA_FOR_REHYDRATION__" type="application/json">{"__DEFAULT_SCOPE__":{"webapp.user-detail":{"userInfo":{"user":{"uniqueId":"old_schema"},"stats":{"followerCount":100,"heart":5000,"videoCount":7}}}}}</script>
</body></html>`

const regexFallbackHTML = `<html><body>
<script>window.__INIT__ = {"userModule":{"stats":{"followerCount": 1500,"heartCount": 30000,"videoCount": 11},"user":{"nickname": "Fallback Creator"}}}</script>
</body></html>`

func TestParseProfileHTMLRehydration(t *testing.T) {
	stats, err := ParseProfileHTML(rehydrationHTML, "creator_one")
	require.NoError(t, err)
	require.Equal(t, "creator_one", stats.Username)
	require.Equal(t, "Creator One", stats.Nickname)
	require.Equal(t, 4321, stats.Followers)
	require.Equal(t, 98765, stats.Likes)
	require.Equal(t, 42, stats.Videos)
	require.NotNil(t, stats.Avatar)
	require.Equal(t, "https://cdn.example.com/avatar-large.jpg", *stats.Avatar)
}

func TestParseProfileHTMLLegacyHeartField(t *testing.T) {
	stats, err := ParseProfileHTML(legacyHeartHTML, "old_schema")
	require.NoError(t, err)
	require.Equal(t, 5000, stats.Likes)
	require.Equal(t, "old_schema", stats.Nickname)
	require.Nil(t, stats.Avatar)
}

func TestParseProfileHTMLRegexFallback(t *testing.T) {
	stats, err := ParseProfileHTML(regexFallbackHTML, "someone")
	require.NoError(t, err)
	require.Equal(t, "someone", stats.Username)
	require.Equal(t, "Fallback Creator", stats.Nickname)
	require.Equal(t, 1500, stats.Followers)
	require.Equal(t, 30000, stats.Likes)
	require.Equal(t, 11, stats.Videos)
}

func TestParseProfileHTMLUnparseable(t *testing.T) {
	_, err := ParseProfileHTML("<html><body>nothing here</body></html>", "ghost")
	require.ErrorIs(t, err, ErrProfileParse)
}

func TestCleanUsername(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "@handle", want: "handle"},
		{in: "  @handle  ", want: "handle"},
		{in: "handle", want: "handle"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, CleanUsername(tt.in))
	}
}
