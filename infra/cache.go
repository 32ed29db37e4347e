package infra

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// NewUserCache はユーザー参照用のキャッシュ。期限切れの掃除は TTL の 2 倍ごと
func NewUserCache(ttl time.Duration) *cache.Cache {
	return cache.New(ttl, 2*ttl)
}
