package testioc

import (
	"sync"

	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

var (
	cache         ecache.Cache
	cacheInitOnce sync.Once
)

// InitCache 测试数据放在单独的命名空间下, 不会污染本地开发数据
func InitCache() ecache.Cache {
	cacheInitOnce.Do(func() {
		if err := loadConfig(); err != nil {
			panic(err)
		}
		addr := econf.GetString("redis.addr")
		if addr == "" {
			addr = "localhost:6379"
		}
		cache = &ecache.NamespaceCache{
			C:         eredis.NewCache(redis.NewClient(&redis.Options{Addr: addr})),
			Namespace: "commande_test:",
		}
	})
	return cache
}
