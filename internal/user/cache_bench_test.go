package user

import (
	"testing"
	"time"

	"github.com/osse101/CharacterCreator_Go/internal/domain"
)

func BenchmarkUserCache_GetHit(b *testing.B) {
	c := newUserCache(CacheConfig{Size: 1024, TTL: time.Hour})
	c.Set(&domain.User{ID: 1, Username: "alice", Roles: []string{domain.RoleUser, domain.RoleAdmin}})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := c.Get(1); !ok {
			b.Fatal("expected cache hit")
		}
	}
}

func BenchmarkUserCache_Parallel(b *testing.B) {
	c := newUserCache(CacheConfig{Size: 1024, TTL: time.Hour})
	for id := int64(1); id <= 256; id++ {
		c.Set(&domain.User{ID: id, Username: "user", Roles: []string{domain.RoleUser}})
	}

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		var id int64
		for pb.Next() {
			id = id%512 + 1
			if _, ok := c.Get(id); !ok {
				c.Set(&domain.User{ID: id, Username: "user"})
			}
		}
	})
}
