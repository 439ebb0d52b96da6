// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cache

import (
	"context"
	"time"

	"github.com/ecodeclub/ecache"
)

// SentCache 已发送标记, 只是数据库之前的快速路径
type SentCache interface {
	IsSent(ctx context.Context, key string) (bool, error)
	MarkSent(ctx context.Context, key string) error
}

type SentECache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewSentECache(ec ecache.Cache) SentCache {
	return &SentECache{
		ec: &ecache.NamespaceCache{
			Namespace: "notification:sent:",
			C:         ec,
		},
		expiration: time.Hour * 24 * 30,
	}
}

func (c *SentECache) IsSent(ctx context.Context, key string) (bool, error) {
	val := c.ec.Get(ctx, key)
	if val.KeyNotFound() {
		return false, nil
	}
	if val.Err != nil {
		return false, val.Err
	}
	return true, nil
}

func (c *SentECache) MarkSent(ctx context.Context, key string) error {
	return c.ec.Set(ctx, key, "1", c.expiration)
}
