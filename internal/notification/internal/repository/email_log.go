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

package repository

import (
	"context"
	"errors"

	"github.com/gotomicro/ego/core/elog"
	"github.com/noahrognon/commande-appli/internal/notification/internal/domain"
	"github.com/noahrognon/commande-appli/internal/notification/internal/repository/cache"
	"github.com/noahrognon/commande-appli/internal/notification/internal/repository/dao"
)

var ErrDuplicatedEmailLog = dao.ErrDuplicatedEmailLog

//go:generate mockgen -source=./email_log.go -package=repomocks -destination=./mocks/email_log.mock.go EmailLogRepository
type EmailLogRepository interface {
	// IsSent 先查缓存再查数据库
	IsSent(ctx context.Context, key domain.Key) (bool, error)
	// Record 唯一索引冲突时返回 ErrDuplicatedEmailLog
	Record(ctx context.Context, key domain.Key, orderId int64) error
}

type CachedEmailLogRepository struct {
	dao    dao.EmailLogDAO
	cache  cache.SentCache
	logger *elog.Component
}

func NewCachedEmailLogRepository(d dao.EmailLogDAO, c cache.SentCache) EmailLogRepository {
	return &CachedEmailLogRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedEmailLogRepository) IsSent(ctx context.Context, key domain.Key) (bool, error) {
	sent, err := repo.cache.IsSent(ctx, key.String())
	if err == nil && sent {
		return true, nil
	}
	if err != nil {
		// 缓存不可用时以数据库为准
		repo.logger.Warn("查询已发送缓存失败", elog.FieldErr(err), elog.FieldKey(key.String()))
	}
	sent, err = repo.dao.Exists(ctx, key.Kind.Key(), key.Uid, key.CampaignId)
	if err != nil || !sent {
		return sent, err
	}
	repo.markSent(ctx, key)
	return true, nil
}

func (repo *CachedEmailLogRepository) Record(ctx context.Context, key domain.Key, orderId int64) error {
	_, err := repo.dao.Insert(ctx, dao.EmailLog{
		Type:       key.Kind.Key(),
		UserId:     key.Uid,
		CampaignId: key.CampaignId,
		OrderId:    orderId,
	})
	if err == nil || errors.Is(err, ErrDuplicatedEmailLog) {
		repo.markSent(ctx, key)
	}
	return err
}

func (repo *CachedEmailLogRepository) markSent(ctx context.Context, key domain.Key) {
	if err := repo.cache.MarkSent(ctx, key.String()); err != nil {
		repo.logger.Warn("写入已发送缓存失败", elog.FieldErr(err), elog.FieldKey(key.String()))
	}
}
