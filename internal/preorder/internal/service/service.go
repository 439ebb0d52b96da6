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

package service

import (
	"context"
	"errors"
	"time"

	"github.com/noahrognon/commande-appli/internal/preorder/internal/domain"
	"github.com/noahrognon/commande-appli/internal/preorder/internal/repository"
)

var (
	ErrCampaignNotFound = repository.ErrCampaignNotFound
	ErrNoOpenCampaign   = repository.ErrNoOpenCampaign
	ErrInvalidDelta     = errors.New("延长时间必须大于0")
)

//go:generate mockgen -source=./service.go -package=preordermocks -destination=../../mocks/preorder.mock.go Service
type Service interface {
	FindById(ctx context.Context, id int64) (domain.Campaign, error)
	// FindOpen 当前唯一进行中的预售, 没有时返回 ErrNoOpenCampaign
	FindOpen(ctx context.Context) (domain.Campaign, error)
	FindOpenEndingAfter(ctx context.Context, now time.Time) (domain.Campaign, error)
	// Close open -> closed, 已经关闭时返回 ErrNoOpenCampaign
	Close(ctx context.Context, id int64) error
	// Extend 只允许延长进行中的预售, 返回新的截止时间
	Extend(ctx context.Context, id int64, delta time.Duration) (time.Time, error)
}

type service struct {
	repo repository.CampaignRepository
}

func NewService(repo repository.CampaignRepository) Service {
	return &service{repo: repo}
}

func (s *service) FindById(ctx context.Context, id int64) (domain.Campaign, error) {
	return s.repo.FindById(ctx, id)
}

func (s *service) FindOpen(ctx context.Context) (domain.Campaign, error) {
	return s.repo.FindOpen(ctx)
}

func (s *service) FindOpenEndingAfter(ctx context.Context, now time.Time) (domain.Campaign, error) {
	return s.repo.FindOpenEndingAfter(ctx, now)
}

func (s *service) Close(ctx context.Context, id int64) error {
	return s.repo.Close(ctx, id)
}

func (s *service) Extend(ctx context.Context, id int64, delta time.Duration) (time.Time, error) {
	if delta <= 0 {
		return time.Time{}, ErrInvalidDelta
	}
	return s.repo.Extend(ctx, id, delta)
}
