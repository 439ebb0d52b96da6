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
	"time"

	"github.com/noahrognon/commande-appli/internal/preorder/internal/domain"
	"github.com/noahrognon/commande-appli/internal/preorder/internal/repository/dao"
)

var (
	ErrCampaignNotFound = dao.ErrRecordNotFound
	ErrNoOpenCampaign   = dao.ErrNoOpenCampaign
)

type CampaignRepository interface {
	FindById(ctx context.Context, id int64) (domain.Campaign, error)
	FindOpen(ctx context.Context) (domain.Campaign, error)
	FindOpenEndingAfter(ctx context.Context, now time.Time) (domain.Campaign, error)
	Close(ctx context.Context, id int64) error
	Extend(ctx context.Context, id int64, delta time.Duration) (time.Time, error)
}

type campaignRepository struct {
	dao dao.CampaignDAO
}

func NewCampaignRepository(d dao.CampaignDAO) CampaignRepository {
	return &campaignRepository{dao: d}
}

func (r *campaignRepository) FindById(ctx context.Context, id int64) (domain.Campaign, error) {
	c, err := r.dao.FindById(ctx, id)
	return r.toDomain(c), err
}

func (r *campaignRepository) FindOpen(ctx context.Context) (domain.Campaign, error) {
	c, err := r.dao.FindOpen(ctx)
	return r.toDomain(c), err
}

func (r *campaignRepository) FindOpenEndingAfter(ctx context.Context, now time.Time) (domain.Campaign, error) {
	c, err := r.dao.FindOpenEndingAfter(ctx, now.UnixMilli())
	return r.toDomain(c), err
}

func (r *campaignRepository) Close(ctx context.Context, id int64) error {
	return r.dao.Close(ctx, id)
}

func (r *campaignRepository) Extend(ctx context.Context, id int64, delta time.Duration) (time.Time, error) {
	endDate, err := r.dao.Extend(ctx, id, delta.Milliseconds())
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(endDate).UTC(), nil
}

func (r *campaignRepository) toDomain(c dao.Campaign) domain.Campaign {
	return domain.Campaign{
		Id:      c.Id,
		Name:    c.Name,
		Status:  domain.CampaignStatus(c.Status),
		EndDate: time.UnixMilli(c.EndDate).UTC(),
	}
}
