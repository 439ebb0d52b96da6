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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrNoOpenCampaign 条件更新没有命中任何行, 或者当前没有进行中的预售
	ErrNoOpenCampaign = errors.New("没有进行中的预售")
)

type CampaignDAO interface {
	FindById(ctx context.Context, id int64) (Campaign, error)
	FindOpen(ctx context.Context) (Campaign, error)
	FindOpenEndingAfter(ctx context.Context, now int64) (Campaign, error)
	// Close 仅当 status = open 时才会更新
	Close(ctx context.Context, id int64) error
	// Extend 仅当 status = open 时才会更新, 返回新的截止时间
	Extend(ctx context.Context, id int64, delta int64) (int64, error)
}

type CampaignGORMDAO struct {
	db *egorm.Component
}

func NewCampaignGORMDAO(db *egorm.Component) CampaignDAO {
	return &CampaignGORMDAO{db: db}
}

func (g *CampaignGORMDAO) FindById(ctx context.Context, id int64) (Campaign, error) {
	var c Campaign
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (g *CampaignGORMDAO) FindOpen(ctx context.Context) (Campaign, error) {
	var c Campaign
	err := g.db.WithContext(ctx).
		Where("status = ?", StatusOpen).
		Order("id DESC").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Campaign{}, ErrNoOpenCampaign
	}
	return c, err
}

func (g *CampaignGORMDAO) FindOpenEndingAfter(ctx context.Context, now int64) (Campaign, error) {
	var c Campaign
	err := g.db.WithContext(ctx).
		Where("status = ? AND end_date > ?", StatusOpen, now).
		Order("id DESC").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Campaign{}, ErrNoOpenCampaign
	}
	return c, err
}

func (g *CampaignGORMDAO) Close(ctx context.Context, id int64) error {
	res := g.db.WithContext(ctx).Model(&Campaign{}).
		Where("id = ? AND status = ?", id, StatusOpen).
		Updates(map[string]any{
			"status": StatusClosed,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// 已经被别人关闭了
		return ErrNoOpenCampaign
	}
	return nil
}

func (g *CampaignGORMDAO) Extend(ctx context.Context, id int64, delta int64) (int64, error) {
	var endDate int64
	err := g.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		res := tx.Model(&Campaign{}).
			Where("id = ? AND status = ?", id, StatusOpen).
			Updates(map[string]any{
				"end_date": gorm.Expr("end_date + ?", delta),
				"utime":    time.Now().UnixMilli(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNoOpenCampaign
		}
		var c Campaign
		if err := tx.Select("end_date").Where("id = ?", id).First(&c).Error; err != nil {
			return err
		}
		endDate = c.EndDate
		return nil
	})
	return endDate, err
}

// Campaign 沿用原有的 preorders 表
type Campaign struct {
	Id      int64  `gorm:"primaryKey;autoIncrement;comment:预售自增ID"`
	Name    string `gorm:"type:varchar(255);not null;comment:预售名称"`
	Status  string `gorm:"type:varchar(16);not null;default:'open';index:idx_status;comment:状态 open/closed"`
	EndDate int64  `gorm:"not null;comment:截止时间,UTC Unix毫秒数"`
	Ctime   int64
	Utime   int64
}

func (Campaign) TableName() string {
	return "preorders"
}
