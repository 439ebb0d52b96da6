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

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrCampaignNotOpen 订单所属预售已经不是 open 状态, 或者订单不存在
	ErrCampaignNotOpen = errors.New("订单所属预售未开放")
)

type OrderDAO interface {
	// Create 订单和订单项在同一个事务里写入
	Create(ctx context.Context, o Order, items []OrderItem) (int64, error)
	FindById(ctx context.Context, id int64) (Order, error)
	FindByUid(ctx context.Context, uid int64) ([]Order, error)
	FindItemsByOrderIds(ctx context.Context, orderIds []int64) ([]OrderItem, error)
	// FindByCampaign 按 id 升序
	FindByCampaign(ctx context.Context, campaignId int64, statuses []string) ([]Order, error)
	// UpdateCartons 只有预售仍然 open 时才会更新
	UpdateCartons(ctx context.Context, id, uid, cartons, total int64) error
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

func (g *OrderGORMDAO) Create(ctx context.Context, o Order, items []OrderItem) (int64, error) {
	now := time.Now().UnixMilli()
	o.Ctime, o.Utime = now, now
	err := g.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderId = o.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		return tx.Create(&items).Error
	})
	return o.Id, err
}

func (g *OrderGORMDAO) FindById(ctx context.Context, id int64) (Order, error) {
	var o Order
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	return o, err
}

func (g *OrderGORMDAO) FindByUid(ctx context.Context, uid int64) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).Where("uid = ?", uid).Order("id DESC").Find(&res).Error
	return res, err
}

func (g *OrderGORMDAO) FindItemsByOrderIds(ctx context.Context, orderIds []int64) ([]OrderItem, error) {
	var res []OrderItem
	if len(orderIds) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).Where("order_id IN ?", orderIds).Order("id ASC").Find(&res).Error
	return res, err
}

func (g *OrderGORMDAO) FindByCampaign(ctx context.Context, campaignId int64, statuses []string) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).
		Where("campaign_id = ? AND status IN ?", campaignId, statuses).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (g *OrderGORMDAO) UpdateCartons(ctx context.Context, id, uid, cartons, total int64) error {
	res := g.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND uid = ?", id, uid).
		Where("EXISTS (SELECT 1 FROM preorders WHERE preorders.id = orders.campaign_id AND preorders.status = ?)", "open").
		Updates(map[string]any{
			"cartons": cartons,
			"total":   total,
			"utime":   time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCampaignNotOpen
	}
	return nil
}

func (g *OrderGORMDAO) UpdateStatus(ctx context.Context, id int64, status string) error {
	res := g.db.WithContext(ctx).Model(&Order{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

type Order struct {
	Id                     int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	OrderNumber            string `gorm:"type:varchar(32);not null;index:idx_order_number;comment:订单编号 CMD-年份-8位随机串"`
	Uid                    int64  `gorm:"not null;index:idx_uid;comment:下单用户ID"`
	CampaignId             int64  `gorm:"not null;index:idx_campaign_status,priority:1;comment:预售ID"`
	Cartons                int64  `gorm:"not null;comment:箱数"`
	Total                  int64  `gorm:"not null;comment:总价,单位EUR"`
	PaymentMethod          string `gorm:"type:varchar(32);not null;comment:支付方式"`
	Status                 string `gorm:"type:varchar(16);not null;default:'pending';index:idx_campaign_status,priority:2;comment:pending/confirmed/delivered/cancelled"`
	EstimatedDeliveryStart int64  `gorm:"not null;comment:预计送达开始,UTC毫秒"`
	EstimatedDeliveryEnd   int64  `gorm:"not null;comment:预计送达结束,UTC毫秒"`
	Ctime                  int64
	Utime                  int64
}

type OrderItem struct {
	Id       int64 `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId  int64 `gorm:"not null;index:idx_order_id;comment:订单自增ID"`
	FlavorId int64 `gorm:"not null;comment:口味ID"`
	Quantity int64 `gorm:"not null;comment:数量"`
	Ctime    int64
	Utime    int64
}
