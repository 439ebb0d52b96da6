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

	"github.com/ecodeclub/ekit/mapx"
	"github.com/ecodeclub/ekit/slice"
	"github.com/noahrognon/commande-appli/internal/order/internal/domain"
	"github.com/noahrognon/commande-appli/internal/order/internal/repository/dao"
)

var (
	ErrOrderNotFound   = dao.ErrRecordNotFound
	ErrCampaignNotOpen = dao.ErrCampaignNotOpen
)

//go:generate mockgen -source=./order.go -package=repomocks -destination=./mocks/order.mock.go OrderRepository
type OrderRepository interface {
	Create(ctx context.Context, o domain.Order) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Order, error)
	FindByUid(ctx context.Context, uid int64) ([]domain.Order, error)
	FindByCampaign(ctx context.Context, campaignId int64, statuses ...domain.Status) ([]domain.Order, error)
	UpdateCartons(ctx context.Context, id, uid, cartons, total int64) error
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
}

type orderRepository struct {
	dao dao.OrderDAO
}

func NewOrderRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{dao: d}
}

func (r *orderRepository) Create(ctx context.Context, o domain.Order) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(o), slice.Map(o.Items, func(idx int, src domain.LineItem) dao.OrderItem {
		return dao.OrderItem{
			FlavorId: src.FlavorId,
			Quantity: src.Quantity,
		}
	}))
}

func (r *orderRepository) FindById(ctx context.Context, id int64) (domain.Order, error) {
	o, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	items, err := r.dao.FindItemsByOrderIds(ctx, []int64{id})
	if err != nil {
		return domain.Order{}, err
	}
	res := r.toDomain(o)
	res.Items = slice.Map(items, r.toLineItem)
	return res, nil
}

func (r *orderRepository) FindByUid(ctx context.Context, uid int64) ([]domain.Order, error) {
	orders, err := r.dao.FindByUid(ctx, uid)
	if err != nil || len(orders) == 0 {
		return nil, err
	}
	ids := slice.Map(orders, func(idx int, src dao.Order) int64 {
		return src.Id
	})
	items, err := r.dao.FindItemsByOrderIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	itemMap := mapx.NewMultiBuiltinMap[int64, dao.OrderItem](len(orders))
	for _, item := range items {
		_ = itemMap.Put(item.OrderId, item)
	}
	return slice.Map(orders, func(idx int, src dao.Order) domain.Order {
		o := r.toDomain(src)
		orderItems, _ := itemMap.Get(src.Id)
		o.Items = slice.Map(orderItems, r.toLineItem)
		return o
	}), nil
}

func (r *orderRepository) FindByCampaign(ctx context.Context, campaignId int64, statuses ...domain.Status) ([]domain.Order, error) {
	orders, err := r.dao.FindByCampaign(ctx, campaignId, slice.Map(statuses, func(idx int, src domain.Status) string {
		return src.String()
	}))
	if err != nil {
		return nil, err
	}
	return slice.Map(orders, func(idx int, src dao.Order) domain.Order {
		return r.toDomain(src)
	}), nil
}

func (r *orderRepository) UpdateCartons(ctx context.Context, id, uid, cartons, total int64) error {
	return r.dao.UpdateCartons(ctx, id, uid, cartons, total)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return r.dao.UpdateStatus(ctx, id, status.String())
}

func (r *orderRepository) toEntity(o domain.Order) dao.Order {
	return dao.Order{
		Id:                     o.Id,
		OrderNumber:            o.OrderNumber,
		Uid:                    o.Uid,
		CampaignId:             o.CampaignId,
		Cartons:                o.Cartons,
		Total:                  o.Total,
		PaymentMethod:          o.PaymentMethod,
		Status:                 o.Status.String(),
		EstimatedDeliveryStart: o.EstimatedDeliveryStart.UnixMilli(),
		EstimatedDeliveryEnd:   o.EstimatedDeliveryEnd.UnixMilli(),
	}
}

func (r *orderRepository) toDomain(o dao.Order) domain.Order {
	return domain.Order{
		Id:                     o.Id,
		Uid:                    o.Uid,
		CampaignId:             o.CampaignId,
		OrderNumber:            o.OrderNumber,
		Cartons:                o.Cartons,
		Total:                  o.Total,
		PaymentMethod:          o.PaymentMethod,
		Status:                 domain.Status(o.Status),
		EstimatedDeliveryStart: time.UnixMilli(o.EstimatedDeliveryStart).UTC(),
		EstimatedDeliveryEnd:   time.UnixMilli(o.EstimatedDeliveryEnd).UTC(),
		Ctime:                  time.UnixMilli(o.Ctime),
		Utime:                  time.UnixMilli(o.Utime),
	}
}

func (r *orderRepository) toLineItem(idx int, src dao.OrderItem) domain.LineItem {
	return domain.LineItem{
		FlavorId: src.FlavorId,
		Quantity: src.Quantity,
	}
}
