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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/noahrognon/commande-appli/internal/order/internal/domain"
	"github.com/noahrognon/commande-appli/internal/order/internal/service"
)

type LineItem struct {
	FlavorId int64 `json:"flavorId"`
	Quantity int64 `json:"quantity"`
}

// CreateOrderReq 前端传过来的总价一律忽略, 由服务端重新计算
type CreateOrderReq struct {
	CampaignId    int64      `json:"campaignId"`
	Cartons       int64      `json:"cartons"`
	PaymentMethod string     `json:"paymentMethod"`
	LineItems     []LineItem `json:"lineItems"`
}

func (r CreateOrderReq) toInput(uid int64) service.CreateOrderInput {
	return service.CreateOrderInput{
		Uid:           uid,
		CampaignId:    r.CampaignId,
		Cartons:       r.Cartons,
		PaymentMethod: r.PaymentMethod,
		LineItems: slice.Map(r.LineItems, func(idx int, src LineItem) domain.LineItem {
			return domain.LineItem{
				FlavorId: src.FlavorId,
				Quantity: src.Quantity,
			}
		}),
	}
}

type UpdateCartonsReq struct {
	OrderId int64 `json:"orderId"`
	Cartons int64 `json:"cartons"`
}

type UpdateStatusReq struct {
	OrderId int64  `json:"orderId"`
	Status  string `json:"status"`
}

type CampaignReq struct {
	CampaignId int64 `json:"campaignId"`
}

type Order struct {
	Id                     int64      `json:"id"`
	OrderNumber            string     `json:"orderNumber"`
	CampaignId             int64      `json:"campaignId"`
	Cartons                int64      `json:"cartons"`
	Total                  int64      `json:"total"`
	PaymentMethod          string     `json:"paymentMethod"`
	Status                 string     `json:"status"`
	EstimatedDeliveryStart int64      `json:"estimatedDeliveryStart"`
	EstimatedDeliveryEnd   int64      `json:"estimatedDeliveryEnd"`
	Items                  []LineItem `json:"items"`
	Ctime                  int64      `json:"ctime"`
}

func newOrder(o domain.Order) Order {
	res := Order{
		Id:                     o.Id,
		OrderNumber:            o.OrderNumber,
		CampaignId:             o.CampaignId,
		Cartons:                o.Cartons,
		Total:                  o.Total,
		PaymentMethod:          o.PaymentMethod,
		Status:                 o.Status.String(),
		EstimatedDeliveryStart: o.EstimatedDeliveryStart.UnixMilli(),
		EstimatedDeliveryEnd:   o.EstimatedDeliveryEnd.UnixMilli(),
		Items: slice.Map(o.Items, func(idx int, src domain.LineItem) LineItem {
			return LineItem{
				FlavorId: src.FlavorId,
				Quantity: src.Quantity,
			}
		}),
	}
	// 刚创建的订单没有从数据库回读
	if !o.Ctime.IsZero() {
		res.Ctime = o.Ctime.UnixMilli()
	}
	return res
}

type OrderList struct {
	Orders []Order `json:"orders"`
}

type ReminderResult struct {
	SentCount int    `json:"sentCount"`
	DaysLeft  *int64 `json:"daysLeft"`
}

type SweepResult struct {
	Ok   bool `json:"ok"`
	Sent int  `json:"sent"`
}
