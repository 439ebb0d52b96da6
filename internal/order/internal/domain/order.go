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

package domain

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

const (
	// MaxLineItemQuantity 一个订单最多选择的口味数量
	MaxLineItemQuantity = 10
	deliveryStartDays   = 14
	deliveryEndDays     = 17
)

type LineItem struct {
	FlavorId int64
	Quantity int64
}

// FilterLineItems 去掉数量为 0 或者没有口味的项
func FilterLineItems(items []LineItem) []LineItem {
	res := make([]LineItem, 0, len(items))
	for _, item := range items {
		if item.FlavorId > 0 && item.Quantity > 0 {
			res = append(res, item)
		}
	}
	return res
}

func TotalQuantity(items []LineItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// DeliveryWindow 预售截止后的第 14 到 17 天, 按 UTC 日历日计算, 保留时分秒
func DeliveryWindow(endDate time.Time) (start, end time.Time) {
	endDate = endDate.UTC()
	return endDate.AddDate(0, 0, deliveryStartDays), endDate.AddDate(0, 0, deliveryEndDays)
}

type Order struct {
	Id                     int64
	Uid                    int64
	CampaignId             int64
	OrderNumber            string
	Cartons                int64
	Total                  int64
	PaymentMethod          string
	Status                 Status
	EstimatedDeliveryStart time.Time
	EstimatedDeliveryEnd   time.Time
	Items                  []LineItem
	Ctime                  time.Time
	Utime                  time.Time
}
