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

package event

const (
	OrderEventName             = "order_events"
	ConfirmationRetryEventName = "order_confirmation_retry"
)

const (
	OrderEventTypeCreated        = "created"
	OrderEventTypeCartonsUpdated = "cartons_updated"
	OrderEventTypeStatusUpdated  = "status_updated"
)

type OrderEvent struct {
	EventId    string `json:"eventId"`
	Type       string `json:"type"`
	OrderId    int64  `json:"orderId"`
	Uid        int64  `json:"uid"`
	CampaignId int64  `json:"campaignId"`
	Cartons    int64  `json:"cartons"`
	Total      int64  `json:"total"`
	Status     string `json:"status"`
	Ctime      int64  `json:"ctime"`
}

// ConfirmationRetryEvent 同步发送订单确认邮件失败后投递, 由消费者重新发送
type ConfirmationRetryEvent struct {
	EventId    string `json:"eventId"`
	OrderId    int64  `json:"orderId"`
	Uid        int64  `json:"uid"`
	CampaignId int64  `json:"campaignId"`
}
