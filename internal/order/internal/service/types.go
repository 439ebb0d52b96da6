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
	"errors"
	"fmt"

	"github.com/noahrognon/commande-appli/internal/order/internal/domain"
	"github.com/noahrognon/commande-appli/internal/order/internal/repository"
	"github.com/noahrognon/commande-appli/internal/preorder"
)

var (
	ErrUnauthenticated  = errors.New("未登录")
	ErrUnauthorized     = errors.New("无权操作该订单")
	ErrCampaignNotOpen  = errors.New("预售未开放")
	ErrCampaignNotFound = preorder.ErrCampaignNotFound
	ErrOrderNotFound    = repository.ErrOrderNotFound
	ErrInvalidInput     = errors.New("参数错误")
	ErrNoLineItems      = errors.New("没有选择口味")
	ErrTooManyItems     = fmt.Errorf("口味总数不能超过 %d", domain.MaxLineItemQuantity)

	ErrPaymentMethodRequired = fmt.Errorf("%w: 缺少支付方式", ErrInvalidInput)
	ErrInvalidCartons        = fmt.Errorf("%w: %w", ErrInvalidInput, domain.ErrInvalidCartons)
	ErrInvalidStatus         = fmt.Errorf("%w: 非法的订单状态", ErrInvalidInput)
)

type CreateOrderInput struct {
	Uid           int64
	CampaignId    int64
	Cartons       int64
	PaymentMethod string
	LineItems     []domain.LineItem
}

type UpdateCartonsInput struct {
	Uid     int64
	OrderId int64
	Cartons int64
}

// ReminderResult DaysLeft 为 nil 表示没有进行中的预售
type ReminderResult struct {
	SentCount int
	DaysLeft  *int64
}

type OrderNumberGenerator interface {
	Generate() (string, error)
}

type SweepConfig struct {
	// Concurrency 不同用户之间并发发送
	Concurrency     int
	SupplierETADays int
}
