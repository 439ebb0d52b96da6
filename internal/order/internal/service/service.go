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
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
	"github.com/noahrognon/commande-appli/internal/notification"
	"github.com/noahrognon/commande-appli/internal/order/internal/domain"
	"github.com/noahrognon/commande-appli/internal/order/internal/event"
	"github.com/noahrognon/commande-appli/internal/order/internal/repository"
	"github.com/noahrognon/commande-appli/internal/pkg/mqx"
	"github.com/noahrognon/commande-appli/internal/preorder"
	"github.com/noahrognon/commande-appli/internal/user"
)

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go Service
type Service interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (domain.Order, error)
	// UpdateCartons 重新计算总价, 不发送邮件
	UpdateCartons(ctx context.Context, in UpdateCartonsInput) (domain.Order, error)
	UpdateStatus(ctx context.Context, orderId int64, status domain.Status) error
	FindById(ctx context.Context, id int64) (domain.Order, error)
	ListByUid(ctx context.Context, uid int64) ([]domain.Order, error)
	// SendConfirmation 重新发送订单确认邮件, 已经发送过的会被跳过
	SendConfirmation(ctx context.Context, orderId int64) (notification.SendResult, error)
}

type service struct {
	repo          repository.OrderRepository
	preorderSvc   preorder.Service
	notifySvc     notification.Service
	renderer      *notification.Renderer
	userSvc       user.UserService
	snGenerator   OrderNumberGenerator
	eventProducer mqx.Producer[event.OrderEvent]
	retryProducer mqx.Producer[event.ConfirmationRetryEvent]
	logger        *elog.Component
}

func NewService(repo repository.OrderRepository,
	preorderSvc preorder.Service,
	notifySvc notification.Service,
	renderer *notification.Renderer,
	userSvc user.UserService,
	snGenerator OrderNumberGenerator,
	eventProducer mqx.Producer[event.OrderEvent],
	retryProducer mqx.Producer[event.ConfirmationRetryEvent]) Service {
	return &service{
		repo:          repo,
		preorderSvc:   preorderSvc,
		notifySvc:     notifySvc,
		renderer:      renderer,
		userSvc:       userSvc,
		snGenerator:   snGenerator,
		eventProducer: eventProducer,
		retryProducer: retryProducer,
		logger:        elog.DefaultLogger.With(elog.FieldComponent("order")),
	}
}

func (s *service) CreateOrder(ctx context.Context, in CreateOrderInput) (domain.Order, error) {
	if in.Uid <= 0 {
		return domain.Order{}, ErrUnauthenticated
	}
	campaign, err := s.openCampaign(ctx, in.CampaignId)
	if err != nil {
		return domain.Order{}, err
	}
	paymentMethod := strings.TrimSpace(in.PaymentMethod)
	if paymentMethod == "" {
		return domain.Order{}, ErrPaymentMethodRequired
	}
	price, err := domain.PriceOf(in.Cartons)
	if err != nil {
		return domain.Order{}, ErrInvalidCartons
	}
	start, end := domain.DeliveryWindow(campaign.EndDate)
	// 先校验订单项再落库, 不会留下没有订单项的订单
	items := domain.FilterLineItems(in.LineItems)
	if len(items) == 0 {
		return domain.Order{}, ErrNoLineItems
	}
	if domain.TotalQuantity(items) > domain.MaxLineItemQuantity {
		return domain.Order{}, ErrTooManyItems
	}
	sn, err := s.snGenerator.Generate()
	if err != nil {
		return domain.Order{}, fmt.Errorf("生成订单编号失败: %w", err)
	}
	order := domain.Order{
		Uid:                    in.Uid,
		CampaignId:             campaign.Id,
		OrderNumber:            sn,
		Cartons:                in.Cartons,
		Total:                  price.Total,
		PaymentMethod:          paymentMethod,
		Status:                 domain.StatusPending,
		EstimatedDeliveryStart: start,
		EstimatedDeliveryEnd:   end,
		Items:                  items,
	}
	order.Id, err = s.repo.Create(ctx, order)
	if err != nil {
		return domain.Order{}, err
	}
	s.produceOrderEvent(ctx, event.OrderEventTypeCreated, order)
	s.confirm(ctx, order)
	return order, nil
}

// confirm 订单已经提交, 邮件失败只记录日志并投递重试消息
func (s *service) confirm(ctx context.Context, order domain.Order) {
	res, err := s.sendConfirmation(ctx, order)
	if res != notification.SendResultFailed {
		return
	}
	s.logger.Error("发送订单确认邮件失败",
		elog.FieldErr(err),
		elog.Int64("orderId", order.Id),
		elog.Int64("uid", order.Uid),
		elog.Int64("campaignId", order.CampaignId))
	if errors.Is(err, user.ErrUserNotFound) {
		return
	}
	err = s.retryProducer.Produce(ctx, event.ConfirmationRetryEvent{
		EventId:    uuid.NewString(),
		OrderId:    order.Id,
		Uid:        order.Uid,
		CampaignId: order.CampaignId,
	})
	if err != nil {
		s.logger.Error("投递订单确认邮件重试消息失败",
			elog.FieldErr(err),
			elog.Int64("orderId", order.Id))
	}
}

func (s *service) SendConfirmation(ctx context.Context, orderId int64) (notification.SendResult, error) {
	order, err := s.repo.FindById(ctx, orderId)
	if err != nil {
		return notification.SendResultFailed, err
	}
	return s.sendConfirmation(ctx, order)
}

func (s *service) sendConfirmation(ctx context.Context, order domain.Order) (notification.SendResult, error) {
	u, err := s.userSvc.Profile(ctx, order.Uid)
	if err != nil {
		return notification.SendResultFailed, err
	}
	if u.Email == "" {
		s.logger.Warn("用户没有邮箱, 跳过订单确认邮件",
			elog.Int64("orderId", order.Id),
			elog.Int64("uid", order.Uid))
		return notification.SendResultSkipped, nil
	}
	params := notification.OrderConfirmationParams{
		OrderNumber:    order.OrderNumber,
		Cartons:        order.Cartons,
		Total:          order.Total,
		PaymentMethod:  order.PaymentMethod,
		EstimatedStart: order.EstimatedDeliveryStart,
		EstimatedEnd:   order.EstimatedDeliveryEnd,
	}
	return s.notifySvc.SendOnce(ctx, notification.SendRequest{
		Kind: notification.OrderConfirmation(),
		Recipient: notification.Recipient{
			Uid:       u.Id,
			Email:     u.Email,
			FirstName: u.FirstName,
		},
		CampaignId: order.CampaignId,
		OrderId:    order.Id,
		Render: func(r notification.Recipient) (notification.Message, error) {
			return s.renderer.OrderConfirmation(r, params)
		},
	})
}

func (s *service) UpdateCartons(ctx context.Context, in UpdateCartonsInput) (domain.Order, error) {
	if in.Uid <= 0 {
		return domain.Order{}, ErrUnauthenticated
	}
	order, err := s.repo.FindById(ctx, in.OrderId)
	if err != nil {
		return domain.Order{}, err
	}
	if order.Uid != in.Uid {
		return domain.Order{}, ErrUnauthorized
	}
	// 每次修改都重新检查预售状态
	if _, err = s.openCampaign(ctx, order.CampaignId); err != nil {
		return domain.Order{}, err
	}
	price, err := domain.PriceOf(in.Cartons)
	if err != nil {
		return domain.Order{}, ErrInvalidCartons
	}
	err = s.repo.UpdateCartons(ctx, order.Id, order.Uid, in.Cartons, price.Total)
	if errors.Is(err, repository.ErrCampaignNotOpen) {
		// 检查之后预售被关闭
		return domain.Order{}, ErrCampaignNotOpen
	}
	if err != nil {
		return domain.Order{}, err
	}
	order.Cartons, order.Total = in.Cartons, price.Total
	s.produceOrderEvent(ctx, event.OrderEventTypeCartonsUpdated, order)
	return order, nil
}

func (s *service) UpdateStatus(ctx context.Context, orderId int64, status domain.Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	order, err := s.repo.FindById(ctx, orderId)
	if err != nil {
		return err
	}
	if err = s.repo.UpdateStatus(ctx, orderId, status); err != nil {
		return err
	}
	order.Status = status
	s.produceOrderEvent(ctx, event.OrderEventTypeStatusUpdated, order)
	return nil
}

func (s *service) FindById(ctx context.Context, id int64) (domain.Order, error) {
	return s.repo.FindById(ctx, id)
}

func (s *service) ListByUid(ctx context.Context, uid int64) ([]domain.Order, error) {
	return s.repo.FindByUid(ctx, uid)
}

// openCampaign 不存在或者已经关闭都返回 ErrCampaignNotOpen
func (s *service) openCampaign(ctx context.Context, id int64) (preorder.Campaign, error) {
	campaign, err := s.preorderSvc.FindById(ctx, id)
	if errors.Is(err, preorder.ErrCampaignNotFound) {
		return preorder.Campaign{}, ErrCampaignNotOpen
	}
	if err != nil {
		return preorder.Campaign{}, err
	}
	if !campaign.IsOpen() {
		return preorder.Campaign{}, ErrCampaignNotOpen
	}
	return campaign, nil
}

func (s *service) produceOrderEvent(ctx context.Context, typ string, order domain.Order) {
	err := s.eventProducer.Produce(ctx, event.OrderEvent{
		EventId:    uuid.NewString(),
		Type:       typ,
		OrderId:    order.Id,
		Uid:        order.Uid,
		CampaignId: order.CampaignId,
		Cartons:    order.Cartons,
		Total:      order.Total,
		Status:     order.Status.String(),
		Ctime:      time.Now().UnixMilli(),
	})
	if err != nil {
		s.logger.Error("发送订单事件失败",
			elog.FieldErr(err),
			elog.String("type", typ),
			elog.Int64("orderId", order.Id))
	}
}
