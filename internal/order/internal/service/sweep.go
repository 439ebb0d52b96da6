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
	"sync/atomic"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/noahrognon/commande-appli/internal/notification"
	"github.com/noahrognon/commande-appli/internal/order/internal/domain"
	"github.com/noahrognon/commande-appli/internal/order/internal/repository"
	"github.com/noahrognon/commande-appli/internal/preorder"
	"github.com/noahrognon/commande-appli/internal/user"
	"golang.org/x/sync/errgroup"
)

const defaultSweepConcurrency = 4

//go:generate mockgen -source=./sweep.go -package=ordermocks -destination=../../mocks/sweep.mock.go SweepService
type SweepService interface {
	// RunReminders 只在剩余 1,2,3 天时发送预售提醒
	RunReminders(ctx context.Context, now time.Time) (ReminderResult, error)
	// NotifySupplier 通知 pending 和 confirmed 订单的用户供应商已下单
	NotifySupplier(ctx context.Context, campaignId int64) (int, error)
	// NotifyStockReceived 通知 pending 和 confirmed 订单的用户已经到货
	NotifyStockReceived(ctx context.Context, campaignId int64) (int, error)
}

type sweepService struct {
	repo        repository.OrderRepository
	preorderSvc preorder.Service
	notifySvc   notification.Service
	renderer    *notification.Renderer
	userSvc     user.UserService
	cfg         SweepConfig
	logger      *elog.Component
}

func NewSweepService(repo repository.OrderRepository,
	preorderSvc preorder.Service,
	notifySvc notification.Service,
	renderer *notification.Renderer,
	userSvc user.UserService,
	cfg SweepConfig) SweepService {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultSweepConcurrency
	}
	return &sweepService{
		repo:        repo,
		preorderSvc: preorderSvc,
		notifySvc:   notifySvc,
		renderer:    renderer,
		userSvc:     userSvc,
		cfg:         cfg,
		logger:      elog.DefaultLogger.With(elog.FieldComponent("order.sweep")),
	}
}

func (s *sweepService) RunReminders(ctx context.Context, now time.Time) (ReminderResult, error) {
	campaign, err := s.preorderSvc.FindOpenEndingAfter(ctx, now)
	if errors.Is(err, preorder.ErrNoOpenCampaign) {
		return ReminderResult{}, nil
	}
	if err != nil {
		return ReminderResult{}, err
	}
	daysLeft := campaign.DaysLeft(now)
	if daysLeft < 1 || daysLeft > 3 {
		return ReminderResult{DaysLeft: &daysLeft}, nil
	}
	orders, err := s.repo.FindByCampaign(ctx, campaign.Id,
		domain.StatusPending, domain.StatusConfirmed, domain.StatusDelivered)
	if err != nil {
		return ReminderResult{}, err
	}
	params := notification.PreorderReminderParams{
		PreorderName: campaign.Name,
		DaysLeft:     int(daysLeft),
		EndDate:      campaign.EndDate,
	}
	sent, err := s.fanOut(ctx, orders, notification.PreorderReminder(int(daysLeft)),
		func(r notification.Recipient) (notification.Message, error) {
			return s.renderer.PreorderReminder(r, params)
		})
	return ReminderResult{SentCount: sent, DaysLeft: &daysLeft}, err
}

func (s *sweepService) NotifySupplier(ctx context.Context, campaignId int64) (int, error) {
	campaign, err := s.preorderSvc.FindById(ctx, campaignId)
	if err != nil {
		return 0, err
	}
	orders, err := s.repo.FindByCampaign(ctx, campaign.Id, domain.StatusPending, domain.StatusConfirmed)
	if err != nil {
		return 0, err
	}
	params := notification.SupplierOrderSentParams{
		PreorderName: campaign.Name,
		ETADays:      s.cfg.SupplierETADays,
	}
	return s.fanOut(ctx, orders, notification.SupplierOrderSent(),
		func(r notification.Recipient) (notification.Message, error) {
			return s.renderer.SupplierOrderSent(r, params)
		})
}

func (s *sweepService) NotifyStockReceived(ctx context.Context, campaignId int64) (int, error) {
	campaign, err := s.preorderSvc.FindById(ctx, campaignId)
	if err != nil {
		return 0, err
	}
	orders, err := s.repo.FindByCampaign(ctx, campaign.Id, domain.StatusPending, domain.StatusConfirmed)
	if err != nil {
		return 0, err
	}
	params := notification.StockReceivedParams{PreorderName: campaign.Name}
	return s.fanOut(ctx, orders, notification.StockReceived(),
		func(r notification.Recipient) (notification.Message, error) {
			return s.renderer.StockReceived(r, params)
		})
}

// fanOut 每个用户取第一个订单, 不同用户的去重键互不相同, 可以并发发送
func (s *sweepService) fanOut(ctx context.Context, orders []domain.Order,
	kind notification.Kind, render notification.RenderFunc) (int, error) {
	firsts := firstOrderPerUser(orders)
	if len(firsts) == 0 {
		return 0, nil
	}
	users, err := s.userSvc.FindByIds(ctx, slice.Map(firsts, func(idx int, src domain.Order) int64 {
		return src.Uid
	}))
	if err != nil {
		return 0, err
	}
	var (
		eg   errgroup.Group
		sent atomic.Int64
	)
	eg.SetLimit(s.cfg.Concurrency)
	for _, o := range firsts {
		u, ok := users[o.Uid]
		if !ok || u.Email == "" {
			s.logger.Warn("用户没有邮箱, 跳过", elog.Int64("uid", o.Uid), elog.String("kind", kind.Key()))
			continue
		}
		eg.Go(func() error {
			res, er := s.notifySvc.SendOnce(ctx, notification.SendRequest{
				Kind: kind,
				Recipient: notification.Recipient{
					Uid:       u.Id,
					Email:     u.Email,
					FirstName: u.FirstName,
				},
				CampaignId: o.CampaignId,
				OrderId:    o.Id,
				Render:     render,
			})
			switch res {
			case notification.SendResultSent:
				sent.Add(1)
			case notification.SendResultFailed:
				// 下次执行时会重试
				s.logger.Error("发送邮件失败",
					elog.FieldErr(er),
					elog.String("kind", kind.Key()),
					elog.Int64("uid", o.Uid),
					elog.Int64("campaignId", o.CampaignId))
			}
			return nil
		})
	}
	_ = eg.Wait()
	return int(sent.Load()), ctx.Err()
}

func firstOrderPerUser(orders []domain.Order) []domain.Order {
	seen := make(map[int64]struct{}, len(orders))
	res := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if _, ok := seen[o.Uid]; ok {
			continue
		}
		seen[o.Uid] = struct{}{}
		res = append(res, o)
	}
	return res
}
