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
	"sync"
	"testing"
	"time"

	"github.com/noahrognon/commande-appli/internal/notification"
	"github.com/noahrognon/commande-appli/internal/order/internal/domain"
	"github.com/noahrognon/commande-appli/internal/preorder"
	"github.com/noahrognon/commande-appli/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func campaignOrders() []domain.Order {
	return []domain.Order{
		{Id: 10, Uid: 12, CampaignId: 3, Status: domain.StatusPending},
		{Id: 11, Uid: 12, CampaignId: 3, Status: domain.StatusConfirmed},
		{Id: 20, Uid: 13, CampaignId: 3, Status: domain.StatusConfirmed},
		{Id: 30, Uid: 14, CampaignId: 3, Status: domain.StatusPending},
		{Id: 40, Uid: 15, CampaignId: 3, Status: domain.StatusPending},
	}
}

func campaignUsers() map[int64]user.User {
	return map[int64]user.User{
		12: {Id: 12, Email: "alice@example.com", FirstName: "Alice"},
		13: {Id: 13, Email: "bob@example.com", FirstName: "Bob"},
		// 没有邮箱
		14: {Id: 14, FirstName: "Chloe"},
	}
}

// recordingSend 记录每个用户收到的请求, uid 13 发送失败
type recordingSend struct {
	mu   sync.Mutex
	reqs map[int64]notification.SendRequest
}

func (r *recordingSend) send(_ context.Context, req notification.SendRequest) (notification.SendResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.reqs == nil {
		r.reqs = make(map[int64]notification.SendRequest)
	}
	r.reqs[req.Recipient.Uid] = req
	if req.Recipient.Uid == 13 {
		return notification.SendResultFailed, errors.New("smtp timeout")
	}
	return notification.SendResultSent, nil
}

func TestSweepService_RunReminders(t *testing.T) {
	// 截止前 2 天 1 小时
	now := campaignEnd.Add(-49 * time.Hour)
	testCases := []struct {
		name     string
		now      time.Time
		mock     func(m mocks)
		wantSent int
		wantDays *int64
		wantErr  error
	}{
		{
			name: "没有进行中的预售",
			now:  now,
			mock: func(m mocks) {
				m.preorderSvc.EXPECT().FindOpenEndingAfter(gomock.Any(), now).Return(preorder.Campaign{}, preorder.ErrNoOpenCampaign)
			},
		},
		{
			name: "剩余天数超过3天",
			now:  campaignEnd.Add(-5 * 24 * time.Hour),
			mock: func(m mocks) {
				m.preorderSvc.EXPECT().FindOpenEndingAfter(gomock.Any(), gomock.Any()).Return(openCampaign, nil)
			},
			wantDays: ptr(int64(5)),
		},
		{
			name: "剩余4天,不发送提醒",
			now:  campaignEnd.Add(-(4*24 + 1) * time.Hour),
			mock: func(m mocks) {
				m.preorderSvc.EXPECT().FindOpenEndingAfter(gomock.Any(), gomock.Any()).Return(openCampaign, nil)
				m.repo.EXPECT().FindByCampaign(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				m.notifySvc.EXPECT().SendOnce(gomock.Any(), gomock.Any()).Times(0)
			},
			wantDays: ptr(int64(4)),
		},
		{
			name: "已经过了截止时间",
			now:  campaignEnd.Add(time.Hour),
			mock: func(m mocks) {
				m.preorderSvc.EXPECT().FindOpenEndingAfter(gomock.Any(), gomock.Any()).Return(openCampaign, nil)
				m.repo.EXPECT().FindByCampaign(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				m.notifySvc.EXPECT().SendOnce(gomock.Any(), gomock.Any()).Times(0)
			},
			wantDays: ptr(int64(-1)),
		},
		{
			name: "剩余不足1天",
			now:  campaignEnd.Add(-time.Hour),
			mock: func(m mocks) {
				m.preorderSvc.EXPECT().FindOpenEndingAfter(gomock.Any(), gomock.Any()).Return(openCampaign, nil)
			},
			wantDays: ptr(int64(0)),
		},
		{
			name: "查询预售失败",
			now:  now,
			mock: func(m mocks) {
				m.preorderSvc.EXPECT().FindOpenEndingAfter(gomock.Any(), now).Return(preorder.Campaign{}, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			svc := NewSweepService(m.repo, m.preorderSvc, m.notifySvc, newRenderer(t), m.userSvc, SweepConfig{})

			res, err := svc.RunReminders(context.Background(), tc.now)
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantSent, res.SentCount)
			assert.Equal(t, tc.wantDays, res.DaysLeft)
		})
	}
}

func TestSweepService_RunReminders_FanOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)
	now := campaignEnd.Add(-49 * time.Hour)
	rec := &recordingSend{}
	m.preorderSvc.EXPECT().FindOpenEndingAfter(gomock.Any(), now).Return(openCampaign, nil)
	m.repo.EXPECT().FindByCampaign(gomock.Any(), int64(3),
		domain.StatusPending, domain.StatusConfirmed, domain.StatusDelivered).Return(campaignOrders(), nil)
	m.userSvc.EXPECT().FindByIds(gomock.Any(), []int64{12, 13, 14, 15}).Return(campaignUsers(), nil)
	m.notifySvc.EXPECT().SendOnce(gomock.Any(), gomock.Any()).DoAndReturn(rec.send).Times(2)
	svc := NewSweepService(m.repo, m.preorderSvc, m.notifySvc, newRenderer(t), m.userSvc, SweepConfig{Concurrency: 2})

	res, err := svc.RunReminders(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, res.SentCount)
	require.NotNil(t, res.DaysLeft)
	assert.Equal(t, int64(2), *res.DaysLeft)

	// 每个用户只取第一个订单
	req := rec.reqs[12]
	assert.Equal(t, notification.PreorderReminder(2), req.Kind)
	assert.Equal(t, "preorder_reminder_2d", req.Kind.Key())
	assert.Equal(t, int64(10), req.OrderId)
	assert.Equal(t, int64(3), req.CampaignId)
	msg, err := req.Render(req.Recipient)
	require.NoError(t, err)
	assert.Contains(t, msg.Text, "Alice")
	assert.Equal(t, int64(20), rec.reqs[13].OrderId)
}

func TestSweepService_NotifySupplier(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(m mocks, rec *recordingSend)
		wantSent int
		wantErr  error
	}{
		{
			name: "通知 pending 和 confirmed 订单的用户",
			mock: func(m mocks, rec *recordingSend) {
				m.preorderSvc.EXPECT().FindById(gomock.Any(), int64(3)).Return(closedCampaign, nil)
				m.repo.EXPECT().FindByCampaign(gomock.Any(), int64(3),
					domain.StatusPending, domain.StatusConfirmed).Return(campaignOrders(), nil)
				m.userSvc.EXPECT().FindByIds(gomock.Any(), []int64{12, 13, 14, 15}).Return(campaignUsers(), nil)
				m.notifySvc.EXPECT().SendOnce(gomock.Any(), gomock.Any()).DoAndReturn(rec.send).Times(2)
			},
			wantSent: 1,
		},
		{
			name: "没有订单",
			mock: func(m mocks, rec *recordingSend) {
				m.preorderSvc.EXPECT().FindById(gomock.Any(), int64(3)).Return(closedCampaign, nil)
				m.repo.EXPECT().FindByCampaign(gomock.Any(), int64(3),
					domain.StatusPending, domain.StatusConfirmed).Return(nil, nil)
			},
		},
		{
			name: "预售不存在",
			mock: func(m mocks, rec *recordingSend) {
				m.preorderSvc.EXPECT().FindById(gomock.Any(), int64(3)).Return(preorder.Campaign{}, preorder.ErrCampaignNotFound)
			},
			wantErr: preorder.ErrCampaignNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			rec := &recordingSend{}
			tc.mock(m, rec)
			svc := NewSweepService(m.repo, m.preorderSvc, m.notifySvc, newRenderer(t), m.userSvc, SweepConfig{SupplierETADays: 10})

			sent, err := svc.NotifySupplier(context.Background(), 3)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantSent, sent)
			if req, ok := rec.reqs[12]; ok {
				assert.Equal(t, notification.SupplierOrderSent(), req.Kind)
				_, err = req.Render(req.Recipient)
				assert.NoError(t, err)
			}
		})
	}
}

func TestSweepService_NotifyStockReceived(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)
	m.preorderSvc.EXPECT().FindById(gomock.Any(), int64(3)).Return(closedCampaign, nil)
	m.repo.EXPECT().FindByCampaign(gomock.Any(), int64(3),
		domain.StatusPending, domain.StatusConfirmed).Return(campaignOrders()[:3], nil)
	m.userSvc.EXPECT().FindByIds(gomock.Any(), []int64{12, 13}).Return(campaignUsers(), nil)
	// 已经通知过的用户不计数
	m.notifySvc.EXPECT().SendOnce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req notification.SendRequest) (notification.SendResult, error) {
			assert.Equal(t, notification.StockReceived(), req.Kind)
			return notification.SendResultSkipped, nil
		}).Times(2)
	svc := NewSweepService(m.repo, m.preorderSvc, m.notifySvc, newRenderer(t), m.userSvc, SweepConfig{})

	sent, err := svc.NotifyStockReceived(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
}

func TestSweepService_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	m.preorderSvc.EXPECT().FindById(gomock.Any(), int64(3)).Return(closedCampaign, nil)
	m.repo.EXPECT().FindByCampaign(gomock.Any(), int64(3),
		domain.StatusPending, domain.StatusConfirmed).Return(campaignOrders()[:1], nil)
	m.userSvc.EXPECT().FindByIds(gomock.Any(), []int64{12}).Return(campaignUsers(), nil)
	m.notifySvc.EXPECT().SendOnce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req notification.SendRequest) (notification.SendResult, error) {
			cancel()
			return notification.SendResultFailed, ctx.Err()
		})
	svc := NewSweepService(m.repo, m.preorderSvc, m.notifySvc, newRenderer(t), m.userSvc, SweepConfig{})

	sent, err := svc.NotifySupplier(ctx, 3)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, sent)
}

func ptr[T any](v T) *T {
	return &v
}
