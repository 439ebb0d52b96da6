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
	notificationmocks "github.com/noahrognon/commande-appli/internal/notification/mocks"
	"github.com/noahrognon/commande-appli/internal/order/internal/domain"
	"github.com/noahrognon/commande-appli/internal/order/internal/event"
	"github.com/noahrognon/commande-appli/internal/order/internal/repository"
	repomocks "github.com/noahrognon/commande-appli/internal/order/internal/repository/mocks"
	"github.com/noahrognon/commande-appli/internal/preorder"
	preordermocks "github.com/noahrognon/commande-appli/internal/preorder/mocks"
	"github.com/noahrognon/commande-appli/internal/user"
	usermocks "github.com/noahrognon/commande-appli/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeProducer[T any] struct {
	mu   sync.Mutex
	evts []T
	err  error
}

func (p *fakeProducer[T]) Produce(_ context.Context, evt T) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.evts = append(p.evts, evt)
	return nil
}

func (p *fakeProducer[T]) events() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]T(nil), p.evts...)
}

type fakeGenerator struct {
	sn  string
	err error
}

func (g fakeGenerator) Generate() (string, error) {
	return g.sn, g.err
}

type mocks struct {
	repo        *repomocks.MockOrderRepository
	preorderSvc *preordermocks.MockService
	notifySvc   *notificationmocks.MockService
	userSvc     *usermocks.MockUserService
}

func newMocks(ctrl *gomock.Controller) mocks {
	return mocks{
		repo:        repomocks.NewMockOrderRepository(ctrl),
		preorderSvc: preordermocks.NewMockService(ctrl),
		notifySvc:   notificationmocks.NewMockService(ctrl),
		userSvc:     usermocks.NewMockUserService(ctrl),
	}
}

func newRenderer(t *testing.T) *notification.Renderer {
	r, err := notification.NewRenderer("https://commandes.example.com")
	require.NoError(t, err)
	return r
}

var (
	campaignEnd  = time.Date(2026, 3, 20, 18, 0, 0, 0, time.UTC)
	openCampaign = preorder.Campaign{
		Id:      3,
		Name:    "Precommande mars",
		Status:  preorder.CampaignStatusOpen,
		EndDate: campaignEnd,
	}
	closedCampaign = preorder.Campaign{
		Id:      3,
		Name:    "Precommande mars",
		Status:  preorder.CampaignStatusClosed,
		EndDate: campaignEnd,
	}
	alice = user.User{Id: 12, Email: "alice@example.com", FirstName: "Alice"}
)

func newCreateInput() CreateOrderInput {
	return CreateOrderInput{
		Uid:           12,
		CampaignId:    3,
		Cartons:       6,
		PaymentMethod: " virement ",
		LineItems: []domain.LineItem{
			{FlavorId: 1, Quantity: 4},
			{FlavorId: 2, Quantity: 0},
			{FlavorId: 0, Quantity: 3},
			{FlavorId: 5, Quantity: 2},
		},
	}
}

func TestService_CreateOrder(t *testing.T) {
	wantOrder := domain.Order{
		Id:                     10,
		Uid:                    12,
		CampaignId:             3,
		OrderNumber:            "CMD-0001",
		Cartons:                6,
		Total:                  419,
		PaymentMethod:          "virement",
		Status:                 domain.StatusPending,
		EstimatedDeliveryStart: time.Date(2026, 4, 3, 18, 0, 0, 0, time.UTC),
		EstimatedDeliveryEnd:   time.Date(2026, 4, 6, 18, 0, 0, 0, time.UTC),
		Items: []domain.LineItem{
			{FlavorId: 1, Quantity: 4},
			{FlavorId: 5, Quantity: 2},
		},
	}
	persisted := wantOrder
	persisted.Id = 0

	testCases := []struct {
		name      string
		input     func() CreateOrderInput
		mock      func(m mocks)
		wantOrder domain.Order
		wantErr   error
		wantRetry int
	}{
		{
			name:  "下单成功并发送确认邮件",
			input: newCreateInput,
			mock: func(m mocks) {
				m.preorderSvc.EXPECT().FindById(gomock.Any(), int64(3)).Return(openCampaign, nil)
				m.repo.EXPECT().Create(gomock.Any(), persisted).Return(int64(10), nil)
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(12)).Return(alice, nil)
				m.notifySvc.EXPECT().SendOnce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req notification.SendRequest) (notification.SendResult, error) {
						assert.Equal(t, notification.OrderConfirmation(), req.Kind)
						assert.Equal(t, notification.Recipient{Uid: 12, Email: "alice@example.com", FirstName: "Alice"}, req.Recipient)
						assert.Equal(t, int64(3), req.CampaignId)
						assert.Equal(t, int64(10), req.OrderId)
						msg, err := req.Render(req.Recipient)
						require.NoError(t, err)
						assert.Contains(t, msg.Text, "CMD-0001")
						return notification.SendResultSent, nil
					})
			},
			wantOrder: wantOrder,
		},
		{
			name:  "确认邮件已经发送过",
			input: newCreateInput,
			mock: func(m mocks) {
				m.preorderSvc.EXPECT().FindById(gomock.Any(), int64(3)).Return(openCampaign, nil)
				m.repo.EXPECT().Create(gomock.Any(), persisted).Return(int64(10), nil)
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(12)).Return(alice, nil)
				m.notifySvc.EXPECT().SendOnce(gomock.Any(), gomock.Any()).Return(notification.SendResultSkipped, nil)
			},
			wantOrder: wantOrder,
		},
		{
			name:  "确认邮件发送失败,订单仍然成功并投递重试消息",
			input: newCreateInput,
			mock: func(m mocks) {
				m.preorderSvc.EXPECT().FindById(gomock.Any(), int64(3)).Return(openCampaign, nil)
				m.repo.EXPECT().Create(gomock.Any(), persisted).Return(int64(10), nil)
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(12)).Return(alice, nil)
				m.notifySvc.EXPECT().SendOnce(gomock.Any(), gomock.Any()).
					Return(notification.SendResultFailed, errors.New("smtp timeout"))
			},
			wantOrder: wantOrder,
			wantRetry: 1,
		},
		{
			name:  "用户不存在,不投递重试消息",
			input: newCreateInput,
			mock: func(m mocks) {
				m.preorderSvc.EXPECT().FindById(gomock.Any(), int64(3)).Return(openCampaign, nil)
				m.repo.EXPECT().Create(gomock.Any(), persisted).Return(int64(10), nil)
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(12)).Return(user.User{}, user.ErrUserNotFound)
			},
			wantOrder: wantOrder,
		},
		{
			name:  "用户没有邮箱,跳过确认邮件",
			input: newCreateInput,
			mock: func(m mocks) {
				m.preorderSvc.EXPECT().FindById(gomock.Any(), int64(3)).Return(openCampaign, nil)
				m.repo.EXPECT().Create(gomock.Any(), persisted).Return(int64(10), nil)
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(12)).Return(user.User{Id: 12}, nil)
				m.notifySvc.EXPECT().SendOnce(gomock.Any(), gomock.Any()).Times(0)
			},
			wantOrder: wantOrder,
			wantRetry: 0,
		},
		{
			name: "未登录",
			input: func() CreateOrderInput {
				in := newCreateInput()
				in.Uid = 0
				return in
			},
			mock:    func(m mocks) {},
			wantErr: ErrUnauthenticated,
		},
		{
			name:  "预售不存在",
			input: newCreateInput,
			mock: func(m mocks) {
				m.preorderSvc.EXPECT().FindById(gomock.Any(), int64(3)).Return(preorder.Campaign{}, preorder.ErrCampaignNotFound)
			},
			wantErr: ErrCampaignNotOpen,
		},
		{
			name:  "预售已关闭",
			input: newCreateInput,
			mock: func(m mocks) {
				m.preorderSvc.EXPECT().FindById(gomock.Any(), int64(3)).Return(closedCampaign, nil)
			},
			wantErr: ErrCampaignNotOpen,
		},
		{
			name: "缺少支付方式",
			input: func() CreateOrderInput {
				in := newCreateInput()
				in.PaymentMethod = "   "
				return in
			},
			mock: func(m mocks) {
				m.preorderSvc.EXPECT().FindById(gomock.Any(), int64(3)).Return(openCampaign, nil)
			},
			wantErr: ErrPaymentMethodRequired,
		},
		{
			name: "箱数为0",
			input: func() CreateOrderInput {
				in := newCreateInput()
				in.Cartons = 0
				return in
			},
			mock: func(m mocks) {
				m.preorderSvc.EXPECT().FindById(gomock.Any(), int64(3)).Return(openCampaign, nil)
			},
			wantErr: ErrInvalidCartons,
		},
		{
			name: "过滤后没有口味",
			input: func() CreateOrderInput {
				in := newCreateInput()
				in.LineItems = []domain.LineItem{{FlavorId: 1, Quantity: 0}, {FlavorId: 0, Quantity: 5}}
				return in
			},
			mock: func(m mocks) {
				m.preorderSvc.EXPECT().FindById(gomock.Any(), int64(3)).Return(openCampaign, nil)
			},
			wantErr: ErrNoLineItems,
		},
		{
			name: "口味总数超过10",
			input: func() CreateOrderInput {
				in := newCreateInput()
				in.LineItems = []domain.LineItem{{FlavorId: 1, Quantity: 6}, {FlavorId: 2, Quantity: 5}}
				return in
			},
			mock: func(m mocks) {
				m.preorderSvc.EXPECT().FindById(gomock.Any(), int64(3)).Return(openCampaign, nil)
			},
			wantErr: ErrTooManyItems,
		},
		{
			name:  "落库失败",
			input: newCreateInput,
			mock: func(m mocks) {
				m.preorderSvc.EXPECT().FindById(gomock.Any(), int64(3)).Return(openCampaign, nil)
				m.repo.EXPECT().Create(gomock.Any(), persisted).Return(int64(0), errors.New("deadlock"))
			},
			wantErr: errors.New("deadlock"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			orderEvts := &fakeProducer[event.OrderEvent]{}
			retryEvts := &fakeProducer[event.ConfirmationRetryEvent]{}
			svc := NewService(m.repo, m.preorderSvc, m.notifySvc, newRenderer(t), m.userSvc,
				fakeGenerator{sn: "CMD-0001"}, orderEvts, retryEvts)

			order, err := svc.CreateOrder(context.Background(), tc.input())
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					require.EqualError(t, err, tc.wantErr.Error())
				}
				assert.Empty(t, orderEvts.events())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantOrder, order)

			evts := orderEvts.events()
			require.Len(t, evts, 1)
			assert.Equal(t, event.OrderEventTypeCreated, evts[0].Type)
			assert.Equal(t, int64(10), evts[0].OrderId)
			assert.Equal(t, int64(419), evts[0].Total)
			assert.Equal(t, "pending", evts[0].Status)
			assert.NotEmpty(t, evts[0].EventId)

			retries := retryEvts.events()
			require.Len(t, retries, tc.wantRetry)
			for _, r := range retries {
				assert.Equal(t, int64(10), r.OrderId)
				assert.Equal(t, int64(12), r.Uid)
				assert.Equal(t, int64(3), r.CampaignId)
			}
		})
	}
}

func TestService_CreateOrder_InvalidInputIsWrapped(t *testing.T) {
	assert.ErrorIs(t, ErrPaymentMethodRequired, ErrInvalidInput)
	assert.ErrorIs(t, ErrInvalidCartons, ErrInvalidInput)
	assert.ErrorIs(t, ErrInvalidStatus, ErrInvalidInput)
}

func TestService_UpdateCartons(t *testing.T) {
	existing := domain.Order{
		Id:          10,
		Uid:         12,
		CampaignId:  3,
		OrderNumber: "CMD-0001",
		Cartons:     6,
		Total:       419,
		Status:      domain.StatusPending,
	}
	testCases := []struct {
		name    string
		input   UpdateCartonsInput
		mock    func(m mocks)
		want    domain.Order
		wantErr error
	}{
		{
			name:  "修改成功并重新计价",
			input: UpdateCartonsInput{Uid: 12, OrderId: 10, Cartons: 13},
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(10)).Return(existing, nil)
				m.preorderSvc.EXPECT().FindById(gomock.Any(), int64(3)).Return(openCampaign, nil)
				m.repo.EXPECT().UpdateCartons(gomock.Any(), int64(10), int64(12), int64(13), int64(878)).Return(nil)
			},
			want: domain.Order{
				Id:          10,
				Uid:         12,
				CampaignId:  3,
				OrderNumber: "CMD-0001",
				Cartons:     13,
				Total:       878,
				Status:      domain.StatusPending,
			},
		},
		{
			name:    "未登录",
			input:   UpdateCartonsInput{OrderId: 10, Cartons: 13},
			mock:    func(m mocks) {},
			wantErr: ErrUnauthenticated,
		},
		{
			name:  "订单不存在",
			input: UpdateCartonsInput{Uid: 12, OrderId: 10, Cartons: 13},
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(10)).Return(domain.Order{}, repository.ErrOrderNotFound)
			},
			wantErr: ErrOrderNotFound,
		},
		{
			name:  "不是自己的订单",
			input: UpdateCartonsInput{Uid: 13, OrderId: 10, Cartons: 13},
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(10)).Return(existing, nil)
			},
			wantErr: ErrUnauthorized,
		},
		{
			name:  "预售已关闭",
			input: UpdateCartonsInput{Uid: 12, OrderId: 10, Cartons: 13},
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(10)).Return(existing, nil)
				m.preorderSvc.EXPECT().FindById(gomock.Any(), int64(3)).Return(closedCampaign, nil)
			},
			wantErr: ErrCampaignNotOpen,
		},
		{
			name:  "检查之后预售被关闭",
			input: UpdateCartonsInput{Uid: 12, OrderId: 10, Cartons: 13},
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(10)).Return(existing, nil)
				m.preorderSvc.EXPECT().FindById(gomock.Any(), int64(3)).Return(openCampaign, nil)
				m.repo.EXPECT().UpdateCartons(gomock.Any(), int64(10), int64(12), int64(13), int64(878)).
					Return(repository.ErrCampaignNotOpen)
			},
			wantErr: ErrCampaignNotOpen,
		},
		{
			name:  "箱数非法",
			input: UpdateCartonsInput{Uid: 12, OrderId: 10, Cartons: -1},
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(10)).Return(existing, nil)
				m.preorderSvc.EXPECT().FindById(gomock.Any(), int64(3)).Return(openCampaign, nil)
			},
			wantErr: ErrInvalidCartons,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			orderEvts := &fakeProducer[event.OrderEvent]{}
			svc := NewService(m.repo, m.preorderSvc, m.notifySvc, newRenderer(t), m.userSvc,
				fakeGenerator{}, orderEvts, &fakeProducer[event.ConfirmationRetryEvent]{})

			order, err := svc.UpdateCartons(context.Background(), tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				assert.Empty(t, orderEvts.events())
				return
			}
			assert.Equal(t, tc.want, order)
			evts := orderEvts.events()
			require.Len(t, evts, 1)
			assert.Equal(t, event.OrderEventTypeCartonsUpdated, evts[0].Type)
			assert.Equal(t, int64(878), evts[0].Total)
		})
	}
}

func TestService_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name    string
		status  domain.Status
		mock    func(m mocks)
		wantErr error
	}{
		{
			name:   "修改成功",
			status: domain.StatusConfirmed,
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(10)).
					Return(domain.Order{Id: 10, Uid: 12, CampaignId: 3, Status: domain.StatusPending}, nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(10), domain.StatusConfirmed).Return(nil)
			},
		},
		{
			name:    "非法状态",
			status:  domain.Status("shipped"),
			mock:    func(m mocks) {},
			wantErr: ErrInvalidStatus,
		},
		{
			name:   "订单不存在",
			status: domain.StatusDelivered,
			mock: func(m mocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(10)).Return(domain.Order{}, repository.ErrOrderNotFound)
			},
			wantErr: ErrOrderNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			orderEvts := &fakeProducer[event.OrderEvent]{}
			svc := NewService(m.repo, m.preorderSvc, m.notifySvc, newRenderer(t), m.userSvc,
				fakeGenerator{}, orderEvts, &fakeProducer[event.ConfirmationRetryEvent]{})

			err := svc.UpdateStatus(context.Background(), 10, tc.status)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			evts := orderEvts.events()
			require.Len(t, evts, 1)
			assert.Equal(t, event.OrderEventTypeStatusUpdated, evts[0].Type)
			assert.Equal(t, "confirmed", evts[0].Status)
		})
	}
}

func TestService_SendConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)
	order := domain.Order{Id: 10, Uid: 12, CampaignId: 3, OrderNumber: "CMD-0001", Cartons: 6, Total: 419}
	m.repo.EXPECT().FindById(gomock.Any(), int64(10)).Return(order, nil)
	m.userSvc.EXPECT().Profile(gomock.Any(), int64(12)).Return(alice, nil)
	m.notifySvc.EXPECT().SendOnce(gomock.Any(), gomock.Any()).Return(notification.SendResultSkipped, nil)
	svc := NewService(m.repo, m.preorderSvc, m.notifySvc, newRenderer(t), m.userSvc,
		fakeGenerator{}, &fakeProducer[event.OrderEvent]{}, &fakeProducer[event.ConfirmationRetryEvent]{})

	res, err := svc.SendConfirmation(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, notification.SendResultSkipped, res)
}

func TestService_ProducerFailureDoesNotFailOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)
	m.repo.EXPECT().FindById(gomock.Any(), int64(10)).
		Return(domain.Order{Id: 10, Uid: 12, CampaignId: 3, Status: domain.StatusPending}, nil)
	m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(10), domain.StatusCancelled).Return(nil)
	svc := NewService(m.repo, m.preorderSvc, m.notifySvc, newRenderer(t), m.userSvc,
		fakeGenerator{}, &fakeProducer[event.OrderEvent]{err: errors.New("broker down")},
		&fakeProducer[event.ConfirmationRetryEvent]{})

	err := svc.UpdateStatus(context.Background(), 10, domain.StatusCancelled)
	assert.NoError(t, err)
}
