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

	"github.com/noahrognon/commande-appli/internal/notification/internal/domain"
	"github.com/noahrognon/commande-appli/internal/notification/internal/repository"
	repomocks "github.com/noahrognon/commande-appli/internal/notification/internal/repository/mocks"
	"github.com/noahrognon/commande-appli/internal/service/email"
	emailmocks "github.com/noahrognon/commande-appli/internal/service/email/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRequest() domain.SendRequest {
	return domain.SendRequest{
		Kind:       domain.PreorderReminder(2),
		Recipient:  domain.Recipient{Uid: 12, Email: "client@example.com", FirstName: "Alice"},
		CampaignId: 3,
		OrderId:    99,
		Render: func(r domain.Recipient) (domain.Message, error) {
			return domain.Message{Subject: "Rappel precommande: J-2", HTML: "<p>" + r.FirstName + "</p>", Text: r.FirstName}, nil
		},
	}
}

func TestService_SendOnce(t *testing.T) {
	key := newRequest().Key()
	wantMail := email.Mail{
		To:      "client@example.com",
		Subject: "Rappel precommande: J-2",
		HTML:    "<p>Alice</p>",
		Text:    "Alice",
	}
	testCases := []struct {
		name    string
		req     func() domain.SendRequest
		mock    func(ctrl *gomock.Controller) (repository.EmailLogRepository, email.Service)
		want    domain.SendResult
		wantErr error
	}{
		{
			name: "首次发送",
			req:  newRequest,
			mock: func(ctrl *gomock.Controller) (repository.EmailLogRepository, email.Service) {
				repo := repomocks.NewMockEmailLogRepository(ctrl)
				transport := emailmocks.NewMockService(ctrl)
				repo.EXPECT().IsSent(gomock.Any(), key).Return(false, nil)
				transport.EXPECT().Send(gomock.Any(), wantMail).Return(nil)
				repo.EXPECT().Record(gomock.Any(), key, int64(99)).Return(nil)
				return repo, transport
			},
			want: domain.SendResultSent,
		},
		{
			name: "已经发送过",
			req:  newRequest,
			mock: func(ctrl *gomock.Controller) (repository.EmailLogRepository, email.Service) {
				repo := repomocks.NewMockEmailLogRepository(ctrl)
				repo.EXPECT().IsSent(gomock.Any(), key).Return(true, nil)
				return repo, emailmocks.NewMockService(ctrl)
			},
			want: domain.SendResultSkipped,
		},
		{
			name: "邮件发送失败,不落库",
			req:  newRequest,
			mock: func(ctrl *gomock.Controller) (repository.EmailLogRepository, email.Service) {
				repo := repomocks.NewMockEmailLogRepository(ctrl)
				transport := emailmocks.NewMockService(ctrl)
				repo.EXPECT().IsSent(gomock.Any(), key).Return(false, nil)
				transport.EXPECT().Send(gomock.Any(), wantMail).Return(context.DeadlineExceeded)
				return repo, transport
			},
			want:    domain.SendResultFailed,
			wantErr: ErrTransport,
		},
		{
			name: "落库时唯一索引冲突",
			req:  newRequest,
			mock: func(ctrl *gomock.Controller) (repository.EmailLogRepository, email.Service) {
				repo := repomocks.NewMockEmailLogRepository(ctrl)
				transport := emailmocks.NewMockService(ctrl)
				repo.EXPECT().IsSent(gomock.Any(), key).Return(false, nil)
				transport.EXPECT().Send(gomock.Any(), wantMail).Return(nil)
				repo.EXPECT().Record(gomock.Any(), key, int64(99)).Return(repository.ErrDuplicatedEmailLog)
				return repo, transport
			},
			want: domain.SendResultSkipped,
		},
		{
			name: "落库失败",
			req:  newRequest,
			mock: func(ctrl *gomock.Controller) (repository.EmailLogRepository, email.Service) {
				repo := repomocks.NewMockEmailLogRepository(ctrl)
				transport := emailmocks.NewMockService(ctrl)
				repo.EXPECT().IsSent(gomock.Any(), key).Return(false, nil)
				transport.EXPECT().Send(gomock.Any(), wantMail).Return(nil)
				repo.EXPECT().Record(gomock.Any(), key, int64(99)).Return(errors.New("lock wait timeout"))
				return repo, transport
			},
			want:    domain.SendResultFailed,
			wantErr: ErrStorage,
		},
		{
			name: "查询记录失败",
			req:  newRequest,
			mock: func(ctrl *gomock.Controller) (repository.EmailLogRepository, email.Service) {
				repo := repomocks.NewMockEmailLogRepository(ctrl)
				repo.EXPECT().IsSent(gomock.Any(), key).Return(false, errors.New("db down"))
				return repo, emailmocks.NewMockService(ctrl)
			},
			want:    domain.SendResultFailed,
			wantErr: ErrStorage,
		},
		{
			name: "渲染失败",
			req: func() domain.SendRequest {
				req := newRequest()
				req.Render = func(r domain.Recipient) (domain.Message, error) {
					return domain.Message{}, errors.New("bad template")
				}
				return req
			},
			mock: func(ctrl *gomock.Controller) (repository.EmailLogRepository, email.Service) {
				repo := repomocks.NewMockEmailLogRepository(ctrl)
				repo.EXPECT().IsSent(gomock.Any(), key).Return(false, nil)
				return repo, emailmocks.NewMockService(ctrl)
			},
			want:    domain.SendResultFailed,
			wantErr: errors.New("bad template"),
		},
		{
			name: "没有收件人邮箱",
			req: func() domain.SendRequest {
				req := newRequest()
				req.Recipient.Email = ""
				return req
			},
			mock: func(ctrl *gomock.Controller) (repository.EmailLogRepository, email.Service) {
				return repomocks.NewMockEmailLogRepository(ctrl), emailmocks.NewMockService(ctrl)
			},
			want:    domain.SendResultFailed,
			wantErr: ErrInvalidSendRequest,
		},
		{
			name: "非法的通知类型",
			req: func() domain.SendRequest {
				req := newRequest()
				req.Kind = domain.PreorderReminder(0)
				return req
			},
			mock: func(ctrl *gomock.Controller) (repository.EmailLogRepository, email.Service) {
				return repomocks.NewMockEmailLogRepository(ctrl), emailmocks.NewMockService(ctrl)
			},
			want:    domain.SendResultFailed,
			wantErr: ErrInvalidSendRequest,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, transport := tc.mock(ctrl)
			svc := NewService(repo, transport, Config{})
			got, err := svc.SendOnce(context.Background(), tc.req())
			assert.Equal(t, tc.want, got)
			switch {
			case tc.wantErr == nil:
				assert.NoError(t, err)
			case errors.Is(err, tc.wantErr):
			default:
				assert.EqualError(t, err, tc.wantErr.Error())
			}
		})
	}
}

// memoryRepository 模拟数据库上的唯一索引
type memoryRepository struct {
	mu   sync.Mutex
	logs map[domain.Key]int64
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{logs: map[domain.Key]int64{}}
}

func (m *memoryRepository) IsSent(_ context.Context, key domain.Key) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.logs[key]
	return ok, nil
}

func (m *memoryRepository) Record(_ context.Context, key domain.Key, orderId int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.logs[key]; ok {
		return repository.ErrDuplicatedEmailLog
	}
	m.logs[key] = orderId
	return nil
}

type countingTransport struct {
	mu    sync.Mutex
	mails []email.Mail
	err   error
}

func (c *countingTransport) Send(_ context.Context, mail email.Mail) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.mails = append(c.mails, mail)
	return nil
}

func TestService_SendOnce_SentThenSkipped(t *testing.T) {
	repo := newMemoryRepository()
	transport := &countingTransport{}
	svc := NewService(repo, transport, Config{})

	res, err := svc.SendOnce(context.Background(), newRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.SendResultSent, res)

	res, err = svc.SendOnce(context.Background(), newRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.SendResultSkipped, res)

	assert.Len(t, transport.mails, 1)
	assert.Len(t, repo.logs, 1)
}

func TestService_SendOnce_FailedIsRetryable(t *testing.T) {
	repo := newMemoryRepository()
	transport := &countingTransport{err: errors.New("smtp: 421 service not available")}
	svc := NewService(repo, transport, Config{})

	res, err := svc.SendOnce(context.Background(), newRequest())
	assert.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, domain.SendResultFailed, res)
	assert.Len(t, repo.logs, 0)

	transport.err = nil
	res, err = svc.SendOnce(context.Background(), newRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.SendResultSent, res)
	assert.Len(t, transport.mails, 1)
}

func TestService_SendOnce_Concurrent(t *testing.T) {
	repo := newMemoryRepository()
	transport := &countingTransport{}
	svc := NewService(repo, transport, Config{})

	const n = 20
	results := make([]domain.SendResult, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			res, err := svc.SendOnce(context.Background(), newRequest())
			assert.NoError(t, err)
			results[idx] = res
		}(i)
	}
	wg.Wait()

	sent := 0
	for _, res := range results {
		if res == domain.SendResultSent {
			sent++
			continue
		}
		assert.Equal(t, domain.SendResultSkipped, res)
	}
	assert.Equal(t, 1, sent)
	assert.Len(t, transport.mails, 1)
	assert.Len(t, repo.logs, 1)
}

func TestService_SendOnce_DistinctKeys(t *testing.T) {
	repo := newMemoryRepository()
	transport := &countingTransport{}
	svc := NewService(repo, transport, Config{})

	for _, kind := range []domain.Kind{domain.PreorderReminder(3), domain.PreorderReminder(2), domain.SupplierOrderSent()} {
		req := newRequest()
		req.Kind = kind
		res, err := svc.SendOnce(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, domain.SendResultSent, res)
	}
	assert.Len(t, transport.mails, 3)
}

func TestService_SendTestEmail(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		to      string
		err     error
		wantTo  string
		wantErr error
	}{
		{name: "使用配置的收件人", cfg: Config{TestRecipient: "ops@example.com"}, wantTo: "ops@example.com"},
		{name: "使用请求里的收件人", cfg: Config{TestRecipient: "ops@example.com"}, to: "me@example.com", wantTo: "me@example.com"},
		{name: "没有收件人", wantErr: ErrNoTestRecipient},
		{name: "发送失败", to: "me@example.com", err: errors.New("auth failed"), wantTo: "me@example.com", wantErr: ErrTransport},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			transport := &countingTransport{err: tc.err}
			svc := NewService(newMemoryRepository(), transport, tc.cfg)
			to, err := svc.SendTestEmail(context.Background(), tc.to)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantTo, to)
			if tc.wantErr == nil {
				require.Len(t, transport.mails, 1)
				assert.Equal(t, "Test email OK", transport.mails[0].Subject)
			}
		})
	}
}
