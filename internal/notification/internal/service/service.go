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
	"hash/fnv"
	"sync"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/noahrognon/commande-appli/internal/notification/internal/domain"
	"github.com/noahrognon/commande-appli/internal/notification/internal/repository"
	"github.com/noahrognon/commande-appli/internal/service/email"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ErrInvalidSendRequest = errors.New("非法的通知请求")
	ErrTransport          = errors.New("邮件发送失败")
	ErrStorage            = errors.New("邮件记录存储失败")
	ErrNoTestRecipient    = errors.New("未配置测试邮件收件人")
)

const lockStripes = 64

var sendTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "notification_send_total",
	Help: "Number of deduplicated notification attempts by kind and result",
}, []string{"kind", "result"})

//go:generate mockgen -source=./service.go -package=notificationmocks -destination=../../mocks/notification.mock.go Service
type Service interface {
	// SendOnce 同一个 (kind, uid, campaign) 最多成功发送一次.
	// 返回 failed 时 error 说明原因, 可以重试
	SendOnce(ctx context.Context, req domain.SendRequest) (domain.SendResult, error)
	// SendTestEmail to 为空时发给配置的测试收件人, 不经过去重
	SendTestEmail(ctx context.Context, to string) (string, error)
}

type Config struct {
	TestRecipient string
}

type service struct {
	repo      repository.EmailLogRepository
	transport email.Service
	cfg       Config
	// 同一个进程内, 相同去重键的发送串行执行
	locks  [lockStripes]sync.Mutex
	logger *elog.Component
}

func NewService(repo repository.EmailLogRepository, transport email.Service, cfg Config) Service {
	return &service{
		repo:      repo,
		transport: transport,
		cfg:       cfg,
		logger:    elog.DefaultLogger.With(elog.FieldComponent("notification")),
	}
}

func (s *service) SendOnce(ctx context.Context, req domain.SendRequest) (domain.SendResult, error) {
	res, err := s.sendOnce(ctx, req)
	sendTotal.WithLabelValues(req.Kind.Key(), res.String()).Inc()
	return res, err
}

func (s *service) sendOnce(ctx context.Context, req domain.SendRequest) (domain.SendResult, error) {
	if !req.Kind.Valid() || req.Recipient.Email == "" || req.Render == nil {
		return domain.SendResultFailed, fmt.Errorf("%w: kind=%s uid=%d", ErrInvalidSendRequest, req.Kind.Key(), req.Recipient.Uid)
	}
	key := req.Key()
	mu := s.lock(key)
	mu.Lock()
	defer mu.Unlock()

	sent, err := s.repo.IsSent(ctx, key)
	if err != nil {
		return domain.SendResultFailed, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if sent {
		return domain.SendResultSkipped, nil
	}

	msg, err := req.Render(req.Recipient)
	if err != nil {
		return domain.SendResultFailed, err
	}
	start := time.Now()
	err = s.transport.Send(ctx, email.Mail{
		To:      req.Recipient.Email,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		// 不落库, 下次还可以重试
		return domain.SendResultFailed, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	s.logger.Debug("邮件已发送", elog.FieldKey(key.String()), elog.FieldCost(time.Since(start)))

	err = s.repo.Record(ctx, key, req.OrderId)
	switch {
	case err == nil:
		return domain.SendResultSent, nil
	case errors.Is(err, repository.ErrDuplicatedEmailLog):
		// 别的实例抢先落库了
		return domain.SendResultSkipped, nil
	default:
		s.logger.Error("邮件已发送但记录失败",
			elog.FieldErr(err),
			elog.FieldKey(key.String()),
			elog.Int64("orderId", req.OrderId))
		return domain.SendResultFailed, fmt.Errorf("%w: %w", ErrStorage, err)
	}
}

func (s *service) SendTestEmail(ctx context.Context, to string) (string, error) {
	if to == "" {
		to = s.cfg.TestRecipient
	}
	if to == "" {
		return "", ErrNoTestRecipient
	}
	err := s.transport.Send(ctx, email.Mail{
		To:      to,
		Subject: "Test email OK",
		HTML:    "<p>Email de test OK.</p>",
		Text:    "Email de test OK.",
	})
	if err != nil {
		return to, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return to, nil
}

func (s *service) lock(key domain.Key) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key.String()))
	return &s.locks[h.Sum32()%lockStripes]
}
