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

package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/noahrognon/commande-appli/internal/service/email"
)

var ErrOverRetryTimes = errors.New("超过最大重试次数")

// Service 失败后按策略重试, 超时和取消不重试
type Service struct {
	svc       email.Service
	retryFunc func() retry.Strategy
}

func NewService(svc email.Service, fac func() retry.Strategy) *Service {
	return &Service{
		svc:       svc,
		retryFunc: fac,
	}
}

func (s *Service) Send(ctx context.Context, mail email.Mail) error {
	var retryTimer *time.Timer
	strategy := s.retryFunc()
	defer func() {
		if retryTimer != nil {
			retryTimer.Stop()
		}
	}()
	for {
		err := s.svc.Send(ctx, mail)
		if err == nil {
			return nil
		}
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return err
		}
		interval, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("%w: %w", ErrOverRetryTimes, err)
		}
		if retryTimer == nil {
			retryTimer = time.NewTimer(interval)
		} else {
			retryTimer.Reset(interval)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-retryTimer.C:
		}
	}
}
