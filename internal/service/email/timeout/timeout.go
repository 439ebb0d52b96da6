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

package timeout

import (
	"context"
	"fmt"
	"time"

	"github.com/noahrognon/commande-appli/internal/service/email"
)

// Service 给每次发送加上超时, 超时按失败处理
type Service struct {
	svc     email.Service
	timeout time.Duration
}

func NewService(svc email.Service, timeout time.Duration) *Service {
	return &Service{
		svc:     svc,
		timeout: timeout,
	}
}

func (s *Service) Send(ctx context.Context, mail email.Mail) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	err := s.svc.Send(ctx, mail)
	if err != nil && ctx.Err() != nil {
		return fmt.Errorf("发送邮件超时 %s: %w", s.timeout, ctx.Err())
	}
	return err
}
