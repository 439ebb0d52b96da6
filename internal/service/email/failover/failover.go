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

package failover

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/noahrognon/commande-appli/internal/service/email"
	"go.uber.org/zap"
)

// Service 轮询多个通道, 直到有一个成功
type Service struct {
	svcs []email.Service
	idx  uint64
}

func NewService(svcs []email.Service) *Service {
	return &Service{
		svcs: svcs,
	}
}

func (f *Service) Send(ctx context.Context, mail email.Mail) error {
	idx := atomic.AddUint64(&f.idx, 1)
	length := uint64(len(f.svcs))
	for i := idx; i < idx+length; i++ {
		err := f.svcs[i%length].Send(ctx, mail)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
			return err
		default:
			zap.L().Warn("邮件通道发送失败", zap.Uint64("channel", i%length), zap.Error(err))
		}
	}
	return email.ErrAllFailed
}
