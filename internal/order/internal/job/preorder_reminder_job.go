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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/noahrognon/commande-appli/internal/order/internal/service"
)

// PreorderReminderJob 每天执行一次, 重复执行由去重保证不会重复发送
type PreorderReminderJob struct {
	svc     service.SweepService
	timeout time.Duration
	nowFunc func() time.Time
	logger  *elog.Component
}

func NewPreorderReminderJob(svc service.SweepService, timeout time.Duration) *PreorderReminderJob {
	return &PreorderReminderJob{
		svc:     svc,
		timeout: timeout,
		nowFunc: time.Now,
		logger:  elog.DefaultLogger,
	}
}

func (j *PreorderReminderJob) Name() string {
	return "PreorderReminderJob"
}

func (j *PreorderReminderJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()
	res, err := j.svc.RunReminders(ctx, j.nowFunc())
	if err != nil {
		return fmt.Errorf("发送预售提醒失败: %w", err)
	}
	if res.DaysLeft == nil {
		j.logger.Info("没有进行中的预售")
		return nil
	}
	j.logger.Info("发送预售提醒",
		elog.Int64("daysLeft", *res.DaysLeft),
		elog.Int("sentCount", res.SentCount))
	return nil
}
