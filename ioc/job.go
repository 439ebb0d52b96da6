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

package ioc

import (
	"context"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/noahrognon/commande-appli/internal/order"
)

func initCronJobs(om *order.Module) []ecron.Ecron {
	return []ecron.Ecron{
		ecron.Load("cron.reminder").Build(ecron.WithJob(funcJobWrapper(om.ReminderJob))),
	}
}

// funcJobWrapper 统一记录任务耗时和错误, 错误仍然返回给 ecron
func funcJobWrapper(job ecron.NamedJob) ecron.FuncJob {
	logger := elog.DefaultLogger.With(elog.String("cronjob", job.Name()))
	return func(ctx context.Context) error {
		start := time.Now()
		logger.Debug("开始运行")
		err := job.Run(ctx)
		cost := time.Since(start)
		if err != nil {
			logger.Error("执行失败", elog.FieldErr(err), elog.FieldCost(cost))
			return err
		}
		logger.Info("执行完成", elog.FieldCost(cost))
		return nil
	}
}
