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

package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
	"github.com/noahrognon/commande-appli/internal/notification"
)

const confirmationRetryGroupID = "order_confirmation_retry_group"

// ConfirmationSender 重新发送订单确认邮件, 由 service.Service 实现
type ConfirmationSender interface {
	SendConfirmation(ctx context.Context, orderId int64) (notification.SendResult, error)
}

// ConfirmationRetryConsumer 消费同步发送失败的确认邮件, 去重保证重复投递不会重复发送
type ConfirmationRetryConsumer struct {
	sender   ConfirmationSender
	consumer mq.Consumer
	logger   *elog.Component
}

func NewConfirmationRetryConsumer(sender ConfirmationSender, q mq.MQ) (*ConfirmationRetryConsumer, error) {
	consumer, err := q.Consumer(ConfirmationRetryEventName, confirmationRetryGroupID)
	if err != nil {
		return nil, err
	}
	return &ConfirmationRetryConsumer{
		sender:   sender,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *ConfirmationRetryConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if errors.Is(er, context.Canceled) || errors.Is(er, context.DeadlineExceeded) {
				return
			}
			if er != nil {
				c.logger.Error("重新发送订单确认邮件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *ConfirmationRetryConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt ConfirmationRetryEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	res, err := c.sender.SendConfirmation(ctx, evt.OrderId)
	if res == notification.SendResultFailed {
		return fmt.Errorf("发送失败 eventId=%s orderId=%d: %w", evt.EventId, evt.OrderId, err)
	}
	c.logger.Info("重新发送订单确认邮件",
		elog.String("eventId", evt.EventId),
		elog.Int64("orderId", evt.OrderId),
		elog.String("result", res.String()))
	return nil
}

func (c *ConfirmationRetryConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
