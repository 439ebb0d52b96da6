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
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/noahrognon/commande-appli/internal/notification"
	"github.com/noahrognon/commande-appli/internal/pkg/mqx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	orderIds []int64
	res      notification.SendResult
	err      error
}

func (f *fakeSender) SendConfirmation(_ context.Context, orderId int64) (notification.SendResult, error) {
	f.orderIds = append(f.orderIds, orderId)
	return f.res, f.err
}

func TestConfirmationRetryConsumer_Consume(t *testing.T) {
	testCases := []struct {
		name    string
		sender  *fakeSender
		wantErr error
	}{
		{
			name:   "重新发送成功",
			sender: &fakeSender{res: notification.SendResultSent},
		},
		{
			name:   "之前已经发送过",
			sender: &fakeSender{res: notification.SendResultSkipped},
		},
		{
			name:    "仍然失败",
			sender:  &fakeSender{res: notification.SendResultFailed, err: context.DeadlineExceeded},
			wantErr: context.DeadlineExceeded,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			q := memory.NewMQ()
			require.NoError(t, q.CreateTopic(ctx, ConfirmationRetryEventName, 1))
			consumer, err := NewConfirmationRetryConsumer(tc.sender, q)
			require.NoError(t, err)
			producer, err := mqx.NewGeneralProducer[ConfirmationRetryEvent](q, ConfirmationRetryEventName)
			require.NoError(t, err)
			require.NoError(t, producer.Produce(ctx, ConfirmationRetryEvent{
				EventId:    "evt-1",
				OrderId:    10,
				Uid:        12,
				CampaignId: 3,
			}))

			err = consumer.Consume(ctx)
			assert.True(t, errors.Is(err, tc.wantErr))
			assert.Equal(t, []int64{10}, tc.sender.orderIds)
			assert.NoError(t, consumer.Stop(ctx))
		})
	}
}
