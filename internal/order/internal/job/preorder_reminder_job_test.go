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
	"errors"
	"testing"
	"time"

	"github.com/noahrognon/commande-appli/internal/order/internal/service"
	ordermocks "github.com/noahrognon/commande-appli/internal/order/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPreorderReminderJob_Run(t *testing.T) {
	now := time.Date(2026, 3, 18, 8, 0, 0, 0, time.UTC)
	days := int64(2)
	testCases := []struct {
		name    string
		mock    func(svc *ordermocks.MockSweepService)
		wantErr error
	}{
		{
			name: "发送提醒",
			mock: func(svc *ordermocks.MockSweepService) {
				svc.EXPECT().RunReminders(gomock.Any(), now).Return(service.ReminderResult{SentCount: 3, DaysLeft: &days}, nil)
			},
		},
		{
			name: "没有进行中的预售",
			mock: func(svc *ordermocks.MockSweepService) {
				svc.EXPECT().RunReminders(gomock.Any(), now).Return(service.ReminderResult{}, nil)
			},
		},
		{
			name: "查询失败",
			mock: func(svc *ordermocks.MockSweepService) {
				svc.EXPECT().RunReminders(gomock.Any(), now).Return(service.ReminderResult{}, context.DeadlineExceeded)
			},
			wantErr: context.DeadlineExceeded,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := ordermocks.NewMockSweepService(ctrl)
			tc.mock(svc)
			job := NewPreorderReminderJob(svc, time.Second)
			job.nowFunc = func() time.Time { return now }
			err := job.Run(context.Background())
			assert.True(t, errors.Is(err, tc.wantErr))
			assert.Equal(t, "PreorderReminderJob", job.Name())
		})
	}
}
