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
	"errors"
	"testing"
	"time"

	"github.com/noahrognon/commande-appli/internal/service/email"
	emailmocks "github.com/noahrognon/commande-appli/internal/service/email/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_Send(t *testing.T) {
	mail := email.Mail{To: "to@example.com", Subject: "test"}
	errRejected := errors.New("rejected")
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) email.Service
		wantErr error
	}{
		{
			name: "按时完成",
			mock: func(ctrl *gomock.Controller) email.Service {
				svc := emailmocks.NewMockService(ctrl)
				svc.EXPECT().Send(gomock.Any(), mail).DoAndReturn(func(ctx context.Context, _ email.Mail) error {
					_, ok := ctx.Deadline()
					assert.True(t, ok)
					return nil
				})
				return svc
			},
		},
		{
			name: "通道报错",
			mock: func(ctrl *gomock.Controller) email.Service {
				svc := emailmocks.NewMockService(ctrl)
				svc.EXPECT().Send(gomock.Any(), mail).Return(errRejected)
				return svc
			},
			wantErr: errRejected,
		},
		{
			name: "超时",
			mock: func(ctrl *gomock.Controller) email.Service {
				svc := emailmocks.NewMockService(ctrl)
				svc.EXPECT().Send(gomock.Any(), mail).DoAndReturn(func(ctx context.Context, _ email.Mail) error {
					<-ctx.Done()
					return ctx.Err()
				})
				return svc
			},
			wantErr: context.DeadlineExceeded,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl), 20*time.Millisecond)
			err := svc.Send(context.Background(), mail)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
