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

package web

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/noahrognon/commande-appli/internal/preorder/internal/domain"
	"github.com/noahrognon/commande-appli/internal/preorder/internal/errs"
	"github.com/noahrognon/commande-appli/internal/preorder/internal/service"
	preordermocks "github.com/noahrognon/commande-appli/internal/preorder/mocks"
	"github.com/noahrognon/commande-appli/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Current(t *testing.T) {
	now := time.Date(2026, 3, 17, 20, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 20, 18, 0, 0, 0, time.UTC)
	testCases := []struct {
		name     string
		mock     func(svc *preordermocks.MockService)
		wantCode int
		wantRes  test.Result[Campaign]
	}{
		{
			name: "有进行中的预售",
			mock: func(svc *preordermocks.MockService) {
				svc.EXPECT().FindOpen(gomock.Any()).Return(domain.Campaign{
					Id:      3,
					Name:    "Printemps",
					Status:  domain.CampaignStatusOpen,
					EndDate: end,
				}, nil)
			},
			wantCode: http.StatusOK,
			wantRes: test.Result[Campaign]{
				Data: Campaign{
					Id:       3,
					Name:     "Printemps",
					Status:   "open",
					EndDate:  end.UnixMilli(),
					DaysLeft: 2,
				},
			},
		},
		{
			name: "没有进行中的预售",
			mock: func(svc *preordermocks.MockService) {
				svc.EXPECT().FindOpen(gomock.Any()).Return(domain.Campaign{}, service.ErrNoOpenCampaign)
			},
			wantCode: http.StatusOK,
			wantRes: test.Result[Campaign]{
				Code: errs.NoOpenCampaign.Code,
				Msg:  errs.NoOpenCampaign.Msg,
			},
		},
		{
			name: "系统错误",
			mock: func(svc *preordermocks.MockService) {
				svc.EXPECT().FindOpen(gomock.Any()).Return(domain.Campaign{}, errors.New("db error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := preordermocks.NewMockService(ctrl)
			tc.mock(svc)
			hdl := NewHandler(svc)
			hdl.nowFunc = func() time.Time { return now }
			server := newServer(t, hdl.PublicRoutes)

			req, err := http.NewRequest(http.MethodGet, "/preorder/current", nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[Campaign]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode != http.StatusOK {
				return
			}
			assert.Equal(t, tc.wantRes, recorder.MustScan())
		})
	}
}
