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
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/noahrognon/commande-appli/internal/order/internal/domain"
	"github.com/noahrognon/commande-appli/internal/order/internal/service"
)

type AdminHandler struct {
	svc      service.Service
	sweepSvc service.SweepService
	nowFunc  func() time.Time
}

func NewAdminHandler(svc service.Service, sweepSvc service.SweepService) *AdminHandler {
	return &AdminHandler{
		svc:      svc,
		sweepSvc: sweepSvc,
		nowFunc:  time.Now,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/order/status", ginx.B[UpdateStatusReq](h.UpdateStatus))
	server.POST("/order/supplier-notify", ginx.B[CampaignReq](h.NotifySupplier))
	server.POST("/order/stock-received", ginx.B[CampaignReq](h.NotifyStockReceived))
	server.POST("/preorder/reminders/run", ginx.W(h.RunReminders))
}

func (h *AdminHandler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq) (ginx.Result, error) {
	err := h.svc.UpdateStatus(ctx, req.OrderId, domain.Status(req.Status))
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) NotifySupplier(ctx *ginx.Context, req CampaignReq) (ginx.Result, error) {
	if req.CampaignId <= 0 {
		return invalidInputResult, nil
	}
	sent, err := h.sweepSvc.NotifySupplier(ctx, req.CampaignId)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: SweepResult{Ok: true, Sent: sent},
	}, nil
}

func (h *AdminHandler) NotifyStockReceived(ctx *ginx.Context, req CampaignReq) (ginx.Result, error) {
	if req.CampaignId <= 0 {
		return invalidInputResult, nil
	}
	sent, err := h.sweepSvc.NotifyStockReceived(ctx, req.CampaignId)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: SweepResult{Ok: true, Sent: sent},
	}, nil
}

// RunReminders 手动触发一次预售提醒, 和定时任务走同一套去重
func (h *AdminHandler) RunReminders(ctx *ginx.Context) (ginx.Result, error) {
	res, err := h.sweepSvc.RunReminders(ctx, h.nowFunc())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ReminderResult{
			SentCount: res.SentCount,
			DaysLeft:  res.DaysLeft,
		},
	}, nil
}
