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
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/noahrognon/commande-appli/internal/preorder/internal/service"
)

const (
	defaultExtendHours = 24
	// maxExtendHours 一次最多延长一年, 避免换算成 time.Duration 时溢出
	maxExtendHours = 24 * 365
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/preorder/close", ginx.W(h.Close))
	server.POST("/preorder/extend", ginx.B[ExtendReq](h.Extend))
}

// Close 关闭当前进行中的预售
func (h *AdminHandler) Close(ctx *ginx.Context) (ginx.Result, error) {
	c, err := h.svc.FindOpen(ctx)
	if errors.Is(err, service.ErrNoOpenCampaign) {
		return nothingToDoResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	err = h.svc.Close(ctx, c.Id)
	// 并发关闭时另一个请求先成功了
	if errors.Is(err, service.ErrNoOpenCampaign) {
		return nothingToDoResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ActionResult{
			Success:    true,
			CampaignId: c.Id,
		},
	}, nil
}

// Extend 延长当前进行中的预售
func (h *AdminHandler) Extend(ctx *ginx.Context, req ExtendReq) (ginx.Result, error) {
	hours := req.Hours
	if hours == 0 {
		hours = defaultExtendHours
	}
	if hours < 0 || hours > maxExtendHours {
		return invalidInputResult, nil
	}
	c, err := h.svc.FindOpen(ctx)
	if errors.Is(err, service.ErrNoOpenCampaign) {
		return nothingToDoResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	endDate, err := h.svc.Extend(ctx, c.Id, time.Duration(hours)*time.Hour)
	if errors.Is(err, service.ErrNoOpenCampaign) {
		return nothingToDoResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ActionResult{
			Success:    true,
			CampaignId: c.Id,
			EndDate:    endDate.UnixMilli(),
		},
	}, nil
}
