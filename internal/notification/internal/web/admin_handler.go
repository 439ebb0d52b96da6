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

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/noahrognon/commande-appli/internal/notification/internal/service"
)

type AdminHandler struct {
	svc    service.Service
	logger *elog.Component
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/notification/test-email", ginx.B[TestEmailReq](h.TestEmail))
}

// TestEmail 直接走邮件通道, 用来检查 SMTP 配置
func (h *AdminHandler) TestEmail(ctx *ginx.Context, req TestEmailReq) (ginx.Result, error) {
	to, err := h.svc.SendTestEmail(ctx, req.To)
	switch {
	case err == nil:
		return ginx.Result{
			Data: TestEmailResp{Ok: true, To: to},
		}, nil
	case errors.Is(err, service.ErrNoTestRecipient):
		return noTestRecipientResult, nil
	case errors.Is(err, service.ErrTransport):
		h.logger.Error("发送测试邮件失败", elog.FieldErr(err), elog.String("to", to))
		return sendFailedResult, nil
	default:
		return systemErrorResult, err
	}
}
