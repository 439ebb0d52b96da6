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

type Handler struct {
	svc     service.Service
	nowFunc func() time.Time
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:     svc,
		nowFunc: time.Now,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/preorder/current", ginx.W(h.Current))
}

// Current 当前进行中的预售
func (h *Handler) Current(ctx *ginx.Context) (ginx.Result, error) {
	c, err := h.svc.FindOpen(ctx)
	if errors.Is(err, service.ErrNoOpenCampaign) {
		return noOpenCampaignResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newCampaign(c, h.nowFunc()),
	}, nil
}
