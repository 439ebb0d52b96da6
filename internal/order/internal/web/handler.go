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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/noahrognon/commande-appli/internal/order/internal/domain"
	"github.com/noahrognon/commande-appli/internal/order/internal/service"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/create", ginx.BS[CreateOrderReq](h.Create))
	g.POST("/cartons", ginx.BS[UpdateCartonsReq](h.UpdateCartons))
	g.GET("/list", ginx.S(h.List))
}

// Create 下单, 确认邮件发送失败不影响下单结果
func (h *Handler) Create(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.CreateOrder(ctx, req.toInput(sess.Claims().Uid))
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: newOrder(order),
	}, nil
}

func (h *Handler) UpdateCartons(ctx *ginx.Context, req UpdateCartonsReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.UpdateCartons(ctx, service.UpdateCartonsInput{
		Uid:     sess.Claims().Uid,
		OrderId: req.OrderId,
		Cartons: req.Cartons,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: newOrder(order),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	orders, err := h.svc.ListByUid(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: OrderList{
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return newOrder(src)
			}),
		},
	}, nil
}
