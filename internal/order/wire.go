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

//go:build wireinject

package order

import (
	"strconv"
	"sync"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/noahrognon/commande-appli/internal/notification"
	"github.com/noahrognon/commande-appli/internal/order/internal/event"
	"github.com/noahrognon/commande-appli/internal/order/internal/job"
	"github.com/noahrognon/commande-appli/internal/order/internal/repository"
	"github.com/noahrognon/commande-appli/internal/order/internal/repository/dao"
	"github.com/noahrognon/commande-appli/internal/order/internal/service"
	"github.com/noahrognon/commande-appli/internal/order/internal/web"
	"github.com/noahrognon/commande-appli/internal/pkg/mqx"
	"github.com/noahrognon/commande-appli/internal/pkg/sequencenumber"
	"github.com/noahrognon/commande-appli/internal/preorder"
	"github.com/noahrognon/commande-appli/internal/user"
)

var ProviderSet = wire.NewSet(
	web.NewHandler,
	web.NewAdminHandler,
	service.NewService,
	service.NewSweepService,
	repository.NewOrderRepository,
	sequencenumber.NewGenerator,
	wire.Bind(new(service.OrderNumberGenerator), new(*sequencenumber.Generator)),
	wire.Bind(new(event.ConfirmationSender), new(service.Service)),
	event.NewConfirmationRetryConsumer,
	initDAO,
	initOrderEventProducer,
	initConfirmationRetryProducer,
	initReminderJob)

func InitModule(db *egorm.Component,
	q mq.MQ,
	pm *preorder.Module,
	nm *notification.Module,
	um *user.Module,
	cfg SweepConfig) (*Module, error) {
	wire.Build(ProviderSet,
		wire.FieldsOf(new(*preorder.Module), "Svc"),
		wire.FieldsOf(new(*notification.Module), "Svc", "Renderer"),
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.Struct(new(Module), "*"))
	return new(Module), nil
}

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.OrderDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewOrderGORMDAO(db)
}

// initOrderEventProducer 同一个订单的事件按顺序进入同一个分区
func initOrderEventProducer(q mq.MQ) (mqx.Producer[event.OrderEvent], error) {
	p, err := mqx.NewGeneralProducer[event.OrderEvent](q, event.OrderEventName)
	if err != nil {
		return nil, err
	}
	return p.WithKeyFunc(func(evt event.OrderEvent) string {
		return strconv.FormatInt(evt.OrderId, 10)
	}), nil
}

func initConfirmationRetryProducer(q mq.MQ) (mqx.Producer[event.ConfirmationRetryEvent], error) {
	return mqx.NewGeneralProducer[event.ConfirmationRetryEvent](q, event.ConfirmationRetryEventName)
}

func initReminderJob(svc service.SweepService) *job.PreorderReminderJob {
	const timeout = 10 * time.Minute
	return job.NewPreorderReminderJob(svc, timeout)
}
