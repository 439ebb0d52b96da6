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

package order

import (
	"github.com/noahrognon/commande-appli/internal/order/internal/domain"
	"github.com/noahrognon/commande-appli/internal/order/internal/event"
	"github.com/noahrognon/commande-appli/internal/order/internal/job"
	"github.com/noahrognon/commande-appli/internal/order/internal/service"
	"github.com/noahrognon/commande-appli/internal/order/internal/web"
)

type Handler = web.Handler
type AdminHandler = web.AdminHandler
type Service = service.Service
type SweepService = service.SweepService
type SweepConfig = service.SweepConfig
type ReminderResult = service.ReminderResult
type CreateOrderInput = service.CreateOrderInput
type ConfirmationRetryConsumer = event.ConfirmationRetryConsumer
type PreorderReminderJob = job.PreorderReminderJob

type Order = domain.Order
type Status = domain.Status
type LineItem = domain.LineItem

const (
	StatusPending   = domain.StatusPending
	StatusConfirmed = domain.StatusConfirmed
	StatusDelivered = domain.StatusDelivered
	StatusCancelled = domain.StatusCancelled
)
