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

package notification

import (
	"github.com/noahrognon/commande-appli/internal/notification/internal/domain"
	"github.com/noahrognon/commande-appli/internal/notification/internal/service"
	"github.com/noahrognon/commande-appli/internal/notification/internal/service/tpl"
	"github.com/noahrognon/commande-appli/internal/notification/internal/web"
)

type AdminHandler = web.AdminHandler
type Service = service.Service
type Renderer = tpl.Renderer

type Kind = domain.Kind
type Key = domain.Key
type Recipient = domain.Recipient
type Message = domain.Message
type RenderFunc = domain.RenderFunc
type SendRequest = domain.SendRequest
type SendResult = domain.SendResult

type OrderConfirmationParams = tpl.OrderConfirmationParams
type PreorderReminderParams = tpl.PreorderReminderParams
type SupplierOrderSentParams = tpl.SupplierOrderSentParams
type StockReceivedParams = tpl.StockReceivedParams

const (
	SendResultSent    = domain.SendResultSent
	SendResultSkipped = domain.SendResultSkipped
	SendResultFailed  = domain.SendResultFailed
)

var (
	OrderConfirmation = domain.OrderConfirmation
	PreorderReminder  = domain.PreorderReminder
	SupplierOrderSent = domain.SupplierOrderSent
	StockReceived     = domain.StockReceived
	ParseKind         = domain.ParseKind

	NewRenderer = tpl.NewRenderer
)

// Config SiteURL 用于邮件里的链接
type Config struct {
	SiteURL       string
	TestRecipient string
}
