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

package tpl

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/noahrognon/commande-appli/internal/notification/internal/domain"
)

//go:embed templates
var templateFS embed.FS

const (
	defaultSupplierETADays = 14
	paymentTransfer        = "virement"
)

type OrderConfirmationParams struct {
	OrderNumber    string
	Cartons        int64
	Total          int64
	PaymentMethod  string
	EstimatedStart time.Time
	EstimatedEnd   time.Time
}

type PreorderReminderParams struct {
	PreorderName string
	DaysLeft     int
	EndDate      time.Time
}

type SupplierOrderSentParams struct {
	PreorderName string
	// ETADays 为 0 时使用默认的 14 天
	ETADays int
}

type StockReceivedParams struct {
	PreorderName string
}

// Renderer 渲染邮件, 不做任何 IO
type Renderer struct {
	siteURL string
	html    *htmltemplate.Template
	text    *texttemplate.Template
}

func NewRenderer(siteURL string) (*Renderer, error) {
	html, err := htmltemplate.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("解析 HTML 邮件模板失败: %w", err)
	}
	text, err := texttemplate.ParseFS(templateFS, "templates/*.txt")
	if err != nil {
		return nil, fmt.Errorf("解析文本邮件模板失败: %w", err)
	}
	return &Renderer{
		siteURL: strings.TrimSuffix(siteURL, "/"),
		html:    html,
		text:    text,
	}, nil
}

func (r *Renderer) OrderConfirmation(recipient domain.Recipient, p OrderConfirmationParams) (domain.Message, error) {
	payment := "paiement liquide"
	if p.PaymentMethod == paymentTransfer {
		payment = "virement bancaire"
	}
	return r.render("order_confirmation", fmt.Sprintf("Confirmation de commande %s", p.OrderNumber), map[string]any{
		"Name":           formatName(recipient.FirstName),
		"OrderNumber":    p.OrderNumber,
		"Cartons":        p.Cartons,
		"Total":          p.Total,
		"Payment":        payment,
		"EstimatedStart": formatDate(p.EstimatedStart),
		"EstimatedEnd":   formatDate(p.EstimatedEnd),
		"Link":           r.link("/dashboard"),
	})
}

func (r *Renderer) PreorderReminder(recipient domain.Recipient, p PreorderReminderParams) (domain.Message, error) {
	return r.render("preorder_reminder", fmt.Sprintf("Rappel precommande: J-%d", p.DaysLeft), map[string]any{
		"Name":         formatName(recipient.FirstName),
		"PreorderName": p.PreorderName,
		"DaysLeft":     p.DaysLeft,
		"EndDate":      formatDate(p.EndDate),
		"Link":         r.link("/precommande"),
	})
}

func (r *Renderer) SupplierOrderSent(recipient domain.Recipient, p SupplierOrderSentParams) (domain.Message, error) {
	eta := p.ETADays
	if eta == 0 {
		eta = defaultSupplierETADays
	}
	return r.render("supplier_order_sent", "Commande fournisseur envoyee", map[string]any{
		"Name":         formatName(recipient.FirstName),
		"PreorderName": p.PreorderName,
		"ETADays":      eta,
		"Link":         r.link("/dashboard"),
	})
}

func (r *Renderer) StockReceived(recipient domain.Recipient, p StockReceivedParams) (domain.Message, error) {
	return r.render("stock_received", "Stock recu / pret a livrer", map[string]any{
		"Name":         formatName(recipient.FirstName),
		"PreorderName": p.PreorderName,
		"Link":         r.link("/dashboard"),
	})
}

func (r *Renderer) render(name, subject string, data map[string]any) (domain.Message, error) {
	var html, text bytes.Buffer
	if err := r.html.ExecuteTemplate(&html, name+".html", data); err != nil {
		return domain.Message{}, fmt.Errorf("渲染邮件 %s 失败: %w", name, err)
	}
	if err := r.text.ExecuteTemplate(&text, name+".txt", data); err != nil {
		return domain.Message{}, fmt.Errorf("渲染邮件 %s 失败: %w", name, err)
	}
	return domain.Message{
		Subject: subject,
		HTML:    html.String(),
		Text:    strings.TrimSpace(text.String()),
	}, nil
}

func (r *Renderer) link(path string) string {
	return r.siteURL + path
}

func formatName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "client"
	}
	return name
}

// formatDate dd/mm/yyyy, 按 UTC 日期
func formatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.UTC().Format("02/01/2006")
}
