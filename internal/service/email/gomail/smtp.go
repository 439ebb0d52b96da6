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

package gomail

import (
	"context"

	"github.com/noahrognon/commande-appli/internal/service/email"
	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// Sender 抽象 gomail.Dialer, 方便测试
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Service struct {
	d    Sender
	from string
}

func NewService(d Sender, from string) *Service {
	return &Service{
		d:    d,
		from: from,
	}
}

func (s *Service) Send(ctx context.Context, mail email.Mail) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", mail.To)
	m.SetHeader("Subject", mail.Subject)
	if mail.Text != "" {
		m.SetBody("text/plain", mail.Text)
		if mail.HTML != "" {
			m.AddAlternative("text/html", mail.HTML)
		}
	} else {
		m.SetBody("text/html", mail.HTML)
	}

	// gomail 不支持 context, 放到 goroutine 里面, 超时后直接返回
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.d.DialAndSend(m)
	}()
	select {
	case err := <-errCh:
		if err != nil {
			return errors.Wrapf(err, "smtp 发送邮件给 %s 失败", mail.To)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
