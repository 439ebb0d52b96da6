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

package ioc

import (
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/gotomicro/ego/core/econf"
	"github.com/noahrognon/commande-appli/config"
	"github.com/noahrognon/commande-appli/internal/service/email"
	"github.com/noahrognon/commande-appli/internal/service/email/aliyun"
	"github.com/noahrognon/commande-appli/internal/service/email/failover"
	emailgomail "github.com/noahrognon/commande-appli/internal/service/email/gomail"
	emailretry "github.com/noahrognon/commande-appli/internal/service/email/retry"
	"github.com/noahrognon/commande-appli/internal/service/email/timeout"
	"gopkg.in/gomail.v2"
)

var ErrMissingMailCredentials = errors.New("邮件服务缺少凭据")

func InitMailConfig() config.MailConfig {
	var cfg config.MailConfig
	err := econf.UnmarshalKey("mail", &cfg)
	if err != nil {
		panic(err)
	}
	cfg.ApplyEnv()
	return cfg
}

func InitEmailService(cfg config.MailConfig) email.Service {
	svc, err := newEmailService(cfg)
	if err != nil {
		panic(err)
	}
	return svc
}

// newEmailService 每个通道单独重试并限时, 多个通道之间故障转移
func newEmailService(cfg config.MailConfig) (email.Service, error) {
	if len(cfg.Providers) == 0 {
		cfg.Providers = []string{"console"}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	svcs := make([]email.Service, 0, len(cfg.Providers))
	for _, name := range cfg.Providers {
		transport, err := newTransport(name, cfg)
		if err != nil {
			return nil, err
		}
		svcs = append(svcs, withRetry(timeout.NewService(transport, cfg.Timeout), cfg.Retry))
	}
	if len(svcs) == 1 {
		return svcs[0], nil
	}
	return failover.NewService(svcs), nil
}

func newTransport(name string, cfg config.MailConfig) (email.Service, error) {
	switch name {
	case "smtp":
		if cfg.SMTP.Host == "" || cfg.SMTP.Username == "" || cfg.SMTP.Password == "" || cfg.From == "" {
			return nil, fmt.Errorf("%w: smtp", ErrMissingMailCredentials)
		}
		port := cfg.SMTP.Port
		if port == 0 {
			port = 587
		}
		d := gomail.NewDialer(cfg.SMTP.Host, port, cfg.SMTP.Username, cfg.SMTP.Password)
		return emailgomail.NewService(d, cfg.From), nil
	case "aliyun":
		if cfg.Aliyun.AccessKeyID == "" || cfg.Aliyun.AccessKeySecret == "" || cfg.Aliyun.AccountName == "" {
			return nil, fmt.Errorf("%w: aliyun", ErrMissingMailCredentials)
		}
		return aliyun.NewDirectMailService(cfg.Aliyun.AccessKeyID, cfg.Aliyun.AccessKeySecret,
			cfg.Aliyun.AccountName, cfg.Aliyun.FromAlias)
	case "console":
		return email.NewConsoleService(), nil
	default:
		return nil, fmt.Errorf("未知的邮件服务: %s", name)
	}
}

func withRetry(svc email.Service, cfg config.RetryConfig) email.Service {
	if cfg.MaxRetries <= 0 {
		return svc
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Second
	}
	return emailretry.NewService(svc, func() retry.Strategy {
		// 参数在上面已经校验过
		s, _ := retry.NewFixedIntervalRetryStrategy(interval, cfg.MaxRetries)
		return s
	})
}
