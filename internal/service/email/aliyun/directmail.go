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

package aliyun

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dm20151123 "github.com/alibabacloud-go/dm-20151123/v2/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	credential "github.com/aliyun/credentials-go/credentials"
	"github.com/noahrognon/commande-appli/internal/service/email"
)

// Client dm20151123.Client 中用到的方法
type Client interface {
	SingleSendMailWithOptions(request *dm20151123.SingleSendMailRequest,
		runtime *util.RuntimeOptions) (*dm20151123.SingleSendMailResponse, error)
}

// DirectMailService 阿里云邮件推送
type DirectMailService struct {
	client      Client
	accountName string
	fromAlias   string
}

// NewDirectMailService accountName 为控制台配置的发信地址, fromAlias 为发信人昵称
func NewDirectMailService(accessKeyID, accessKeySecret, accountName, fromAlias string) (*DirectMailService, error) {
	cred, err := credential.NewCredential(&credential.Config{
		Type:            tea.String("access_key"),
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
	})
	if err != nil {
		return nil, fmt.Errorf("创建阿里云凭据失败: %w", err)
	}
	client, err := dm20151123.NewClient(&openapi.Config{
		Credential: cred,
		Endpoint:   tea.String("dm.aliyuncs.com"),
	})
	if err != nil {
		return nil, fmt.Errorf("创建 DirectMail 客户端失败: %w", err)
	}
	return NewDirectMailServiceWithClient(client, accountName, fromAlias), nil
}

func NewDirectMailServiceWithClient(client Client, accountName, fromAlias string) *DirectMailService {
	return &DirectMailService{
		client:      client,
		accountName: accountName,
		fromAlias:   fromAlias,
	}
}

func (a *DirectMailService) Send(ctx context.Context, mail email.Mail) error {
	request := &dm20151123.SingleSendMailRequest{
		AccountName: tea.String(a.accountName),
		FromAlias:   tea.String(a.fromAlias),
		// 1 表示随机账号
		AddressType:    tea.Int32(1),
		ToAddress:      tea.String(mail.To),
		Subject:        tea.String(mail.Subject),
		HtmlBody:       tea.String(mail.HTML),
		TextBody:       tea.String(mail.Text),
		ReplyToAddress: tea.Bool(false),
	}
	errCh := make(chan error, 1)
	go func() {
		_, err := a.client.SingleSendMailWithOptions(request, &util.RuntimeOptions{})
		errCh <- err
	}()
	select {
	case err := <-errCh:
		if err != nil {
			return a.handleError(err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *DirectMailService) handleError(err error) error {
	var sdkError *tea.SDKError
	if !errors.As(err, &sdkError) {
		return fmt.Errorf("邮件发送失败: %w", err)
	}
	msg := fmt.Sprintf("阿里云邮件推送API错误: %s", tea.StringValue(sdkError.Message))
	if sdkError.Data != nil {
		var data map[string]any
		if json.NewDecoder(strings.NewReader(tea.StringValue(sdkError.Data))).Decode(&data) == nil {
			if recommend, ok := data["Recommend"]; ok {
				msg += fmt.Sprintf(" | 建议: %v", recommend)
			}
			if requestID, ok := data["RequestId"]; ok {
				msg += fmt.Sprintf(" | RequestId: %v", requestID)
			}
		}
	}
	return errors.New(msg)
}
