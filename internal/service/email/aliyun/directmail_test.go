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
	"errors"
	"testing"

	dm20151123 "github.com/alibabacloud-go/dm-20151123/v2/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	"github.com/noahrognon/commande-appli/internal/service/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	req *dm20151123.SingleSendMailRequest
	err error
}

func (f *fakeClient) SingleSendMailWithOptions(request *dm20151123.SingleSendMailRequest,
	_ *util.RuntimeOptions) (*dm20151123.SingleSendMailResponse, error) {
	f.req = request
	return &dm20151123.SingleSendMailResponse{}, f.err
}

func TestDirectMailService_Send(t *testing.T) {
	mail := email.Mail{To: "client@example.com", Subject: "Rappel precommande: J-2", HTML: "<p>x</p>", Text: "x"}
	testCases := []struct {
		name       string
		err        error
		wantErrMsg string
	}{
		{
			name: "发送成功",
		},
		{
			name: "SDK错误",
			err: &tea.SDKError{
				Message: tea.String("InvalidToAddress"),
				Data:    tea.String(`{"Recommend":"check address","RequestId":"req-1"}`),
			},
			wantErrMsg: "阿里云邮件推送API错误: InvalidToAddress | 建议: check address | RequestId: req-1",
		},
		{
			name:       "其他错误",
			err:        errors.New("dial tcp: timeout"),
			wantErrMsg: "邮件发送失败: dial tcp: timeout",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := &fakeClient{err: tc.err}
			svc := NewDirectMailServiceWithClient(client, "noreply@mail.example.com", "Commandes")
			err := svc.Send(context.Background(), mail)
			if tc.wantErrMsg != "" {
				assert.EqualError(t, err, tc.wantErrMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "client@example.com", tea.StringValue(client.req.ToAddress))
			assert.Equal(t, "noreply@mail.example.com", tea.StringValue(client.req.AccountName))
			assert.Equal(t, "Commandes", tea.StringValue(client.req.FromAlias))
			assert.Equal(t, "<p>x</p>", tea.StringValue(client.req.HtmlBody))
			assert.Equal(t, "x", tea.StringValue(client.req.TextBody))
		})
	}
}
