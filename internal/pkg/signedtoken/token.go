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

package signedtoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// DefaultTTL 管理员会话有效期
const DefaultTTL = 7 * 24 * time.Hour

var ErrEmptySecret = errors.New("signedtoken: 签名密钥未配置")

// Subject 令牌承载的身份
type Subject struct {
	ID    int64
	Email string
}

type claims struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Exp   int64  `json:"exp"`
}

// Signer 签发与校验 payload.signature 形式的无状态令牌
// payload 为 base64url(JSON{id,email,exp}), signature 为 base64url(HMAC-SHA256(payload))
type Signer struct {
	secret  []byte
	ttl     time.Duration
	nowFunc func() time.Time
}

func NewSigner(secret string) *Signer {
	return NewSignerWithTTL(secret, DefaultTTL)
}

func NewSignerWithTTL(secret string, ttl time.Duration) *Signer {
	return &Signer{
		secret:  []byte(secret),
		ttl:     ttl,
		nowFunc: time.Now,
	}
}

func (s *Signer) TTL() time.Duration {
	return s.ttl
}

func (s *Signer) Issue(sub Subject) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrEmptySecret
	}
	data, err := json.Marshal(claims{
		ID:    sub.ID,
		Email: sub.Email,
		Exp:   s.nowFunc().Add(s.ttl).Unix(),
	})
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(data)
	return payload + "." + base64.RawURLEncoding.EncodeToString(s.sign(payload)), nil
}

// Verify 校验失败时返回 false, 不区分失败原因
func (s *Signer) Verify(token string) (Subject, bool) {
	if len(s.secret) == 0 || token == "" {
		return Subject{}, false
	}
	payload, signature, ok := strings.Cut(token, ".")
	if !ok || payload == "" || signature == "" {
		return Subject{}, false
	}
	got, err := base64.RawURLEncoding.DecodeString(signature)
	if err != nil {
		return Subject{}, false
	}
	// hmac.Equal 是常量时间比较
	if !hmac.Equal(got, s.sign(payload)) {
		return Subject{}, false
	}
	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return Subject{}, false
	}
	var c claims
	if err = json.Unmarshal(data, &c); err != nil {
		return Subject{}, false
	}
	if c.ID == 0 || c.Email == "" || c.Exp == 0 {
		return Subject{}, false
	}
	if s.nowFunc().Unix() > c.Exp {
		return Subject{}, false
	}
	return Subject{ID: c.ID, Email: c.Email}, true
}

func (s *Signer) sign(payload string) []byte {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return mac.Sum(nil)
}
