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

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/noahrognon/commande-appli/internal/admin/internal/domain"
	"github.com/noahrognon/commande-appli/internal/admin/internal/repository"
	"github.com/noahrognon/commande-appli/internal/pkg/signedtoken"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials 邮箱不存在和密码错误不做区分
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrUnauthenticated    = errors.New("管理员未登录")
	ErrInvalidInput       = errors.New("邮箱和密码不能为空")
	ErrDuplicatedEmail    = repository.ErrDuplicatedEmail
)

//go:generate mockgen -source=./service.go -package=adminmocks -destination=../../mocks/admin.mock.go Service
type Service interface {
	// Login 校验密码并签发令牌
	Login(ctx context.Context, email, password string) (string, error)
	// Authenticate 校验令牌之后还要确认管理员仍然存在
	Authenticate(ctx context.Context, token string) (domain.Admin, error)
	Create(ctx context.Context, email, password string) (int64, error)
	TokenTTL() time.Duration
}

type service struct {
	repo   repository.AdminRepository
	signer *signedtoken.Signer
	logger *elog.Component
}

func NewService(repo repository.AdminRepository, signer *signedtoken.Signer) Service {
	return &service{
		repo:   repo,
		signer: signer,
		logger: elog.DefaultLogger,
	}
}

func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}
	a, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrAdminNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	err = bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password))
	if err != nil {
		return "", ErrInvalidCredentials
	}
	return s.signer.Issue(signedtoken.Subject{ID: a.Id, Email: a.Email})
}

func (s *service) Authenticate(ctx context.Context, token string) (domain.Admin, error) {
	sub, ok := s.signer.Verify(token)
	if !ok {
		return domain.Admin{}, ErrUnauthenticated
	}
	a, err := s.repo.FindByIdAndEmail(ctx, sub.ID, sub.Email)
	if errors.Is(err, repository.ErrAdminNotFound) {
		s.logger.Warn("令牌有效但管理员不存在", elog.Int64("adminId", sub.ID))
		return domain.Admin{}, ErrUnauthenticated
	}
	return a, err
}

func (s *service) Create(ctx context.Context, email, password string) (int64, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return 0, ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("生成密码哈希失败: %w", err)
	}
	return s.repo.Create(ctx, domain.Admin{
		Email:        email,
		PasswordHash: string(hash),
	})
}

func (s *service) TokenTTL() time.Duration {
	return s.signer.TTL()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
