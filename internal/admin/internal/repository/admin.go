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

package repository

import (
	"context"

	"github.com/noahrognon/commande-appli/internal/admin/internal/domain"
	"github.com/noahrognon/commande-appli/internal/admin/internal/repository/dao"
)

var (
	ErrAdminNotFound   = dao.ErrRecordNotFound
	ErrDuplicatedEmail = dao.ErrDuplicatedEmail
)

//go:generate mockgen -source=./admin.go -package=repomocks -destination=./mocks/admin.mock.go AdminRepository
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (domain.Admin, error)
	FindByIdAndEmail(ctx context.Context, id int64, email string) (domain.Admin, error)
	Create(ctx context.Context, a domain.Admin) (int64, error)
}

type adminRepository struct {
	dao dao.AdminDAO
}

func NewAdminRepository(d dao.AdminDAO) AdminRepository {
	return &adminRepository{dao: d}
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (domain.Admin, error) {
	a, err := r.dao.FindByEmail(ctx, email)
	return r.toDomain(a), err
}

func (r *adminRepository) FindByIdAndEmail(ctx context.Context, id int64, email string) (domain.Admin, error) {
	a, err := r.dao.FindByIdAndEmail(ctx, id, email)
	return r.toDomain(a), err
}

func (r *adminRepository) Create(ctx context.Context, a domain.Admin) (int64, error) {
	return r.dao.Insert(ctx, dao.Admin{
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
	})
}

func (r *adminRepository) toDomain(a dao.Admin) domain.Admin {
	return domain.Admin{
		Id:           a.Id,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
	}
}
