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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const mysqlErrDuplicateEntry uint16 = 1062

var (
	ErrRecordNotFound  = gorm.ErrRecordNotFound
	ErrDuplicatedEmail = errors.New("管理员邮箱已存在")
)

type AdminDAO interface {
	FindByEmail(ctx context.Context, email string) (Admin, error)
	FindByIdAndEmail(ctx context.Context, id int64, email string) (Admin, error)
	Insert(ctx context.Context, a Admin) (int64, error)
}

type AdminGORMDAO struct {
	db *egorm.Component
}

func NewAdminGORMDAO(db *egorm.Component) AdminDAO {
	return &AdminGORMDAO{db: db}
}

func (g *AdminGORMDAO) FindByEmail(ctx context.Context, email string) (Admin, error) {
	var a Admin
	err := g.db.WithContext(ctx).Where("email = ?", email).First(&a).Error
	return a, err
}

func (g *AdminGORMDAO) FindByIdAndEmail(ctx context.Context, id int64, email string) (Admin, error) {
	var a Admin
	err := g.db.WithContext(ctx).Where("id = ? AND email = ?", id, email).First(&a).Error
	return a, err
}

func (g *AdminGORMDAO) Insert(ctx context.Context, a Admin) (int64, error) {
	now := time.Now().UnixMilli()
	a.Ctime, a.Utime = now, now
	err := g.db.WithContext(ctx).Create(&a).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == mysqlErrDuplicateEntry {
		return 0, ErrDuplicatedEmail
	}
	return a.Id, err
}

type Admin struct {
	Id           int64  `gorm:"primaryKey,autoIncrement"`
	Email        string `gorm:"type:varchar(256);not null;uniqueIndex:uniq_email;comment:登录邮箱"`
	PasswordHash string `gorm:"type:varchar(128);not null;comment:bcrypt 哈希"`
	Ctime        int64
	Utime        int64
}
