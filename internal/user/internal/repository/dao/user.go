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

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type UserDAO interface {
	FindById(ctx context.Context, id int64) (User, error)
	FindByIds(ctx context.Context, ids []int64) ([]User, error)
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	return u, err
}

func (ud *GORMUserDAO) FindByIds(ctx context.Context, ids []int64) ([]User, error) {
	var res []User
	if len(ids) == 0 {
		return res, nil
	}
	err := ud.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

type User struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	Email     string `gorm:"type:varchar(256);not null;uniqueIndex:uniq_email;comment:邮箱"`
	FirstName string `gorm:"type:varchar(128);not null;default:'';comment:名"`
	LastName  string `gorm:"type:varchar(128);not null;default:'';comment:姓"`
	Ctime     int64
	Utime     int64
}
