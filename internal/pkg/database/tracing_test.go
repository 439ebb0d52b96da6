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

package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type Flavor struct {
	Id   int64
	Name string
}

func TestGormTracingPlugin(t *testing.T) {
	testCases := []struct {
		name       string
		mock       func(mock sqlmock.Sqlmock)
		exec       func(db *gorm.DB) error
		wantSpan   string
		wantStatus codes.Code
	}{
		{
			name: "查询",
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Mangue")
				mock.ExpectQuery("SELECT .*").WillReturnRows(rows)
			},
			exec: func(db *gorm.DB) error {
				var f Flavor
				return db.WithContext(context.Background()).First(&f).Error
			},
			wantSpan:   "flavors SELECT",
			wantStatus: codes.Ok,
		},
		{
			name: "查不到记录不算错误",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT .*").WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
			},
			exec: func(db *gorm.DB) error {
				var f Flavor
				err := db.WithContext(context.Background()).First(&f).Error
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil
				}
				return err
			},
			wantSpan:   "flavors SELECT",
			wantStatus: codes.Ok,
		},
		{
			name: "插入失败",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO `flavors` .*").WillReturnError(errors.New("db down"))
			},
			exec: func(db *gorm.DB) error {
				err := db.WithContext(context.Background()).Create(&Flavor{Name: "Ananas"}).Error
				if err != nil && err.Error() == "db down" {
					return nil
				}
				return err
			},
			wantSpan:   "flavors INSERT",
			wantStatus: codes.Error,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conn, mock, err := sqlmock.New()
			require.NoError(t, err)
			tc.mock(mock)
			db, err := gorm.Open(gormMysql.New(gormMysql.Config{
				Conn:                      conn,
				SkipInitializeWithVersion: true,
			}), &gorm.Config{
				DisableAutomaticPing:   true,
				SkipDefaultTransaction: true,
			})
			require.NoError(t, err)

			recorder := tracetest.NewSpanRecorder()
			provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
			require.NoError(t, db.Use(NewGormTracingPluginWithProvider(provider)))

			require.NoError(t, tc.exec(db))
			spans := recorder.Ended()
			require.Len(t, spans, 1)
			assert.Equal(t, tc.wantSpan, spans[0].Name())
			assert.Equal(t, tc.wantStatus, spans[0].Status().Code)
		})
	}
}
