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
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "github.com/noahrognon/commande-appli/internal/pkg/database"
	spanKey             = "tracing:span"
)

// GormTracingPlugin 为 GORM 的增删改查以及 Raw 语句打点
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return NewGormTracingPluginWithProvider(otel.GetTracerProvider())
}

func NewGormTracingPluginWithProvider(provider trace.TracerProvider) *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: provider.Tracer(instrumentationName),
	}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	registers := []struct {
		op     string
		before func(name string, fn func(*gorm.DB)) error
		after  func(name string, fn func(*gorm.DB)) error
	}{
		{
			op: "SELECT",
			before: func(name string, fn func(*gorm.DB)) error { return cb.Query().Before("gorm:query").Register(name, fn) },
			after:  func(name string, fn func(*gorm.DB)) error { return cb.Query().After("gorm:query").Register(name, fn) },
		},
		{
			op: "INSERT",
			before: func(name string, fn func(*gorm.DB)) error { return cb.Create().Before("gorm:create").Register(name, fn) },
			after:  func(name string, fn func(*gorm.DB)) error { return cb.Create().After("gorm:create").Register(name, fn) },
		},
		{
			op: "UPDATE",
			before: func(name string, fn func(*gorm.DB)) error { return cb.Update().Before("gorm:update").Register(name, fn) },
			after:  func(name string, fn func(*gorm.DB)) error { return cb.Update().After("gorm:update").Register(name, fn) },
		},
		{
			op: "DELETE",
			before: func(name string, fn func(*gorm.DB)) error { return cb.Delete().Before("gorm:delete").Register(name, fn) },
			after:  func(name string, fn func(*gorm.DB)) error { return cb.Delete().After("gorm:delete").Register(name, fn) },
		},
		{
			op: "RAW",
			before: func(name string, fn func(*gorm.DB)) error { return cb.Raw().Before("gorm:raw").Register(name, fn) },
			after:  func(name string, fn func(*gorm.DB)) error { return cb.Raw().After("gorm:raw").Register(name, fn) },
		},
	}
	for _, r := range registers {
		if err := r.before("tracing:before_"+r.op, p.before(r.op)); err != nil {
			return err
		}
		if err := r.after("tracing:after_"+r.op, p.after(r.op)); err != nil {
			return err
		}
	}
	return nil
}

func (p *GormTracingPlugin) before(op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}
		name := "SQL " + op
		if db.Statement.Table != "" {
			name = fmt.Sprintf("%s %s", db.Statement.Table, op)
		}
		ctx, span := p.tracer.Start(db.Statement.Context, name, trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.InstanceSet(spanKey, span)
	}
}

func (p *GormTracingPlugin) after(op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		val, ok := db.InstanceGet(spanKey)
		if !ok {
			return
		}
		span, ok := val.(trace.Span)
		if !ok {
			return
		}
		defer span.End()
		attrs := []attribute.KeyValue{
			attribute.String("db.system", db.Dialector.Name()),
			attribute.String("db.operation", op),
		}
		if db.Statement.Table != "" {
			attrs = append(attrs, attribute.String("db.sql.table", db.Statement.Table))
		}
		if sql := db.Statement.SQL.String(); sql != "" {
			attrs = append(attrs, attribute.String("db.statement", sql))
		}
		attrs = append(attrs, attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
		span.SetAttributes(attrs...)
		// 查不到记录是业务上的正常情况
		if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
			span.RecordError(db.Error)
			span.SetStatus(codes.Error, db.Error.Error())
			return
		}
		span.SetStatus(codes.Ok, "")
	}
}
