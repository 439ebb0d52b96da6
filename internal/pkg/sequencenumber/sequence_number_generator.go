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

package sequencenumber

import (
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

const (
	prefix       = "CMD"
	randomLength = 8
)

// ShortUUIDGenerateFunc 定义生成ShortUUID的函数类型
type ShortUUIDGenerateFunc func() string

// Generator 生成形如 CMD-2025-7Hq2xK9m 的订单号
type Generator struct {
	nowFunc          func() time.Time
	shortUUIDGenFunc ShortUUIDGenerateFunc
}

func NewGeneratorWith(nowFunc func() time.Time, uuidGen ShortUUIDGenerateFunc) *Generator {
	return &Generator{
		nowFunc:          nowFunc,
		shortUUIDGenFunc: uuidGen,
	}
}

func NewGenerator() *Generator {
	return NewGeneratorWith(time.Now, func() string { return shortuuid.New() })
}

// Generate 年份取 UTC
func (s *Generator) Generate() (string, error) {
	uuid := s.shortUUIDGenFunc()
	if len(uuid) < randomLength {
		return "", fmt.Errorf("shortuuid 长度不足: %q", uuid)
	}
	return fmt.Sprintf("%s-%d-%s", prefix, s.nowFunc().UTC().Year(), uuid[:randomLength]), nil
}
