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

package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// UnitPrice 每箱单价, 单位 EUR
const UnitPrice int64 = 75

var ErrInvalidCartons = errors.New("箱数必须大于等于1")

type Price struct {
	Subtotal    int64
	DiscountPct int64
	Total       int64
}

// DiscountPct 阶梯折扣, 不叠加
func DiscountPct(cartons int64) int64 {
	switch {
	case cartons >= 10:
		return 10
	case cartons >= 5:
		return 7
	case cartons >= 3:
		return 4
	default:
		return 0
	}
}

// PriceOf 总价四舍五入到整数, .5 向上
func PriceOf(cartons int64) (Price, error) {
	if cartons < 1 {
		return Price{}, ErrInvalidCartons
	}
	subtotal := cartons * UnitPrice
	pct := DiscountPct(cartons)
	total := decimal.NewFromInt(subtotal).
		Mul(decimal.NewFromInt(100 - pct)).
		Div(decimal.NewFromInt(100)).
		Round(0)
	return Price{
		Subtotal:    subtotal,
		DiscountPct: pct,
		Total:       total.IntPart(),
	}, nil
}
