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
	"fmt"
	"strconv"
	"strings"
)

type KindType uint8

const (
	KindTypeUnknown KindType = iota
	KindTypeOrderConfirmation
	KindTypePreorderReminder
	KindTypeSupplierOrderSent
	KindTypeStockReceived
)

func (t KindType) String() string {
	switch t {
	case KindTypeOrderConfirmation:
		return "order_confirmation"
	case KindTypePreorderReminder:
		return "preorder_reminder"
	case KindTypeSupplierOrderSent:
		return "supplier_order_sent"
	case KindTypeStockReceived:
		return "stock_received"
	default:
		return "unknown"
	}
}

// Kind 通知类型, Days 只对预售提醒有意义
type Kind struct {
	Type KindType
	Days int
}

func OrderConfirmation() Kind {
	return Kind{Type: KindTypeOrderConfirmation}
}

func PreorderReminder(days int) Kind {
	return Kind{Type: KindTypePreorderReminder, Days: days}
}

func SupplierOrderSent() Kind {
	return Kind{Type: KindTypeSupplierOrderSent}
}

func StockReceived() Kind {
	return Kind{Type: KindTypeStockReceived}
}

// Key 落库用的类型标签, 例如 preorder_reminder_3d
func (k Kind) Key() string {
	if k.Type == KindTypePreorderReminder {
		return k.Type.String() + "_" + strconv.Itoa(k.Days) + "d"
	}
	return k.Type.String()
}

func (k Kind) Valid() bool {
	switch k.Type {
	case KindTypeOrderConfirmation, KindTypeSupplierOrderSent, KindTypeStockReceived:
		return k.Days == 0
	case KindTypePreorderReminder:
		return k.Days > 0
	default:
		return false
	}
}

func (k Kind) String() string {
	return k.Key()
}

// ParseKind 是 Key 的逆操作
func ParseKind(key string) (Kind, error) {
	for _, t := range []KindType{KindTypeOrderConfirmation, KindTypeSupplierOrderSent, KindTypeStockReceived} {
		if key == t.String() {
			return Kind{Type: t}, nil
		}
	}
	if rest, ok := strings.CutPrefix(key, KindTypePreorderReminder.String()+"_"); ok {
		days, err := strconv.Atoi(strings.TrimSuffix(rest, "d"))
		if err == nil && days > 0 && strings.HasSuffix(rest, "d") {
			return PreorderReminder(days), nil
		}
	}
	return Kind{}, fmt.Errorf("未知的通知类型 %s", key)
}
