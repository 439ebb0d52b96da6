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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Key(t *testing.T) {
	testCases := []struct {
		name string
		kind Kind
		want string
	}{
		{name: "订单确认", kind: OrderConfirmation(), want: "order_confirmation"},
		{name: "提前3天提醒", kind: PreorderReminder(3), want: "preorder_reminder_3d"},
		{name: "提前1天提醒", kind: PreorderReminder(1), want: "preorder_reminder_1d"},
		{name: "供应商下单", kind: SupplierOrderSent(), want: "supplier_order_sent"},
		{name: "到货", kind: StockReceived(), want: "stock_received"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.kind.Key())
			assert.True(t, tc.kind.Valid())
			got, err := ParseKind(tc.want)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, got)
		})
	}
}

func TestParseKind_Invalid(t *testing.T) {
	for _, key := range []string{"", "unknown", "preorder_reminder", "preorder_reminder_d", "preorder_reminder_0d", "preorder_reminder_xd"} {
		_, err := ParseKind(key)
		assert.Error(t, err, key)
	}
}

func TestKind_Valid(t *testing.T) {
	assert.False(t, Kind{}.Valid())
	assert.False(t, PreorderReminder(0).Valid())
	assert.False(t, Kind{Type: KindTypeOrderConfirmation, Days: 2}.Valid())
}

func TestKey_String(t *testing.T) {
	key := SendRequest{
		Kind:       PreorderReminder(2),
		Recipient:  Recipient{Uid: 12},
		CampaignId: 3,
	}.Key()
	assert.Equal(t, "preorder_reminder_2d:12:3", key.String())
}
