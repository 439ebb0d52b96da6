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
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryWindow(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		paris = time.FixedZone("CET", 3600)
	}
	testCases := []struct {
		name      string
		endDate   time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "保留时分秒",
			endDate:   time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC),
			wantStart: time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 3, 18, 18, 30, 0, 0, time.UTC),
		},
		{
			name:      "跨月",
			endDate:   time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "非UTC时区按UTC计算",
			endDate:   time.Date(2026, 3, 1, 0, 30, 0, 0, paris),
			wantStart: time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 3, 17, 23, 30, 0, 0, time.UTC),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := DeliveryWindow(tc.endDate)
			assert.Equal(t, tc.wantStart, start)
			assert.Equal(t, tc.wantEnd, end)
		})
	}
}

func TestFilterLineItems(t *testing.T) {
	items := []LineItem{
		{FlavorId: 1, Quantity: 3},
		{FlavorId: 2, Quantity: 0},
		{FlavorId: 0, Quantity: 2},
		{FlavorId: 4, Quantity: -1},
		{FlavorId: 5, Quantity: 7},
	}
	got := FilterLineItems(items)
	assert.Equal(t, []LineItem{{FlavorId: 1, Quantity: 3}, {FlavorId: 5, Quantity: 7}}, got)
	assert.Equal(t, int64(10), TotalQuantity(got))
	assert.Empty(t, FilterLineItems(nil))
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusDelivered, StatusCancelled} {
		assert.True(t, s.Valid())
	}
	assert.False(t, Status("shipped").Valid())
	assert.False(t, Status("").Valid())
}
