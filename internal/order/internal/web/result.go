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

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/noahrognon/commande-appli/internal/order/internal/errs"
	"github.com/noahrognon/commande-appli/internal/order/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
	campaignNotFoundResult = ginx.Result{
		Code: errs.CampaignNotFound.Code,
		Msg:  errs.CampaignNotFound.Msg,
	}
)

func newResult(code errs.ErrorCode) ginx.Result {
	return ginx.Result{
		Code: code.Code,
		Msg:  code.Msg,
	}
}

// errorResult 业务错误返回对应的错误码, 其余的都是系统错误
func errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return newResult(errs.Unauthenticated), nil
	case errors.Is(err, service.ErrUnauthorized):
		return newResult(errs.Unauthorized), nil
	case errors.Is(err, service.ErrCampaignNotOpen):
		return newResult(errs.CampaignNotOpen), nil
	case errors.Is(err, service.ErrCampaignNotFound):
		return campaignNotFoundResult, nil
	case errors.Is(err, service.ErrOrderNotFound):
		return newResult(errs.OrderNotFound), nil
	case errors.Is(err, service.ErrPaymentMethodRequired):
		return newResult(errs.PaymentMethodRequired), nil
	case errors.Is(err, service.ErrInvalidCartons):
		return newResult(errs.InvalidCartons), nil
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult, nil
	case errors.Is(err, service.ErrNoLineItems):
		return newResult(errs.NoLineItems), nil
	case errors.Is(err, service.ErrTooManyItems):
		return newResult(errs.TooManyItems), nil
	default:
		return systemErrorResult, err
	}
}
