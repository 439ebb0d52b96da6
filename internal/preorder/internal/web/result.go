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
	"github.com/ecodeclub/ginx"
	"github.com/noahrognon/commande-appli/internal/preorder/internal/errs"
)

const noOpenPreorderMsg = "no open preorder"

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
	noOpenCampaignResult = ginx.Result{
		Code: errs.NoOpenCampaign.Code,
		Msg:  errs.NoOpenCampaign.Msg,
	}
	// 关闭/延长时没有进行中的预售不算失败
	nothingToDoResult = ginx.Result{
		Data: ActionResult{
			Success: false,
			Message: noOpenPreorderMsg,
		},
	}
)
