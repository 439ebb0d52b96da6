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

package errs

var (
	SystemError           = ErrorCode{Code: 503001, Msg: "Erreur systeme"}
	InvalidInput          = ErrorCode{Code: 503002, Msg: "Parametres invalides"}
	Unauthenticated       = ErrorCode{Code: 503003, Msg: "Non authentifie"}
	PaymentMethodRequired = ErrorCode{Code: 503004, Msg: "Mode de paiement obligatoire"}
	InvalidCartons        = ErrorCode{Code: 503005, Msg: "Au moins 1 carton requis"}
	NoLineItems           = ErrorCode{Code: 503006, Msg: "Aucun gout selectionne"}
	TooManyItems          = ErrorCode{Code: 503007, Msg: "Maximum 10 gouts selectionnes"}
	OrderNotFound         = ErrorCode{Code: 503008, Msg: "Commande introuvable"}
	Unauthorized          = ErrorCode{Code: 503009, Msg: "Acces refuse"}
	// CampaignNotOpen 预售不存在或者已经关闭
	CampaignNotOpen  = ErrorCode{Code: 503010, Msg: "Precommande fermee"}
	CampaignNotFound = ErrorCode{Code: 503011, Msg: "Precommande introuvable"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
