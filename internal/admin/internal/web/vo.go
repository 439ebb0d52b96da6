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

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResp token 同时写入 cookie, 脚本可以用 Authorization: Bearer 携带
type LoginResp struct {
	Ok    bool   `json:"ok"`
	Token string `json:"token,omitempty"`
}

type CookieConfig struct {
	Name   string
	Domain string
	Secure bool
}

type Profile struct {
	Id    int64  `json:"id"`
	Email string `json:"email"`
}
