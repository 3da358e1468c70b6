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

package email

import (
	"context"

	"github.com/go-gomail/gomail"
)

type Service interface {
	Send(ctx context.Context, subject, to string, content []byte) error
}

type gomailService struct {
	d    *gomail.Dialer
	from string
}

func NewService(d *gomail.Dialer, from string) Service {
	return &gomailService{d: d, from: from}
}

func (s *gomailService) Send(_ context.Context, subject, to string, content []byte) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", string(content))
	return s.d.DialAndSend(m)
}
