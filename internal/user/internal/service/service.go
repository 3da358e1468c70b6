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

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ecodeclub/voltmart/internal/user/internal/domain"
	"github.com/ecodeclub/voltmart/internal/user/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicateEmail = repository.ErrUserDuplicate
	// ErrInvalidCredentials deliberately does not distinguish unknown email
	// from wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

//go:generate mockgen -source=./service.go -package=usermocks -destination=../../mocks/user.mock.go -typed UserService
type UserService interface {
	Register(ctx context.Context, u domain.User, password string) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
	Profile(ctx context.Context, uid int64) (domain.User, error)
	UpdateNonSensitiveInfo(ctx context.Context, u domain.User) error
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

type userService struct {
	repo repository.UserRepository
}

func (s *userService) Register(ctx context.Context, u domain.User, password string) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password failed: %w", err)
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Password = string(hash)
	// Self-registration always yields a customer; staff roles are assigned
	// out of band by an administrator.
	u.Role = domain.RoleCustomer
	id, err := s.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}
	u.ID = id
	return u, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (domain.User, error) {
	u, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrDataNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("find user by email failed: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *userService) Profile(ctx context.Context, uid int64) (domain.User, error) {
	return s.repo.FindById(ctx, uid)
}

func (s *userService) UpdateNonSensitiveInfo(ctx context.Context, u domain.User) error {
	return s.repo.UpdateNonSensitiveInfo(ctx, u)
}
