package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"datamarket/internal/auth"
	apperrors "datamarket/internal/errors"
	"datamarket/internal/model"
	"datamarket/internal/optional"
)

// NewUserInput carries the fields accepted by signup and create.
type NewUserInput struct {
	Name          string
	Email         string
	Password      string
	WalletAddress *string
	Role          *string
}

func (in NewUserInput) validate() error {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return apperrors.ErrMissingFields
	}
	if len(in.Password) > auth.MaxPasswordBytes {
		return apperrors.ErrPasswordTooLong
	}
	return nil
}

// UserPatch lists the fields an update may touch. Absent fields are left alone.
type UserPatch struct {
	Name          optional.Field[string]
	Email         optional.Field[string]
	Password      optional.Field[string]
	WalletAddress optional.Field[string]
	Role          optional.Field[string]
}

// columns converts the patch into column updates. Name, email and password
// need a non-empty value; wallet address and role are applied whenever present,
// with null clearing the column.
func (p UserPatch) columns(hasher auth.PasswordHasher) (map[string]interface{}, error) {
	fields := make(map[string]interface{})
	if v, ok := p.Name.Get(); ok && v != "" {
		fields["name"] = v
	}
	if v, ok := p.Email.Get(); ok && v != "" {
		fields["email"] = v
	}
	if v, ok := p.Password.Get(); ok && v != "" {
		if len(v) > auth.MaxPasswordBytes {
			return nil, apperrors.ErrPasswordTooLong
		}
		hashed, err := hasher.Hash(v)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		fields["password"] = hashed
	}
	if p.WalletAddress.Set {
		fields["wallet_address"] = p.WalletAddress.Ptr()
	}
	if p.Role.Set {
		fields["role"] = p.Role.Ptr()
	}
	return fields, nil
}

// empty reports whether the patch carries nothing applicable, without hashing.
func (p UserPatch) empty() bool {
	nonEmpty := func(f optional.Field[string]) bool {
		v, ok := f.Get()
		return ok && v != ""
	}
	return !nonEmpty(p.Name) && !nonEmpty(p.Email) && !nonEmpty(p.Password) &&
		!p.WalletAddress.Set && !p.Role.Set
}

func buildUser(hasher auth.PasswordHasher, in NewUserInput) (*model.User, error) {
	hashed, err := hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := model.DefaultRole
	if in.Role != nil && *in.Role != "" {
		role = *in.Role
	}
	var wallet *string
	if in.WalletAddress != nil && *in.WalletAddress != "" {
		w := *in.WalletAddress
		wallet = &w
	}

	return &model.User{
		Name:          in.Name,
		Email:         in.Email,
		Password:      hashed,
		WalletAddress: wallet,
		Role:          &role,
	}, nil
}

// mapWriteError turns unique violations into a conflict and wraps everything else.
func mapWriteError(op string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrUserAlreadyExists
	}
	return fmt.Errorf("%s: %w", op, err)
}
