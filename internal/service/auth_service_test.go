package service

import (
	"context"
	"testing"

	"legal-assist-be/internal/dto"
	"legal-assist-be/internal/entity"
	"legal-assist-be/internal/repository/specification"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]*entity.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	cp := *u
	r.users[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *entity.User) error {
	cp := *u
	r.users[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var email string
	var id uuid.UUID
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByEmail:
			email = s.Email
		case specification.ByID:
			id = s.ID
		}
	}
	if email != "" {
		if u, ok := r.users[email]; ok {
			cp := *u
			return &cp, nil
		}
		return nil, nil
	}
	for _, u := range r.users {
		if u.Id == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.users)), nil
}

func newAuthService(repo *fakeUserRepo) IAuthService {
	return NewAuthService(&fakeUow{users: repo})
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:             "asha@example.com",
		Password:          "correct horse battery",
		FullName:          "Asha Patel",
		PreferredLanguage: "gu",
	})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", res.Email)

	stored := repo.users["asha@example.com"]
	require.NotNil(t, stored)
	require.NotNil(t, stored.PasswordHash)
	assert.NotEqual(t, "correct horse battery", *stored.PasswordHash)
	assert.Equal(t, "gu", stored.PreferredLanguage)
	assert.Equal(t, entity.UserRoleUser, stored.Role)
}

func TestRegisterNormalizesUnknownLanguage(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:             "asha@example.com",
		Password:          "correct horse battery",
		FullName:          "Asha Patel",
		PreferredLanguage: "fr",
	})
	require.NoError(t, err)
	assert.Equal(t, "en", repo.users["asha@example.com"].PreferredLanguage)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	req := &dto.RegisterRequest{Email: "asha@example.com", Password: "correct horse battery", FullName: "Asha Patel"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "asha@example.com",
		Password: "correct horse battery",
		FullName: "Asha Patel",
	})
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "asha@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha Patel", res.FullName)

	// The token must round-trip with the same secret and carry user_id.
	token, err := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, res.UserId.String(), claims["user_id"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "asha@example.com",
		Password: "correct horse battery",
		FullName: "Asha Patel",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "asha@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
