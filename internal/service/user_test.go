package service

import (
	"VidTube/internal/apperr"
	"VidTube/internal/model"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestRegister(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewUserService(userRepo)

	userRepo.On("FindByUsername", "alice").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("Create", mock.AnythingOfType("*model.User")).Return(nil)

	user, err := svc.Register(RegisterInput{
		Username: "alice",
		Email:    "alice@test.com",
		FullName: "Alice",
		Password: "secret",
	})

	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	// 密码必须是bcrypt散列，绝不能明文落库
	assert.NotEqual(t, "secret", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewUserService(userRepo)

	userRepo.On("FindByUsername", "alice").Return(&model.User{Username: "alice"}, nil)

	user, err := svc.Register(RegisterInput{Username: "alice", Password: "secret"})

	assert.Nil(t, user)
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	userRepo := new(MockUserRepository)
	svc := NewUserService(userRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	stored := &model.User{Username: "alice", Password: string(hashed)}
	stored.ID = 3
	userRepo.On("FindByUsername", "alice").Return(stored, nil)

	tokenString, err := svc.Login("alice", "secret")

	assert.NoError(t, err)
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(3), claims["user_id"])
	assert.Equal(t, "alice", claims["username"])
}

// 用户名错误和密码错误对外是同一种提示
func TestLogin_BadCredentials(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewUserService(userRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	userRepo.On("FindByUsername", "alice").Return(&model.User{Password: string(hashed)}, nil)
	userRepo.On("FindByUsername", "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login("alice", "wrong")
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	assert.Equal(t, "用户名或密码错误", apperr.Message(err))

	_, err = svc.Login("ghost", "secret")
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	assert.Equal(t, "用户名或密码错误", apperr.Message(err))
}
