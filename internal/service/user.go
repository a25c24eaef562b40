package service

import (
	"VidTube/internal/apperr"
	"VidTube/internal/model"
	"VidTube/internal/repository"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Username string
	Email    string
	FullName string
	Password string
}

// 用户服务接口：1、注册 2、登录
type UserService interface {
	Register(in RegisterInput) (*model.User, error)
	Login(username, password string) (string, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// 注册逻辑：1、检查是否重名 2、密码加密存储 3、创建用户表项
func (s *userService) Register(in RegisterInput) (*model.User, error) {
	_, err := s.userRepo.FindByUsername(in.Username)
	if err == nil {
		return nil, apperr.New(apperr.KindBadRequest, "用户名已存在")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "注册失败", err)
	}

	newUser := &model.User{
		Username: in.Username,
		Email:    in.Email,
		FullName: in.FullName,
		Password: string(hashedPassword),
	}

	if err := s.userRepo.Create(newUser); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "注册失败", err)
	}
	return newUser, nil
}

// 登录逻辑：1、查用户名 2、比对密码 3、签发jwt
func (s *userService) Login(username, password string) (string, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.New(apperr.KindBadRequest, "用户名或密码错误")
		}
		return "", apperr.Wrap(apperr.KindInternal, "登录失败", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperr.New(apperr.KindBadRequest, "用户名或密码错误")
	}
	// Payload不加密，不能把密码放进去
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(time.Hour * 72).Unix(), // 72小时过期
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	secretKey := []byte(os.Getenv("JWT_SECRET_KEY"))
	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", apperr.Wrap(apperr.KindInternal, "登录失败", err)
	}

	return tokenString, nil
}
