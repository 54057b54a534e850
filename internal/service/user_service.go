package service

import (
	"training_portal_backend/internal/model"
	"training_portal_backend/internal/util"
)

type UserService struct {
	Users UserCatalog
}

func NewUserService(users UserCatalog) *UserService {
	return &UserService{Users: users}
}

func (s *UserService) GetUsers() ([]model.User, error) {
	return s.Users.FindAll()
}

func (s *UserService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.Users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, util.ErrUserNotFound
	}
	return user, nil
}
