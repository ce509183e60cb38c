package service

import (
	userRequest "MedLink/internal/modules/user/application/dto/request"
	userRespond "MedLink/internal/modules/user/application/dto/respond"
	userEntity "MedLink/internal/modules/user/domain/entity"
	userRepository "MedLink/internal/modules/user/domain/repository"
	"MedLink/pkg/util/myjwt"
	"MedLink/pkg/xerr"
	"MedLink/pkg/zlog"
)

type UserService interface {
	Login(req userRequest.LoginRequest) (*userRespond.LoginRespond, error)
	GetUserInfo(uuid string) (*userRespond.UserItem, error)
}

type userServiceImpl struct {
	userRepo userRepository.UserRepository
}

func NewUserService(userRepo userRepository.UserRepository) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

// Login 双按钮角色选择器的后端：按角色取种子用户并签发 token
func (s *userServiceImpl) Login(req userRequest.LoginRequest) (*userRespond.LoginRespond, error) {
	role := userEntity.UserRole(req.Role)
	if role != userEntity.RoleAttendant && role != userEntity.RoleManager {
		return nil, xerr.New(xerr.BadRequest, xerr.ErrParam.Message)
	}

	user, err := s.userRepo.GetFirstByRole(role)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	token, err := myjwt.GenerateToken(user.Uuid, user.Name, string(user.Role))
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	return &userRespond.LoginRespond{
		User:  toUserItem(user),
		Token: token,
	}, nil
}

func (s *userServiceImpl) GetUserInfo(uuid string) (*userRespond.UserItem, error) {
	if uuid == "" {
		return nil, xerr.New(xerr.BadRequest, xerr.ErrParam.Message)
	}

	user, err := s.userRepo.GetByUuid(uuid)
	if err != nil {
		return nil, err
	}

	item := toUserItem(user)
	return &item, nil
}

func toUserItem(u *userEntity.User) userRespond.UserItem {
	return userRespond.UserItem{
		Uuid:   u.Uuid,
		Name:   u.Name,
		Email:  u.Email,
		Role:   string(u.Role),
		Avatar: u.Avatar,
		Status: string(u.Status),
	}
}
