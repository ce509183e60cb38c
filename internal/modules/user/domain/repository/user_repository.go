package repository

import userEntity "MedLink/internal/modules/user/domain/entity"

type UserRepository interface {
	Create(user *userEntity.User) error
	GetByUuid(uuid string) (*userEntity.User, error)
	GetFirstByRole(role userEntity.UserRole) (*userEntity.User, error)
	List() ([]*userEntity.User, error)
}
