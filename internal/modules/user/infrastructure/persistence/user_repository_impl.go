package persistence

import (
	"sort"
	"sync"

	userEntity "MedLink/internal/modules/user/domain/entity"
	userRepository "MedLink/internal/modules/user/domain/repository"
	"MedLink/pkg/xerr"
)

type userRepositoryImpl struct {
	mu    sync.RWMutex
	users map[string]*userEntity.User
}

func NewUserRepository() userRepository.UserRepository {
	return &userRepositoryImpl{
		users: make(map[string]*userEntity.User),
	}
}

func (r *userRepositoryImpl) Create(user *userEntity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Uuid]; exists {
		return xerr.New(xerr.BadRequest, "usuário já cadastrado")
	}
	r.users[user.Uuid] = user
	return nil
}

func (r *userRepositoryImpl) GetByUuid(uuid string) (*userEntity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[uuid]
	if !ok {
		return nil, xerr.New(xerr.NotFound, "usuário não encontrado")
	}
	return u, nil
}

// GetFirstByRole 登录选择器用：每个角色取 uuid 最小的种子用户，保证结果稳定
func (r *userRepositoryImpl) GetFirstByRole(role userEntity.UserRole) (*userEntity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	uuids := make([]string, 0, len(r.users))
	for uuid := range r.users {
		uuids = append(uuids, uuid)
	}
	sort.Strings(uuids)

	for _, uuid := range uuids {
		if r.users[uuid].Role == role {
			return r.users[uuid], nil
		}
	}
	return nil, xerr.New(xerr.NotFound, "usuário não encontrado")
}

func (r *userRepositoryImpl) List() ([]*userEntity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*userEntity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Uuid < out[j].Uuid })
	return out, nil
}
