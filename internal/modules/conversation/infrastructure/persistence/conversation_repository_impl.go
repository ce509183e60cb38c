package persistence

import (
	"sort"
	"sync"

	convEntity "MedLink/internal/modules/conversation/domain/entity"
	convRepository "MedLink/internal/modules/conversation/domain/repository"
	"MedLink/pkg/xerr"
)

type conversationRepositoryImpl struct {
	mu            sync.RWMutex
	conversations map[string]*convEntity.Conversation
}

func NewConversationRepository() convRepository.ConversationRepository {
	return &conversationRepositoryImpl{
		conversations: make(map[string]*convEntity.Conversation),
	}
}

func (r *conversationRepositoryImpl) Create(conv *convEntity.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.conversations[conv.Uuid]; exists {
		return xerr.New(xerr.BadRequest, "conversa já existe")
	}
	// 存入快照，调用方手里的指针不会穿透仓储锁
	r.conversations[conv.Uuid] = snapshot(conv)
	return nil
}

func (r *conversationRepositoryImpl) GetByUuid(uuid string) (*convEntity.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conv, ok := r.conversations[uuid]
	if !ok {
		return nil, xerr.New(xerr.NotFound, "conversa não encontrada")
	}
	return snapshot(conv), nil
}

func (r *conversationRepositoryImpl) GetByPatientAndChannel(patientUuid string, channel convEntity.ChannelType) (*convEntity.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, conv := range r.conversations {
		if conv.Patient != nil && conv.Patient.Uuid == patientUuid && conv.Channel == channel {
			return snapshot(conv), nil
		}
	}
	return nil, xerr.New(xerr.NotFound, "conversa não encontrada")
}

func (r *conversationRepositoryImpl) List() ([]*convEntity.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedLocked(func(*convEntity.Conversation) bool { return true }), nil
}

func (r *conversationRepositoryImpl) ListByAssignee(attendantUuid string) ([]*convEntity.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedLocked(func(c *convEntity.Conversation) bool {
		return c.AssignedTo == attendantUuid
	}), nil
}

// Mutate 在写锁内对存储中的实体执行 fn，是唯一的变更入口
// fn 返回错误时变更视为未发生（fn 不得在出错路径上先改字段）
func (r *conversationRepositoryImpl) Mutate(uuid string, fn func(conv *convEntity.Conversation) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	conv, ok := r.conversations[uuid]
	if !ok {
		return xerr.New(xerr.NotFound, "conversa não encontrada")
	}
	return fn(conv)
}

// sortedLocked 按最近消息倒序返回快照，调用方需持有读锁
func (r *conversationRepositoryImpl) sortedLocked(keep func(*convEntity.Conversation) bool) []*convEntity.Conversation {
	out := make([]*convEntity.Conversation, 0, len(r.conversations))
	for _, conv := range r.conversations {
		if keep(conv) {
			out = append(out, snapshot(conv))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastMessageAt.After(out[j].LastMessageAt)
	})
	return out
}

// snapshot 浅拷贝会话并复制切片头
// Message 和 Patient 创建后不再变更，指针可以安全共享
func snapshot(c *convEntity.Conversation) *convEntity.Conversation {
	cp := *c
	cp.Messages = make([]*convEntity.Message, len(c.Messages))
	copy(cp.Messages, c.Messages)
	cp.Tags = append([]string(nil), c.Tags...)
	return &cp
}
