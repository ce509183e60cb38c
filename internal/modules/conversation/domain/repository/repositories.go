package repository

import (
	convEntity "MedLink/internal/modules/conversation/domain/entity"
)

// PatientRepository 患者档案仓储
type PatientRepository interface {
	Create(patient *convEntity.Patient) error
	GetByUuid(uuid string) (*convEntity.Patient, error)
	List() ([]*convEntity.Patient, error)
}

// ConversationRepository 会话仓储
// 演示环境为内存实现，会话只增不删（关闭用状态表达）
// 读接口返回快照副本；所有变更必须经 Mutate 在仓储锁内执行，
// 存入后的实体指针不允许在仓储外修改
type ConversationRepository interface {
	Create(conv *convEntity.Conversation) error
	GetByUuid(uuid string) (*convEntity.Conversation, error)
	GetByPatientAndChannel(patientUuid string, channel convEntity.ChannelType) (*convEntity.Conversation, error)
	List() ([]*convEntity.Conversation, error)
	ListByAssignee(attendantUuid string) ([]*convEntity.Conversation, error)
	Mutate(uuid string, fn func(conv *convEntity.Conversation) error) error
}
