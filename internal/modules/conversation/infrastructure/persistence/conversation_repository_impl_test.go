package persistence

import (
	"testing"
	"time"

	convEntity "MedLink/internal/modules/conversation/domain/entity"
)

func newConv(uuid string) *convEntity.Conversation {
	return &convEntity.Conversation{
		Uuid:     uuid,
		Patient:  &convEntity.Patient{Uuid: "p1", Name: "Ana Paula Costa"},
		Channel:  convEntity.ChannelWhatsApp,
		Status:   convEntity.ConversationOpen,
		Priority: convEntity.PriorityMedium,
		Tags:     []string{"agendamento"},
	}
}

func TestReadsReturnSnapshots(t *testing.T) {
	repo := NewConversationRepository()
	if err := repo.Create(newConv("c1")); err != nil {
		t.Fatalf("create: %v", err)
	}

	before, _ := repo.GetByUuid("c1")

	if err := repo.Mutate("c1", func(c *convEntity.Conversation) error {
		c.Append(&convEntity.Message{Uuid: "m1", Timestamp: time.Now()})
		c.Priority = convEntity.PriorityHigh
		return nil
	}); err != nil {
		t.Fatalf("mutate: %v", err)
	}

	// 变更前拿到的快照不随后续写入变化
	if len(before.Messages) != 0 {
		t.Errorf("snapshot messages = %d, want 0", len(before.Messages))
	}
	if before.Priority != convEntity.PriorityMedium {
		t.Errorf("snapshot priority = %s, want medium", before.Priority)
	}

	after, _ := repo.GetByUuid("c1")
	if len(after.Messages) != 1 || after.Priority != convEntity.PriorityHigh {
		t.Errorf("store state: %d messages, priority %s", len(after.Messages), after.Priority)
	}

	// 反向同理：篡改读到的快照不应穿透到存储
	after.Messages = nil
	after.Tags[0] = "outro"
	again, _ := repo.GetByUuid("c1")
	if len(again.Messages) != 1 {
		t.Errorf("store messages = %d, want 1", len(again.Messages))
	}
	if again.Tags[0] != "agendamento" {
		t.Errorf("store tag = %s, want agendamento", again.Tags[0])
	}
}

func TestMutateErrorLeavesEntityUntouched(t *testing.T) {
	repo := NewConversationRepository()
	if err := repo.Create(newConv("c1")); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.Mutate("missing", func(*convEntity.Conversation) error { return nil }); err == nil {
		t.Fatal("expected error for unknown uuid")
	}
}
