package service

import (
	"testing"

	convEntity "MedLink/internal/modules/conversation/domain/entity"
	convRepository "MedLink/internal/modules/conversation/domain/repository"
	"MedLink/internal/modules/conversation/infrastructure/persistence"
	metricsEntity "MedLink/internal/modules/metrics/domain/entity"
)

func seedConversations(t *testing.T) convRepository.ConversationRepository {
	t.Helper()
	repo := persistence.NewConversationRepository()

	convs := []*convEntity.Conversation{
		{Uuid: "c1", Patient: &convEntity.Patient{Uuid: "p1"}, Channel: convEntity.ChannelWhatsApp, Status: convEntity.ConversationOpen, AssignedTo: "u1"},
		{Uuid: "c2", Patient: &convEntity.Patient{Uuid: "p2"}, Channel: convEntity.ChannelWhatsApp, Status: convEntity.ConversationPending},
		{Uuid: "c3", Patient: &convEntity.Patient{Uuid: "p3"}, Channel: convEntity.ChannelEmail, Status: convEntity.ConversationClosed, AssignedTo: "u1"},
	}
	for _, conv := range convs {
		if err := repo.Create(conv); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return repo
}

func TestDashboard_LiveOverlay(t *testing.T) {
	repo := seedConversations(t)
	svc := NewMetricsService(repo, metricsEntity.DashboardMetrics{
		TotalConversations:   324,
		PendingConversations: 12,
		AvgResponseTime:      3.4,
		SatisfactionRate:     4.7,
		ChannelDistribution: map[convEntity.ChannelType]int{
			convEntity.ChannelWhatsApp: 145,
			convEntity.ChannelEmail:    32,
		},
		HourlyActivity: []metricsEntity.HourlyActivity{{Hour: 8, Conversations: 12}},
	}, nil)

	dash, err := svc.Dashboard()
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if dash.TotalConversations != 327 {
		t.Errorf("TotalConversations = %d, want 327", dash.TotalConversations)
	}
	if dash.PendingConversations != 13 {
		t.Errorf("PendingConversations = %d, want 13", dash.PendingConversations)
	}
	if dash.ChannelDistribution["whatsapp"] != 147 {
		t.Errorf("whatsapp = %d, want 147", dash.ChannelDistribution["whatsapp"])
	}
	if dash.ChannelDistribution["email"] != 33 {
		t.Errorf("email = %d, want 33", dash.ChannelDistribution["email"])
	}
	if dash.AvgResponseTime != 3.4 || dash.SatisfactionRate != 4.7 {
		t.Errorf("baseline figures changed: %v / %v", dash.AvgResponseTime, dash.SatisfactionRate)
	}
	if len(dash.HourlyActivity) != 1 || dash.HourlyActivity[0].Hour != 8 {
		t.Errorf("HourlyActivity = %+v", dash.HourlyActivity)
	}
}

func TestAttendants_ActiveCount(t *testing.T) {
	repo := seedConversations(t)
	svc := NewMetricsService(repo, metricsEntity.DashboardMetrics{}, []metricsEntity.AttendantMetrics{
		{Uuid: "u1", Name: "Maria Silva", TotalConversations: 45, AvgResponseTime: 3.2, SatisfactionRate: 4.8, Status: "online", ActiveConversations: 8},
		{Uuid: "u2", Name: "Pedro Costa", TotalConversations: 38, AvgResponseTime: 4.1, SatisfactionRate: 4.6, Status: "busy", ActiveConversations: 12},
	})

	items, err := svc.Attendants()
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	// u1 有一条未关闭的已分配会话（c1），c3 已关闭不计
	if items[0].ActiveConversations != 9 {
		t.Errorf("u1 active = %d, want 9", items[0].ActiveConversations)
	}
	if items[1].ActiveConversations != 12 {
		t.Errorf("u2 active = %d, want 12", items[1].ActiveConversations)
	}
}
