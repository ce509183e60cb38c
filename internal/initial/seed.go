package initial

import (
	"time"

	convEntity "MedLink/internal/modules/conversation/domain/entity"
	convRepository "MedLink/internal/modules/conversation/domain/repository"
	metricsEntity "MedLink/internal/modules/metrics/domain/entity"
	notifService "MedLink/internal/modules/notification/application/service"
	notifEntity "MedLink/internal/modules/notification/domain/entity"
	userEntity "MedLink/internal/modules/user/domain/entity"
	userRepository "MedLink/internal/modules/user/domain/repository"
	"MedLink/pkg/zlog"
)

// Seed 演示环境启动时灌入种子数据：员工、患者、会话和初始通知
func Seed(
	userRepo userRepository.UserRepository,
	patientRepo convRepository.PatientRepository,
	convRepo convRepository.ConversationRepository,
	feed notifService.FeedService,
) {
	seedUsers(userRepo)
	seedConversations(patientRepo, convRepo)
	seedNotifications(feed)
}

func seedUsers(repo userRepository.UserRepository) {
	// 登录入口只有这两位；Pedro 和 Julia 仅作为绩效基线出现在看板里
	users := []*userEntity.User{
		{Uuid: "user-maria", Name: "Maria Silva", Email: "maria@clinica.com", Role: userEntity.RoleAttendant, Status: userEntity.StatusOnline},
		{Uuid: "user-joao", Name: "Dr. João Santos", Email: "joao@clinica.com", Role: userEntity.RoleManager, Status: userEntity.StatusOnline},
	}
	for _, u := range users {
		if err := repo.Create(u); err != nil {
			zlog.Error(err.Error())
		}
	}
}

func seedConversations(patientRepo convRepository.PatientRepository, convRepo convRepository.ConversationRepository) {
	now := time.Now()

	patients := []*convEntity.Patient{
		{Uuid: "patient-ana", Name: "Ana Paula Costa", Phone: "(11) 99999-1234", Email: "ana@email.com", PreferredChannel: convEntity.ChannelWhatsApp},
		{Uuid: "patient-carlos", Name: "Carlos Oliveira", Phone: "(11) 99999-5678", Email: "carlos@email.com", PreferredChannel: convEntity.ChannelEmail},
		{Uuid: "patient-fernanda", Name: "Fernanda Lima", Phone: "(11) 99999-9012", Email: "fernanda@email.com", PreferredChannel: convEntity.ChannelInstagram},
	}
	for _, p := range patients {
		if err := patientRepo.Create(p); err != nil {
			zlog.Error(err.Error())
		}
	}

	convs := []*convEntity.Conversation{
		{
			Uuid:       "conv-ana-whatsapp",
			Patient:    patients[0],
			Channel:    convEntity.ChannelWhatsApp,
			AssignedTo: "user-maria",
			Status:     convEntity.ConversationOpen,
			Priority:   convEntity.PriorityMedium,
			Tags:       []string{"agendamento", "cardiologia"},
		},
		{
			Uuid:       "conv-carlos-email",
			Patient:    patients[1],
			Channel:    convEntity.ChannelEmail,
			AssignedTo: "user-maria",
			Status:     convEntity.ConversationPending,
			Priority:   convEntity.PriorityHigh,
			Tags:       []string{"reagendamento"},
		},
		{
			Uuid:     "conv-fernanda-instagram",
			Patient:  patients[2],
			Channel:  convEntity.ChannelInstagram,
			Status:   convEntity.ConversationOpen,
			Priority: convEntity.PriorityLow,
			Tags:     []string{"consulta-online", "informação"},
		},
	}

	convs[0].Append(&convEntity.Message{
		Uuid:          "msg-ana-1",
		PatientId:     "patient-ana",
		Channel:       convEntity.ChannelWhatsApp,
		Content:       "Boa tarde! Gostaria de agendar uma consulta com cardiologista.",
		Timestamp:     now.Add(-105 * time.Minute),
		Status:        convEntity.MessageRead,
		IsFromPatient: true,
	})
	convs[0].Append(&convEntity.Message{
		Uuid:          "msg-ana-2",
		PatientId:     "patient-ana",
		AttendantId:   "user-maria",
		Channel:       convEntity.ChannelWhatsApp,
		Content:       "Olá Ana Paula! Claro, posso te ajudar. Qual seria sua preferência de horário?",
		Timestamp:     now.Add(-100 * time.Minute),
		Status:        convEntity.MessageDelivered,
		IsFromPatient: false,
	})
	convs[1].Append(&convEntity.Message{
		Uuid:          "msg-carlos-1",
		PatientId:     "patient-carlos",
		Channel:       convEntity.ChannelEmail,
		Content:       "Preciso remarcar minha consulta de amanhã, é possível?",
		Timestamp:     now.Add(-75 * time.Minute),
		Status:        convEntity.MessageSent,
		IsFromPatient: true,
	})
	convs[2].Append(&convEntity.Message{
		Uuid:          "msg-fernanda-1",
		PatientId:     "patient-fernanda",
		Channel:       convEntity.ChannelInstagram,
		Content:       "Olá! Vi no Instagram que vocês têm consultas online. Como funciona?",
		Timestamp:     now.Add(-30 * time.Minute),
		Status:        convEntity.MessagePending,
		IsFromPatient: true,
	})

	for _, conv := range convs {
		if err := convRepo.Create(conv); err != nil {
			zlog.Error(err.Error())
		}
	}
}

func seedNotifications(feed notifService.FeedService) {
	now := time.Now()

	// Add 是头插，按时间从旧到新灌入
	feed.Add(&notifEntity.Notification{
		Uuid:        "notif-assignment",
		Type:        notifEntity.TypeAssignment,
		Title:       "Nova conversa atribuída",
		Description: "Fernanda Lima foi atribuída a você",
		Timestamp:   now.Add(-10 * time.Minute),
		IsRead:      true,
		Priority:    notifEntity.PriorityMedium,
	})
	feed.Add(&notifEntity.Notification{
		Uuid:        "notif-new-message",
		Type:        notifEntity.TypeNewMessage,
		Title:       "Nova mensagem no WhatsApp",
		Description: "Carlos Oliveira: Preciso remarcar consulta",
		Timestamp:   now.Add(-5 * time.Minute),
		IsRead:      false,
		Priority:    notifEntity.PriorityMedium,
	})
	feed.Add(&notifEntity.Notification{
		Uuid:        "notif-urgent",
		Type:        notifEntity.TypeUrgent,
		Title:       "Paciente com urgência médica",
		Description: "Ana Paula relatou dor intensa no peito",
		Timestamp:   now,
		IsRead:      false,
		Priority:    notifEntity.PriorityHigh,
	})
}

// DashboardBaseline 看板历史基数，实时字段由 metrics 服务叠加
func DashboardBaseline() metricsEntity.DashboardMetrics {
	return metricsEntity.DashboardMetrics{
		TotalConversations:   324,
		PendingConversations: 12,
		AvgResponseTime:      3.4,
		SatisfactionRate:     4.7,
		ChannelDistribution: map[convEntity.ChannelType]int{
			convEntity.ChannelWhatsApp:  145,
			convEntity.ChannelInstagram: 78,
			convEntity.ChannelFacebook:  45,
			convEntity.ChannelEmail:     32,
			convEntity.ChannelPhone:     18,
			convEntity.ChannelWebsite:   6,
		},
		HourlyActivity: []metricsEntity.HourlyActivity{
			{Hour: 8, Conversations: 12},
			{Hour: 9, Conversations: 24},
			{Hour: 10, Conversations: 35},
			{Hour: 11, Conversations: 28},
			{Hour: 12, Conversations: 18},
			{Hour: 13, Conversations: 22},
			{Hour: 14, Conversations: 42},
			{Hour: 15, Conversations: 38},
			{Hour: 16, Conversations: 45},
			{Hour: 17, Conversations: 32},
			{Hour: 18, Conversations: 28},
		},
	}
}

// AttendantBaseline 接待员绩效基线
func AttendantBaseline() []metricsEntity.AttendantMetrics {
	return []metricsEntity.AttendantMetrics{
		{Uuid: "user-maria", Name: "Maria Silva", TotalConversations: 45, AvgResponseTime: 3.2, SatisfactionRate: 4.8, Status: "online", ActiveConversations: 8},
		{Uuid: "user-pedro", Name: "Pedro Costa", TotalConversations: 38, AvgResponseTime: 4.1, SatisfactionRate: 4.6, Status: "busy", ActiveConversations: 12},
		{Uuid: "user-julia", Name: "Julia Santos", TotalConversations: 52, AvgResponseTime: 2.8, SatisfactionRate: 4.9, Status: "online", ActiveConversations: 6},
	}
}
