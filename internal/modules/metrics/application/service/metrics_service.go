package service

import (
	convEntity "MedLink/internal/modules/conversation/domain/entity"
	convRepository "MedLink/internal/modules/conversation/domain/repository"
	metricsRespond "MedLink/internal/modules/metrics/application/dto/respond"
	metricsEntity "MedLink/internal/modules/metrics/domain/entity"
	"MedLink/pkg/xerr"
	"MedLink/pkg/zlog"
)

type MetricsService interface {
	Dashboard() (*metricsRespond.DashboardRespond, error)
	Attendants() ([]metricsRespond.AttendantMetricsItem, error)
}

type metricsServiceImpl struct {
	convRepo   convRepository.ConversationRepository
	baseline   metricsEntity.DashboardMetrics
	attendants []metricsEntity.AttendantMetrics
}

// NewMetricsService baseline 为历史汇总基数，实时字段每次请求从会话存储重算
func NewMetricsService(
	convRepo convRepository.ConversationRepository,
	baseline metricsEntity.DashboardMetrics,
	attendants []metricsEntity.AttendantMetrics,
) MetricsService {
	return &metricsServiceImpl{
		convRepo:   convRepo,
		baseline:   baseline,
		attendants: attendants,
	}
}

func (s *metricsServiceImpl) Dashboard() (*metricsRespond.DashboardRespond, error) {
	convs, err := s.convRepo.List()
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	distribution := make(map[string]int, len(s.baseline.ChannelDistribution))
	for ch, n := range s.baseline.ChannelDistribution {
		distribution[string(ch)] = n
	}
	pending := 0
	for _, conv := range convs {
		distribution[string(conv.Channel)]++
		if conv.Status == convEntity.ConversationPending {
			pending++
		}
	}

	out := &metricsRespond.DashboardRespond{
		TotalConversations:   s.baseline.TotalConversations + len(convs),
		PendingConversations: s.baseline.PendingConversations + pending,
		AvgResponseTime:      s.baseline.AvgResponseTime,
		SatisfactionRate:     s.baseline.SatisfactionRate,
		ChannelDistribution:  distribution,
		HourlyActivity:       make([]metricsRespond.HourlyActivityItem, 0, len(s.baseline.HourlyActivity)),
	}
	for _, h := range s.baseline.HourlyActivity {
		out.HourlyActivity = append(out.HourlyActivity, metricsRespond.HourlyActivityItem{
			Hour:          h.Hour,
			Conversations: h.Conversations,
		})
	}
	return out, nil
}

func (s *metricsServiceImpl) Attendants() ([]metricsRespond.AttendantMetricsItem, error) {
	out := make([]metricsRespond.AttendantMetricsItem, 0, len(s.attendants))
	for _, a := range s.attendants {
		item := metricsRespond.AttendantMetricsItem{
			Uuid:                a.Uuid,
			Name:                a.Name,
			TotalConversations:  a.TotalConversations,
			AvgResponseTime:     a.AvgResponseTime,
			SatisfactionRate:    a.SatisfactionRate,
			Status:              a.Status,
			ActiveConversations: a.ActiveConversations,
		}
		// 已分配会话数叠加到基线活跃数上
		if convs, err := s.convRepo.ListByAssignee(a.Uuid); err == nil {
			for _, conv := range convs {
				if conv.Status != convEntity.ConversationClosed {
					item.ActiveConversations++
				}
			}
		}
		out = append(out, item)
	}
	return out, nil
}
