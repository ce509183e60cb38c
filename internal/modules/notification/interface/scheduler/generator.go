package scheduler

import (
	"context"
	"math/rand"
	"time"

	"MedLink/internal/modules/notification/application/service"
	notifEntity "MedLink/internal/modules/notification/domain/entity"
	"MedLink/pkg/util"
	"MedLink/pkg/zlog"
)

// Generator 周期性制造模拟通知，演示实时推送
// 生命周期挂在启动方传入的 context 上，context 取消后不再有任何写入
type Generator struct {
	feed        service.FeedService
	interval    time.Duration
	urgentRatio float64
	randFn      func() float64 // 可注入，测试时固定取值
}

func NewGenerator(feed service.FeedService, interval time.Duration, urgentRatio float64) *Generator {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if urgentRatio <= 0 || urgentRatio >= 1 {
		urgentRatio = 0.3
	}
	return &Generator{
		feed:        feed,
		interval:    interval,
		urgentRatio: urgentRatio,
		randFn:      rand.Float64,
	}
}

func (g *Generator) Start(ctx context.Context) {
	go g.run(ctx)
	zlog.Info("notification generator started")
}

func (g *Generator) run(ctx context.Context) {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			g.feed.Add(g.next())
		case <-ctx.Done():
			zlog.Info("notification generator stopped")
			return
		}
	}
}

// next 约三成紧急/高优先级，其余为普通新消息通知
func (g *Generator) next() *notifEntity.Notification {
	urgent := g.randFn() < g.urgentRatio

	n := &notifEntity.Notification{
		Uuid:        util.GenerateShortUUID(),
		Type:        notifEntity.TypeNewMessage,
		Title:       "Nova mensagem recebida",
		Description: "Paciente aguarda resposta",
		Timestamp:   time.Now(),
		IsRead:      false,
		Priority:    notifEntity.PriorityMedium,
	}
	if urgent {
		n.Type = notifEntity.TypeUrgent
		n.Title = "Situação urgente detectada"
		n.Priority = notifEntity.PriorityHigh
	}
	return n
}
