package service

import (
	"fmt"
	"time"

	convRequest "MedLink/internal/modules/conversation/application/dto/request"
	convRespond "MedLink/internal/modules/conversation/application/dto/respond"
	convEntity "MedLink/internal/modules/conversation/domain/entity"
	convRepository "MedLink/internal/modules/conversation/domain/repository"
	notifService "MedLink/internal/modules/notification/application/service"
	notifEntity "MedLink/internal/modules/notification/domain/entity"
	sentimentDomain "MedLink/internal/modules/sentiment/domain"
	userRepository "MedLink/internal/modules/user/domain/repository"
	"MedLink/pkg/util"
	"MedLink/pkg/xerr"
	"MedLink/pkg/zlog"
)

type ConversationService interface {
	ListConversations(req convRequest.ListConversationsRequest) ([]convRespond.ConversationItem, error)
	GetConversation(uuid string) (*convRespond.ConversationItem, error)
	ReceivePatientMessage(req convRequest.InboundMessageRequest) (*convRespond.MessageItem, error)
	SendReply(attendantUuid string, req convRequest.ReplyRequest) (*convRespond.MessageItem, error)
	AssignConversation(req convRequest.AssignRequest) error
	UpdateStatus(req convRequest.UpdateStatusRequest) error
	UpdatePriority(req convRequest.UpdatePriorityRequest) error
	ListChannels() []convRespond.ChannelItem
}

type conversationServiceImpl struct {
	convRepo    convRepository.ConversationRepository
	patientRepo convRepository.PatientRepository
	userRepo    userRepository.UserRepository
	feed        notifService.FeedService
}

func NewConversationService(
	convRepo convRepository.ConversationRepository,
	patientRepo convRepository.PatientRepository,
	userRepo userRepository.UserRepository,
	feed notifService.FeedService,
) ConversationService {
	return &conversationServiceImpl{
		convRepo:    convRepo,
		patientRepo: patientRepo,
		userRepo:    userRepo,
		feed:        feed,
	}
}

func (s *conversationServiceImpl) ListConversations(req convRequest.ListConversationsRequest) ([]convRespond.ConversationItem, error) {
	var (
		convs []*convEntity.Conversation
		err   error
	)
	if req.AssignedTo != "" {
		convs, err = s.convRepo.ListByAssignee(req.AssignedTo)
	} else {
		convs, err = s.convRepo.List()
	}
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	out := make([]convRespond.ConversationItem, 0, len(convs))
	for _, conv := range convs {
		if req.Status != "" && string(conv.Status) != req.Status {
			continue
		}
		out = append(out, toConversationItem(conv, false))
	}
	return out, nil
}

func (s *conversationServiceImpl) GetConversation(uuid string) (*convRespond.ConversationItem, error) {
	if uuid == "" {
		return nil, xerr.New(xerr.BadRequest, xerr.ErrParam.Message)
	}

	conv, err := s.convRepo.GetByUuid(uuid)
	if err != nil {
		return nil, err
	}

	item := toConversationItem(conv, true)
	return &item, nil
}

// ReceivePatientMessage 渠道来件入口
// 该渠道尚无会话时自动开一条；患者消息同步跑情感启发式，
// 紧急度 high 时把会话优先级拉到 high 并产出紧急通知
func (s *conversationServiceImpl) ReceivePatientMessage(req convRequest.InboundMessageRequest) (*convRespond.MessageItem, error) {
	if req.PatientId == "" || req.Content == "" {
		return nil, xerr.New(xerr.BadRequest, xerr.ErrParam.Message)
	}
	channel := convEntity.ChannelType(req.Channel)
	if !convEntity.ValidChannel(channel) {
		return nil, xerr.New(xerr.BadRequest, "canal inválido")
	}

	patient, err := s.patientRepo.GetByUuid(req.PatientId)
	if err != nil {
		return nil, err
	}

	conv, err := s.convRepo.GetByPatientAndChannel(patient.Uuid, channel)
	if err != nil {
		// 首条消息开新会话
		conv = &convEntity.Conversation{
			Uuid:     util.GenerateUUID(),
			Patient:  patient,
			Channel:  channel,
			Status:   convEntity.ConversationOpen,
			Priority: convEntity.PriorityMedium,
		}
		if err := s.convRepo.Create(conv); err != nil {
			// 并发首条消息时另一请求可能刚建了同一会话，回读复用
			existing, err2 := s.convRepo.GetByPatientAndChannel(patient.Uuid, channel)
			if err2 != nil {
				zlog.Error(err.Error())
				return nil, xerr.ErrServerError
			}
			conv = existing
		}
	}

	msg := &convEntity.Message{
		Uuid:          util.GenerateUUID(),
		PatientId:     patient.Uuid,
		Channel:       channel,
		Content:       req.Content,
		Timestamp:     time.Now(),
		Status:        convEntity.MessagePending,
		IsFromPatient: true,
	}

	result := sentimentDomain.Analyze(req.Content)
	urgent := sentimentDomain.UrgencyOf(result) == sentimentDomain.UrgencyHigh

	// 追加和优先级提升都在仓储锁内完成，并发的列表/详情读只会看到快照
	if err := s.convRepo.Mutate(conv.Uuid, func(c *convEntity.Conversation) error {
		c.Append(msg)
		if urgent {
			c.Priority = convEntity.PriorityHigh
		}
		return nil
	}); err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	if urgent {
		s.notify(notifEntity.TypeUrgent, notifEntity.PriorityHigh,
			"Paciente com urgência médica",
			fmt.Sprintf("%s: %s", patient.Name, req.Content))
	} else {
		s.notify(notifEntity.TypeNewMessage, notifEntity.PriorityMedium,
			fmt.Sprintf("Nova mensagem no %s", convEntity.MetaOf(channel).Label),
			fmt.Sprintf("%s: %s", patient.Name, req.Content))
	}

	item := toMessageItem(msg)
	return &item, nil
}

func (s *conversationServiceImpl) SendReply(attendantUuid string, req convRequest.ReplyRequest) (*convRespond.MessageItem, error) {
	if attendantUuid == "" || req.ConversationId == "" || req.Content == "" {
		return nil, xerr.New(xerr.BadRequest, xerr.ErrParam.Message)
	}

	conv, err := s.convRepo.GetByUuid(req.ConversationId)
	if err != nil {
		return nil, err
	}

	msg := &convEntity.Message{
		Uuid:          util.GenerateUUID(),
		PatientId:     conv.Patient.Uuid,
		AttendantId:   attendantUuid,
		Channel:       conv.Channel,
		Content:       req.Content,
		Timestamp:     time.Now(),
		Status:        convEntity.MessageSent,
		IsFromPatient: false,
	}

	// 状态检查放在锁内，避免和并发的 updateStatus 交错
	if err := s.convRepo.Mutate(conv.Uuid, func(c *convEntity.Conversation) error {
		if c.Status == convEntity.ConversationClosed {
			return xerr.New(xerr.Forbidden, "conversa encerrada")
		}
		c.Append(msg)
		return nil
	}); err != nil {
		return nil, err
	}

	item := toMessageItem(msg)
	return &item, nil
}

// AssignConversation 分配会话给接待员并产出分配通知
func (s *conversationServiceImpl) AssignConversation(req convRequest.AssignRequest) error {
	if req.ConversationId == "" || req.AttendantId == "" {
		return xerr.New(xerr.BadRequest, xerr.ErrParam.Message)
	}

	conv, err := s.convRepo.GetByUuid(req.ConversationId)
	if err != nil {
		return err
	}
	attendant, err := s.userRepo.GetByUuid(req.AttendantId)
	if err != nil {
		return err
	}

	if err := s.convRepo.Mutate(conv.Uuid, func(c *convEntity.Conversation) error {
		c.AssignedTo = attendant.Uuid
		return nil
	}); err != nil {
		zlog.Error(err.Error())
		return xerr.ErrServerError
	}

	s.notify(notifEntity.TypeAssignment, notifEntity.PriorityMedium,
		"Nova conversa atribuída",
		fmt.Sprintf("%s foi atribuída a %s", conv.Patient.Name, attendant.Name))
	return nil
}

func (s *conversationServiceImpl) UpdateStatus(req convRequest.UpdateStatusRequest) error {
	if req.ConversationId == "" {
		return xerr.New(xerr.BadRequest, xerr.ErrParam.Message)
	}
	status := convEntity.ConversationStatus(req.Status)
	if status != convEntity.ConversationOpen && status != convEntity.ConversationClosed && status != convEntity.ConversationPending {
		return xerr.New(xerr.BadRequest, xerr.ErrParam.Message)
	}

	return s.convRepo.Mutate(req.ConversationId, func(c *convEntity.Conversation) error {
		c.Status = status
		return nil
	})
}

func (s *conversationServiceImpl) UpdatePriority(req convRequest.UpdatePriorityRequest) error {
	if req.ConversationId == "" {
		return xerr.New(xerr.BadRequest, xerr.ErrParam.Message)
	}
	priority := convEntity.Priority(req.Priority)
	if priority != convEntity.PriorityLow && priority != convEntity.PriorityMedium && priority != convEntity.PriorityHigh {
		return xerr.New(xerr.BadRequest, xerr.ErrParam.Message)
	}

	return s.convRepo.Mutate(req.ConversationId, func(c *convEntity.Conversation) error {
		c.Priority = priority
		return nil
	})
}

func (s *conversationServiceImpl) ListChannels() []convRespond.ChannelItem {
	channels := convEntity.AllChannels()
	out := make([]convRespond.ChannelItem, 0, len(channels))
	for _, ch := range channels {
		out = append(out, convRespond.ChannelItem{
			Channel: string(ch),
			Meta:    convEntity.MetaOf(ch),
		})
	}
	return out
}

func (s *conversationServiceImpl) notify(t notifEntity.NotificationType, p notifEntity.Priority, title, description string) {
	if s.feed == nil {
		return
	}
	s.feed.Add(&notifEntity.Notification{
		Uuid:        util.GenerateShortUUID(),
		Type:        t,
		Title:       title,
		Description: description,
		Timestamp:   time.Now(),
		IsRead:      false,
		Priority:    p,
	})
}

func toConversationItem(conv *convEntity.Conversation, withMessages bool) convRespond.ConversationItem {
	item := convRespond.ConversationItem{
		Uuid:          conv.Uuid,
		Patient:       toPatientItem(conv.Patient),
		Channel:       string(conv.Channel),
		ChannelMeta:   convEntity.MetaOf(conv.Channel),
		AssignedTo:    conv.AssignedTo,
		Status:        string(conv.Status),
		Priority:      string(conv.Priority),
		LastMessageAt: conv.LastMessageAt.Format(time.RFC3339),
		Tags:          conv.Tags,
	}
	if last := conv.LastMessage(); last != nil {
		item.LastMsg = last.Content
	}
	if withMessages {
		item.Messages = make([]convRespond.MessageItem, 0, len(conv.Messages))
		for _, m := range conv.Messages {
			item.Messages = append(item.Messages, toMessageItem(m))
		}
	}
	return item
}

func toPatientItem(p *convEntity.Patient) convRespond.PatientItem {
	if p == nil {
		return convRespond.PatientItem{}
	}
	item := convRespond.PatientItem{
		Uuid:             p.Uuid,
		Name:             p.Name,
		Phone:            p.Phone,
		Email:            p.Email,
		PreferredChannel: string(p.PreferredChannel),
	}
	if p.LastContact != nil {
		item.LastContact = p.LastContact.Format(time.RFC3339)
	}
	return item
}

func toMessageItem(m *convEntity.Message) convRespond.MessageItem {
	return convRespond.MessageItem{
		Uuid:          m.Uuid,
		PatientId:     m.PatientId,
		AttendantId:   m.AttendantId,
		Channel:       string(m.Channel),
		Content:       m.Content,
		Timestamp:     m.Timestamp.Format(time.RFC3339),
		Status:        string(m.Status),
		IsFromPatient: m.IsFromPatient,
	}
}
