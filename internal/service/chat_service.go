package service

import (
	"context"
	"strings"
	"time"

	"legal-assist-be/internal/constant"
	"legal-assist-be/internal/dto"
	"legal-assist-be/internal/entity"
	"legal-assist-be/internal/locale"
	"legal-assist-be/internal/pkg/logger"
	"legal-assist-be/internal/repository/memory"
	"legal-assist-be/internal/repository/specification"
	"legal-assist-be/internal/repository/unitofwork"
	"legal-assist-be/pkg/conversation"
	"legal-assist-be/pkg/events"

	"github.com/google/uuid"
)

// AssistantClient is the slice of the model client the relay needs.
type AssistantClient interface {
	Generate(ctx context.Context, userText, language string, history []conversation.Turn) (string, error)
	GenerateForUpload(ctx context.Context, fileName, language string) (string, error)
}

type IChatService interface {
	CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	GetAllSessions(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllSessionsResponse, error)
	GetSessionMessages(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.ChatTurnResponse, error)
	RenameSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, title string) error
	SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	UploadFiles(ctx context.Context, userId uuid.UUID, req *dto.UploadFilesRequest) (*dto.UploadFilesResponse, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	assistant  AssistantClient
	contexts   *memory.ContextRepository
	publisher  events.Publisher
	logger     logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	assistant AssistantClient,
	contexts *memory.ContextRepository,
	publisher events.Publisher,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		assistant:  assistant,
		contexts:   contexts,
		publisher:  publisher,
		logger:     log,
	}
}

// CreateSession persists the session together with its localized welcome
// message. This is the one place a persistence failure aborts: a session
// without its welcome turn must not exist.
func (cs *chatService) CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	if userId == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()
	language := locale.Normalize(req.Language)

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = constant.DefaultSessionTitle
	}

	chatSession := entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     title,
		Language:  language,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	welcome := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: chatSession.Id,
		Role:          constant.ChatMessageRoleAssistant,
		Content:       locale.WelcomeMessage(language),
		Language:      language,
		IsError:       false,
		CreatedAt:     now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatSessionRepository().Create(ctx, &chatSession); err != nil {
		return nil, err
	}
	if err := uow.ChatMessageRepository().Create(ctx, &welcome); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// A new session starts with an empty model context. The welcome turn
	// is transcript-only and never replayed to the model.
	cs.contexts.Reset(chatSession.Id.String())

	cs.publishMessageCreated(userId, &welcome)

	return &dto.CreateSessionResponse{
		Id:        chatSession.Id,
		Title:     chatSession.Title,
		Language:  chatSession.Language,
		CreatedAt: chatSession.CreatedAt,
	}, nil
}

func (cs *chatService) GetAllSessions(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllSessionsResponse, error) {
	if userId == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chatSessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.GetAllSessionsResponse, 0, len(chatSessions))
	for _, s := range chatSessions {
		response = append(response, &dto.GetAllSessionsResponse{
			Id:        s.Id,
			Title:     s.Title,
			Language:  s.Language,
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		})
	}

	return response, nil
}

// GetSessionMessages returns the full transcript and resets the model
// context: switching sessions rehydrates the visible history only, the
// model starts from a clean slate.
func (cs *chatService) GetSessionMessages(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.ChatTurnResponse, error) {
	if userId == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	sess, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNoActiveSession
	}

	chatMessages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	cs.contexts.Reset(sessionId.String())

	response := make([]*dto.ChatTurnResponse, 0, len(chatMessages))
	for _, msg := range chatMessages {
		response = append(response, toChatTurnResponse(msg))
	}

	return response, nil
}

func (cs *chatService) RenameSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, title string) error {
	if userId == uuid.Nil {
		return ErrUnauthenticated
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyMessage
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	sess, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if sess == nil {
		return ErrNoActiveSession
	}

	return uow.ChatSessionRepository().UpdateTitle(ctx, sessionId, title)
}

// SendMessage is the relay turn. Failure handling is layered: persistence
// failures are logged and the turn continues; model failures become a
// persisted localized fallback reply with is_error=true, shaped exactly
// like a success; precondition failures return before anything is written.
func (cs *chatService) SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	if userId == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	sess, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: req.ChatSessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNoActiveSession
	}

	now := time.Now()

	userMessage := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: sess.Id,
		Role:          constant.ChatMessageRoleUser,
		Content:       content,
		Language:      sess.Language,
		IsError:       false,
		CreatedAt:     now,
	}
	cs.persistMessage(ctx, uow, userId, userMessage)

	// The context is keyed by the session the turn started with, so a
	// reply landing after the user switched sessions still resolves
	// against its own session and never leaks into another context.
	convCtx := cs.contexts.Get(sess.Id.String())
	history := convCtx.Snapshot()

	// The user turn always enters the context, even when the model call
	// below fails, so later turns still see what was asked. Only a
	// successful reply adds a model turn.
	convCtx.AppendUserTurn(content)

	reply, genErr := cs.assistant.Generate(ctx, content, sess.Language, history)

	assistantMessage := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: sess.Id,
		Role:          constant.ChatMessageRoleAssistant,
		Language:      sess.Language,
		CreatedAt:     time.Now(),
	}

	if genErr != nil {
		cs.logger.Error("ChatService", "Model call failed, persisting fallback", map[string]interface{}{
			"chat_session_id": sess.Id,
			"error":           genErr.Error(),
		})
		assistantMessage.Content = locale.FallbackMessage(sess.Language)
		assistantMessage.IsError = true
	} else {
		assistantMessage.Content = reply
		assistantMessage.IsError = false
		convCtx.AppendModelTurn(reply)
	}

	cs.persistMessage(ctx, uow, userId, assistantMessage)

	sessionTitle := sess.Title
	if sess.Title == constant.DefaultSessionTitle {
		sessionTitle = deriveSessionTitle(content)
		if err := uow.ChatSessionRepository().UpdateTitle(ctx, sess.Id, sessionTitle); err != nil {
			cs.logger.Warn("ChatService", "Failed to rename session from first turn", map[string]interface{}{
				"chat_session_id": sess.Id,
				"error":           err.Error(),
			})
			sessionTitle = sess.Title
		}
	}

	cs.touchSession(ctx, uow, sess.Id)

	return &dto.SendMessageResponse{
		ChatSessionId:    sess.Id,
		ChatSessionTitle: sessionTitle,
		Sent:             toChatTurnResponse(userMessage),
		Reply:            toChatTurnResponse(assistantMessage),
	}, nil
}

// UploadFiles relays each file as an independent turn: its own user
// message carrying the attachment descriptor and its own reply or
// fallback. Uploads never rename the session and never touch the model
// context.
func (cs *chatService) UploadFiles(ctx context.Context, userId uuid.UUID, req *dto.UploadFilesRequest) (*dto.UploadFilesResponse, error) {
	if userId == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	if len(req.Files) == 0 {
		return nil, ErrEmptyMessage
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	sess, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: req.ChatSessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNoActiveSession
	}

	turns := make([]*dto.UploadTurnResponse, 0, len(req.Files))
	for _, f := range req.Files {
		userMessage := &entity.ChatMessage{
			Id:            uuid.New(),
			ChatSessionId: sess.Id,
			Role:          constant.ChatMessageRoleUser,
			Content:       "Uploaded: " + f.Name,
			Language:      sess.Language,
			Attachments: []entity.Attachment{{
				Id:   uuid.NewString(),
				Name: f.Name,
				Type: f.Type,
				Size: f.Size,
				Url:  f.Url,
			}},
			IsError:   false,
			CreatedAt: time.Now(),
		}
		cs.persistMessage(ctx, uow, userId, userMessage)

		reply, genErr := cs.assistant.GenerateForUpload(ctx, f.Name, sess.Language)

		assistantMessage := &entity.ChatMessage{
			Id:            uuid.New(),
			ChatSessionId: sess.Id,
			Role:          constant.ChatMessageRoleAssistant,
			Language:      sess.Language,
			CreatedAt:     time.Now(),
		}
		if genErr != nil {
			cs.logger.Error("ChatService", "Model call failed for upload turn", map[string]interface{}{
				"chat_session_id": sess.Id,
				"file_name":       f.Name,
				"error":           genErr.Error(),
			})
			assistantMessage.Content = locale.FallbackMessage(sess.Language)
			assistantMessage.IsError = true
		} else {
			assistantMessage.Content = reply
			assistantMessage.IsError = false
		}
		cs.persistMessage(ctx, uow, userId, assistantMessage)

		turns = append(turns, &dto.UploadTurnResponse{
			Sent:  toChatTurnResponse(userMessage),
			Reply: toChatTurnResponse(assistantMessage),
		})
	}

	cs.touchSession(ctx, uow, sess.Id)

	return &dto.UploadFilesResponse{
		ChatSessionId: sess.Id,
		Turns:         turns,
	}, nil
}

// persistMessage writes a turn and publishes its event. Failures are
// logged and swallowed: a lost transcript row must not break the turn.
func (cs *chatService) persistMessage(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, msg *entity.ChatMessage) {
	if err := uow.ChatMessageRepository().Create(ctx, msg); err != nil {
		cs.logger.Error("ChatService", "Failed to persist chat message", map[string]interface{}{
			"chat_session_id": msg.ChatSessionId,
			"role":            msg.Role,
			"error":           err.Error(),
		})
		return
	}
	cs.publishMessageCreated(userId, msg)
}

func (cs *chatService) publishMessageCreated(userId uuid.UUID, msg *entity.ChatMessage) {
	if cs.publisher == nil {
		return
	}
	err := cs.publisher.Publish(events.TopicChatMessageCreated, events.ChatMessageCreated{
		MessageId:     msg.Id,
		ChatSessionId: msg.ChatSessionId,
		UserId:        userId,
		Role:          msg.Role,
		Content:       msg.Content,
		IsError:       msg.IsError,
		CreatedAt:     msg.CreatedAt,
	})
	if err != nil {
		cs.logger.Warn("ChatService", "Failed to publish message event", map[string]interface{}{
			"message_id": msg.Id,
			"error":      err.Error(),
		})
	}
}

func (cs *chatService) touchSession(ctx context.Context, uow unitofwork.UnitOfWork, sessionId uuid.UUID) {
	if err := uow.ChatSessionRepository().Touch(ctx, sessionId, time.Now()); err != nil {
		cs.logger.Warn("ChatService", "Failed to touch session", map[string]interface{}{
			"chat_session_id": sessionId,
			"error":           err.Error(),
		})
	}
}

// deriveSessionTitle truncates the first user turn on a rune boundary so
// multibyte scripts never get split mid-character.
func deriveSessionTitle(content string) string {
	runes := []rune(content)
	if len(runes) <= constant.SessionTitleMaxRunes {
		return content
	}
	return string(runes[:constant.SessionTitleMaxRunes]) + constant.SessionTitleEllipsis
}

func toChatTurnResponse(msg *entity.ChatMessage) *dto.ChatTurnResponse {
	return &dto.ChatTurnResponse{
		Id:          msg.Id,
		Role:        msg.Role,
		Content:     msg.Content,
		Attachments: msg.Attachments,
		IsError:     msg.IsError,
		CreatedAt:   msg.CreatedAt,
	}
}
