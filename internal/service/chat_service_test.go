package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"legal-assist-be/internal/constant"
	"legal-assist-be/internal/dto"
	"legal-assist-be/internal/entity"
	"legal-assist-be/internal/locale"
	"legal-assist-be/internal/repository/contract"
	"legal-assist-be/internal/repository/memory"
	"legal-assist-be/internal/repository/specification"
	"legal-assist-be/internal/repository/unitofwork"
	"legal-assist-be/pkg/conversation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeSessionRepo struct {
	sessions   map[uuid.UUID]*entity.ChatSession
	failCreate bool
	failTitle  bool
	touched    []uuid.UUID
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*entity.ChatSession)}
}

func (r *fakeSessionRepo) Create(ctx context.Context, s *entity.ChatSession) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	cp := *s
	r.sessions[s.Id] = &cp
	return nil
}

func (r *fakeSessionRepo) UpdateTitle(ctx context.Context, id uuid.UUID, title string) error {
	if r.failTitle {
		return errors.New("update failed")
	}
	if s, ok := r.sessions[id]; ok {
		s.Title = title
	}
	return nil
}

func (r *fakeSessionRepo) Touch(ctx context.Context, id uuid.UUID, at time.Time) error {
	r.touched = append(r.touched, id)
	if s, ok := r.sessions[id]; ok {
		s.UpdatedAt = at
	}
	return nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.sessions, id)
	return nil
}

func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	var id, userId uuid.UUID
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			id = s.ID
		case specification.UserOwnedBy:
			userId = s.UserID
		}
	}
	s, ok := r.sessions[id]
	if !ok || (userId != uuid.Nil && s.UserId != userId) {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	var userId uuid.UUID
	desc := false
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.UserOwnedBy:
			userId = s.UserID
		case specification.OrderBy:
			desc = s.Desc
		}
	}
	var out []*entity.ChatSession
	for _, s := range r.sessions {
		if userId == uuid.Nil || s.UserId == userId {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if desc {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].UpdatedAt.Before(out[j].UpdatedAt)
	})
	return out, nil
}

func (r *fakeSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.sessions)), nil
}

type fakeMessageRepo struct {
	messages   []*entity.ChatMessage
	failCreate bool
}

func (r *fakeMessageRepo) Create(ctx context.Context, m *entity.ChatMessage) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	cp := *m
	r.messages = append(r.messages, &cp)
	return nil
}

func (r *fakeMessageRepo) DeleteByChatSessionId(ctx context.Context, sessionId uuid.UUID) error {
	return nil
}

func (r *fakeMessageRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatMessage, error) {
	return nil, nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	var sessionId uuid.UUID
	for _, spec := range specs {
		if s, ok := spec.(specification.ByChatSessionID); ok {
			sessionId = s.ChatSessionID
		}
	}
	var out []*entity.ChatMessage
	for _, m := range r.messages {
		if m.ChatSessionId == sessionId {
			cp := *m
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.messages)), nil
}

func (r *fakeMessageRepo) bySession(sessionId uuid.UUID) []*entity.ChatMessage {
	out, _ := r.FindAll(context.Background(), specification.ByChatSessionID{ChatSessionID: sessionId})
	return out
}

type fakeUow struct {
	users         *fakeUserRepo
	sessions      *fakeSessionRepo
	messages      *fakeMessageRepo
	consultations *fakeConsultationRepo
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository                 { return u.users }
func (u *fakeUow) ChatSessionRepository() contract.ChatSessionRepository   { return u.sessions }
func (u *fakeUow) ChatMessageRepository() contract.ChatMessageRepository   { return u.messages }
func (u *fakeUow) ConsultationRepository() contract.ConsultationRepository { return u.consultations }

func (u *fakeUow) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return u }

type fakeAssistant struct {
	reply     string
	err       error
	lastText  string
	lastLang  string
	histories [][]conversation.Turn
	calls     int
}

func (f *fakeAssistant) Generate(ctx context.Context, userText, language string, history []conversation.Turn) (string, error) {
	f.calls++
	f.lastText = userText
	f.lastLang = language
	snapshot := make([]conversation.Turn, len(history))
	copy(snapshot, history)
	f.histories = append(f.histories, snapshot)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeAssistant) GenerateForUpload(ctx context.Context, fileName, language string) (string, error) {
	return f.Generate(ctx, fileName, language, nil)
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type recordingPublisher struct {
	topics []string
}

func (p *recordingPublisher) Publish(topic string, payload interface{}) error {
	p.topics = append(p.topics, topic)
	return nil
}

// --- fixture ---

type chatFixture struct {
	service   IChatService
	uow       *fakeUow
	assistant *fakeAssistant
	contexts  *memory.ContextRepository
	publisher *recordingPublisher
	userId    uuid.UUID
}

func newChatFixture() *chatFixture {
	uow := &fakeUow{
		sessions: newFakeSessionRepo(),
		messages: &fakeMessageRepo{},
	}
	assistantFake := &fakeAssistant{reply: "Here is some legal guidance."}
	contexts := memory.NewContextRepository()
	publisher := &recordingPublisher{}

	return &chatFixture{
		service:   NewChatService(uow, assistantFake, contexts, publisher, nopLogger{}),
		uow:       uow,
		assistant: assistantFake,
		contexts:  contexts,
		publisher: publisher,
		userId:    uuid.New(),
	}
}

func (f *chatFixture) seedSession(title, language string) *entity.ChatSession {
	s := &entity.ChatSession{
		Id:        uuid.New(),
		UserId:    f.userId,
		Title:     title,
		Language:  language,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.uow.sessions.sessions[s.Id] = s
	return s
}

// --- tests ---

func TestCreateSessionSeedsWelcomeMessage(t *testing.T) {
	f := newChatFixture()

	res, err := f.service.CreateSession(context.Background(), f.userId, &dto.CreateSessionRequest{Language: "hi"})
	require.NoError(t, err)

	assert.Equal(t, constant.DefaultSessionTitle, res.Title)
	assert.Equal(t, "hi", res.Language)

	msgs := f.uow.messages.bySession(res.Id)
	require.Len(t, msgs, 1)
	assert.Equal(t, constant.ChatMessageRoleAssistant, msgs[0].Role)
	assert.Equal(t, locale.WelcomeMessage("hi"), msgs[0].Content)
	assert.False(t, msgs[0].IsError)
}

func TestCreateSessionUnsupportedLanguageFallsBack(t *testing.T) {
	f := newChatFixture()

	res, err := f.service.CreateSession(context.Background(), f.userId, &dto.CreateSessionRequest{Language: "xx"})
	require.NoError(t, err)
	assert.Equal(t, "en", res.Language)
}

func TestCreateSessionPersistenceFailureAborts(t *testing.T) {
	f := newChatFixture()
	f.uow.sessions.failCreate = true

	_, err := f.service.CreateSession(context.Background(), f.userId, &dto.CreateSessionRequest{Language: "en"})
	assert.Error(t, err)
}

func TestSendMessageSuccess(t *testing.T) {
	f := newChatFixture()
	sess := f.seedSession(constant.DefaultSessionTitle, "en")

	res, err := f.service.SendMessage(context.Background(), f.userId, &dto.SendMessageRequest{
		ChatSessionId: sess.Id,
		Content:       "Can my landlord evict me without notice?",
	})
	require.NoError(t, err)

	assert.Equal(t, constant.ChatMessageRoleUser, res.Sent.Role)
	assert.Equal(t, "Can my landlord evict me without notice?", res.Sent.Content)
	assert.Equal(t, constant.ChatMessageRoleAssistant, res.Reply.Role)
	assert.Equal(t, "Here is some legal guidance.", res.Reply.Content)
	assert.False(t, res.Reply.IsError)

	// Both turns persisted.
	msgs := f.uow.messages.bySession(sess.Id)
	require.Len(t, msgs, 2)

	// Context extended: user turn then model turn.
	snapshot := f.contexts.Get(sess.Id.String()).Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, conversation.RoleUser, snapshot[0].Role)
	assert.Equal(t, conversation.RoleModel, snapshot[1].Role)

	// Session touched for recency ordering.
	assert.Contains(t, f.uow.sessions.touched, sess.Id)

	// One event per persisted message.
	assert.Len(t, f.publisher.topics, 2)
}

func TestSendMessagePassesAccumulatedHistory(t *testing.T) {
	f := newChatFixture()
	sess := f.seedSession("Evictions", "en")

	_, err := f.service.SendMessage(context.Background(), f.userId, &dto.SendMessageRequest{ChatSessionId: sess.Id, Content: "first"})
	require.NoError(t, err)
	_, err = f.service.SendMessage(context.Background(), f.userId, &dto.SendMessageRequest{ChatSessionId: sess.Id, Content: "second"})
	require.NoError(t, err)

	require.Len(t, f.assistant.histories, 2)
	assert.Empty(t, f.assistant.histories[0])
	require.Len(t, f.assistant.histories[1], 2)
	assert.Equal(t, "first", f.assistant.histories[1][0].Text)
}

func TestSendMessageModelFailurePersistsFallback(t *testing.T) {
	f := newChatFixture()
	sess := f.seedSession("Evictions", "ta")
	f.assistant.err = errors.New("model call failed (unavailable)")

	res, err := f.service.SendMessage(context.Background(), f.userId, &dto.SendMessageRequest{
		ChatSessionId: sess.Id,
		Content:       "question",
	})
	require.NoError(t, err, "a model failure is not an error to the caller")

	assert.True(t, res.Reply.IsError)
	assert.Equal(t, locale.FallbackMessage("ta"), res.Reply.Content)

	// The fallback is persisted like any other assistant turn.
	msgs := f.uow.messages.bySession(sess.Id)
	require.Len(t, msgs, 2)
	assert.True(t, msgs[1].IsError)

	// The user turn is retained so later turns keep their context; the
	// failed model output is not.
	snapshot := f.contexts.Get(sess.Id.String()).Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, conversation.RoleUser, snapshot[0].Role)
	assert.Equal(t, "question", snapshot[0].Text)
}

func TestSendMessageFailedTurnStillInLaterHistory(t *testing.T) {
	f := newChatFixture()
	sess := f.seedSession("Evictions", "en")

	f.assistant.err = errors.New("model call failed (unavailable)")
	_, err := f.service.SendMessage(context.Background(), f.userId, &dto.SendMessageRequest{ChatSessionId: sess.Id, Content: "first"})
	require.NoError(t, err)

	f.assistant.err = nil
	_, err = f.service.SendMessage(context.Background(), f.userId, &dto.SendMessageRequest{ChatSessionId: sess.Id, Content: "second"})
	require.NoError(t, err)

	// The second call sees the first user turn and no model turn for it.
	require.Len(t, f.assistant.histories, 2)
	history := f.assistant.histories[1]
	require.Len(t, history, 1)
	assert.Equal(t, conversation.RoleUser, history[0].Role)
	assert.Equal(t, "first", history[0].Text)
}

func TestSendMessagePersistenceFailureContinues(t *testing.T) {
	f := newChatFixture()
	sess := f.seedSession("Evictions", "en")
	f.uow.messages.failCreate = true

	res, err := f.service.SendMessage(context.Background(), f.userId, &dto.SendMessageRequest{
		ChatSessionId: sess.Id,
		Content:       "question",
	})
	require.NoError(t, err)

	// The model was still consulted and the reply still returned.
	assert.Equal(t, 1, f.assistant.calls)
	assert.Equal(t, "Here is some legal guidance.", res.Reply.Content)
	assert.Empty(t, f.uow.messages.messages)
}

func TestSendMessagePreconditions(t *testing.T) {
	f := newChatFixture()
	sess := f.seedSession("Evictions", "en")

	_, err := f.service.SendMessage(context.Background(), f.userId, &dto.SendMessageRequest{ChatSessionId: sess.Id, Content: "   "})
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = f.service.SendMessage(context.Background(), uuid.Nil, &dto.SendMessageRequest{ChatSessionId: sess.Id, Content: "hello"})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = f.service.SendMessage(context.Background(), f.userId, &dto.SendMessageRequest{ChatSessionId: uuid.New(), Content: "hello"})
	assert.ErrorIs(t, err, ErrNoActiveSession)

	// Another user's session is indistinguishable from a missing one.
	_, err = f.service.SendMessage(context.Background(), uuid.New(), &dto.SendMessageRequest{ChatSessionId: sess.Id, Content: "hello"})
	assert.ErrorIs(t, err, ErrNoActiveSession)

	// No turns were created by any of the failed preconditions.
	assert.Empty(t, f.uow.messages.messages)
	assert.Zero(t, f.assistant.calls)
}

func TestSendMessageFirstTurnRenamesSession(t *testing.T) {
	f := newChatFixture()
	sess := f.seedSession(constant.DefaultSessionTitle, "en")

	longQuestion := strings.Repeat("a", 60)
	res, err := f.service.SendMessage(context.Background(), f.userId, &dto.SendMessageRequest{
		ChatSessionId: sess.Id,
		Content:       longQuestion,
	})
	require.NoError(t, err)

	wantTitle := strings.Repeat("a", 50) + "..."
	assert.Equal(t, wantTitle, res.ChatSessionTitle)
	assert.Equal(t, wantTitle, f.uow.sessions.sessions[sess.Id].Title)

	// A second turn must not rename again.
	res2, err := f.service.SendMessage(context.Background(), f.userId, &dto.SendMessageRequest{
		ChatSessionId: sess.Id,
		Content:       "followup",
	})
	require.NoError(t, err)
	assert.Equal(t, wantTitle, res2.ChatSessionTitle)
}

func TestSendMessageShortFirstTurnTitleNotTruncated(t *testing.T) {
	f := newChatFixture()
	sess := f.seedSession(constant.DefaultSessionTitle, "en")

	res, err := f.service.SendMessage(context.Background(), f.userId, &dto.SendMessageRequest{
		ChatSessionId: sess.Id,
		Content:       "short question",
	})
	require.NoError(t, err)
	assert.Equal(t, "short question", res.ChatSessionTitle)
}

func TestSendMessageRenameFailureDoesNotBlockTurn(t *testing.T) {
	f := newChatFixture()
	sess := f.seedSession(constant.DefaultSessionTitle, "en")
	f.uow.sessions.failTitle = true

	res, err := f.service.SendMessage(context.Background(), f.userId, &dto.SendMessageRequest{
		ChatSessionId: sess.Id,
		Content:       "question",
	})
	require.NoError(t, err)
	assert.Equal(t, constant.DefaultSessionTitle, res.ChatSessionTitle)
	assert.Len(t, f.uow.messages.bySession(sess.Id), 2)
}

func TestGetSessionMessagesResetsContext(t *testing.T) {
	f := newChatFixture()
	sess := f.seedSession("Evictions", "en")

	_, err := f.service.SendMessage(context.Background(), f.userId, &dto.SendMessageRequest{ChatSessionId: sess.Id, Content: "question"})
	require.NoError(t, err)
	require.Equal(t, 2, f.contexts.Get(sess.Id.String()).Len())

	msgs, err := f.service.GetSessionMessages(context.Background(), f.userId, sess.Id)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)

	// Switching back to a session rehydrates the transcript only.
	assert.Zero(t, f.contexts.Get(sess.Id.String()).Len())
}

func TestGetSessionMessagesOwnershipCheck(t *testing.T) {
	f := newChatFixture()
	sess := f.seedSession("Evictions", "en")

	_, err := f.service.GetSessionMessages(context.Background(), uuid.New(), sess.Id)
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestGetAllSessionsOrderedByRecency(t *testing.T) {
	f := newChatFixture()
	older := f.seedSession("Older", "en")
	older.UpdatedAt = time.Now().Add(-time.Hour)
	newer := f.seedSession("Newer", "en")
	newer.UpdatedAt = time.Now()

	sessions, err := f.service.GetAllSessions(context.Background(), f.userId)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "Newer", sessions[0].Title)
	assert.Equal(t, "Older", sessions[1].Title)
}

func TestUploadFilesIndependentTurns(t *testing.T) {
	f := newChatFixture()
	sess := f.seedSession(constant.DefaultSessionTitle, "en")

	res, err := f.service.UploadFiles(context.Background(), f.userId, &dto.UploadFilesRequest{
		ChatSessionId: sess.Id,
		Files: []dto.UploadFileRequest{
			{Name: "lease.pdf", Type: "application/pdf", Size: 1024},
			{Name: "notice.jpg", Type: "image/jpeg", Size: 2048},
		},
	})
	require.NoError(t, err)
	require.Len(t, res.Turns, 2)

	// Two user turns, two assistant replies, each user turn carrying its
	// single attachment descriptor.
	msgs := f.uow.messages.bySession(sess.Id)
	require.Len(t, msgs, 4)
	assert.Equal(t, "Uploaded: lease.pdf", res.Turns[0].Sent.Content)
	require.Len(t, res.Turns[0].Sent.Attachments, 1)
	assert.Equal(t, "lease.pdf", res.Turns[0].Sent.Attachments[0].Name)
	assert.Equal(t, "notice.jpg", res.Turns[1].Sent.Attachments[0].Name)

	// Uploads never rename the session and never touch the model context.
	assert.Equal(t, constant.DefaultSessionTitle, f.uow.sessions.sessions[sess.Id].Title)
	assert.Zero(t, f.contexts.Get(sess.Id.String()).Len())
}

func TestUploadFilesModelFailureFallsBackPerFile(t *testing.T) {
	f := newChatFixture()
	sess := f.seedSession("Docs", "en")
	f.assistant.err = errors.New("model call failed (rejected_by_provider)")

	res, err := f.service.UploadFiles(context.Background(), f.userId, &dto.UploadFilesRequest{
		ChatSessionId: sess.Id,
		Files:         []dto.UploadFileRequest{{Name: "lease.pdf"}},
	})
	require.NoError(t, err)
	require.Len(t, res.Turns, 1)
	assert.True(t, res.Turns[0].Reply.IsError)
	assert.Equal(t, locale.FallbackMessage("en"), res.Turns[0].Reply.Content)
}

func TestRenameSession(t *testing.T) {
	f := newChatFixture()
	sess := f.seedSession("Old title", "en")

	err := f.service.RenameSession(context.Background(), f.userId, sess.Id, "New title")
	require.NoError(t, err)
	assert.Equal(t, "New title", f.uow.sessions.sessions[sess.Id].Title)

	err = f.service.RenameSession(context.Background(), f.userId, sess.Id, "  ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}
