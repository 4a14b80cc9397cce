package services

import (
	"context"
	"time"

	"eventup/internal/domain"
)

type mockEventRepo struct {
	createFn              func(ctx context.Context, event *domain.Event) error
	getByIDFn             func(ctx context.Context, id string, include domain.Include) (*domain.Event, error)
	listFn                func(ctx context.Context, include domain.Include, params domain.PaginationParams) ([]*domain.Event, int, error)
	updateFn              func(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error)
	deleteFn              func(ctx context.Context, id string) error
	listStartingBetweenFn func(ctx context.Context, from, to time.Time) ([]*domain.Event, error)

	listCalls   int
	updateCalls int
	deleteCalls int
}

func (m *mockEventRepo) Create(ctx context.Context, event *domain.Event) error {
	return m.createFn(ctx, event)
}

func (m *mockEventRepo) GetByID(ctx context.Context, id string, include domain.Include) (*domain.Event, error) {
	return m.getByIDFn(ctx, id, include)
}

func (m *mockEventRepo) List(ctx context.Context, include domain.Include, params domain.PaginationParams) ([]*domain.Event, int, error) {
	m.listCalls++
	return m.listFn(ctx, include, params)
}

func (m *mockEventRepo) Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	m.updateCalls++
	return m.updateFn(ctx, id, patch)
}

func (m *mockEventRepo) Delete(ctx context.Context, id string) error {
	m.deleteCalls++
	return m.deleteFn(ctx, id)
}

func (m *mockEventRepo) ListStartingBetween(ctx context.Context, from, to time.Time) ([]*domain.Event, error) {
	return m.listStartingBetweenFn(ctx, from, to)
}

type mockAttendeeRepo struct {
	createFn            func(ctx context.Context, attendee *domain.Attendee) error
	getByIDFn           func(ctx context.Context, id string, include domain.Include) (*domain.Attendee, error)
	getByEventAndUserFn func(ctx context.Context, eventID, userID string) (*domain.Attendee, error)
	listByEventIDFn     func(ctx context.Context, eventID string, include domain.Include, params domain.PaginationParams) ([]*domain.Attendee, int, error)
	deleteFn            func(ctx context.Context, id string) error

	createCalls int
}

func (m *mockAttendeeRepo) Create(ctx context.Context, attendee *domain.Attendee) error {
	m.createCalls++
	return m.createFn(ctx, attendee)
}

func (m *mockAttendeeRepo) GetByID(ctx context.Context, id string, include domain.Include) (*domain.Attendee, error) {
	return m.getByIDFn(ctx, id, include)
}

func (m *mockAttendeeRepo) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Attendee, error) {
	return m.getByEventAndUserFn(ctx, eventID, userID)
}

func (m *mockAttendeeRepo) ListByEventID(ctx context.Context, eventID string, include domain.Include, params domain.PaginationParams) ([]*domain.Attendee, int, error) {
	return m.listByEventIDFn(ctx, eventID, include, params)
}

func (m *mockAttendeeRepo) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

type mockAuthorizer struct {
	authorizeFn func(ctx context.Context, action domain.Action, actorID string, event *domain.Event) error
}

func (m *mockAuthorizer) Authorize(ctx context.Context, action domain.Action, actorID string, event *domain.Event) error {
	return m.authorizeFn(ctx, action, actorID, event)
}

type mockUserRepo struct {
	createFn     func(ctx context.Context, user *domain.User) error
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	getByIDFn    func(ctx context.Context, id string) (*domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.createFn(ctx, user)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.getByEmailFn(ctx, email)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return m.getByIDFn(ctx, id)
}

type mockSessionRepo struct {
	createFn  func(ctx context.Context, session *domain.Session) error
	getByIDFn func(ctx context.Context, id string) (*domain.Session, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (m *mockSessionRepo) Create(ctx context.Context, session *domain.Session) error {
	return m.createFn(ctx, session)
}

func (m *mockSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockSessionRepo) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

type mockHasher struct {
	generateSaltFn func() (string, error)
	hashFn         func(salt, password string) (string, error)
	compareFn      func(hash, salt, password string) error
}

func (m *mockHasher) GenerateSalt() (string, error) { return m.generateSaltFn() }

func (m *mockHasher) Hash(salt, password string) (string, error) { return m.hashFn(salt, password) }

func (m *mockHasher) Compare(hash, salt, password string) error {
	return m.compareFn(hash, salt, password)
}

type mockIssuer struct {
	issueFn func(userID, sessionID string, expiry time.Duration) (string, error)
}

func (m *mockIssuer) Issue(userID, sessionID string, expiry time.Duration) (string, error) {
	return m.issueFn(userID, sessionID, expiry)
}

type mockVerifier struct {
	verifyFn func(token string) (string, string, error)
}

func (m *mockVerifier) Verify(token string) (string, string, error) {
	return m.verifyFn(token)
}

type mockNotifier struct {
	notifyFn func(ctx context.Context, event *domain.Event, user *domain.User) error
	calls    []string
}

func (m *mockNotifier) NotifyEventReminder(ctx context.Context, event *domain.Event, user *domain.User) error {
	m.calls = append(m.calls, event.ID+"/"+user.ID)
	if m.notifyFn != nil {
		return m.notifyFn(ctx, event, user)
	}
	return nil
}

type mockReminderLog struct {
	wasSentFn    func(ctx context.Context, eventID, userID string) (bool, error)
	recordSentFn func(ctx context.Context, eventID, userID string, sentAt time.Time) error

	recorded []string
}

func (m *mockReminderLog) WasSent(ctx context.Context, eventID, userID string) (bool, error) {
	if m.wasSentFn != nil {
		return m.wasSentFn(ctx, eventID, userID)
	}
	return false, nil
}

func (m *mockReminderLog) RecordSent(ctx context.Context, eventID, userID string, sentAt time.Time) error {
	m.recorded = append(m.recorded, eventID+"/"+userID)
	if m.recordSentFn != nil {
		return m.recordSentFn(ctx, eventID, userID, sentAt)
	}
	return nil
}
