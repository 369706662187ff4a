package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/civicdesk/complaint-portal/internal/model"
	"github.com/civicdesk/complaint-portal/internal/queue"
	"github.com/civicdesk/complaint-portal/internal/repository"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, name, email, passwordHash, phone, role string) (uint64, error) {
	args := m.Called(ctx, name, email, passwordHash, phone, role)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uint64) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) UpdateProfile(ctx context.Context, id uint64, name, phone string) (model.User, error) {
	args := m.Called(ctx, id, name, phone)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) ListByRole(ctx context.Context, role string) ([]model.User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserStore) CountByRole(ctx context.Context, role string) (uint64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(uint64), args.Error(1)
}

type MockComplaintStore struct {
	mock.Mock
}

func (m *MockComplaintStore) Create(ctx context.Context, c model.Complaint) (model.Complaint, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(model.Complaint), args.Error(1)
}

func (m *MockComplaintStore) GetByID(ctx context.Context, id uint64) (model.Complaint, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Complaint), args.Error(1)
}

func (m *MockComplaintStore) GetDetail(ctx context.Context, id uint64) (repository.ComplaintDetail, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(repository.ComplaintDetail), args.Error(1)
}

func (m *MockComplaintStore) ListByFiler(ctx context.Context, filerID uint64) ([]model.Complaint, error) {
	args := m.Called(ctx, filerID)
	return args.Get(0).([]model.Complaint), args.Error(1)
}

func (m *MockComplaintStore) ListAll(ctx context.Context) ([]repository.ComplaintDetail, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repository.ComplaintDetail), args.Error(1)
}

func (m *MockComplaintStore) UpdateStatus(ctx context.Context, id uint64, status string) (model.Complaint, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(model.Complaint), args.Error(1)
}

func (m *MockComplaintStore) Count(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockComplaintStore) CountByStatus(ctx context.Context, status string) (uint64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(uint64), args.Error(1)
}

type MockAssignmentStore struct {
	mock.Mock
}

func (m *MockAssignmentStore) Assign(ctx context.Context, complaintID, agentID uint64, agentName string) (model.Assignment, error) {
	args := m.Called(ctx, complaintID, agentID, agentName)
	return args.Get(0).(model.Assignment), args.Error(1)
}

func (m *MockAssignmentStore) GetByID(ctx context.Context, id uint64) (model.Assignment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Assignment), args.Error(1)
}

func (m *MockAssignmentStore) UpdateStatus(ctx context.Context, id uint64, status string) (model.Assignment, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(model.Assignment), args.Error(1)
}

func (m *MockAssignmentStore) ListByAgent(ctx context.Context, agentID uint64) ([]repository.AssignmentDetail, error) {
	args := m.Called(ctx, agentID)
	return args.Get(0).([]repository.AssignmentDetail), args.Error(1)
}

func (m *MockAssignmentStore) ListAll(ctx context.Context) ([]repository.AssignmentDetail, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repository.AssignmentDetail), args.Error(1)
}

type MockMessageStore struct {
	mock.Mock
}

func (m *MockMessageStore) Create(ctx context.Context, complaintID, senderID uint64, senderName, body string) (model.Message, error) {
	args := m.Called(ctx, complaintID, senderID, senderName, body)
	return args.Get(0).(model.Message), args.Error(1)
}

func (m *MockMessageStore) ListByComplaint(ctx context.Context, complaintID uint64) ([]repository.MessageDetail, error) {
	args := m.Called(ctx, complaintID)
	return args.Get(0).([]repository.MessageDetail), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, ev queue.ComplaintEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}
