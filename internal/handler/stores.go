package handler

import (
	"context"

	"github.com/civicdesk/complaint-portal/internal/model"
	"github.com/civicdesk/complaint-portal/internal/queue"
	"github.com/civicdesk/complaint-portal/internal/repository"
)

// The store interfaces below describe what each handler needs from the
// persistence layer. The concrete repositories in internal/repository
// satisfy them; tests substitute mocks.

type UserStore interface {
	Create(ctx context.Context, name, email, passwordHash, phone, role string) (uint64, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id uint64) (model.User, error)
	UpdateProfile(ctx context.Context, id uint64, name, phone string) (model.User, error)
	ListByRole(ctx context.Context, role string) ([]model.User, error)
	CountByRole(ctx context.Context, role string) (uint64, error)
}

type ComplaintStore interface {
	Create(ctx context.Context, c model.Complaint) (model.Complaint, error)
	GetByID(ctx context.Context, id uint64) (model.Complaint, error)
	GetDetail(ctx context.Context, id uint64) (repository.ComplaintDetail, error)
	ListByFiler(ctx context.Context, filerID uint64) ([]model.Complaint, error)
	ListAll(ctx context.Context) ([]repository.ComplaintDetail, error)
	UpdateStatus(ctx context.Context, id uint64, status string) (model.Complaint, error)
	Count(ctx context.Context) (uint64, error)
	CountByStatus(ctx context.Context, status string) (uint64, error)
}

type AssignmentStore interface {
	Assign(ctx context.Context, complaintID, agentID uint64, agentName string) (model.Assignment, error)
	GetByID(ctx context.Context, id uint64) (model.Assignment, error)
	UpdateStatus(ctx context.Context, id uint64, status string) (model.Assignment, error)
	ListByAgent(ctx context.Context, agentID uint64) ([]repository.AssignmentDetail, error)
	ListAll(ctx context.Context) ([]repository.AssignmentDetail, error)
}

type MessageStore interface {
	Create(ctx context.Context, complaintID, senderID uint64, senderName, body string) (model.Message, error)
	ListByComplaint(ctx context.Context, complaintID uint64) ([]repository.MessageDetail, error)
}

// EventPublisher emits complaint domain events after assignment actions.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.ComplaintEvent) error
}
