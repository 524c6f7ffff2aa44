package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shomadhan-be/models"
	"shomadhan-be/services"
)

// MockComplaintStore is a testify mock of the ComplaintStore interface so
// lifecycle logic can be tested without a running MongoDB.
type MockComplaintStore struct {
	mock.Mock
}

func (m *MockComplaintStore) InsertWithHistory(ctx context.Context, c *models.Complaint, entry *models.StatusHistoryEntry) error {
	args := m.Called(ctx, c, entry)
	return args.Error(0)
}

func (m *MockComplaintStore) ApplyTransition(ctx context.Context, complaintID primitive.ObjectID, statusID int, statusName string, entry *models.StatusHistoryEntry) error {
	args := m.Called(ctx, complaintID, statusID, statusName, entry)
	return args.Error(0)
}

func (m *MockComplaintStore) FindByTrackingID(ctx context.Context, trackingID string) (*models.Complaint, error) {
	args := m.Called(ctx, trackingID)
	if c := args.Get(0); c != nil {
		return c.(*models.Complaint), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockComplaintStore) HistoryFor(ctx context.Context, complaintID primitive.ObjectID) ([]models.StatusHistoryEntry, error) {
	args := m.Called(ctx, complaintID)
	if h := args.Get(0); h != nil {
		return h.([]models.StatusHistoryEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockComplaintStore) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Complaint, error) {
	args := m.Called(ctx, userID)
	if c := args.Get(0); c != nil {
		return c.([]models.Complaint), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockComplaintStore) FindAll(ctx context.Context, filters services.ListFilters) ([]models.Complaint, error) {
	args := m.Called(ctx, filters)
	if c := args.Get(0); c != nil {
		return c.([]models.Complaint), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockComplaintStore) FindSubmitter(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, userID)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockComplaintStore) Aggregate(ctx context.Context) (*services.Stats, error) {
	args := m.Called(ctx)
	if s := args.Get(0); s != nil {
		return s.(*services.Stats), args.Error(1)
	}
	return nil, args.Error(1)
}
