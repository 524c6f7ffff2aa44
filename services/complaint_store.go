package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shomadhan-be/models"
)

// ListFilters narrows the operator browse/search query. Zero values mean
// "no filter".
type ListFilters struct {
	CategoryID int
	StatusID   int
	Upazila    string
	Search     string
	Limit      int64
	Offset     int64
}

// StatsBucket is one row of a grouped count
type StatsBucket struct {
	Name  string `bson:"name" json:"name"`
	Count int64  `bson:"count" json:"count"`
}

// DailyCount is the number of complaints submitted on one day
type DailyCount struct {
	Date  string `bson:"date" json:"date"`
	Count int64  `bson:"count" json:"count"`
}

// Stats is the read-only aggregate projection over the complaint store
type Stats struct {
	Total      int64         `json:"total"`
	Solved     int64         `json:"solved"`
	ByCategory []StatsBucket `json:"byCategory"`
	ByStatus   []StatsBucket `json:"byStatus"`
	ByUpazila  []StatsBucket `json:"byUpazila"`
	Recent     []DailyCount  `json:"recentComplaints"`
}

// ComplaintStore owns complaint persistence. The two mutating operations are
// atomic: either both the complaint write and the history append commit, or
// neither does. Lookups return (nil, nil) when nothing matches.
type ComplaintStore interface {
	// InsertWithHistory creates the complaint together with its initial
	// history entry. Returns ErrDuplicateTrackingID if the generated
	// tracking id is already taken.
	InsertWithHistory(ctx context.Context, c *models.Complaint, entry *models.StatusHistoryEntry) error

	// ApplyTransition updates the complaint's current status fields and
	// appends the history entry in the same transaction.
	ApplyTransition(ctx context.Context, complaintID primitive.ObjectID, statusID int, statusName string, entry *models.StatusHistoryEntry) error

	FindByTrackingID(ctx context.Context, trackingID string) (*models.Complaint, error)
	HistoryFor(ctx context.Context, complaintID primitive.ObjectID) ([]models.StatusHistoryEntry, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Complaint, error)
	FindAll(ctx context.Context, filters ListFilters) ([]models.Complaint, error)
	FindSubmitter(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
	Aggregate(ctx context.Context) (*Stats, error)
}
