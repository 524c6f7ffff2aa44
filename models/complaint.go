package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Role identifies who performed an action on a complaint
type Role string

const (
	RoleSystem          Role = "system"
	RoleCitizen         Role = "citizen"
	RoleAgent           Role = "agent"
	RolePoliticianAdmin Role = "politician-admin"
	RoleDeveloperAdmin  Role = "developer-admin"
)

// Complaint represents a citizen complaint. TrackingID is the only
// public-facing lookup key; the Mongo ObjectID is never exposed.
type Complaint struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"-"`
	TrackingID   string              `bson:"trackingId" json:"trackingId"`
	UserID       *primitive.ObjectID `bson:"userId,omitempty" json:"-"`
	CategoryID   int                 `bson:"categoryId" json:"categoryId"`
	CategoryName string              `bson:"categoryName" json:"categoryName"`
	Upazila      string              `bson:"upazila" json:"upazila"`
	UnionName    string              `bson:"unionName" json:"unionName"`
	Details      string              `bson:"details" json:"details"`
	ImageURL     *string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	IsAnonymous  bool                `bson:"isAnonymous" json:"isAnonymous"`
	StatusID     int                 `bson:"statusId" json:"statusId"`
	StatusName   string              `bson:"statusName" json:"statusName"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// StatusHistoryEntry is one row of the append-only audit trail. Status and
// actor fields are snapshots taken at write time; entries are never updated
// or removed.
type StatusHistoryEntry struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ComplaintID   primitive.ObjectID `bson:"complaintId" json:"-"`
	StatusID      int                `bson:"statusId" json:"statusId"`
	StatusName    string             `bson:"statusName" json:"statusName"`
	UpdatedByType Role               `bson:"updatedByType" json:"updatedByType"`
	UpdatedByID   string             `bson:"updatedById,omitempty" json:"updatedById,omitempty"`
	UpdatedByName string             `bson:"updatedByName,omitempty" json:"updatedByName,omitempty"`
	ImageURL      *string            `bson:"solutionImageUrl,omitempty" json:"solutionImageUrl,omitempty"`
	Notes         *string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// EnsureComplaintIndexes creates the unique tracking id index plus the
// secondary indexes the list/filter paths rely on
func EnsureComplaintIndexes(complaints, history *mongo.Collection) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := complaints.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "trackingId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "statusId", Value: 1}}},
		{Keys: bson.D{{Key: "categoryId", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return err
	}

	_, err = history.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "complaintId", Value: 1}, {Key: "createdAt", Value: 1}},
	})
	return err
}
