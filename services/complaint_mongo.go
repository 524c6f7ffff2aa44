package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shomadhan-be/models"
)

// MongoComplaintStore is the MongoDB-backed ComplaintStore. Both mutating
// operations run inside a session transaction so the complaint document and
// its history entries can never diverge.
type MongoComplaintStore struct {
	client     *mongo.Client
	complaints *mongo.Collection
	history    *mongo.Collection
	users      *mongo.Collection
}

func NewMongoComplaintStore(client *mongo.Client, db *mongo.Database) *MongoComplaintStore {
	return &MongoComplaintStore{
		client:     client,
		complaints: db.Collection("complaints"),
		history:    db.Collection("statusHistory"),
		users:      db.Collection("users"),
	}
}

func (s *MongoComplaintStore) InsertWithHistory(ctx context.Context, c *models.Complaint, entry *models.StatusHistoryEntry) error {
	session, err := s.client.StartSession()
	if err != nil {
		return &StorageError{Op: "start session", Err: err}
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := s.complaints.InsertOne(sc, c)
		if err != nil {
			return nil, err
		}
		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			c.ID = oid
		}
		entry.ComplaintID = c.ID
		if _, err := s.history.InsertOne(sc, entry); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateTrackingID
		}
		return &StorageError{Op: "insert complaint", Err: err}
	}
	return nil
}

func (s *MongoComplaintStore) ApplyTransition(ctx context.Context, complaintID primitive.ObjectID, statusID int, statusName string, entry *models.StatusHistoryEntry) error {
	session, err := s.client.StartSession()
	if err != nil {
		return &StorageError{Op: "start session", Err: err}
	}
	defer session.EndSession(ctx)

	entry.ComplaintID = complaintID

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := s.complaints.UpdateByID(sc, complaintID, bson.M{"$set": bson.M{
			"statusId":   statusID,
			"statusName": statusName,
			"updatedAt":  entry.CreatedAt,
		}})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, mongo.ErrNoDocuments
		}
		if _, err := s.history.InsertOne(sc, entry); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		return &StorageError{Op: "apply transition", Err: err}
	}
	return nil
}

func (s *MongoComplaintStore) FindByTrackingID(ctx context.Context, trackingID string) (*models.Complaint, error) {
	var c models.Complaint
	err := s.complaints.FindOne(ctx, bson.M{"trackingId": trackingID}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "find complaint", Err: err}
	}
	return &c, nil
}

func (s *MongoComplaintStore) HistoryFor(ctx context.Context, complaintID primitive.ObjectID) ([]models.StatusHistoryEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := s.history.Find(ctx, bson.M{"complaintId": complaintID}, opts)
	if err != nil {
		return nil, &StorageError{Op: "find history", Err: err}
	}
	defer cursor.Close(ctx)

	var entries []models.StatusHistoryEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, &StorageError{Op: "decode history", Err: err}
	}
	return entries, nil
}

func (s *MongoComplaintStore) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Complaint, error) {
	// anonymous submissions store no user id; isAnonymous is checked anyway
	// so an anonymous complaint never shows up in the owner's dashboard
	filter := bson.M{"userId": userID, "isAnonymous": false}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.complaints.Find(ctx, filter, opts)
	if err != nil {
		return nil, &StorageError{Op: "find user complaints", Err: err}
	}
	defer cursor.Close(ctx)

	var complaints []models.Complaint
	if err := cursor.All(ctx, &complaints); err != nil {
		return nil, &StorageError{Op: "decode user complaints", Err: err}
	}
	return complaints, nil
}

func (s *MongoComplaintStore) FindAll(ctx context.Context, filters ListFilters) ([]models.Complaint, error) {
	limit := filters.Limit
	if limit < 1 || limit > 100 {
		limit = 100
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(offset).
		SetLimit(limit)

	cursor, err := s.complaints.Find(ctx, buildComplaintFilter(filters), opts)
	if err != nil {
		return nil, &StorageError{Op: "find complaints", Err: err}
	}
	defer cursor.Close(ctx)

	var complaints []models.Complaint
	if err := cursor.All(ctx, &complaints); err != nil {
		return nil, &StorageError{Op: "decode complaints", Err: err}
	}
	return complaints, nil
}

// buildComplaintFilter translates the operator filters into a Mongo query.
// Text search matches trackingId or details case-insensitively.
func buildComplaintFilter(filters ListFilters) bson.M {
	filter := bson.M{}

	if filters.CategoryID > 0 {
		filter["categoryId"] = filters.CategoryID
	}
	if filters.StatusID > 0 {
		filter["statusId"] = filters.StatusID
	}
	if filters.Upazila != "" {
		filter["upazila"] = filters.Upazila
	}
	if filters.Search != "" {
		filter["$or"] = []bson.M{
			{"trackingId": bson.M{"$regex": filters.Search, "$options": "i"}},
			{"details": bson.M{"$regex": filters.Search, "$options": "i"}},
		}
	}

	return filter
}

func (s *MongoComplaintStore) FindSubmitter(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "find submitter", Err: err}
	}
	return &user, nil
}

func (s *MongoComplaintStore) Aggregate(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	total, err := s.complaints.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, &StorageError{Op: "count complaints", Err: err}
	}
	stats.Total = total

	solved, err := s.complaints.CountDocuments(ctx, bson.M{"statusId": models.StatusResolved})
	if err != nil {
		return nil, &StorageError{Op: "count solved", Err: err}
	}
	stats.Solved = solved

	byCategory := []bson.M{
		{"$group": bson.M{"_id": "$categoryName", "count": bson.M{"$sum": 1}}},
		{"$sort": bson.M{"count": -1}},
		{"$project": bson.M{"name": "$_id", "count": 1, "_id": 0}},
	}
	if stats.ByCategory, err = s.runBucketPipeline(ctx, byCategory); err != nil {
		return nil, err
	}

	byStatus := []bson.M{
		{"$group": bson.M{"_id": "$statusId", "name": bson.M{"$first": "$statusName"}, "count": bson.M{"$sum": 1}}},
		{"$sort": bson.M{"_id": 1}},
		{"$project": bson.M{"name": 1, "count": 1, "_id": 0}},
	}
	if stats.ByStatus, err = s.runBucketPipeline(ctx, byStatus); err != nil {
		return nil, err
	}

	byUpazila := []bson.M{
		{"$group": bson.M{"_id": "$upazila", "count": bson.M{"$sum": 1}}},
		{"$sort": bson.M{"count": -1}},
		{"$project": bson.M{"name": "$_id", "count": 1, "_id": 0}},
	}
	if stats.ByUpazila, err = s.runBucketPipeline(ctx, byUpazila); err != nil {
		return nil, err
	}

	since := time.Now().AddDate(0, 0, -30)
	recent := []bson.M{
		{"$match": bson.M{"createdAt": bson.M{"$gte": since}}},
		{"$group": bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$createdAt"}},
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id": -1}},
		{"$project": bson.M{"date": "$_id", "count": 1, "_id": 0}},
	}
	cursor, err := s.complaints.Aggregate(ctx, recent)
	if err != nil {
		return nil, &StorageError{Op: "aggregate recent", Err: err}
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &stats.Recent); err != nil {
		return nil, &StorageError{Op: "decode recent", Err: err}
	}

	return stats, nil
}

func (s *MongoComplaintStore) runBucketPipeline(ctx context.Context, pipeline []bson.M) ([]StatsBucket, error) {
	cursor, err := s.complaints.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, &StorageError{Op: "aggregate complaints", Err: err}
	}
	defer cursor.Close(ctx)

	var buckets []StatsBucket
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, &StorageError{Op: "decode aggregation", Err: err}
	}
	return buckets, nil
}
