package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shomadhan-be/models"
	"shomadhan-be/services"
	"shomadhan-be/utils"
)

const validDetails = "রাস্তার অবস্থা খুবই খারাপ, দ্রুত মেরামত প্রয়োজন।"

func validSubmitInput() services.SubmitInput {
	return services.SubmitInput{
		CategoryID: 3,
		Upazila:    "সরাইল",
		UnionName:  "হরিপুর",
		Details:    validDetails,
	}
}

func TestSubmit_CreatesComplaintWithInitialHistory(t *testing.T) {
	// Arrange
	store := new(MockComplaintStore)
	svc := services.NewLifecycleService(store)

	var gotComplaint *models.Complaint
	var gotEntry *models.StatusHistoryEntry
	store.On("InsertWithHistory", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			gotComplaint = args.Get(1).(*models.Complaint)
			gotEntry = args.Get(2).(*models.StatusHistoryEntry)
		}).
		Return(nil).Once()

	userID := primitive.NewObjectID()
	in := validSubmitInput()
	in.UserID = &userID

	// Act
	complaint, err := svc.Submit(context.Background(), in)

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, complaint)
	assert.True(t, utils.IsTrackingID(complaint.TrackingID), "tracking id %q should match the generator format", complaint.TrackingID)
	assert.Equal(t, models.StatusSubmitted, complaint.StatusID)
	assert.Equal(t, "সমস্যা/অভিযোগ জমা হয়েছে", complaint.StatusName, "status name is snapshotted from the catalog")
	assert.Equal(t, 3, complaint.CategoryID)
	assert.Equal(t, "বিদ্যুৎ ও গ্যাস", complaint.CategoryName, "category name is snapshotted from the catalog")
	assert.Equal(t, &userID, complaint.UserID)
	assert.Equal(t, complaint.CreatedAt, complaint.UpdatedAt)

	assert.Same(t, complaint, gotComplaint, "the returned complaint is the one handed to the store")
	assert.Equal(t, models.StatusSubmitted, gotEntry.StatusID)
	assert.Equal(t, models.RoleSystem, gotEntry.UpdatedByType, "the initial entry is attributed to the system")
	store.AssertExpectations(t)
}

func TestSubmit_AnonymousDropsOwner(t *testing.T) {
	store := new(MockComplaintStore)
	svc := services.NewLifecycleService(store)

	var gotComplaint *models.Complaint
	store.On("InsertWithHistory", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { gotComplaint = args.Get(1).(*models.Complaint) }).
		Return(nil).Once()

	// a logged-in citizen submitting anonymously
	userID := primitive.NewObjectID()
	in := validSubmitInput()
	in.UserID = &userID
	in.IsAnonymous = true

	_, err := svc.Submit(context.Background(), in)

	assert.NoError(t, err)
	assert.Nil(t, gotComplaint.UserID, "anonymous complaints must not store an owner reference")
	assert.True(t, gotComplaint.IsAnonymous)
}

func TestSubmit_ValidationErrors(t *testing.T) {
	store := new(MockComplaintStore)
	svc := services.NewLifecycleService(store)

	tests := []struct {
		name      string
		mutate    func(*services.SubmitInput)
		wantField string
	}{
		{"empty details", func(in *services.SubmitInput) { in.Details = "" }, "details"},
		{"details too short", func(in *services.SubmitInput) { in.Details = "ছোট" }, "details"},
		{"missing category", func(in *services.SubmitInput) { in.CategoryID = 0 }, "categoryId"},
		{"unknown category", func(in *services.SubmitInput) { in.CategoryID = 99 }, "categoryId"},
		{"missing upazila", func(in *services.SubmitInput) { in.Upazila = "" }, "upazila"},
		{"unknown upazila", func(in *services.SubmitInput) { in.Upazila = "ঢাকা" }, "upazila"},
		{"missing union", func(in *services.SubmitInput) { in.UnionName = "" }, "unionName"},
		{"union of another upazila", func(in *services.SubmitInput) { in.UnionName = "চান্দুরা" }, "unionName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validSubmitInput()
			tt.mutate(&in)

			complaint, err := svc.Submit(context.Background(), in)

			assert.Nil(t, complaint)
			var vErr *services.ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Fields, tt.wantField, "the offending field should be named")
		})
	}

	store.AssertNotCalled(t, "InsertWithHistory", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmit_MissingFieldsAllNamed(t *testing.T) {
	store := new(MockComplaintStore)
	svc := services.NewLifecycleService(store)

	_, err := svc.Submit(context.Background(), services.SubmitInput{})

	var vErr *services.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.ElementsMatch(t, []string{"categoryId", "upazila", "unionName", "details"}, vErr.Fields)
}

func TestSubmit_RetriesOnTrackingIDCollision(t *testing.T) {
	store := new(MockComplaintStore)
	svc := services.NewLifecycleService(store)

	var ids []string
	record := func(args mock.Arguments) {
		ids = append(ids, args.Get(1).(*models.Complaint).TrackingID)
	}
	store.On("InsertWithHistory", mock.Anything, mock.Anything, mock.Anything).
		Run(record).Return(services.ErrDuplicateTrackingID).Twice()
	store.On("InsertWithHistory", mock.Anything, mock.Anything, mock.Anything).
		Run(record).Return(nil).Once()

	complaint, err := svc.Submit(context.Background(), validSubmitInput())

	assert.NoError(t, err)
	assert.NotNil(t, complaint)
	assert.Len(t, ids, 3, "two collisions mean three attempts")
	store.AssertExpectations(t)
}

func TestSubmit_CollisionRetriesExhausted(t *testing.T) {
	store := new(MockComplaintStore)
	svc := services.NewLifecycleService(store)

	store.On("InsertWithHistory", mock.Anything, mock.Anything, mock.Anything).
		Return(services.ErrDuplicateTrackingID).Times(3)

	complaint, err := svc.Submit(context.Background(), validSubmitInput())

	assert.Nil(t, complaint)
	var sErr *services.StorageError
	assert.ErrorAs(t, err, &sErr, "exhausted retries escalate to a generic internal failure")
	store.AssertExpectations(t)
}

func TestTransition_AppendsHistoryAtomically(t *testing.T) {
	store := new(MockComplaintStore)
	svc := services.NewLifecycleService(store)

	complaintID := primitive.NewObjectID()
	existing := &models.Complaint{
		ID:         complaintID,
		TrackingID: "SMD-MF1K2J3L-A9X2",
		StatusID:   models.StatusSubmitted,
	}
	store.On("FindByTrackingID", mock.Anything, "SMD-MF1K2J3L-A9X2").Return(existing, nil).Once()

	notes := "fixed"
	var gotEntry *models.StatusHistoryEntry
	store.On("ApplyTransition", mock.Anything, complaintID, models.StatusResolved, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { gotEntry = args.Get(4).(*models.StatusHistoryEntry) }).
		Return(nil).Once()

	err := svc.Transition(context.Background(), services.TransitionInput{
		TrackingID:     "smd-mf1k2j3l-a9x2", // citizen-typed lower case
		TargetStatusID: models.StatusResolved,
		ActorRole:      models.RoleAgent,
		ActorID:        "agent-7",
		ActorName:      "Karim",
		Notes:          &notes,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.StatusResolved, gotEntry.StatusID)
	assert.Equal(t, "সমাধান করা হয়েছে", gotEntry.StatusName)
	assert.Equal(t, models.RoleAgent, gotEntry.UpdatedByType)
	assert.Equal(t, "agent-7", gotEntry.UpdatedByID)
	assert.Equal(t, "Karim", gotEntry.UpdatedByName)
	assert.Equal(t, &notes, gotEntry.Notes)
	store.AssertExpectations(t)
}

func TestTransition_RejectsNoOp(t *testing.T) {
	store := new(MockComplaintStore)
	svc := services.NewLifecycleService(store)

	existing := &models.Complaint{
		ID:         primitive.NewObjectID(),
		TrackingID: "SMD-MF1K2J3L-B7Q1",
		StatusID:   models.StatusReceived,
	}
	store.On("FindByTrackingID", mock.Anything, existing.TrackingID).Return(existing, nil).Once()

	err := svc.Transition(context.Background(), services.TransitionInput{
		TrackingID:     existing.TrackingID,
		TargetStatusID: models.StatusReceived,
		ActorRole:      models.RoleDeveloperAdmin,
		ActorID:        "admin-1",
	})

	var vErr *services.ValidationError
	assert.ErrorAs(t, err, &vErr, "a no-op transition is a validation error, not silently accepted")
	store.AssertNotCalled(t, "ApplyTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTransition_UnknownStatusRejected(t *testing.T) {
	store := new(MockComplaintStore)
	svc := services.NewLifecycleService(store)

	err := svc.Transition(context.Background(), services.TransitionInput{
		TrackingID:     "SMD-MF1K2J3L-C2D4",
		TargetStatusID: 9,
		ActorRole:      models.RoleAgent,
	})

	var vErr *services.ValidationError
	assert.ErrorAs(t, err, &vErr)
	store.AssertNotCalled(t, "FindByTrackingID", mock.Anything, mock.Anything)
}

func TestTransition_NotFound(t *testing.T) {
	store := new(MockComplaintStore)
	svc := services.NewLifecycleService(store)

	store.On("FindByTrackingID", mock.Anything, mock.Anything).Return(nil, nil).Once()

	err := svc.Transition(context.Background(), services.TransitionInput{
		TrackingID:     "SMD-DOESNOT-EXST",
		TargetStatusID: models.StatusReceived,
		ActorRole:      models.RoleAgent,
	})

	var nfErr *services.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestTransition_UnauthorizedRolesRejected(t *testing.T) {
	for _, role := range []models.Role{models.RoleCitizen, models.RoleSystem, ""} {
		t.Run(string(role), func(t *testing.T) {
			store := new(MockComplaintStore)
			svc := services.NewLifecycleService(store)

			existing := &models.Complaint{
				ID:         primitive.NewObjectID(),
				TrackingID: "SMD-MF1K2J3L-E5F6",
				StatusID:   models.StatusSubmitted,
			}
			store.On("FindByTrackingID", mock.Anything, existing.TrackingID).Return(existing, nil).Once()

			err := svc.Transition(context.Background(), services.TransitionInput{
				TrackingID:     existing.TrackingID,
				TargetStatusID: models.StatusResolved,
				ActorRole:      role,
				ActorID:        "someone",
			})

			var aErr *services.AuthorizationError
			assert.ErrorAs(t, err, &aErr)
			store.AssertNotCalled(t, "ApplyTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestGetByTrackingID_AnonymousNeverExposesSubmitter(t *testing.T) {
	store := new(MockComplaintStore)
	svc := services.NewLifecycleService(store)

	// defensive case: an anonymous complaint that somehow kept an owner id
	userID := primitive.NewObjectID()
	complaintID := primitive.NewObjectID()
	existing := &models.Complaint{
		ID:          complaintID,
		TrackingID:  "SMD-MF1K2J3L-G8H9",
		UserID:      &userID,
		IsAnonymous: true,
		StatusID:    models.StatusSubmitted,
	}
	store.On("FindByTrackingID", mock.Anything, existing.TrackingID).Return(existing, nil).Once()
	store.On("HistoryFor", mock.Anything, complaintID).Return([]models.StatusHistoryEntry{
		{ComplaintID: complaintID, StatusID: models.StatusSubmitted, UpdatedByType: models.RoleSystem},
	}, nil).Once()

	detail, err := svc.GetByTrackingID(context.Background(), existing.TrackingID)

	assert.NoError(t, err)
	assert.Nil(t, detail.Submitter)
	assert.Nil(t, detail.UserID, "the owner reference is stripped from the read model")
	store.AssertNotCalled(t, "FindSubmitter", mock.Anything, mock.Anything)
}

func TestGetByTrackingID_AttachesSubmitterAndHistory(t *testing.T) {
	store := new(MockComplaintStore)
	svc := services.NewLifecycleService(store)

	userID := primitive.NewObjectID()
	complaintID := primitive.NewObjectID()
	existing := &models.Complaint{
		ID:         complaintID,
		TrackingID: "SMD-MF1K2J3L-J1K2",
		UserID:     &userID,
		StatusID:   models.StatusResolved,
	}
	history := []models.StatusHistoryEntry{
		{ComplaintID: complaintID, StatusID: models.StatusSubmitted, UpdatedByType: models.RoleSystem},
		{ComplaintID: complaintID, StatusID: models.StatusResolved, UpdatedByType: models.RoleAgent},
	}
	store.On("FindByTrackingID", mock.Anything, existing.TrackingID).Return(existing, nil).Once()
	store.On("HistoryFor", mock.Anything, complaintID).Return(history, nil).Once()
	store.On("FindSubmitter", mock.Anything, userID).
		Return(&models.User{Name: "Rahim", Email: "rahim@example.com"}, nil).Once()

	detail, err := svc.GetByTrackingID(context.Background(), existing.TrackingID)

	assert.NoError(t, err)
	assert.Len(t, detail.History, 2)
	assert.Equal(t, detail.StatusID, detail.History[len(detail.History)-1].StatusID,
		"the latest history entry always matches the materialized status")
	assert.NotNil(t, detail.Submitter)
	assert.Equal(t, "Rahim", detail.Submitter.Name)
	store.AssertExpectations(t)
}

func TestGetByTrackingID_NotFound(t *testing.T) {
	store := new(MockComplaintStore)
	svc := services.NewLifecycleService(store)

	store.On("FindByTrackingID", mock.Anything, "SMD-NOPE-0000").Return(nil, nil).Once()

	detail, err := svc.GetByTrackingID(context.Background(), "smd-nope-0000")

	assert.Nil(t, detail)
	var nfErr *services.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
	assert.True(t, strings.Contains(nfErr.Error(), "SMD-NOPE-0000"))
}

func TestListForUser_PassesThrough(t *testing.T) {
	store := new(MockComplaintStore)
	svc := services.NewLifecycleService(store)

	userID := primitive.NewObjectID()
	own := []models.Complaint{{TrackingID: "SMD-MF1K2J3L-L3M4", StatusID: models.StatusSubmitted}}
	store.On("FindByUserID", mock.Anything, userID).Return(own, nil).Once()

	complaints, err := svc.ListForUser(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, own, complaints)
	store.AssertExpectations(t)
}
