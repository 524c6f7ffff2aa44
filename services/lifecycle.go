package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shomadhan-be/models"
	"shomadhan-be/utils"
)

// MinDetailsLength is the shortest accepted complaint text. The form
// enforces it client-side; the service re-checks defensively.
const MinDetailsLength = 20

// trackingIDRetries bounds the regenerate-and-retry loop on tracking id
// collisions. Collisions need a same-millisecond submission to also draw the
// same 4 random chars, so one retry already covers the practical case.
const trackingIDRetries = 3

// LifecycleService orchestrates complaint creation and the status workflow:
// it validates input, consults the authorizer, and drives the store's atomic
// writes. All other packages go through it rather than the store directly.
type LifecycleService struct {
	Store ComplaintStore
}

func NewLifecycleService(store ComplaintStore) *LifecycleService {
	return &LifecycleService{Store: store}
}

// SubmitInput carries a new complaint. UserID is the resolved authenticated
// submitter, nil for visitors.
type SubmitInput struct {
	CategoryID  int
	Upazila     string
	UnionName   string
	Details     string
	ImageURL    *string
	UserID      *primitive.ObjectID
	IsAnonymous bool
}

// TransitionInput carries a status change request made by an operator
type TransitionInput struct {
	TrackingID     string
	TargetStatusID int
	ActorRole      models.Role
	ActorID        string
	ActorName      string
	Notes          *string
	ImageURL       *string
}

// SubmitterInfo is the identity surfaced next to a non-anonymous complaint
type SubmitterInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ComplaintDetail is a complaint with its full audit trail, oldest first
type ComplaintDetail struct {
	models.Complaint
	History   []models.StatusHistoryEntry `json:"statusHistory"`
	Submitter *SubmitterInfo              `json:"submitter,omitempty"`
}

// Submit validates and stores a new complaint. The complaint and its initial
// history entry (status Submitted, actor system) are written atomically; on
// a tracking id collision the id is regenerated and the insert retried.
func (s *LifecycleService) Submit(ctx context.Context, in SubmitInput) (*models.Complaint, error) {
	if err := validateSubmit(in); err != nil {
		return nil, err
	}

	category := models.CategoryByID(in.CategoryID)
	initial := models.StatusByID(models.StatusSubmitted)

	userID := in.UserID
	if in.IsAnonymous {
		// an anonymous complaint made while logged in stores no owner
		userID = nil
	}

	now := time.Now()
	complaint := &models.Complaint{
		UserID:       userID,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		Upazila:      in.Upazila,
		UnionName:    strings.TrimSpace(in.UnionName),
		Details:      strings.TrimSpace(in.Details),
		ImageURL:     in.ImageURL,
		IsAnonymous:  in.IsAnonymous,
		StatusID:     initial.ID,
		StatusName:   initial.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var err error
	for attempt := 0; attempt < trackingIDRetries; attempt++ {
		complaint.TrackingID = utils.GenerateTrackingID()
		entry := &models.StatusHistoryEntry{
			StatusID:      initial.ID,
			StatusName:    initial.Name,
			UpdatedByType: models.RoleSystem,
			CreatedAt:     now,
		}
		err = s.Store.InsertWithHistory(ctx, complaint, entry)
		if err == nil {
			return complaint, nil
		}
		if err != ErrDuplicateTrackingID {
			return nil, err
		}
	}

	return nil, &StorageError{Op: "insert complaint", Err: err}
}

func validateSubmit(in SubmitInput) error {
	var missing []string
	if in.CategoryID == 0 {
		missing = append(missing, "categoryId")
	}
	if strings.TrimSpace(in.Upazila) == "" {
		missing = append(missing, "upazila")
	}
	if strings.TrimSpace(in.UnionName) == "" {
		missing = append(missing, "unionName")
	}
	if strings.TrimSpace(in.Details) == "" {
		missing = append(missing, "details")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing, Reason: "missing required fields"}
	}

	if len([]rune(strings.TrimSpace(in.Details))) < MinDetailsLength {
		return &ValidationError{Fields: []string{"details"}, Reason: "details too short"}
	}
	if models.CategoryByID(in.CategoryID) == nil {
		return &ValidationError{Fields: []string{"categoryId"}, Reason: "unknown category"}
	}
	if models.UnionsByUpazila(in.Upazila) == nil {
		return &ValidationError{Fields: []string{"upazila"}, Reason: "unknown upazila"}
	}
	if !models.ValidLocation(in.Upazila, strings.TrimSpace(in.UnionName)) {
		return &ValidationError{Fields: []string{"unionName"}, Reason: "union does not belong to upazila"}
	}
	return nil
}

// Transition moves a complaint to the target status and appends the audit
// entry atomically. The workflow is deliberately permissive for authorized
// roles: any catalog status except the current one is a valid target.
func (s *LifecycleService) Transition(ctx context.Context, in TransitionInput) error {
	target := models.StatusByID(in.TargetStatusID)
	if target == nil {
		return &ValidationError{Fields: []string{"statusId"}, Reason: "unknown status"}
	}

	trackingID := utils.NormalizeTrackingID(in.TrackingID)
	complaint, err := s.Store.FindByTrackingID(ctx, trackingID)
	if err != nil {
		return err
	}
	if complaint == nil {
		return &NotFoundError{TrackingID: trackingID}
	}

	if complaint.StatusID == target.ID {
		return &ValidationError{Fields: []string{"statusId"}, Reason: "complaint already has this status"}
	}

	if !CanTransition(in.ActorRole, in.ActorID, complaint) {
		return &AuthorizationError{Role: in.ActorRole}
	}

	entry := &models.StatusHistoryEntry{
		StatusID:      target.ID,
		StatusName:    target.Name,
		UpdatedByType: in.ActorRole,
		UpdatedByID:   in.ActorID,
		UpdatedByName: in.ActorName,
		Notes:         in.Notes,
		ImageURL:      in.ImageURL,
		CreatedAt:     time.Now(),
	}
	return s.Store.ApplyTransition(ctx, complaint.ID, target.ID, target.Name, entry)
}

// GetByTrackingID returns the complaint with its ordered history. Submitter
// identity is attached only for non-anonymous complaints; for anonymous ones
// it is withheld no matter who asks.
func (s *LifecycleService) GetByTrackingID(ctx context.Context, trackingID string) (*ComplaintDetail, error) {
	trackingID = utils.NormalizeTrackingID(trackingID)

	complaint, err := s.Store.FindByTrackingID(ctx, trackingID)
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, &NotFoundError{TrackingID: trackingID}
	}

	history, err := s.Store.HistoryFor(ctx, complaint.ID)
	if err != nil {
		return nil, err
	}

	detail := &ComplaintDetail{Complaint: *complaint, History: history}

	if !complaint.IsAnonymous && complaint.UserID != nil {
		user, err := s.Store.FindSubmitter(ctx, *complaint.UserID)
		if err != nil {
			return nil, err
		}
		if user != nil {
			detail.Submitter = &SubmitterInfo{Name: user.Name, Email: user.Email}
		}
	} else {
		// defensive: drop the owner reference entirely so no read path can
		// leak it for anonymous submissions
		detail.UserID = nil
	}

	return detail, nil
}

// ListForUser returns the user's own non-anonymous complaints, newest first
func (s *LifecycleService) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]models.Complaint, error) {
	return s.Store.FindByUserID(ctx, userID)
}

// ListAll is the operator browse/search path
func (s *LifecycleService) ListAll(ctx context.Context, filters ListFilters) ([]models.Complaint, error) {
	return s.Store.FindAll(ctx, filters)
}

// Stats derives read-only counts from the store
func (s *LifecycleService) Stats(ctx context.Context) (*Stats, error) {
	return s.Store.Aggregate(ctx)
}
