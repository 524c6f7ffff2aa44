package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shomadhan-be/config"
	"shomadhan-be/models"
	"shomadhan-be/services"
)

var (
	lifecycleOnce sync.Once
	lifecycle     *services.LifecycleService
)

func getLifecycle() *services.LifecycleService {
	lifecycleOnce.Do(func() {
		store := services.NewMongoComplaintStore(config.GetClient(), config.ConnectDB())
		lifecycle = services.NewLifecycleService(store)
	})
	return lifecycle
}

// respondError maps the service error taxonomy onto HTTP statuses. Storage
// detail stays in the server log, never in the response body.
func respondError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": vErr.Error(), "fields": vErr.Fields})
		return
	}

	var nfErr *services.NotFoundError
	if errors.As(err, &nfErr) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Complaint not found"})
		return
	}

	var aErr *services.AuthorizationError
	if errors.As(err, &aErr) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	log.Println("complaint request failed:", err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Something went wrong"})
}

// SubmitComplaint handles new complaint submissions, anonymous or not
func SubmitComplaint(c *gin.Context) {
	var input struct {
		CategoryID  int     `json:"categoryId" binding:"required"`
		Upazila     string  `json:"upazila" binding:"required"`
		UnionName   string  `json:"unionName" binding:"required"`
		Details     string  `json:"details" binding:"required,min=20"`
		ImageURL    *string `json:"imageUrl,omitempty"`
		IsAnonymous bool    `json:"isAnonymous"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	// attach ownership only for an authenticated, non-anonymous submission
	var userID *primitive.ObjectID
	if !input.IsAnonymous {
		if userIDStr, exists := c.Get("user_id"); exists {
			if objID, err := primitive.ObjectIDFromHex(userIDStr.(string)); err == nil {
				userID = &objID
			}
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	complaint, err := getLifecycle().Submit(ctx, services.SubmitInput{
		CategoryID:  input.CategoryID,
		Upazila:     input.Upazila,
		UnionName:   input.UnionName,
		Details:     input.Details,
		ImageURL:    input.ImageURL,
		UserID:      userID,
		IsAnonymous: input.IsAnonymous,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    complaint,
		"message": "Complaint submitted successfully",
	})
}

// TrackComplaint returns a complaint with its status history by tracking id.
// Public: citizens share tracking ids freely.
func TrackComplaint(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	detail, err := getLifecycle().GetByTrackingID(ctx, c.Param("trackingId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": detail})
}

// UpdateComplaintStatus moves a complaint through the workflow (operators only)
func UpdateComplaintStatus(c *gin.Context) {
	roleVal, roleSet := c.Get("role")
	userIDVal, _ := c.Get("user_id")
	nameVal, _ := c.Get("name")
	if !roleSet {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	var input struct {
		StatusID int     `json:"statusId" binding:"required"`
		Notes    *string `json:"notes,omitempty"`
		ImageURL *string `json:"solutionImageUrl,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	role, _ := roleVal.(string)
	actorID, _ := userIDVal.(string)
	actorName, _ := nameVal.(string)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := getLifecycle().Transition(ctx, services.TransitionInput{
		TrackingID:     c.Param("trackingId"),
		TargetStatusID: input.StatusID,
		ActorRole:      models.Role(role),
		ActorID:        actorID,
		ActorName:      actorName,
		Notes:          input.Notes,
		ImageURL:       input.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Complaint status updated successfully",
	})
}

// GetUserComplaints lists the authenticated citizen's own complaints
func GetUserComplaints(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "User not authenticated"})
		return
	}

	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid user ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	complaints, err := getLifecycle().ListForUser(ctx, objID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    complaints,
		"count":   len(complaints),
	})
}

// GetAllComplaints is the operator browse/search endpoint
func GetAllComplaints(c *gin.Context) {
	categoryID, _ := strconv.Atoi(c.Query("categoryId"))
	statusID, _ := strconv.Atoi(c.Query("statusId"))
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)
	offset, _ := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	complaints, err := getLifecycle().ListAll(ctx, services.ListFilters{
		CategoryID: categoryID,
		StatusID:   statusID,
		Upazila:    c.Query("upazila"),
		Search:     c.Query("search"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    complaints,
		"count":   len(complaints),
	})
}
