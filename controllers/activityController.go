package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shomadhan-be/config"
	"shomadhan-be/models"
)

// GetPublishedActivities serves the public home page news feed
func GetPublishedActivities(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if limit < 1 || limit > 50 {
		limit = 10
	}

	activityCollection := config.GetCollection("activities")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := activityCollection.Find(ctx, bson.M{"isPublished": true}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve activities"})
		return
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode activities"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": activities})
}

// GetAllActivities lists every activity for the operator dashboard
func GetAllActivities(c *gin.Context) {
	activityCollection := config.GetCollection("activities")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := activityCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve activities"})
		return
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode activities"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": activities})
}

// CreateActivity publishes a news item (operators only)
func CreateActivity(c *gin.Context) {
	var input struct {
		Title    string  `json:"title" binding:"required,max=500"`
		Summary  string  `json:"summary" binding:"required"`
		ImageURL *string `json:"imageUrl,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity := models.Activity{
		Title:       input.Title,
		Summary:     input.Summary,
		ImageURL:    input.ImageURL,
		IsPublished: true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if idStr, exists := c.Get("user_id"); exists {
		if objID, err := primitive.ObjectIDFromHex(idStr.(string)); err == nil {
			activity.CreatedByAgentID = &objID
		}
	}
	if nameVal, exists := c.Get("name"); exists {
		if name, ok := nameVal.(string); ok {
			activity.CreatedByName = name
		}
	}

	activityCollection := config.GetCollection("activities")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := activityCollection.InsertOne(ctx, activity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create activity"})
		return
	}

	activity.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": activity})
}

// UpdateActivity edits or unpublishes a news item
func UpdateActivity(c *gin.Context) {
	activityID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity ID"})
		return
	}

	var input struct {
		Title       *string `json:"title,omitempty"`
		Summary     *string `json:"summary,omitempty"`
		ImageURL    *string `json:"imageUrl,omitempty"`
		IsPublished *bool   `json:"isPublished,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	if input.Title != nil {
		update["title"] = *input.Title
	}
	if input.Summary != nil {
		update["summary"] = *input.Summary
	}
	if input.ImageURL != nil {
		update["imageUrl"] = *input.ImageURL
	}
	if input.IsPublished != nil {
		update["isPublished"] = *input.IsPublished
	}

	activityCollection := config.GetCollection("activities")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := activityCollection.UpdateByID(ctx, activityID, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update activity"})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Activity updated successfully"})
}

// DeleteActivity removes a news item
func DeleteActivity(c *gin.Context) {
	activityID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity ID"})
		return
	}

	activityCollection := config.GetCollection("activities")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := activityCollection.DeleteOne(ctx, bson.M{"_id": activityID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete activity"})
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted successfully"})
}

// GetCarouselImages serves the active home page banners, in display order
func GetCarouselImages(c *gin.Context) {
	carouselCollection := config.GetCollection("carouselImages")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "displayOrder", Value: 1},
		{Key: "createdAt", Value: -1},
	})

	cursor, err := carouselCollection.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve carousel images"})
		return
	}
	defer cursor.Close(ctx)

	var images []models.CarouselImage
	if err := cursor.All(ctx, &images); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode carousel images"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": images})
}

// AddCarouselImage registers a banner image URL (admins only)
func AddCarouselImage(c *gin.Context) {
	var input struct {
		ImageURL     string `json:"imageUrl" binding:"required"`
		Title        string `json:"title,omitempty"`
		DisplayOrder int    `json:"displayOrder,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image := models.CarouselImage{
		ImageURL:     input.ImageURL,
		Title:        input.Title,
		DisplayOrder: input.DisplayOrder,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	carouselCollection := config.GetCollection("carouselImages")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := carouselCollection.InsertOne(ctx, image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add carousel image"})
		return
	}

	image.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": image})
}
