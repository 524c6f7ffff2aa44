package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"shomadhan-be/config"
	"shomadhan-be/models"
	"shomadhan-be/utils"
)

// LoginAdmin authenticates a politician or developer admin
func LoginAdmin(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role" binding:"required,oneof=politician developer"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adminCollection := config.GetCollection("admins")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var admin models.Admin
	err := adminCollection.FindOne(ctx, bson.M{"email": input.Email, "role": input.Role}).Decode(&admin)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !admin.ComparePassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(admin.ID.Hex(), admin.Role(), admin.DisplayName())
	if err != nil {
		log.Println("Error generating token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	setAuthCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"id":    admin.ID,
		"email": admin.Email,
		"role":  admin.Role(),
		"name":  admin.DisplayName(),
	})
}

// LoginAgent authenticates a front-line agent by username
func LoginAgent(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	agentCollection := config.GetCollection("agents")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var agent models.Agent
	err := agentCollection.FindOne(ctx, bson.M{"username": input.Username}).Decode(&agent)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !agent.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account is deactivated"})
		return
	}

	if !agent.ComparePassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(agent.ID.Hex(), models.RoleAgent, agent.FullName)
	if err != nil {
		log.Println("Error generating token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	setAuthCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"id":       agent.ID,
		"username": agent.Username,
		"name":     agent.FullName,
		"role":     models.RoleAgent,
	})
}

// CreateAgent lets an admin open a new agent account
func CreateAgent(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required,max=100"`
		Password string `json:"password" binding:"required,min=6"`
		FullName string `json:"fullName" binding:"required,max=255"`
		Phone    string `json:"phone,omitempty"`
		Email    string `json:"email,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	agentCollection := config.GetCollection("agents")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := agentCollection.CountDocuments(ctx, bson.M{"username": input.Username})
	if err != nil {
		log.Println("Error checking existing agent:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Agent with this username already exists"})
		return
	}

	agent := models.Agent{
		Username:  input.Username,
		Password:  input.Password,
		FullName:  input.FullName,
		Phone:     input.Phone,
		Email:     input.Email,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if adminIDStr, exists := c.Get("user_id"); exists {
		if adminID, err := primitive.ObjectIDFromHex(adminIDStr.(string)); err == nil {
			agent.CreatedByAdminID = &adminID
		}
	}
	if roleVal, exists := c.Get("role"); exists {
		if role, ok := roleVal.(string); ok {
			agent.CreatedByRole = models.Role(role)
		}
	}

	if err := agent.HashPassword(); err != nil {
		log.Println("Error hashing password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	result, err := agentCollection.InsertOne(ctx, agent)
	if err != nil {
		log.Println("Error inserting agent:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       result.InsertedID,
		"username": agent.Username,
		"fullName": agent.FullName,
		"phone":    agent.Phone,
		"email":    agent.Email,
		"isActive": agent.IsActive,
	})
}

// GetAllAgents lists agent accounts for the admin dashboard
func GetAllAgents(c *gin.Context) {
	agentCollection := config.GetCollection("agents")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := agentCollection.Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve agents"})
		return
	}
	defer cursor.Close(ctx)

	var agents []models.Agent
	if err := cursor.All(ctx, &agents); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode agents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": agents})
}

// UpdateAgent edits an agent account; a new password re-hashes via bcrypt
func UpdateAgent(c *gin.Context) {
	agentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid agent ID"})
		return
	}

	var input struct {
		FullName *string `json:"fullName,omitempty"`
		Phone    *string `json:"phone,omitempty"`
		Email    *string `json:"email,omitempty"`
		IsActive *bool   `json:"isActive,omitempty"`
		Password *string `json:"password,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	if input.FullName != nil {
		update["fullName"] = *input.FullName
	}
	if input.Phone != nil {
		update["phone"] = *input.Phone
	}
	if input.Email != nil {
		update["email"] = *input.Email
	}
	if input.IsActive != nil {
		update["isActive"] = *input.IsActive
	}
	if input.Password != nil && *input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Println("Error hashing password:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
			return
		}
		update["password"] = string(hashed)
	}

	agentCollection := config.GetCollection("agents")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := agentCollection.UpdateByID(ctx, agentID, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update agent"})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Agent not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Agent updated successfully"})
}

// DeleteAgent removes an agent account
func DeleteAgent(c *gin.Context) {
	agentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid agent ID"})
		return
	}

	agentCollection := config.GetCollection("agents")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := agentCollection.DeleteOne(ctx, bson.M{"_id": agentID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete agent"})
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Agent not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Agent deleted successfully"})
}
