package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity is a news item shown on the public home page
type Activity struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title            string              `bson:"title" json:"title"`
	Summary          string              `bson:"summary" json:"summary"`
	ImageURL         *string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	CreatedByAgentID *primitive.ObjectID `bson:"createdByAgentId,omitempty" json:"-"`
	CreatedByName    string              `bson:"createdByName,omitempty" json:"createdByName,omitempty"`
	IsPublished      bool                `bson:"isPublished" json:"isPublished"`
	CreatedAt        time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// CarouselImage is a home page banner image
type CarouselImage struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ImageURL     string             `bson:"imageUrl" json:"imageUrl"`
	Title        string             `bson:"title,omitempty" json:"title,omitempty"`
	DisplayOrder int                `bson:"displayOrder" json:"displayOrder"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
