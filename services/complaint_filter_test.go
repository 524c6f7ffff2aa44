package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildComplaintFilter_Empty(t *testing.T) {
	filter := buildComplaintFilter(ListFilters{})
	assert.Empty(t, filter, "zero-value filters must match everything")
}

func TestBuildComplaintFilter_Fields(t *testing.T) {
	filter := buildComplaintFilter(ListFilters{
		CategoryID: 4,
		StatusID:   2,
		Upazila:    "সরাইল",
	})

	assert.Equal(t, bson.M{
		"categoryId": 4,
		"statusId":   2,
		"upazila":    "সরাইল",
	}, filter)
}

func TestBuildComplaintFilter_Search(t *testing.T) {
	filter := buildComplaintFilter(ListFilters{Search: "SMD-MF1K"})

	or, ok := filter["$or"].([]bson.M)
	assert.True(t, ok, "search adds an $or clause")
	assert.Len(t, or, 2)
	assert.Equal(t, bson.M{"$regex": "SMD-MF1K", "$options": "i"}, or[0]["trackingId"])
	assert.Equal(t, bson.M{"$regex": "SMD-MF1K", "$options": "i"}, or[1]["details"])

	_, hasCategory := filter["categoryId"]
	assert.False(t, hasCategory)
}
