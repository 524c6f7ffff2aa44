package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shomadhan-be/models"
)

func TestCategoryCatalog(t *testing.T) {
	assert.Len(t, models.Categories, 15, "the category catalog is fixed at 15 entries")

	for i, cat := range models.Categories {
		assert.Equal(t, i+1, cat.ID, "catalog ids are sequential")
		assert.NotEmpty(t, cat.Name)
		assert.NotEmpty(t, cat.NameEn)
	}

	infra := models.CategoryByID(1)
	assert.NotNil(t, infra)
	assert.Equal(t, "Infrastructure", infra.NameEn)

	assert.Nil(t, models.CategoryByID(0))
	assert.Nil(t, models.CategoryByID(16))
	assert.Nil(t, models.CategoryByID(-1))
}

func TestStatusCatalog(t *testing.T) {
	assert.Len(t, models.Statuses, 5, "the workflow has exactly five states")

	expected := []string{"Complaint Submitted", "Received", "Assigned", "In Progress", "Resolved"}
	for i, status := range models.Statuses {
		assert.Equal(t, i+1, status.ID)
		assert.Equal(t, expected[i], status.NameEn)
		assert.NotEmpty(t, status.Name, "the Bengali label is the stored snapshot")
	}

	assert.Equal(t, models.StatusSubmitted, models.Statuses[0].ID)
	assert.Equal(t, models.StatusResolved, models.Statuses[4].ID)
	assert.Nil(t, models.StatusByID(6))
	assert.Nil(t, models.StatusByID(0))
}

func TestLocationCatalog(t *testing.T) {
	assert.Len(t, models.Upazilas, 9)

	unions := models.UnionsByUpazila("কসবা")
	assert.NotEmpty(t, unions)
	assert.Contains(t, unions, "চান্দুরা")

	assert.Nil(t, models.UnionsByUpazila("ঢাকা"), "upazilas outside the district are unknown")
	assert.Nil(t, models.UnionsByUpazila(""))
}

func TestValidLocation(t *testing.T) {
	assert.True(t, models.ValidLocation("সরাইল", "হরিপুর"))
	assert.False(t, models.ValidLocation("সরাইল", "চান্দুরা"), "union belongs to a different upazila")
	assert.False(t, models.ValidLocation("নেই", "হরিপুর"))
	assert.False(t, models.ValidLocation("সরাইল", ""))
}
