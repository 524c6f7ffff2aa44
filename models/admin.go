package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// Admin is an elevated operator account. AdminRole is the stored value
// ("politician" or "developer"); Role() maps it to the workflow role enum.
type Admin struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AdminRole string             `bson:"role" json:"role"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

const (
	AdminRolePolitician = "politician"
	AdminRoleDeveloper  = "developer"
)

// Role maps the stored admin role to the workflow role enum
func (a *Admin) Role() Role {
	if a.AdminRole == AdminRoleDeveloper {
		return RoleDeveloperAdmin
	}
	return RolePoliticianAdmin
}

// DisplayName mirrors the portal's fixed admin display names
func (a *Admin) DisplayName() string {
	if a.AdminRole == AdminRoleDeveloper {
		return "Developer"
	}
	return "Politician"
}

func (a *Admin) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(candidate))
	return err == nil
}
