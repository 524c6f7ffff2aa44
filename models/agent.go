package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// Agent is a front-line operator account, created and managed by admins
type Agent struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Username         string              `bson:"username" json:"username"`
	Password         string              `bson:"password,omitempty" json:"-"`
	FullName         string              `bson:"fullName" json:"fullName"`
	Phone            string              `bson:"phone,omitempty" json:"phone,omitempty"`
	Email            string              `bson:"email,omitempty" json:"email,omitempty"`
	IsActive         bool                `bson:"isActive" json:"isActive"`
	CreatedByAdminID *primitive.ObjectID `bson:"createdByAdminId,omitempty" json:"-"`
	CreatedByRole    Role                `bson:"createdByRole,omitempty" json:"createdByRole,omitempty"`
	CreatedAt        time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time           `bson:"updatedAt" json:"updatedAt"`
}

func (a *Agent) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Password = string(hashed)
	return nil
}

func (a *Agent) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(candidate))
	return err == nil
}
