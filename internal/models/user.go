package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleBarista  Role = "BARISTA"
	RoleAdmin    Role = "ADMIN"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleCustomer, RoleBarista, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Name         string `gorm:"not null"`
	Role         Role   `gorm:"not null;default:CUSTOMER;index"`
	Handle       string `gorm:"uniqueIndex;not null;size:32"`
}

// UserSummary is the joined identity projection embedded in admin listings.
type UserSummary struct {
	ID     uint   `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Handle string `json:"handle"`
}

func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Email: u.Email, Name: u.Name, Handle: u.Handle}
}

// MarshalJSON exposes the public projection only; the password hash never
// leaves the models package.
func (u User) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		ID        uint      `json:"id"`
		Email     string    `json:"email"`
		Name      string    `json:"name"`
		Role      Role      `json:"role"`
		Handle    string    `json:"handle"`
		CreatedAt time.Time `json:"createdAt"`
	}{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Handle:    u.Handle,
		CreatedAt: u.CreatedAt,
	})
}
