package models

import (
	"strings"
	"time"
)

// Chair statuses.
const (
	ChairAvailable   = "available"
	ChairBooked      = "booked"
	ChairMaintenance = "maintenance"
	ChairBlocked     = "blocked"
)

// Chair is a bookable seat in the directory. ChairID is the externally
// assigned code and is unique across the collection.
type Chair struct {
	ID            string    `bson:"id" json:"id"`
	ChairID       string    `bson:"chairId" json:"chairId"`
	ChairName     string    `bson:"chairName" json:"chairName"`
	ChairType     string    `bson:"chairType" json:"chairType"`
	ChairLocation string    `bson:"chairLocation" json:"chairLocation"`
	ChairFeatures []string  `bson:"chairFeatures" json:"chairFeatures"`
	ChairStatus   string    `bson:"chairStatus" json:"chairStatus"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ValidChairStatus reports whether s is one of the directory statuses.
func ValidChairStatus(s string) bool {
	switch s {
	case ChairAvailable, ChairBooked, ChairMaintenance, ChairBlocked:
		return true
	}
	return false
}

// ChairFilter narrows ListChairs by equality. Empty fields match everything.
type ChairFilter struct {
	Type   string `form:"type"`
	Status string `form:"status"`
}

// Matches reports whether c passes the filter.
func (f ChairFilter) Matches(c Chair) bool {
	if f.Type != "" && c.ChairType != f.Type {
		return false
	}
	if f.Status != "" && c.ChairStatus != f.Status {
		return false
	}
	return true
}

// NewChairInput is the body of an add-chair request.
type NewChairInput struct {
	ChairID       string   `json:"chairId" binding:"required"`
	ChairName     string   `json:"chairName" binding:"required"`
	ChairType     string   `json:"chairType" binding:"required"`
	ChairLocation string   `json:"chairLocation" binding:"required"`
	ChairFeatures []string `json:"chairFeatures" binding:"required"`
	ChairStatus   string   `json:"chairStatus" binding:"omitempty,oneof=available booked maintenance blocked"`
}

// Normalize trims surrounding whitespace and applies the default status.
func (in *NewChairInput) Normalize() {
	in.ChairID = strings.TrimSpace(in.ChairID)
	in.ChairName = strings.TrimSpace(in.ChairName)
	in.ChairType = strings.TrimSpace(in.ChairType)
	in.ChairLocation = strings.TrimSpace(in.ChairLocation)
	in.ChairStatus = strings.TrimSpace(in.ChairStatus)
	if in.ChairStatus == "" {
		in.ChairStatus = ChairAvailable
	}
}

// Missing lists the names of required fields that are empty.
func (in NewChairInput) Missing() []string {
	var missing []string
	if in.ChairID == "" {
		missing = append(missing, "chairId")
	}
	if in.ChairName == "" {
		missing = append(missing, "chairName")
	}
	if in.ChairType == "" {
		missing = append(missing, "chairType")
	}
	if in.ChairLocation == "" {
		missing = append(missing, "chairLocation")
	}
	if in.ChairFeatures == nil {
		missing = append(missing, "chairFeatures")
	}
	return missing
}

// StatusInput is the body of a set-status request.
type StatusInput struct {
	Status string `json:"status" binding:"required,oneof=available booked maintenance blocked"`
}
