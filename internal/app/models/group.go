package models

import "time"

// Group is owned by exactly one (user, school) pair. GroupID is the external
// identifier; the numeric ID stays internal.
type Group struct {
	ID        int64     `json:"-"`
	GroupID   string    `json:"group_id"`
	UserID    string    `json:"user_id"`
	SchoolID  string    `json:"school_id"`
	GroupName string    `json:"group_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GroupStudents pairs a group with its member students, in membership order.
type GroupStudents struct {
	GroupID   string
	GroupName string
	Students  []Student
}
