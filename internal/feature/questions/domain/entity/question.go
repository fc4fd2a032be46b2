// Package entity defines the domain entities for the questions feature.
package entity

import "time"

// Question represents a question addressed to a user's mailbox.
// It starts pending (IsAnswered=false, empty Answer) and transitions
// one-way to answered when the owner supplies an answer.
type Question struct {
	// ID is the unique identifier for the question.
	ID uint `gorm:"primaryKey"`

	// AskerID references the signed-in user who submitted the question.
	// It is never exposed to the question's owner.
	AskerID uint `gorm:"index;not null"`

	// UserID references the owner: the user the question was addressed to.
	// Only the owner may answer or delete the question.
	UserID uint `gorm:"index;not null"`

	// Question is the submitted question text.
	Question string `gorm:"type:text;not null"`

	// Answer is empty until the owner answers.
	Answer string `gorm:"type:text"`

	// IsAnswered marks the lifecycle state. Once true it never reverts.
	IsAnswered bool `gorm:"not null;default:false"`

	// CreatedAt is the timestamp when the question was asked.
	CreatedAt time.Time
}

// AskedQuestion is the display projection of a Question, augmented with
// the asker's username. The asker's id is deliberately left out: questions
// are anonymous from the owner's point of view.
type AskedQuestion struct {
	ID            uint      `json:"id"`
	Question      string    `json:"question"`
	Answer        string    `json:"answer,omitempty"`
	IsAnswered    bool      `json:"isAnswered"`
	CreatedAt     time.Time `json:"createdAt"`
	AskerUsername string    `json:"askerUsername"`
}
