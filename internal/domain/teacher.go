package domain

import "time"

type Teacher struct {
	ID         uint      `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	HourlyRate int       `json:"hourly_rate"` // cents
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
