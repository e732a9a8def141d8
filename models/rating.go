package models

// RatingSubmission is a transient post-service rating. It is converted into a
// conversation message on submit and then discarded.
type RatingSubmission struct {
	Stars   int    `json:"stars"` // 1..5; 0 means unset and is rejected
	Comment string `json:"comment"`
}
