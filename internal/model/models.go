// Package model defines data structure.
package model

// Account holds information about a registered user. The password is
// stored as provided and echoed back by the register and login responses;
// that shape is part of the external contract.
type Account struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Message holds information about a single post attributed to an account.
type Message struct {
	ID              int    `json:"id"`
	PostedBy        int    `json:"posted_by"`
	MessageText     string `json:"message_text"`
	TimePostedEpoch int64  `json:"time_posted_epoch"`
}
