package entity

import "time"

type Message struct {
	ID        string    `json:"id" firestore:"-"`
	Text      string    `json:"text" firestore:"text"`
	UserID    string    `json:"userId" firestore:"userId"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp,serverTimestamp"`
}
