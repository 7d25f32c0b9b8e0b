package domain

import "time"

// Comment is feedback left on an item by a user whose approved booking of
// that item has already finished.
type Comment struct {
	ID         int32     `json:"id"`
	ItemID     int32     `json:"item_id"`
	AuthorID   int32     `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	Created    time.Time `json:"created"`
}
