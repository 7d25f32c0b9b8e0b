package domain

import "time"

// ItemRequest describes an item a user is looking for. Items created in
// answer to a request reference it through Item.RequestID.
type ItemRequest struct {
	ID          int32     `json:"id"`
	RequesterID int32     `json:"requester_id"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`

	// Items offered in answer to this request, attached on read.
	Items []Item `json:"items,omitempty"`
}
