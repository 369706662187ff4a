package model

import "time"

// Complaint mirrors the `complaints` table. The reporter contact fields
// (Name, Address, City, State, Pincode) are captured at filing time and are
// independent of the filer's profile. Photo is an optional reference to an
// externally hosted image.
type Complaint struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"userId"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Pincode   string    `json:"pincode"`
	Comment   string    `json:"comment"`
	Photo     *string   `json:"photo"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
