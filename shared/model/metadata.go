package model

import "time"

// Metadata holds the audit columns every table carries. The *_by columns
// store the actor named by the X-Actor header, or "guest".
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"`
	ModifiedAt time.Time `db:"modified_at"`
	CreatedBy  string    `db:"created_by"`
	ModifiedBy string    `db:"modified_by"`
}
