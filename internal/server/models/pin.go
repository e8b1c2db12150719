package models

// Pin is a user-authored map marker. CreatorID is nil for system-seeded
// (ownerless) pins; once set it never changes.
type Pin struct {
	ID        int64   `json:"id"`
	CreatorID *int64  `json:"creatorID"`
	Message   string  `json:"message"`
	Image     *string `json:"image"`
	Color     *string `json:"color"`
	Likes     int64   `json:"likes"`
}

// PinPatch is a partial update: nil fields are left untouched.
type PinPatch struct {
	Message *string `json:"message"`
	Image   *string `json:"image"`
	Color   *string `json:"color"`
}

// IsEmpty reports whether the patch carries no changes.
func (p *PinPatch) IsEmpty() bool {
	return p.Message == nil && p.Image == nil && p.Color == nil
}
