package dto

// UpdateProfileRequest carries member profile edits. Email and studentId are
// accepted for client convenience but always discarded in favor of the
// stored values.
type UpdateProfileRequest struct {
	Name      *string   `json:"name"`
	Email     *string   `json:"email"`     // ignored, write-once
	StudentID *string   `json:"studentId"` // ignored, write-once
	Bio       *string   `json:"bio"`
	Major     *string   `json:"major"`
	Year      *string   `json:"year"`
	Interests *[]string `json:"interests"`
	GitHub    *string   `json:"github"`
	LinkedIn  *string   `json:"linkedin"`
}
