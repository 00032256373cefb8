package models

// Course is the registry view of a course. Only the fields the signer needs
// are mapped; the full curriculum document lives in the store.
type Course struct {
	ID    string `json:"_id"`
	Title string `json:"title"`

	// CourseNumber is the small positive integer identifying the course
	// on-chain. Assigned monotonically at creation and immutable afterwards.
	// A course without one is not eligible for minting.
	CourseNumber *int64 `json:"courseNumber,omitempty"`
}
