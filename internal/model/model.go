package model

type User struct {
	ID           int64
	Username     string
	PasswordHash string
}

type Specialization struct {
	ID   string
	Name string
}

// CourseItem references its parent by value only; the specialization side
// carries no item collection and is queried on demand.
type CourseItem struct {
	ID               string
	Name             string
	Type             string
	SpecializationID string
}
