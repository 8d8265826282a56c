package domain

// Student represents a student record in the registry.
type Student struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	Country    string `json:"country"`
	University string `json:"university"`
}

// StudentInput holds the writable fields of a student record.
// Create and update both require every field; partial updates are
// not part of the contract.
type StudentInput struct {
	Name       string
	Age        int
	Gender     string
	Country    string
	University string
}
