package candidate

type Candidate struct {
	ID       string
	FullName string
	Email    string
	Skills   []string
}
