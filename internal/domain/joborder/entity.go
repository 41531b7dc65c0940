package joborder

type Status string

const (
	StatusOpen   Status = "OPEN"
	StatusFilled Status = "FILLED"
	StatusClosed Status = "CLOSED"
)

type JobOrder struct {
	ID             string
	ClientID       string
	JobTitle       string
	RequiredSkills []string
	Location       string
	PayRate        float64
	StartDate      string
	EndDate        string
	Status         Status
}
