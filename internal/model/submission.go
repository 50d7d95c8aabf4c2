package model

import "time"

// Endpoint identifies which lead service endpoint received a submission.
type Endpoint string

const (
	// EndpointEmails is the generic save endpoint.
	EndpointEmails Endpoint = "save-emails"

	// EndpointLinkedIn is the professional-network save endpoint.
	EndpointLinkedIn Endpoint = "save-linkedin-data"
)

// Submission is a lead that was successfully saved to the lead service.
type Submission struct {
	ID        int64     `json:"id,omitempty"`
	Email     string    `json:"email"`
	Domain    string    `json:"domain,omitempty"`
	Category  string    `json:"category"`
	Endpoint  Endpoint  `json:"endpoint"`
	Timestamp time.Time `json:"timestamp"`
}
