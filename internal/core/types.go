// Package core implements the business rules of the event-registration
// service: the flat company directory, per-company event tables, and the
// public registration pipeline. This package has no HTTP dependencies.
package core

// Company statuses. An empty status cell defaults to enabled.
const (
	StatusEnabled  = "enabled"
	StatusDisabled = "disabled"
)

// Canonical event table header. Columns may be appended over time but never
// removed, so existing registrant rows stay aligned.
var EventHeader = []string{
	"Name",
	"Phone",
	"Email",
	"Gender",
	"College",
	"Status",
	"National ID",
	"Registration Date",
	"Image",
	"EventDescription",
	"EventDate",
	"EventStatus",
}

// Company directory columns in the flat companies sheet.
var companyHeader = []string{"ID", "Name", "UserName", "Password", "Image", "Status"}

const (
	colCompanyID = iota
	colCompanyName
	colCompanyUsername
	colCompanyPassword
	colCompanyImage
	colCompanyStatus
)

// Company is one row of the company directory. The password hash never
// leaves the core.
type Company struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Image    string `json:"image"`
	Status   string `json:"status"`
}

// CreateCompanyInput carries the fields for company creation.
type CreateCompanyInput struct {
	Name     string
	Username string
	Password string

	// Image is an optional uploaded file, committed to the file host.
	ImageName string
	ImageData []byte
}

// UpdateCompanyInput carries a partial company update; nil/empty fields are
// left untouched.
type UpdateCompanyInput struct {
	ID       string
	Name     string
	Username string
	Password string
	Status   string

	ImageName string
	ImageData []byte
}

// Event is one table of a company sheet plus its settings-row metadata.
type Event struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Image         string `json:"image"`
	Description   string `json:"description"`
	Date          string `json:"date"`
	Status        string `json:"status"`
	Registrations int    `json:"registrations"`
	CompanyStatus string `json:"companyStatus"`
}

// CreateEventInput carries the fields for event creation.
type CreateEventInput struct {
	CompanyName string
	EventName   string
	Description string
	Date        string

	ImageName string
	ImageData []byte
}

// CreatedEvent is returned from event creation.
type CreatedEvent struct {
	ID              string `json:"id"`
	RegistrationURL string `json:"registrationUrl"`
}

// Registrant is the public registration submission.
type Registrant struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Gender     string `json:"gender"`
	College    string `json:"college"`
	Status     string `json:"status"`
	NationalID string `json:"nationalId"`
}

// RegisterInput identifies the target event of a registration.
type RegisterInput struct {
	CompanyName string
	EventID     string
	Registrant  Registrant
}

// Registration is the acknowledgment returned for a stored registration.
type Registration struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	RegistrationDate string `json:"registrationDate"`
}

// RegistrationsView is the tabular view of an event's registrants.
// Headers exclude metadata columns; the National ID column is present only
// for admin callers.
type RegistrationsView struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}
