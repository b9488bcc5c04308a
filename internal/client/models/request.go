package models

// RequestStatusPending is the status of every newly filed request.
const RequestStatusPending = "Pending"

// RequestDateLayout is the M/D/YYYY date format requests are stamped with.
const RequestDateLayout = "1/2/2006"

// Request is an internal request filed by an account for itself.
// EmployeeEmail refers to Account.Email.
type Request struct {
	Type          string `json:"type"`
	Status        string `json:"status"`
	Date          string `json:"date"`
	EmployeeEmail string `json:"employeeEmail"`
}
