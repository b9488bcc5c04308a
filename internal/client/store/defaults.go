package store

import "github.com/dmitrijs2005/iptdemo/internal/client/models"

// DefaultState returns the seed document written when nothing usable is
// stored: one verified admin, two departments and empty employees and
// requests.
func DefaultState() models.StoreState {
	return models.StoreState{
		Accounts: []models.Account{
			{
				FirstName: "Admin",
				LastName:  "User",
				Email:     "admin@example.com",
				Password:  "Password123!",
				Role:      models.RoleAdmin,
				Verified:  true,
			},
		},
		Departments: []models.Department{
			{ID: 1, Name: "Engineering", Description: "Engineering Department"},
			{ID: 2, Name: "HR", Description: "Human Resources"},
		},
		Employees: []models.Employee{},
		Requests:  []models.Request{},
	}
}
