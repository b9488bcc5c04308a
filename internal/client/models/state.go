package models

import "slices"

// StoreState is the durable document: every collection the application
// persists, serialized as one JSON object.
type StoreState struct {
	Accounts    []Account    `json:"accounts"`
	Departments []Department `json:"departments"`
	Employees   []Employee   `json:"employees"`
	Requests    []Request    `json:"requests"`
}

// Normalize replaces nil collections with empty ones, so a document with a
// missing slot encodes back as [] rather than null.
func (s *StoreState) Normalize() {
	if s.Accounts == nil {
		s.Accounts = []Account{}
	}
	if s.Departments == nil {
		s.Departments = []Department{}
	}
	if s.Employees == nil {
		s.Employees = []Employee{}
	}
	if s.Requests == nil {
		s.Requests = []Request{}
	}
}

// Clone returns a deep copy of s. The copy is normalized.
func (s StoreState) Clone() StoreState {
	out := StoreState{
		Accounts:    slices.Clone(s.Accounts),
		Departments: slices.Clone(s.Departments),
		Requests:    slices.Clone(s.Requests),
	}
	if s.Employees != nil {
		out.Employees = make([]Employee, len(s.Employees))
		for i, e := range s.Employees {
			out.Employees[i] = slices.Clone(e)
		}
	}
	out.Normalize()
	return out
}
