package entities

import "time"

type ProjectStatus string

const (
	ProjectStatusActive ProjectStatus = "active"
)

// Project is the operational record provisioned when an estimate is approved.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Deleting a project removes its transactions as well.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	BudgetValue Money         `json:"budget_value"`
	Status      ProjectStatus `json:"status"`
	EstimateID  string        `json:"estimate_id"`
	CreatedAt   time.Time     `json:"created_at"`
}

// ProjectSpec is the creation command emitted by an approval.
type ProjectSpec struct {
	Name        string
	BudgetValue Money
	EstimateID  string
}
