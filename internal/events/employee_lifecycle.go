package events

import "time"

const EmployeeLifecycleTopic = "payroll.employee.lifecycle.v1"

const (
	EmployeeCreated    = "employee_created"
	EmployeeArchived   = "employee_archived"
	EmployeeUnarchived = "employee_unarchived"
)

type EmployeeLifecycleEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	EmployeeID     uint64    `json:"employee_id"`
	EmployeeNumber string    `json:"employee_number"`
	OccurredAt     time.Time `json:"occurred_at"`
}
