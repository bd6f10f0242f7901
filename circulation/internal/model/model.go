package model

import (
	"time"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "Pending"
	RequestApproved RequestStatus = "Approved"
	RequestRejected RequestStatus = "Rejected"
)

type TransactionStatus string

const (
	TransactionIssued   TransactionStatus = "Issued"
	TransactionReturned TransactionStatus = "Returned"
)

type FineStatus string

const (
	FinePending FineStatus = "Pending"
	FinePaid    FineStatus = "Paid"
)

type Category struct {
	CategoryID   int    `json:"categoryId" db:"category_id"`
	CategoryName string `json:"categoryName" db:"category_name"`
}

type Resource struct {
	ResourceID        int    `json:"resourceId" db:"resource_id"`
	Name              string `json:"name" db:"name"`
	Category          string `json:"category" db:"category_name"`
	Description       string `json:"description" db:"description"`
	TotalQuantity     int    `json:"totalQuantity" db:"total_quantity"`
	AvailableQuantity int    `json:"availableQuantity" db:"available_quantity"`
	ContributorID     *int   `json:"contributorId,omitempty" db:"student_id"`
}

type ResourceFilter struct {
	Search        string
	Category      string
	AvailableOnly bool
}

type LoanRequest struct {
	RequestID    int           `json:"requestId" db:"request_id"`
	StudentID    int           `json:"studentId" db:"student_id"`
	ResourceID   int           `json:"resourceId" db:"resource_id"`
	ResourceName string        `json:"resourceName" db:"resource_name"`
	Status       RequestStatus `json:"status" db:"status"`
	RequestDate  time.Time     `json:"requestDate" db:"request_date"`
}

type Transaction struct {
	TransactionID int               `json:"transactionId" db:"transaction_id"`
	StudentID     int               `json:"studentId" db:"student_id"`
	ResourceID    int               `json:"resourceId" db:"resource_id"`
	ResourceName  string            `json:"resourceName" db:"resource_name"`
	RequestID     int               `json:"requestId" db:"request_id"`
	IssueDate     time.Time         `json:"issueDate" db:"issue_date"`
	DueDate       time.Time         `json:"dueDate" db:"due_date"`
	ReturnDate    *time.Time        `json:"returnDate,omitempty" db:"return_date"`
	Status        TransactionStatus `json:"status" db:"status"`
}

type Fine struct {
	FineID        int        `json:"fineId" db:"fine_id"`
	StudentID     int        `json:"studentId" db:"student_id"`
	ResourceID    int        `json:"resourceId" db:"resource_id"`
	TransactionID int        `json:"transactionId" db:"transaction_id"`
	Amount        float64    `json:"amount" db:"amount"`
	Reason        string     `json:"reason" db:"reason"`
	Status        FineStatus `json:"status" db:"status"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
}

type Notification struct {
	NotificationID int       `json:"notificationId" db:"notification_id"`
	StudentID      int       `json:"studentId" db:"student_id"`
	Message        string    `json:"message" db:"message"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	IsRead         bool      `json:"isRead" db:"is_read"`
}

type SubmitRequestRequest struct {
	ResourceID int `json:"resourceId" validate:"required,gt=0"`
}

type SubmitRequestResponse struct {
	Request     LoanRequest `json:"request"`
	Transaction Transaction `json:"transaction"`
}

type ReturnResponse struct {
	Transaction Transaction `json:"transaction"`
	Fine        *Fine       `json:"fine,omitempty"`
}

type AddResourceRequest struct {
	Name        string `json:"name" validate:"required"`
	CategoryID  int    `json:"categoryId" validate:"required,gt=0"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
}

type FinesInfo struct {
	PendingTotal float64 `json:"pendingTotal"`
	Items        []Fine  `json:"items"`
}

// DashboardInfo mirrors the dashboard summary the UI renders.
type DashboardInfo struct {
	TotalResources      int            `json:"totalResources"`
	ActiveRequests      int            `json:"activeRequests"`
	IssuedItems         int            `json:"issuedItems"`
	PendingFines        float64        `json:"pendingFines"`
	RecentNotifications []Notification `json:"recentNotifications"`
}

type StudentStats struct {
	StudentID   int       `json:"studentId" db:"student_id"`
	Issued      int       `json:"issued" db:"issued"`
	Returned    int       `json:"returned" db:"returned"`
	FinesCount  int       `json:"finesCount" db:"fines_count"`
	FinesAmount float64   `json:"finesAmount" db:"fines_amount"`
	LastEventAt time.Time `json:"lastEventAt" db:"last_event_at"`
}

type StatsInfo struct {
	Data []StudentStats `json:"data"`
}
