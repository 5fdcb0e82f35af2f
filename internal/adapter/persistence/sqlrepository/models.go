package sqlrepository

import (
	"time"

	"gorm.io/gorm"
)

// EstimateModel is the estimates row. Decimal fields are stored as text so the
// same schema works on postgres and sqlite.
type EstimateModel struct {
	ID              string `gorm:"primaryKey;size:64"`
	Title           string `gorm:"not null"`
	ProjectType     string
	ClientName      string
	Location        string
	LinkedProjectID string `gorm:"size:64;index"`
	TaxPercentage   string `gorm:"not null"`
	Subtotal        int64  `gorm:"not null"`
	TaxAmount       int64  `gorm:"not null"`
	Total           int64  `gorm:"not null"`
	Status          string `gorm:"size:16;not null"`
	RejectionReason string
	Version         int64 `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (EstimateModel) TableName() string { return "estimates" }

type EstimateLineModel struct {
	ID             string `gorm:"primaryKey;size:64"`
	EstimateID     string `gorm:"size:64;index;not null"`
	ParentID       string `gorm:"size:64"`
	IsCategory     bool
	ItemNumber     string `gorm:"size:16"`
	Label          string
	Description    string
	Unit           string
	Quantity       string
	UnitPrice      int64
	LineTotal      int64
	CostCategory   string
	CatalogEntryID string `gorm:"size:64"`
	Position       int
}

func (EstimateLineModel) TableName() string { return "estimate_lines" }

type ProjectModel struct {
	ID          string `gorm:"primaryKey;size:64"`
	Name        string
	BudgetValue int64
	Status      string `gorm:"size:16"`
	EstimateID  string `gorm:"size:64;index"`
	CreatedAt   time.Time
}

func (ProjectModel) TableName() string { return "projects" }

type TransactionModel struct {
	ID          string `gorm:"primaryKey;size:64"`
	ProjectID   string `gorm:"size:64;index;not null"`
	Category    string `gorm:"size:16;not null"`
	Amount      int64
	Date        time.Time
	Description string
	Reference   string `gorm:"size:64"`
	CreatedAt   time.Time
}

func (TransactionModel) TableName() string { return "transactions" }

type PriceCatalogEntryModel struct {
	ID          string `gorm:"primaryKey;size:64"`
	Description string `gorm:"not null"`
	Unit        string
	UnitPrice   int64
	Category    string
	Position    int64 `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PriceCatalogEntryModel) TableName() string { return "price_catalog_entries" }

type ClientPaymentModel struct {
	ID                 string `gorm:"primaryKey;size:64"`
	ProjectID          string `gorm:"size:64;index;not null"`
	Amount             int64
	Date               time.Time
	Status             string `gorm:"size:16"`
	TransactionID      string `gorm:"size:64"`
	ProviderPayloadRaw string
}

func (ClientPaymentModel) TableName() string { return "client_payments" }

// AutoMigrate creates or updates every table used by the SQL repositories.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&EstimateModel{},
		&EstimateLineModel{},
		&ProjectModel{},
		&TransactionModel{},
		&PriceCatalogEntryModel{},
		&ClientPaymentModel{},
	)
}
