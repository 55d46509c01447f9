package model

import (
	"time"

	"github.com/google/uuid"
)

// InternshipModel mirrors the 'internships' table. The organization and its
// contact person are stored as a snapshot in org_-prefixed columns. The
// version column backs optimistic locking of status transitions.
type InternshipModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StudentID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Student      StudentModel    `gorm:"foreignKey:StudentID"`
	SupervisorID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Supervisor   SupervisorModel `gorm:"foreignKey:SupervisorID"`
	Status       string          `gorm:"type:varchar(40);not null;index"`

	OrgCnpj               string `gorm:"type:varchar(14);not null"`
	OrgCorporateName      string `gorm:"type:varchar(255)"`
	OrgBusinessName       string `gorm:"type:varchar(255)"`
	OrgPhone1             string `gorm:"type:varchar(20)"`
	OrgPhone2             string `gorm:"type:varchar(20)"`
	OrgWebsite            string `gorm:"type:varchar(255)"`
	OrgAddrStreet         string `gorm:"type:varchar(255)"`
	OrgAddrNumber         string `gorm:"type:varchar(20)"`
	OrgAddrAdditionalInfo string `gorm:"type:varchar(255)"`
	OrgAddrDistrict       string `gorm:"type:varchar(100)"`
	OrgAddrCity           string `gorm:"type:varchar(100)"`
	OrgAddrState          string `gorm:"type:varchar(2)"`
	OrgAddrPostalCode     string `gorm:"type:varchar(10)"`

	OrgSupervisorName     string `gorm:"type:varchar(255)"`
	OrgSupervisorEmail    string `gorm:"type:varchar(255)"`
	OrgSupervisorPosition string `gorm:"type:varchar(100)"`

	Division          string  `gorm:"type:varchar(100)"`
	Classification    string  `gorm:"type:varchar(20);not null"`
	MonthlyStipend    float64 `gorm:"type:numeric(10,2);not null"`
	TransportationAid float64 `gorm:"type:numeric(10,2);not null"`
	WorkSituation     string  `gorm:"type:varchar(10);not null"`

	WeekdayStartTime          int  `gorm:"not null"`
	WeekdayEndTime            int  `gorm:"not null"`
	WeekdaySecondaryStartTime *int
	WeekdaySecondaryEndTime   *int
	SaturdayStartTime         *int
	SaturdayEndTime           *int

	PeriodStartDate       time.Time `gorm:"type:date;not null"`
	PeriodExpectedEndDate time.Time `gorm:"type:date;not null"`

	CloseReason *string `gorm:"type:text"`
	Version     int64   `gorm:"not null;default:0"`

	Tasks     []InternshipTaskModel     `gorm:"foreignKey:InternshipID;constraint:OnDelete:CASCADE"`
	Documents []InternshipDocumentModel `gorm:"foreignKey:InternshipID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (InternshipModel) TableName() string {
	return "internships"
}

// InternshipTaskModel mirrors the 'internship_tasks' table, the ordered
// activity plan of an internship.
type InternshipTaskModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	InternshipID uuid.UUID `gorm:"type:uuid;not null;index"`
	Position     int       `gorm:"not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (InternshipTaskModel) TableName() string {
	return "internship_tasks"
}

// InternshipDocumentModel mirrors the 'internship_documents' table. Rows are
// removed together with their internship.
type InternshipDocumentModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	InternshipID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name         string     `gorm:"type:varchar(255);not null"`
	Type         string     `gorm:"type:varchar(10);not null"`
	ConfirmedAt  *time.Time
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (InternshipDocumentModel) TableName() string {
	return "internship_documents"
}
