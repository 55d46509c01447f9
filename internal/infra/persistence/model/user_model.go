package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// StudentModel mirrors the 'students' table. Each row is the student-specific
// profile of exactly one user account. The residential address is flattened
// into addr_-prefixed columns.
type StudentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID `gorm:"type:uuid;unique;not null"`
	User          UserModel `gorm:"foreignKey:UserID"`
	FullName      string    `gorm:"type:varchar(255);not null"`
	RG            string    `gorm:"type:varchar(20)"`
	Phone         string    `gorm:"type:varchar(20)"`
	WhatsApp      string    `gorm:"type:varchar(20)"`
	AcademicID    string    `gorm:"type:varchar(50)"`
	AcademicClass string    `gorm:"type:varchar(100)"`

	AddrStreet         string `gorm:"type:varchar(255)"`
	AddrNumber         string `gorm:"type:varchar(20)"`
	AddrAdditionalInfo string `gorm:"type:varchar(255)"`
	AddrDistrict       string `gorm:"type:varchar(100)"`
	AddrCity           string `gorm:"type:varchar(100)"`
	AddrState          string `gorm:"type:varchar(2)"`
	AddrPostalCode     string `gorm:"type:varchar(10)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StudentModel) TableName() string {
	return "students"
}

// SupervisorModel mirrors the 'supervisors' table.
type SupervisorModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID uuid.UUID `gorm:"type:uuid;unique;not null"`
	User   UserModel `gorm:"foreignKey:UserID"`
	Name   string    `gorm:"type:varchar(255);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SupervisorModel) TableName() string {
	return "supervisors"
}

// AdminModel mirrors the 'admins' table.
type AdminModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID uuid.UUID `gorm:"type:uuid;unique;not null"`
	User   UserModel `gorm:"foreignKey:UserID"`
	Name   string    `gorm:"type:varchar(255);not null;unique"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}
