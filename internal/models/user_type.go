package models

const (
	// Seeded rows, created by db.Seed. New users without an explicit
	// type fall back to UserTypeClientID.
	UserTypeClientID       uint = 1
	UserTypeProfessionalID uint = 2
	UserTypeAdminID        uint = 3

	RoleClient       = "Cliente"
	RoleProfessional = "Profissional"
	RoleAdmin        = "Admin"
)

type UserType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;not null" json:"name"`

	Users []User `gorm:"foreignKey:UserTypeID" json:"-"`
}
