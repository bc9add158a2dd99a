package model

import "grandhotel/shared/model"

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID        = "id"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
)

type Guest struct {
	ID        int64  `db:"id"         gen:"auto"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
	model.Metadata
}

func (g Guest) FullName() string {
	if g.LastName == "" {
		return g.FirstName
	}

	return g.FirstName + " " + g.LastName
}
