package db_models

const RoleUser = "user"

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string `gorm:"size:20;default:'user'"`

	Trips []Trip `gorm:"foreignKey:OwnerID"`
}
