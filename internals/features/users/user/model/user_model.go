package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"learnhub_backend/internals/constants"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserName  string    `gorm:"column:user_name;size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	FullName  string    `gorm:"column:full_name;size:150" json:"full_name"`
	Email     string    `gorm:"column:email;size:255;unique;not null" json:"email" validate:"required,email"`
	Password  string    `gorm:"column:password;not null" json:"-" validate:"required,min=8"`
	Role      string    `gorm:"column:role;type:varchar(20);not null;default:'student'" json:"role" validate:"omitempty,oneof=student instructor admin owner"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = constants.RoleStudent
	}
	return nil
}

// SetPassword menyimpan hash bcrypt, bukan plaintext
func (u *UserModel) SetPassword(plain string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *UserModel) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

// DisplayName meniru get_full_name-fallback untuk log aktivitas
func (u *UserModel) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	if u.UserName != "" {
		return u.UserName
	}
	return "Unknown user"
}
