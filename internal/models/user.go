package models

// Privilege is stored as an integer. The wire values predate the moderator
// tier, which is why Moderator sorts above Administrator numerically.
type Privilege int

const (
	PrivilegeUser          Privilege = 0
	PrivilegeAdministrator Privilege = 1
	PrivilegeModerator     Privilege = 2
)

// Rank orders privileges as User < Moderator < Administrator.
func (p Privilege) Rank() int {
	switch p {
	case PrivilegeAdministrator:
		return 2
	case PrivilegeModerator:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether p satisfies a guard requiring min.
func (p Privilege) AtLeast(min Privilege) bool {
	return p.Rank() >= min.Rank()
}

func (p Privilege) String() string {
	switch p {
	case PrivilegeAdministrator:
		return "admin"
	case PrivilegeModerator:
		return "moderator"
	default:
		return "user"
	}
}

type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"size:255;uniqueIndex;not null" json:"username"`
	Password  []byte    `gorm:"column:password;not null" json:"-"`
	Privilege Privilege `gorm:"not null;default:0" json:"privilege"`
}

func (User) TableName() string {
	return "users"
}
