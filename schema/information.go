package schema

// Information age bounds. Checked on the client before submission and
// re-checked by the store.
const (
	InformationMinAge = 14
	InformationMaxAge = 130
)

// Information is a user's editable display profile. It is created lazily:
// a user without one is not an error, it simply has not been filled in yet.
type Information struct {
	ID         int64  `json:"id" gorm:"primary_key"`
	Age        int    `json:"age" gorm:"not null"`
	Name       string `json:"name" gorm:"not null"`
	CountHelps int    `json:"countHelps" gorm:"not null;default:0"`
	UserID     int64  `json:"userId" gorm:"unique;not null"`
}

func (Information) TableName() string {
	return "information"
}
