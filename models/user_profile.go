package models

// UserProfile is the identity record a comment is authored by
type UserProfile struct {
	UserID           int64  `json:"UserID" gorm:"column:UserID;primaryKey;autoIncrement"`
	Name             string `json:"Name" gorm:"column:Name;type:text;not null"`
	Email            string `json:"Email" gorm:"column:Email;type:text;not null"`
	Bio              string `json:"Bio" gorm:"column:Bio;type:text"`
	SocialMediaLinks string `json:"SocialMediaLinks" gorm:"column:SocialMediaLinks;type:text"`

	Comments []Comment `json:"-" gorm:"foreignKey:UserID;references:UserID"`
}

func (UserProfile) TableName() string {
	return "UserProfile"
}
