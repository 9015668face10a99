package models

// User is the persisted account record. The password hash never leaves the
// process: json:"-" keeps it out of every response body.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"not null"                 json:"username"`
	Email        string `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Role         string `gorm:"not null;default:user"    json:"role"`
}

type Board struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Author   string `gorm:"not null;index"           json:"author"`
	Title    string `gorm:"not null"                 json:"title"`
	Contents string `gorm:"not null"                 json:"contents"`
	Status   string `gorm:"not null"                 json:"status"`
	UserID   uint   `gorm:"not null;index"           json:"userId"`
}

type Article struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Author   string `gorm:"not null;index"           json:"author"`
	Title    string `gorm:"not null"                 json:"title"`
	Contents string `gorm:"not null"                 json:"contents"`
	Status   string `gorm:"not null"                 json:"status"`
	UserID   uint   `gorm:"not null;index"           json:"userId"`
}

// BlogPost lives in the in-memory store, so no gorm tags.
type BlogPost struct {
	ID       uint   `json:"id"`
	Author   string `json:"author"`
	Title    string `json:"title"`
	Contents string `json:"contents"`
	Status   string `json:"status"`
}
