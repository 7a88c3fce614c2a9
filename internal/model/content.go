package model

const (
	ContentTypePost      = "post"
	ContentStatusPublish = "publish"

	// MarkdownMarker prefixes every body so the blog renders it as markdown.
	MarkdownMarker = "<!--markdown-->"
)

// Content is one article row of the blog. Slug is indexed but not unique: the sync layer decides
// between insert and update with an explicit existence check.
type Content struct {
	ID           uint   `gorm:"column:cid;primaryKey;autoIncrement"`
	Title        string `gorm:"column:title;size:200"`
	Slug         string `gorm:"column:slug;size:200;index"`
	Created      int64  `gorm:"column:created;index"`
	Modified     int64  `gorm:"column:modified"`
	Text         string `gorm:"column:text;type:text"`
	Order        int    `gorm:"column:order;default:0"`
	AuthorID     uint   `gorm:"column:authorId"`
	Type         string `gorm:"column:type;size:16"`
	Status       string `gorm:"column:status;size:16"`
	CommentsNum  int    `gorm:"column:commentsNum;default:0"`
	AllowComment string `gorm:"column:allowComment;size:1"`
	AllowPing    string `gorm:"column:allowPing;size:1"`
	AllowFeed    string `gorm:"column:allowFeed;size:1"`
	Parent       uint   `gorm:"column:parent;default:0"`
}

func (Content) TableName() string {
	return "typecho_contents"
}
