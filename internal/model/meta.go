package model

const (
	MetaTypeTag      = "tag"
	MetaTypeCategory = "category"
)

// Meta is a taxonomy entry (tag or category). Count tracks how many contents use it.
type Meta struct {
	ID          uint   `gorm:"column:mid;primaryKey;autoIncrement"`
	Name        string `gorm:"column:name;size:200;index"`
	Slug        string `gorm:"column:slug;size:200"`
	Type        string `gorm:"column:type;size:32"`
	Description string `gorm:"column:description;size:200"`
	Count       int    `gorm:"column:count;default:0"`
	Order       int    `gorm:"column:order;default:0"`
	Parent      uint   `gorm:"column:parent;default:0"`
}

func (Meta) TableName() string {
	return "typecho_metas"
}
