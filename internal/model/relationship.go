package model

// Relationship links a content row to a meta row.
type Relationship struct {
	ContentID uint `gorm:"column:cid;primaryKey;autoIncrement:false"`
	MetaID    uint `gorm:"column:mid;primaryKey;autoIncrement:false"`
}

func (Relationship) TableName() string {
	return "typecho_relationships"
}
