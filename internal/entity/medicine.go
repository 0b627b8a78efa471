package entity

type Medicine struct {
	ID       int    `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"type:text;not null"`
	Brand    string `gorm:"type:text;not null"`
	Potency  string `gorm:"type:text;not null"`
	Quantity int    `gorm:"type:smallint;not null"`
	Size     string `gorm:"type:text;not null"`

	Location *Location `gorm:"foreignKey:MedicineID;constraint:OnDelete:CASCADE"`
}
