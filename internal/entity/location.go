package entity

type Shelf string

const (
	ShelfLeft   Shelf = "left"
	ShelfRight  Shelf = "right"
	ShelfBottom Shelf = "bottom"
)

type Rack string

const (
	RackTop    Rack = "top"
	RackMiddle Rack = "middle"
	RackBottom Rack = "bottom"
	RackNone   Rack = ""
)

// Location is the physical storage slot of a medicine. Each medicine has at
// most one location (medicine_id is unique) and the row is removed together
// with its medicine.
type Location struct {
	ID         int   `gorm:"primaryKey;autoIncrement"`
	Row        int   `gorm:"type:smallint;not null"`
	Col        int   `gorm:"type:smallint;not null"`
	Shelf      Shelf `gorm:"type:shelf;not null"`
	Rack       Rack  `gorm:"type:rack;not null"`
	MedicineID int   `gorm:"column:medicine_id;uniqueIndex;not null"`
}
