package database

import "time"

// Pond is one recorded factory run.
type Pond struct {
	ID        string           `gorm:"primaryKey;size:36" json:"id"`
	Variant   string           `gorm:"size:64;index" json:"variant"`
	Animals   int              `json:"animals"`
	Plants    int              `json:"plants"`
	Organisms []OrganismRecord `gorm:"foreignKey:PondID" json:"organisms,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

const (
	RoleAnimal = "animal"
	RolePlant  = "plant"
)

// OrganismRecord is one organism produced by a recorded pond.
type OrganismRecord struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	PondID   string `gorm:"size:36;index" json:"-"`
	Role     string `gorm:"size:16" json:"role"`
	Position int    `json:"position"`
	Species  string `gorm:"size:64" json:"species"`
	Label    string `gorm:"size:64" json:"label"`
}

// BeverageRecord is the state of one brewed beverage.
type BeverageRecord struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Kind      string    `gorm:"size:32;index" json:"kind"`
	Cooks     int       `json:"cooks"`
	Water     float64   `json:"water"`
	Material  float64   `json:"material"`
	CreatedAt time.Time `json:"created_at"`
}
