package database

import (
	"errors"
	"fmt"

	"github.com/galaplate/creational/beverage"
	"github.com/galaplate/creational/logger"
	"github.com/galaplate/creational/organism"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a recorded pond or beverage does not exist.
var ErrNotFound = errors.New("record not found")

// Store records what the factories and builders produce.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// RecordPond saves the factory's organisms in creation order
func (s *Store) RecordPond(f *organism.Factory) (*Pond, error) {
	animals := f.GetAnimals()
	plants := f.GetPlants()

	pond := &Pond{
		ID:        uuid.NewString(),
		Variant:   string(f.Variant()),
		Animals:   len(animals),
		Plants:    len(plants),
		Organisms: make([]OrganismRecord, 0, len(animals)+len(plants)),
	}
	for i, a := range animals {
		pond.Organisms = append(pond.Organisms, organismRecord(RoleAnimal, i, a))
	}
	for i, p := range plants {
		pond.Organisms = append(pond.Organisms, organismRecord(RolePlant, i, p))
	}

	if err := s.db.Create(pond).Error; err != nil {
		return nil, fmt.Errorf("failed to record pond: %w", err)
	}

	logger.Info("pond recorded", map[string]any{
		"pond_id": pond.ID,
		"variant": pond.Variant,
		"animals": pond.Animals,
		"plants":  pond.Plants,
	})
	return pond, nil
}

func organismRecord(role string, position int, o organism.Organism) OrganismRecord {
	return OrganismRecord{
		Role:     role,
		Position: position,
		Species:  string(o.Species()),
		Label:    o.Label(),
	}
}

// FindPond loads a pond with its organisms, animals first
func (s *Store) FindPond(id string) (*Pond, error) {
	var pond Pond
	err := s.db.
		Preload("Organisms", func(db *gorm.DB) *gorm.DB {
			return db.Order("role ASC").Order("position ASC")
		}).
		First(&pond, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("pond %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &pond, nil
}

// ListPonds returns ponds newest first, without organisms
func (s *Store) ListPonds(limit int) ([]Pond, error) {
	var ponds []Pond
	q := s.db.Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&ponds).Error; err != nil {
		return nil, err
	}
	return ponds, nil
}

// RecordBeverage saves the beverage's current amounts
func (s *Store) RecordBeverage(b beverage.Beverage, cooks int) (*BeverageRecord, error) {
	rec := &BeverageRecord{
		ID:       uuid.NewString(),
		Kind:     string(b.Kind()),
		Cooks:    cooks,
		Water:    b.WaterAmount(),
		Material: b.MaterialAmount(),
	}
	if err := s.db.Create(rec).Error; err != nil {
		return nil, fmt.Errorf("failed to record beverage: %w", err)
	}

	logger.Info("beverage recorded", map[string]any{
		"beverage_id": rec.ID,
		"kind":        rec.Kind,
		"cooks":       cooks,
	})
	return rec, nil
}

// ListBeverages returns beverages newest first
func (s *Store) ListBeverages(limit int) ([]BeverageRecord, error) {
	var out []BeverageRecord
	q := s.db.Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
