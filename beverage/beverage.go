package beverage

import (
	"errors"
	"fmt"
)

// Kind names a beverage type.
type Kind string

const (
	KindSugarWater Kind = "sugar_water"
	KindSaltWater  Kind = "salt_water"
)

// ErrUnknownKind is returned when no beverage exists for the requested kind.
var ErrUnknownKind = errors.New("unknown beverage kind")

// Beverage is water with one dissolved material. AddMaterial is the only
// operation whose effect differs between kinds.
type Beverage interface {
	Kind() Kind
	AddWater(amount float64)
	AddMaterial(amount float64)
	WaterAmount() float64
	MaterialAmount() float64
}

type SugarWater struct {
	Water float64 `json:"water"`
	Sugar float64 `json:"sugar"`
}

func (s *SugarWater) Kind() Kind                 { return KindSugarWater }
func (s *SugarWater) AddWater(amount float64)    { s.Water += amount }
func (s *SugarWater) AddMaterial(amount float64) { s.Sugar += amount }
func (s *SugarWater) WaterAmount() float64       { return s.Water }
func (s *SugarWater) MaterialAmount() float64    { return s.Sugar }

func (s *SugarWater) String() string {
	return fmt.Sprintf("SugarWater{water=%g, sugar=%g}", s.Water, s.Sugar)
}

type SaltWater struct {
	Water float64 `json:"water"`
	Salt  float64 `json:"salt"`
}

func (s *SaltWater) Kind() Kind                 { return KindSaltWater }
func (s *SaltWater) AddWater(amount float64)    { s.Water += amount }
func (s *SaltWater) AddMaterial(amount float64) { s.Salt += amount }
func (s *SaltWater) WaterAmount() float64       { return s.Water }
func (s *SaltWater) MaterialAmount() float64    { return s.Salt }

func (s *SaltWater) String() string {
	return fmt.Sprintf("SaltWater{water=%g, salt=%g}", s.Water, s.Salt)
}

// New returns an empty beverage of the given kind.
func New(kind Kind) (Beverage, error) {
	switch kind {
	case KindSugarWater:
		return &SugarWater{}, nil
	case KindSaltWater:
		return &SaltWater{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

// Kinds lists the beverage kinds New accepts.
func Kinds() []Kind {
	return []Kind{KindSaltWater, KindSugarWater}
}

// IsKnown reports whether New accepts kind.
func IsKnown(kind Kind) bool {
	_, err := New(kind)
	return err == nil
}
