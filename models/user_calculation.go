package models

import "time"

type CalculationType string

const (
	CalculationBMI      CalculationType = "bmi"
	CalculationCalories CalculationType = "calories"
	CalculationBodyFat  CalculationType = "bodyfat"
)

// UserCalculation is one saved calculator run. Value holds the headline
// number, Details the JSON of inputs and result.
type UserCalculation struct {
	ID      uint            `gorm:"primaryKey" json:"id"`
	UserID  uint            `gorm:"index;not null" json:"userId"`
	Type    CalculationType `gorm:"size:16;index;not null" json:"type"`
	Value   string          `gorm:"not null" json:"value"`
	Details string          `gorm:"type:text" json:"details"`
	Date    time.Time       `gorm:"index" json:"date"`
}
