package models

import "gorm.io/gorm"

// Food is a reusable nutrition profile, expressed per 100 g of product.
type Food struct {
	gorm.Model
	Name                 string `gorm:"index;not null"`
	Category             string `gorm:"size:32"` // "fruits"|"vegetables"|"grains"|"protein"|"dairy"|"snacks"|"beverages"|"other"
	CaloriesPer100g      float64
	ProteinPer100g       float64
	CarbohydratesPer100g float64
	FatPer100g           float64
	SodiumPer100g        float64 // mg
	SugarPer100g         float64
	FiberPer100g         float64
	IsPublic             bool `gorm:"default:true"`
	CreatedBy            uint `gorm:"index"`
}
