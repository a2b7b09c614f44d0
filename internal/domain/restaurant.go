package domain

import "time"

type Restaurant struct {
	ID            string    `json:"id"`
	AccessID      string    `json:"accessId"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	LogoURL       string    `json:"logoUrl,omitempty"`
	TaxRate       float64   `json:"taxRate"`
	SurchargeRate float64   `json:"surchargeRate"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Table struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"-"`
	TableNumber  int       `json:"tableNumber"`
	QRCodeURL    string    `json:"qrCodeUrl,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}
