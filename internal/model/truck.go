package model

import "time"

// Truck statuses.
const (
	TruckStatusOpen   = "open"
	TruckStatusComing = "coming"
	TruckStatusClosed = "closed"
)

// ScheduleSlot is one day's serving window for a truck.
type ScheduleSlot struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsOpen    bool   `json:"isOpen"`
}

// TruckLocation is a serving spot with its weekly schedule. Positions are
// static demo data; there is no live tracking.
type TruckLocation struct {
	ID               string         `json:"id" db:"id"`
	Name             string         `json:"name" db:"name"`
	Address          string         `json:"address" db:"address"`
	Latitude         string         `json:"latitude" db:"latitude"`
	Longitude        string         `json:"longitude" db:"longitude"`
	Schedule         []ScheduleSlot `json:"schedule" db:"schedule"`
	CurrentStatus    string         `json:"currentStatus" db:"current_status"`
	EstimatedArrival *time.Time     `json:"estimatedArrival" db:"estimated_arrival"`
	OrdersToday      int            `json:"ordersToday" db:"orders_today"`
}
