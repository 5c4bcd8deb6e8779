package domain

import "time"

// Site holds the logistics profile for a study site. Number is the sponsor
// site number (e.g. "101"); ID is the internal identifier.
type Site struct {
	ID             string
	Number         string
	Name           string
	Location       string
	Notes          string
	BestHotel      string
	BestRestaurant string
	ParkingSpot    string
	DoorCode       string
	PrimaryContact string
}

// Project is a study/protocol reference that achievements and timesheet
// entries are logged against.
type Project struct {
	ID   string
	Code string
	Name string
}

// Lead is a captured contact from the product landing page.
type Lead struct {
	ID         string
	Name       string
	Email      string
	CapturedAt time.Time
}
