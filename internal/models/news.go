package models

// News — новость, привязанная к аэропорту.
//
// AirportID задаётся при создании и неизменяем. Пара ImageURL/ImageName
// подчиняется тому же инварианту со-присутствия, что и карта аэропорта.
type News struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	ImageURL  string `json:"imageurl"`
	ImageName string `json:"imagename"`
	AirportID int64  `json:"airportId,omitempty"`
}

// EntityID реализует workspace.Entity.
func (n News) EntityID() int64 { return n.ID }
