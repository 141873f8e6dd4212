// models содержит wire-модели FlyIt-бэкенда.
//
// Имена json-тегов повторяют контракт апстрима один в один: аэропорты
// отдают camelCase (mapUrl/mapName), новости — исторически lowercase
// (imageurl/imagename). Менять теги нельзя — это чужой API.
package models

// Airport — запись аэропорта.
//
// ID назначается сервером и неизменяем. Пара MapURL/MapName либо
// присутствует целиком, либо целиком пуста: у аэропорта ровно один
// сохранённый файл карты или ни одного.
type Airport struct {
	ID                    int64  `json:"id"`
	Iata                  string `json:"iata"`
	Icao                  string `json:"icao"`
	Name                  string `json:"name"`
	MapURL                string `json:"mapUrl"`
	MapName               string `json:"mapName"`
	RentingCompanyName    string `json:"rentingCompanyName"`
	RentingCompanyURL     string `json:"rentingCompanyUrl"`
	RentingCompanyPhoneNo string `json:"rentingCompanyPhoneNo"`
	TaxiPhoneNo           string `json:"taxiPhoneNo"`
	EmergencyPhoneNo      string `json:"emergencyPhoneNo"`
	News                  []News `json:"news,omitempty"`
}

// EntityID реализует workspace.Entity.
func (a Airport) EntityID() int64 { return a.ID }

// HasMap сообщает, привязан ли к аэропорту файл карты.
func (a Airport) HasMap() bool { return a.MapURL != "" && a.MapName != "" }
