package workspace

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/models"
)

// FieldErrors — результат валидации формы: поле -> сообщение.
// Все провалившиеся поля собираются за один проход, без fail-fast:
// пользователь видит сразу весь список, а не по ошибке за попытку.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// ValidateAirport проверяет обязательные поля формы "добавить аэропорт".
// Возвращает nil, если все поля заполнены. Пара карта url+имя считается
// одним полем "map": запись без карты не принимается, половинчатая — тоже.
func ValidateAirport(a models.Airport) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(a.Iata) == "" {
		errs["iata"] = "Add Iata"
	}

	if strings.TrimSpace(a.Icao) == "" {
		errs["icao"] = "Add Icao"
	}

	if strings.TrimSpace(a.Name) == "" {
		errs["name"] = "Add Airport name"
	}

	if a.MapURL == "" || a.MapName == "" {
		errs["map"] = "Upload Airport map"
	}

	if strings.TrimSpace(a.RentingCompanyName) == "" {
		errs["rentingCompanyName"] = "Add renting company name"
	}

	if strings.TrimSpace(a.RentingCompanyURL) == "" {
		errs["rentingCompanyUrl"] = "Add renting company url"
	}

	if strings.TrimSpace(a.RentingCompanyPhoneNo) == "" {
		errs["rentingCompanyPhoneNo"] = "Add renting company phone number"
	}

	if strings.TrimSpace(a.TaxiPhoneNo) == "" {
		errs["taxiPhoneNo"] = "Add taxi phone number"
	}

	if strings.TrimSpace(a.EmergencyPhoneNo) == "" {
		errs["emergencyPhoneNo"] = "Add emergency phone number"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}
