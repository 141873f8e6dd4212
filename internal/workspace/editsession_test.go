package workspace

// Тесты машины состояний edit-сессии (internal/workspace/editsession.go)
// и валидации формы (internal/workspace/form.go).
//
// Подготовка окружения:
//   go test ./internal/workspace -v -race -count=1

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/models"
)

// Новая сессия: editing, черновик равен исходной записи, учёт пуст.
func TestEditSession_New(t *testing.T) {
	t.Parallel()

	seed := models.News{ID: 1, Title: "seed"}
	s := newEditSession(seed)

	require.Equal(t, StateEditing, s.State())
	require.Equal(t, seed, s.Draft())
	require.Empty(t, s.Unsaved())
}

// UpdateDraft разрешён только в editing.
func TestEditSession_UpdateDraft_States(t *testing.T) {
	t.Parallel()

	s := newEditSession(models.News{})
	require.NoError(t, s.UpdateDraft(func(d *models.News) { d.Title = "a" }))
	require.Equal(t, "a", s.Draft().Title)

	_, err := s.beginCommit()
	require.NoError(t, err)

	err = s.UpdateDraft(func(d *models.News) { d.Title = "b" })
	require.ErrorIs(t, err, ErrSessionState)
	require.Equal(t, "a", s.Draft().Title)
}

// beginCommit из committing -> ErrSessionState (повторный commit той же
// сессии до исхода первого).
func TestEditSession_BeginCommit_Twice(t *testing.T) {
	t.Parallel()

	s := newEditSession(models.News{})

	_, err := s.beginCommit()
	require.NoError(t, err)
	require.Equal(t, StateCommitting, s.State())

	_, err = s.beginCommit()
	require.ErrorIs(t, err, ErrSessionState)
}

// failCommit возвращает committing -> editing; учёт не трогается.
func TestEditSession_FailCommit(t *testing.T) {
	t.Parallel()

	s := newEditSession(models.News{})
	s.Track("a.png")

	_, err := s.beginCommit()
	require.NoError(t, err)

	s.failCommit()
	require.Equal(t, StateEditing, s.State())
	require.Equal(t, []string{"a.png"}, s.Unsaved())
}

// Track сохраняет порядок загрузок; Unsaved отдаёт копию.
func TestEditSession_Track_Order(t *testing.T) {
	t.Parallel()

	s := newEditSession(models.News{})
	s.Track("1")
	s.Track("2")
	s.Track("3")

	got := s.Unsaved()
	require.Equal(t, []string{"1", "2", "3"}, got)

	got[0] = "mutated"
	require.Equal(t, []string{"1", "2", "3"}, s.Unsaved())
}

// cancel вне editing -> ErrSessionState.
func TestEditSession_Cancel_NotEditing(t *testing.T) {
	t.Parallel()

	s := newEditSession(models.News{})

	_, err := s.beginCommit()
	require.NoError(t, err)

	err = s.cancel(context.Background(), nil)
	require.ErrorIs(t, err, ErrSessionState)
}

// Валидация: пустая форма проваливается по всем девяти полям.
func TestValidateAirport_Empty(t *testing.T) {
	t.Parallel()

	errs := ValidateAirport(models.Airport{})
	require.Len(t, errs, 9)

	for field, want := range map[string]string{
		"iata":                  "Add Iata",
		"icao":                  "Add Icao",
		"name":                  "Add Airport name",
		"map":                   "Upload Airport map",
		"rentingCompanyName":    "Add renting company name",
		"rentingCompanyUrl":     "Add renting company url",
		"rentingCompanyPhoneNo": "Add renting company phone number",
		"taxiPhoneNo":           "Add taxi phone number",
		"emergencyPhoneNo":      "Add emergency phone number",
	} {
		require.Equal(t, want, errs[field])
	}
}

// Валидация: поля из одних пробелов считаются пустыми.
func TestValidateAirport_Whitespace(t *testing.T) {
	t.Parallel()

	errs := ValidateAirport(models.Airport{Iata: "   ", Icao: "\t"})
	require.Equal(t, "Add Iata", errs["iata"])
	require.Equal(t, "Add Icao", errs["icao"])
}

// Валидация: половинчатая пара карты (url без имени) не принимается.
func TestValidateAirport_HalfMapPair(t *testing.T) {
	t.Parallel()

	a := mustAirport(0, "JFK")
	a.MapName = ""

	errs := ValidateAirport(a)
	require.Len(t, errs, 1)
	require.Equal(t, "Upload Airport map", errs["map"])
}

// Валидация: заполненная форма проходит (nil, не пустая мапа).
func TestValidateAirport_OK(t *testing.T) {
	t.Parallel()

	require.Nil(t, ValidateAirport(mustAirport(0, "JFK")))
}

// Error() перечисляет провалившиеся поля детерминированно.
func TestFieldErrors_Error(t *testing.T) {
	t.Parallel()

	errs := FieldErrors{"icao": "Add Icao", "iata": "Add Iata"}
	require.Equal(t, "validation failed: iata, icao", errs.Error())
}
