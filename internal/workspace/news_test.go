package workspace

// Тесты вложенного новостного воркспейса (internal/workspace/news.go).
//
//  Проверяем:
//  - область видимости по airportID (список, создание, привязка);
//  - строчное добавление: черновик заранее привязан к аэропорту,
//    валидации обязательных полей нет (пустая новость создаётся);
//  - сверку незакоммиченных изображений на commit/cancel;
//  - сценарий "добавить новость с картинкой, затем удалить её".
//
// Подготовка окружения:
//   go test ./internal/workspace -v -race -count=1

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/models"
	"github.com/gundarsv/FlyIt-AirportsAdministrator/mocks"
)

func newNewsWithMocks(t *testing.T, airportID int64) (*News, *mocks.MockNewsAPI, *mocks.MockFileUploader, *mocks.MockFileStore, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockNewsAPI(ctrl)
	images := mocks.NewMockFileUploader(ctrl)
	store := mocks.NewMockFileStore(ctrl)
	ws := NewNews(airportID, NewsDeps{API: api, Images: images, Store: store})
	return ws, api, images, store, ctrl
}

// Happy-path: Load запрашивает новости именно своего аэропорта.
func TestNews_Load_ScopedToAirport(t *testing.T) {
	ws, api, _, _, ctrl := newNewsWithMocks(t, 7)
	defer ctrl.Finish()

	want := []models.News{
		{ID: 1, Title: "Lounge reopened", AirportID: 7},
		{ID: 2, Title: "Runway maintenance", AirportID: 7},
	}
	api.EXPECT().ByAirport(gomock.Any(), int64(7)).Return(want, nil)

	got, err := ws.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Equal(t, int64(7), ws.AirportID())
}

// Строчное добавление: черновик заранее привязан к аэропорту, create
// адресуется ему же, подтверждённая запись попадает в коллекцию.
func TestNews_Commit_CreateOK(t *testing.T) {
	ws, api, _, _, ctrl := newNewsWithMocks(t, 7)
	defer ctrl.Finish()

	s := ws.BeginAdd()
	require.Equal(t, int64(7), s.Draft().AirportID)
	require.NoError(t, s.UpdateDraft(func(d *models.News) {
		d.Title = "New gate"
		d.Body = "Gate B12 opens Monday."
	}))

	want := models.News{ID: 3, Title: "New gate", Body: "Gate B12 opens Monday.", AirportID: 7}
	api.EXPECT().
		Create(gomock.Any(), int64(7), gomock.AssignableToTypeOf(models.News{})).
		DoAndReturn(func(_ context.Context, _ int64, nw models.News) (*models.News, error) {
			require.Zero(t, nw.ID)
			require.Equal(t, "New gate", nw.Title)
			return &want, nil
		})

	created, err := ws.Commit(context.Background(), s.ID())
	require.NoError(t, err)
	require.Equal(t, int64(3), created.ID)
	require.Equal(t, []models.News{want}, ws.Snapshot())

	_, err = ws.Session(s.ID())
	require.ErrorIs(t, err, ErrNoSuchSession)
}

// Валидации новостей нет: пустой черновик уходит на create как есть.
func TestNews_Commit_EmptyDraftStillCreates(t *testing.T) {
	ws, api, _, _, ctrl := newNewsWithMocks(t, 7)
	defer ctrl.Finish()

	s := ws.BeginAdd()

	want := models.News{ID: 4, AirportID: 7}
	api.EXPECT().Create(gomock.Any(), int64(7), gomock.Any()).Return(&want, nil)

	created, err := ws.Commit(context.Background(), s.ID())
	require.NoError(t, err)
	require.Equal(t, int64(4), created.ID)
}

// UploadImage: немедленная отправка, учёт, обновление пары в черновике.
func TestNews_UploadImage_TracksAndUpdatesDraft(t *testing.T) {
	ws, _, images, _, ctrl := newNewsWithMocks(t, 7)
	defer ctrl.Finish()

	s := ws.BeginAdd()

	stored := &models.StoredFile{URL: "https://blob/images/gate.png", FileName: "gate.png"}
	images.EXPECT().
		Upload(gomock.Any(), "gate.png", "image/png", int64(4), gomock.Any()).
		Return(stored, nil)

	got, err := ws.UploadImage(context.Background(), s.ID(), "gate.png", "image/png", 4, strings.NewReader("png!"))
	require.NoError(t, err)
	require.Equal(t, stored, got)

	require.Equal(t, []string{"gate.png"}, s.Unsaved())
	draft := s.Draft()
	require.Equal(t, "https://blob/images/gate.png", draft.ImageURL)
	require.Equal(t, "gate.png", draft.ImageName)
}

// Сверка на commit: из двух изображений выживает последнее.
func TestNews_Commit_KeepsLastImage(t *testing.T) {
	ws, api, images, store, ctrl := newNewsWithMocks(t, 7)
	defer ctrl.Finish()

	s := ws.BeginAdd()

	for _, name := range []string{"a.png", "b.png"} {
		name := name
		images.EXPECT().
			Upload(gomock.Any(), name, "image/png", gomock.Any(), gomock.Any()).
			Return(&models.StoredFile{URL: "https://blob/images/" + name, FileName: name}, nil)
		_, err := ws.UploadImage(context.Background(), s.ID(), name, "image/png", 4, strings.NewReader("png!"))
		require.NoError(t, err)
	}

	want := models.News{ID: 5, AirportID: 7, ImageName: "b.png"}
	api.EXPECT().Create(gomock.Any(), int64(7), gomock.Any()).Return(&want, nil)
	store.EXPECT().Delete(gomock.Any(), "a.png").Return(nil)

	_, err := ws.Commit(context.Background(), s.ID())
	require.NoError(t, err)
}

// Отказ сервера на update: строка остаётся прежней, сессия живёт.
func TestNews_Commit_UpdateUpstreamError(t *testing.T) {
	ws, api, _, _, ctrl := newNewsWithMocks(t, 7)
	defer ctrl.Finish()

	api.EXPECT().ByAirport(gomock.Any(), int64(7)).
		Return([]models.News{{ID: 1, Title: "Original", AirportID: 7}}, nil)
	_, err := ws.Load(context.Background())
	require.NoError(t, err)

	s, err := ws.BeginEdit(1)
	require.NoError(t, err)
	require.NoError(t, s.UpdateDraft(func(d *models.News) { d.Title = "Changed" }))

	api.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, errors.New("500"))

	_, err = ws.Commit(context.Background(), s.ID())
	require.Error(t, err)
	require.Equal(t, "Original", ws.Snapshot()[0].Title)
	require.Equal(t, StateEditing, s.State())
}

// Cancel строчного редактирования удаляет все незакоммиченные изображения.
func TestNews_Cancel_DeletesAllUnsaved(t *testing.T) {
	ws, api, images, store, ctrl := newNewsWithMocks(t, 7)
	defer ctrl.Finish()

	api.EXPECT().ByAirport(gomock.Any(), int64(7)).
		Return([]models.News{{ID: 1, Title: "Original", AirportID: 7}}, nil)
	_, err := ws.Load(context.Background())
	require.NoError(t, err)

	s, err := ws.BeginEdit(1)
	require.NoError(t, err)

	images.EXPECT().
		Upload(gomock.Any(), "new.png", "image/png", gomock.Any(), gomock.Any()).
		Return(&models.StoredFile{URL: "https://blob/images/new.png", FileName: "new.png"}, nil)
	_, err = ws.UploadImage(context.Background(), s.ID(), "new.png", "image/png", 4, strings.NewReader("png!"))
	require.NoError(t, err)

	store.EXPECT().Delete(gomock.Any(), "new.png").Return(nil)

	require.NoError(t, ws.Cancel(context.Background(), s.ID()))
	require.Equal(t, "Original", ws.Snapshot()[0].Title)
}

// Сценарий: добавить новость (с картинкой), затем удалить её.
func TestNews_AddThenRemove(t *testing.T) {
	ws, api, images, _, ctrl := newNewsWithMocks(t, 7)
	defer ctrl.Finish()

	api.EXPECT().ByAirport(gomock.Any(), int64(7)).Return(nil, nil)
	_, err := ws.Load(context.Background())
	require.NoError(t, err)

	s := ws.BeginAdd()
	require.NoError(t, s.UpdateDraft(func(d *models.News) { d.Title = "Ephemeral" }))

	images.EXPECT().
		Upload(gomock.Any(), "x.png", "image/png", gomock.Any(), gomock.Any()).
		Return(&models.StoredFile{URL: "https://blob/images/x.png", FileName: "x.png"}, nil)
	_, err = ws.UploadImage(context.Background(), s.ID(), "x.png", "image/png", 4, strings.NewReader("png!"))
	require.NoError(t, err)

	created := models.News{ID: 9, Title: "Ephemeral", AirportID: 7, ImageName: "x.png"}
	api.EXPECT().Create(gomock.Any(), int64(7), gomock.Any()).Return(&created, nil)

	got, err := ws.Commit(context.Background(), s.ID())
	require.NoError(t, err)
	require.Len(t, ws.Snapshot(), 1)

	api.EXPECT().Delete(gomock.Any(), got.ID).Return(nil)

	require.NoError(t, ws.Remove(context.Background(), got.ID))
	require.Empty(t, ws.Snapshot())
}

// Remove неизвестной новости -> ErrNoSuchEntity, в сеть не ходим.
func TestNews_Remove_NoSuchEntity(t *testing.T) {
	ws, _, _, _, ctrl := newNewsWithMocks(t, 7)
	defer ctrl.Finish()

	err := ws.Remove(context.Background(), 99)
	require.ErrorIs(t, err, ErrNoSuchEntity)
}
