package models

// StoredFile — результат загрузки блоба (карты или изображения).
//
// Канонический контракт загрузки: апстрим всегда возвращает и публичный
// URL, и серверное имя файла. Клиент иного про блоб не знает.
type StoredFile struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
}
