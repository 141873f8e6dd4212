package main

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/workspace"
)

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}

	return id, nil
}

// openLocal открывает файл и определяет его размер и MIME-тип по расширению.
func openLocal(path string) (*os.File, int64, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, "", err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, "", err
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))

	return f, info.Size(), contentType, nil
}

func uploadMap(ctx context.Context, ws *workspace.Airports, sid uuid.UUID, path string) error {
	f, size, contentType, err := openLocal(path)
	if err != nil {
		return err
	}
	defer f.Close()

	stored, err := ws.UploadMap(ctx, sid, filepath.Base(path), contentType, size, f)
	if err != nil {
		return err
	}

	fmt.Printf("map uploaded as %s\n", stored.FileName)

	return nil
}

func uploadImage(ctx context.Context, ws *workspace.News, sid uuid.UUID, path string) error {
	f, size, contentType, err := openLocal(path)
	if err != nil {
		return err
	}
	defer f.Close()

	stored, err := ws.UploadImage(ctx, sid, filepath.Base(path), contentType, size, f)
	if err != nil {
		return err
	}

	fmt.Printf("image uploaded as %s\n", stored.FileName)

	return nil
}
