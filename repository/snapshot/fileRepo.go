package snapshotrepo

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"superwallet/model"
)

type fileRepo struct {
	file *os.File
	path string
}

// NewFile opens (or creates) a single-file JSON snapshot store.
func NewFile(path string) (Repo, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, err
	}
	return &fileRepo{file: f, path: path}, nil
}

func (r *fileRepo) Load(ctx context.Context) (*model.State, error) {
	info, err := r.file.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		return nil, nil
	}
	if _, err := r.file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	var st model.State
	if err := json.NewDecoder(r.file).Decode(&st); err != nil {
		return nil, err
	}
	if st.SchemaVersion != model.SchemaVersion {
		// no migration path; rehydration is all-or-nothing
		return nil, nil
	}
	return &st, nil
}

func (r *fileRepo) Save(ctx context.Context, st *model.State) error {
	if _, err := r.file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	enc := json.NewEncoder(r.file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(st); err != nil {
		return err
	}
	// truncate in case new content is shorter
	pos, err := r.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	if err := r.file.Truncate(pos); err != nil {
		return err
	}
	return r.file.Sync()
}

func (r *fileRepo) Close() error { return r.file.Close() }
