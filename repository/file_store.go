package repository

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"frontdesk/constants"
	"frontdesk/models"
	"frontdesk/services/logger"

	"github.com/goccy/go-json"
)

// fileSnapshot reads and writes one JSON document under dir.
type fileSnapshot struct {
	mu     sync.Mutex
	path   string
	logger logger.Logger
}

func newFileSnapshot(dir, key string, log logger.Logger) (*fileSnapshot, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir %s: %w", dir, err)
	}
	return &fileSnapshot{path: filepath.Join(dir, key+".json"), logger: log}, nil
}

// load decodes the file into target. Missing or unreadable content leaves target untouched.
func (f *fileSnapshot) load(target interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", f.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, target); err != nil {
		f.logger.Error("discarding corrupt snapshot %s: %v", f.path, err)
		return errCorrupt
	}
	return nil
}

// save writes value to a temp file and renames it over the snapshot.
func (f *fileSnapshot) save(value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", f.path, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}

// FileRoomStateRepository keeps the room board in STORE_DIR/rental-manager-data.json.
type FileRoomStateRepository struct {
	file *fileSnapshot
}

func NewFileRoomStateRepository(dir string, log logger.Logger) (*FileRoomStateRepository, error) {
	f, err := newFileSnapshot(dir, constants.RoomsStorageKey, log)
	if err != nil {
		return nil, err
	}
	return &FileRoomStateRepository{file: f}, nil
}

func (r *FileRoomStateRepository) Load(ctx context.Context) (models.RoomBoard, error) {
	board := models.RoomBoard{}
	if err := r.file.load(&board); err != nil {
		if err == errCorrupt {
			return models.RoomBoard{}, nil
		}
		return nil, err
	}
	return board, nil
}

func (r *FileRoomStateRepository) Save(ctx context.Context, board models.RoomBoard) error {
	return r.file.save(board)
}

// FileBookingRepository keeps the booking list in STORE_DIR/bookings.json.
type FileBookingRepository struct {
	file *fileSnapshot
}

func NewFileBookingRepository(dir string, log logger.Logger) (*FileBookingRepository, error) {
	f, err := newFileSnapshot(dir, constants.BookingsStorageKey, log)
	if err != nil {
		return nil, err
	}
	return &FileBookingRepository{file: f}, nil
}

func (r *FileBookingRepository) Load(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.file.load(&bookings); err != nil {
		if err == errCorrupt {
			return []models.Booking{}, nil
		}
		return nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

func (r *FileBookingRepository) Save(ctx context.Context, bookings []models.Booking) error {
	return r.file.save(bookings)
}
