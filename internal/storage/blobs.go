package storage

import (
	"gorm.io/gorm/clause"

	"pocketledger/internal/logger"
)

// Blob names used by the application.
const (
	BlobTransactions = "transactions"
	BlobCategories   = "categories"
)

// Blob is one named JSON payload.
type Blob struct {
	Name string `gorm:"primaryKey"`
	Data []byte
}

// Blobs is the read/write contract services persist through.
type Blobs interface {
	ReadBlob(name string) ([]byte, bool)
	WriteBlob(name string, data []byte) error
}

// ReadBlob returns the payload of the named blob. The boolean is false when
// the blob does not exist; read errors are logged and treated the same way so
// startup always succeeds with default state.
func (m *Manager) ReadBlob(name string) ([]byte, bool) {
	var blob Blob
	if err := m.db.First(&blob, "name = ?", name).Error; err != nil {
		return nil, false
	}
	if len(blob.Data) == 0 {
		return nil, false
	}
	return blob.Data, true
}

// WriteBlob overwrites the named blob with the given payload.
func (m *Manager) WriteBlob(name string, data []byte) error {
	blob := Blob{Name: name, Data: data}
	err := m.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"data"}),
	}).Create(&blob).Error
	if err != nil {
		logger.Get().Errorw("blob write failed", "blob", name, "error", err)
	}
	return err
}
