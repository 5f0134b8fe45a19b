package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	currencyRates "github.com/malusev998/currency-rates"
)

type MockStorage struct {
	mock.Mock
	name string
}

func (m *MockStorage) Store(snapshots []currencyRates.Snapshot) ([]currencyRates.SnapshotWithID, error) {
	args := m.Called(snapshots)

	return1 := args.Get(0)

	if return1 == nil {
		return nil, args.Error(1)
	}
	return return1.([]currencyRates.SnapshotWithID), args.Error(1)
}

func (m *MockStorage) Get(code string, page, perPage int64) ([]currencyRates.SnapshotWithID, error) {
	args := m.Called(code, page, perPage)

	return args.Get(0).([]currencyRates.SnapshotWithID), args.Error(1)
}

func (m *MockStorage) GetStorageProviderName() string {
	if m.name == "" {
		return "MockStorage"
	}
	return m.name
}

func (m *MockStorage) Migrate() error {
	return nil
}

func (m *MockStorage) Close() error {
	return nil
}

func (m *MockStorage) Drop() error {
	return nil
}

func TestExportService(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	now := time.Date(2026, 1, 16, 10, 0, 0, 0, time.UTC)
	table := fixtureTable()

	snapshots := make([]currencyRates.Snapshot, 0, table.Len())
	stored := make([]currencyRates.SnapshotWithID, 0, table.Len())

	for i, code := range table.Codes() {
		record, _ := table.Get(code)
		snapshot := currencyRates.Snapshot{RateRecord: record, CreatedAt: now}
		snapshots = append(snapshots, snapshot)
		stored = append(stored, currencyRates.SnapshotWithID{Snapshot: snapshot, ID: uint64(i)})
	}

	clock := func() time.Time { return now }

	t.Run("SaveCorrectly", func(t *testing.T) {
		first := &MockStorage{name: "first"}
		second := &MockStorage{name: "second"}
		service := ExportService{
			Tables:  staticTables{table: table},
			Storage: []currencyRates.Storage{first, second},
			Now:     clock,
		}

		first.On("Store", snapshots).Return(stored, nil)
		second.On("Store", snapshots).Return(stored, nil)

		saved, err := service.Save()

		asserts.Nil(err)
		asserts.Contains(saved, "first")
		asserts.Contains(saved, "second")
		asserts.Len(saved["first"], table.Len())
		first.AssertExpectations(t)
		second.AssertExpectations(t)

		for _, s := range saved["second"] {
			_, ok := s.ID.(uint64)
			asserts.True(ok)
		}
	})

	t.Run("TableReturnsError", func(t *testing.T) {
		storage := &MockStorage{}
		service := ExportService{
			Tables:  staticTables{err: errors.New("no source")},
			Storage: []currencyRates.Storage{storage},
		}

		saved, err := service.Save()
		asserts.Nil(saved)
		asserts.NotNil(err)
		storage.AssertNotCalled(t, "Store", mock.Anything)
	})

	t.Run("StorageReturnsError", func(t *testing.T) {
		healthy := &MockStorage{name: "healthy"}
		broken := &MockStorage{name: "broken"}
		service := ExportService{
			Tables:  staticTables{table: table},
			Storage: []currencyRates.Storage{healthy, broken},
			Now:     clock,
		}

		healthy.On("Store", snapshots).Return(stored, nil)
		broken.On("Store", snapshots).Return(nil, errors.New("error while inserting into storage"))

		saved, err := service.Save()
		asserts.Nil(saved)
		asserts.EqualError(err, "error while inserting into storage")
	})

	t.Run("NoStorages", func(t *testing.T) {
		service := ExportService{Tables: staticTables{table: table}}

		saved, err := service.Save()
		asserts.Nil(err)
		asserts.Empty(saved)
	})
}
