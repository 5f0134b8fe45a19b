package services

import (
	"sync"
	"time"

	currencyRates "github.com/malusev998/currency-rates"
)

// ExportService writes the current table to every storage as one snapshot.
type ExportService struct {
	Tables  TableSource
	Storage []currencyRates.Storage
	Now     func() time.Time
}

var _ currencyRates.Exporter = ExportService{}

func saveToStorage(
	wg *sync.WaitGroup,
	snapshots []currencyRates.Snapshot,
	data map[string][]currencyRates.SnapshotWithID,
	storage currencyRates.Storage,
	errorChannel chan<- error,
	mutex sync.Locker,
) {
	defer wg.Done()
	s, err := storage.Store(snapshots)

	if err != nil {
		errorChannel <- err
		return
	}

	mutex.Lock()
	data[storage.GetStorageProviderName()] = s
	mutex.Unlock()
}

func (e ExportService) snapshots() ([]currencyRates.Snapshot, error) {
	t, err := e.Tables.Table()

	if err != nil {
		return nil, err
	}

	now := time.Now

	if e.Now != nil {
		now = e.Now
	}

	createdAt := now().UTC()
	snapshots := make([]currencyRates.Snapshot, 0, t.Len())

	for _, code := range t.Codes() {
		record, _ := t.Get(code)
		snapshots = append(snapshots, currencyRates.Snapshot{
			RateRecord: record,
			CreatedAt:  createdAt,
		})
	}

	return snapshots, nil
}

// Save stores the snapshot in all storages concurrently and returns the stored rows keyed
// by storage provider name. The first storage error is returned.
func (e ExportService) Save() (map[string][]currencyRates.SnapshotWithID, error) {
	var wg sync.WaitGroup
	mutex := &sync.Mutex{}

	snapshots, err := e.snapshots()
	if err != nil {
		return nil, err
	}

	errorChannel := make(chan error, len(e.Storage))
	data := make(map[string][]currencyRates.SnapshotWithID, len(e.Storage))

	wg.Add(len(e.Storage))
	for _, storage := range e.Storage {
		go saveToStorage(&wg, snapshots, data, storage, errorChannel, mutex)
	}

	go func(wg *sync.WaitGroup, errorChannel chan error) {
		wg.Wait()
		close(errorChannel)
	}(&wg, errorChannel)

	if err, more := <-errorChannel; more {
		return nil, err
	}

	return data, nil
}
