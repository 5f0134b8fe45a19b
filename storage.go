package currency

type Storage interface {
	Store(snapshots []Snapshot) ([]SnapshotWithID, error)
	Get(code string, page, perPage int64) ([]SnapshotWithID, error)
	GetStorageProviderName() string
	Migrate() error
	Drop() error
	Close() error
}
