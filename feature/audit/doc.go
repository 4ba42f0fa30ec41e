// Package audit implements the optional upload audit ledger.
//
// When DATABASE_ENABLED is set, every successful upload is recorded as one row in
// the upload_records table (tool, bucket, object key, etag, version id, size,
// content type, time). The ledger is write-only and best effort: the upload service
// logs a failed insert and still returns the upload result.
//
// # Usage
//
//	store := audit.NewStore(db)
//	if err := store.Migrate(); err != nil {
//	    return err
//	}
//	svc := upload.NewService(resolve, storage.NewClient, logg, upload.WithRecorder(store))
package audit
