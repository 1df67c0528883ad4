package service

import (
	"github.com/MKhiriev/go-academy-offline/internal/adapter"
	"github.com/MKhiriev/go-academy-offline/internal/logger"
	"github.com/MKhiriev/go-academy-offline/internal/store"
)

// ClientServices groups the services of the offline core.
type ClientServices struct {
	SyncService    ClientSyncService
	SyncJob        ClientSyncJob
	ContentService ClientContentService
	Boundary       BoundaryService
}

// ClientServicesOptions carries the tunables of every client service.
type ClientServicesOptions struct {
	Sync    SyncOptions
	Content ContentOptions
}

func NewClientServices(
	storages *store.ClientStorages,
	remote adapter.RemoteAdapter,
	monitor ConnectivityMonitor,
	resolver StoragePathResolver,
	opts ClientServicesOptions,
	logger *logger.Logger,
) *ClientServices {
	syncSvc := NewClientSyncService(storages.SyncRepository, storages.SyncStateRepository, remote, monitor, opts.Sync, logger)
	contentSvc := NewClientContentService(storages.ContentAssetRepository, storages.ContentFileStorage, remote, monitor, opts.Content, logger)

	return &ClientServices{
		SyncService:    syncSvc,
		SyncJob:        NewClientSyncJob(syncSvc, logger),
		ContentService: contentSvc,
		Boundary:       NewBoundaryService(resolver, storages.RecordRepository, monitor, syncSvc, contentSvc, logger),
	}
}
