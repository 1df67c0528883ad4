package models

import "time"

// AssetStatus is the lifecycle status of a cached content asset.
type AssetStatus string

const (
	AssetPending     AssetStatus = "pending"
	AssetDownloading AssetStatus = "downloading"
	AssetComplete    AssetStatus = "complete"
	AssetFailed      AssetStatus = "failed"
)

// ContentType classifies what a cached asset belongs to.
type ContentType string

const (
	ContentCourse   ContentType = "course"
	ContentLesson   ContentType = "lesson"
	ContentResource ContentType = "resource"
)

// Valid reports whether t is empty or one of the known types.
func (t ContentType) Valid() bool {
	switch t {
	case "", ContentCourse, ContentLesson, ContentResource:
		return true
	}
	return false
}

// ContentAsset is the metadata row of a cached content blob.
//
// Status complete implies LocalPath exists and its digest equals Checksum.
type ContentAsset struct {
	ContentID     string      `json:"content_id"`
	SourceURL     string      `json:"source_url"`
	Title         string      `json:"title,omitempty"`
	Type          ContentType `json:"type,omitempty"`
	LocalPath     string      `json:"local_path,omitempty"`
	Checksum      string      `json:"checksum,omitempty"`
	SizeBytes     int64       `json:"size_bytes"`
	BytesReceived int64       `json:"bytes_received"`
	BytesTotal    int64       `json:"bytes_total"`
	Status        AssetStatus `json:"status"`
	LastError     string      `json:"last_error,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// Progress reports how far the download of the asset has got.
func (a ContentAsset) Progress() DownloadProgress {
	p := DownloadProgress{ContentID: a.ContentID}

	switch a.Status {
	case AssetComplete:
		p.Status = DownloadCompleted
		p.Progress = 100
		return p
	case AssetDownloading:
		p.Status = DownloadDownloading
	case AssetFailed:
		p.Status = DownloadFailed
	default:
		p.Status = DownloadPending
	}

	if a.BytesTotal > 0 {
		p.Progress = min(float64(a.BytesReceived)*100/float64(a.BytesTotal), 100)
	}
	return p
}

// DownloadStatus is the status reported to the UI for a download.
type DownloadStatus string

const (
	DownloadPending     DownloadStatus = "pending"
	DownloadDownloading DownloadStatus = "downloading"
	DownloadCompleted   DownloadStatus = "completed"
	DownloadFailed      DownloadStatus = "failed"
)

// DownloadProgress is the download state of one asset. Progress is a
// percentage in [0, 100]; it stays 0 while the total size is unknown.
type DownloadProgress struct {
	ContentID string         `json:"content_id"`
	Progress  float64        `json:"progress"`
	Status    DownloadStatus `json:"status"`
}

// ContentInfo answers whether an asset is available offline.
type ContentInfo struct {
	Asset    ContentAsset     `json:"asset"`
	Offline  bool             `json:"offline"`
	Progress DownloadProgress `json:"progress"`
}

// FetchRequest asks the content cache for a local copy of a remote asset.
// ExpectedChecksum has the form "<algo>:<hex>" and is optional.
type FetchRequest struct {
	ContentID        string      `json:"content_id"`
	SourceURL        string      `json:"source_url"`
	Title            string      `json:"title,omitempty"`
	Type             ContentType `json:"type,omitempty"`
	ExpectedChecksum string      `json:"expected_checksum,omitempty"`
	ExpectedSize     int64       `json:"expected_size,omitempty"`
}

// StorageUsage reports content cache disk usage against its limit.
type StorageUsage struct {
	Used      int64 `json:"used"`
	Available int64 `json:"available"`
	Limit     int64 `json:"limit"`
	Assets    int   `json:"assets"`
}
