package publish

import (
	"time"

	"github.com/google/uuid"
)

// ManifestName is the key of the run manifest below the prefix.
const ManifestName = "manifest.json"

// Manifest records one publish run: which objects went up, how big they
// were, and their content digests.
type Manifest struct {
	RunID      string         `json:"runId"`
	Tour       string         `json:"tour"`
	UploadedAt time.Time      `json:"uploadedAt"`
	Files      []ManifestFile `json:"files"`
}

// ManifestFile describes a single uploaded object.
type ManifestFile struct {
	Key       string `json:"key"`
	SizeBytes int64  `json:"sizeBytes"`
	SHA256    string `json:"sha256"`
}

// NewManifest creates an empty manifest stamped with a fresh run ID and
// the current UTC time.
func NewManifest(tour string) *Manifest {
	return &Manifest{
		RunID:      uuid.NewString(),
		Tour:       tour,
		UploadedAt: time.Now().UTC(),
	}
}
