// Package queue defines message payloads exchanged over the message broker.
package queue

// MaterialUploadedEvent is published when a material upload has been stored
// and its metadata committed. It carries enough information for downstream
// consumers to log or notify without querying the primary database.
type MaterialUploadedEvent struct {
    MaterialID       uint64 `json:"material_id"`
    ClassID          uint64 `json:"class_id"`
    TeacherID        uint64 `json:"teacher_id"`
    Title            string `json:"title"`
    StoredName       string `json:"stored_name"`
    OriginalFilename string `json:"original_filename"`
    SizeBytes        int64  `json:"size_bytes"`
    UploadedAt       string `json:"uploaded_at"`
}

// OrphanedFileEvent is published when a just-written upload could not be
// removed after its metadata insert failed. The sweeper consumer retries
// the deletion so the upload directory does not accumulate files that no
// material record points at.
type OrphanedFileEvent struct {
    StoredName string `json:"stored_name"`
    Reason     string `json:"reason"`
    OccurredAt string `json:"occurred_at"`
}
