package models

// ContainerCollection is the response of GET /storage_containers.
type ContainerCollection struct {
	// Metadata carries collection totals.
	Metadata CollectionMetadata `json:"metadata"`

	// Entities is the list of storage containers, in API order.
	Entities []StorageContainer `json:"entities"`
}

// CollectionMetadata is the metadata block Prism attaches to every list response.
type CollectionMetadata struct {
	// GrandTotalEntities is the number of entities on the cluster, regardless of paging.
	GrandTotalEntities int `json:"grand_total_entities"`

	// TotalEntities is the number of entities matching the request filter.
	TotalEntities int `json:"total_entities"`

	// Count is the number of entities in this page.
	Count int `json:"count"`
}

// StorageContainer is a logical storage pool with its own data-reduction settings.
type StorageContainer struct {
	// UUID is the storage container UUID.
	UUID string `json:"storage_container_uuid,omitempty"`

	// Name is the container name.
	Name string `json:"name"`

	// ReplicationFactor is the number of data copies kept.
	ReplicationFactor int `json:"replication_factor"`

	// CompressionEnabled reports whether inline or post-process compression is on.
	CompressionEnabled bool `json:"compression_enabled"`

	// OnDiskDedup is the deduplication mode ("NONE", "POST_PROCESS").
	OnDiskDedup string `json:"on_disk_dedup"`

	// MaxCapacity is the container capacity in bytes.
	MaxCapacity int64 `json:"max_capacity,omitempty"`
}

// ErrorBody is the JSON body Prism returns alongside 4xx/5xx responses.
type ErrorBody struct {
	// Message is the human-readable error message.
	Message string `json:"message"`

	// DetailedMessage sometimes carries the underlying cause.
	DetailedMessage string `json:"detailed_message,omitempty"`
}
