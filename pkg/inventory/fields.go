package inventory

// Fields is the flat, display-ready view of one cluster.
//
// Strings are final display values. The node count, redundancy factors and
// container count stay integers; the renderer decides how to print them.
type Fields struct {
	ClusterName string `json:"cluster_name" yaml:"cluster_name"`
	ClusterUUID string `json:"cluster_uuid,omitempty" yaml:"cluster_uuid,omitempty"`
	ExternalIP  string `json:"external_ip" yaml:"external_ip"`
	NumNodes    int    `json:"num_nodes" yaml:"num_nodes"`
	Version     string `json:"version" yaml:"version"`
	FullVersion string `json:"full_version,omitempty" yaml:"full_version,omitempty"`
	Timezone    string `json:"timezone" yaml:"timezone"`
	NTPServers  string `json:"ntp_servers" yaml:"ntp_servers"`
	NameServers string `json:"name_servers" yaml:"name_servers"`
	Hypervisors string `json:"hypervisors" yaml:"hypervisors"`
	Models      string `json:"models" yaml:"models"`

	DesiredRedundancyFactor int `json:"desired_redundancy_factor" yaml:"desired_redundancy_factor"`
	CurrentRedundancyFactor int `json:"current_redundancy_factor" yaml:"current_redundancy_factor"`

	Containers     []ContainerRow `json:"containers" yaml:"containers"`
	ContainerCount int            `json:"container_count" yaml:"container_count"`
}

// ContainerRow is one storage container, every column coerced to a string.
type ContainerRow struct {
	Name               string `json:"name" yaml:"name"`
	ReplicationFactor  string `json:"replication_factor" yaml:"replication_factor"`
	CompressionEnabled string `json:"compression_enabled" yaml:"compression_enabled"`
	OnDiskDedup        string `json:"on_disk_dedup" yaml:"on_disk_dedup"`
}
