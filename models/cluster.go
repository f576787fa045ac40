package models

// ClusterDescriptor is the summary record returned by GET /cluster.
// Only the fields the report uses are decoded; Prism returns many more.
//
// Required scalars are pointers so that an absent key can be told apart
// from an empty string.
type ClusterDescriptor struct {
	// ID is the Prism cluster identifier ("<incarnation>::<cluster id>").
	ID string `json:"id,omitempty"`

	// UUID is the cluster UUID.
	UUID string `json:"uuid,omitempty"`

	// Name is the cluster name. Required.
	Name *string `json:"name"`

	// ExternalIPAddress is the cluster virtual IP. Optional; often unset on
	// single-node clusters.
	ExternalIPAddress *string `json:"cluster_external_ipaddress"`

	// ExternalDataServicesIPAddress is the iSCSI data services IP. Optional.
	ExternalDataServicesIPAddress *string `json:"cluster_external_data_services_ipaddress,omitempty"`

	// NumNodes is the number of nodes in the cluster.
	NumNodes int `json:"num_nodes"`

	// Version is the AOS version (e.g. "5.20.4"). Required.
	Version *string `json:"version"`

	// FullVersion is the full build string.
	FullVersion string `json:"full_version,omitempty"`

	// Timezone is the cluster timezone (e.g. "Europe/Stockholm").
	Timezone string `json:"timezone"`

	// NTPServers is the ordered list of configured NTP servers.
	NTPServers []string `json:"ntp_servers"`

	// NameServers is the ordered list of configured DNS servers.
	NameServers []string `json:"name_servers"`

	// HypervisorTypes lists the hypervisor codes present (kKvm, kVMware, kHyperv, kXen).
	HypervisorTypes []string `json:"hypervisor_types"`

	// RackableUnits is the list of physical blocks in the cluster.
	RackableUnits []RackableUnit `json:"rackable_units"`

	// RedundancyState holds the configured and actual redundancy factor. Required.
	RedundancyState *RedundancyState `json:"cluster_redundancy_state"`
}

// RackableUnit is a physical chassis (block) reported by the cluster.
// Either field may be absent for blocks Prism could not identify.
type RackableUnit struct {
	// ModelName is the marketing model name (e.g. "NX-3060-G5").
	ModelName *string `json:"model_name"`

	// Serial is the block serial number.
	Serial *string `json:"serial"`
}

// RedundancyState reports the redundancy factor of the cluster.
type RedundancyState struct {
	// DesiredRedundancyFactor is the configured redundancy factor.
	DesiredRedundancyFactor int `json:"desired_redundancy_factor"`

	// CurrentRedundancyFactor is the redundancy factor currently achieved.
	CurrentRedundancyFactor int `json:"current_redundancy_factor"`
}
