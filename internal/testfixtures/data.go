// Package testfixtures provides canned Prism documents and a fake Prism
// endpoint for tests.
package testfixtures

import (
	"encoding/json"
	"testing"

	"github.com/Orkogithub/nutanix-cluster-info/models"
)

// ClusterJSON is a GET /cluster response for a three-node AHV cluster with two NTP servers.
const ClusterJSON = `{
  "id": "0005d4a1-ac6b-4b5a-0000-000000012345::12345",
  "uuid": "0005d4a1-ac6b-4b5a-0000-000000012345",
  "name": "NTNX-Lab",
  "cluster_external_ipaddress": "10.0.0.5",
  "num_nodes": 3,
  "version": "5.20.4",
  "full_version": "el7.3-release-euphrates-5.20.4-stable-abc123",
  "timezone": "Europe/Stockholm",
  "ntp_servers": ["0.pool.ntp.org", "1.pool.ntp.org"],
  "name_servers": ["10.0.0.2"],
  "hypervisor_types": ["kKvm"],
  "rackable_units": [
    {"id": 10, "model": "USE_LAYOUT", "model_name": "NX-3060-G5", "serial": "16SM12345678"}
  ],
  "cluster_redundancy_state": {
    "current_redundancy_factor": 2,
    "desired_redundancy_factor": 2,
    "redundancy_status": {"kCassandraPrepareDone": true, "kZookeeperPrepareDone": true}
  }
}`

// ContainersJSON is a GET /storage_containers response with one container.
const ContainersJSON = `{
  "metadata": {"grand_total_entities": 1, "total_entities": 1, "count": 1},
  "entities": [
    {
      "storage_container_uuid": "b1d4c7e2-0000-4a4a-9c9c-000000000001",
      "name": "default-container-12345",
      "replication_factor": 2,
      "compression_enabled": true,
      "on_disk_dedup": "POST_PROCESS",
      "max_capacity": 21990232555520
    }
  ]
}`

// Cluster decodes ClusterJSON.
func Cluster(t *testing.T) models.ClusterDescriptor {
	t.Helper()

	var cluster models.ClusterDescriptor
	if err := json.Unmarshal([]byte(ClusterJSON), &cluster); err != nil {
		t.Fatalf("failed to decode cluster fixture: %v", err)
	}
	return cluster
}

// Containers decodes ContainersJSON.
func Containers(t *testing.T) models.ContainerCollection {
	t.Helper()

	var containers models.ContainerCollection
	if err := json.Unmarshal([]byte(ContainersJSON), &containers); err != nil {
		t.Fatalf("failed to decode containers fixture: %v", err)
	}
	return containers
}

// String returns a pointer to s, for building descriptors with optional fields.
func String(s string) *string {
	return &s
}
