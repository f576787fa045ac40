package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Orkogithub/nutanix-cluster-info/models"
)

const (
	// listSeparator joins list fields for display.
	listSeparator = ", "

	// NotSet replaces an absent or empty external IP.
	NotSet = "Not set"

	// NoneAvailable replaces a rackable unit without model or serial.
	NoneAvailable = "None available"
)

// Normalize flattens the cluster descriptor and container collection into Fields.
// Required fields are checked before anything else so a failure never yields a partial result.
func Normalize(cluster models.ClusterDescriptor, containers models.ContainerCollection) (*Fields, error) {
	name, err := requiredString("name", cluster.Name)
	if err != nil {
		return nil, err
	}
	version, err := requiredString("version", cluster.Version)
	if err != nil {
		return nil, err
	}
	if cluster.RedundancyState == nil {
		return nil, models.NewMissingFieldError("cluster_redundancy_state")
	}

	hypervisors, err := hypervisorList(cluster.HypervisorTypes)
	if err != nil {
		return nil, err
	}

	return &Fields{
		ClusterName:             name,
		ClusterUUID:             cluster.UUID,
		ExternalIP:              externalIP(cluster.ExternalIPAddress),
		NumNodes:                cluster.NumNodes,
		Version:                 version,
		FullVersion:             cluster.FullVersion,
		Timezone:                cluster.Timezone,
		NTPServers:              JoinList(cluster.NTPServers),
		NameServers:             JoinList(cluster.NameServers),
		Hypervisors:             hypervisors,
		Models:                  rackableUnits(cluster.RackableUnits),
		DesiredRedundancyFactor: cluster.RedundancyState.DesiredRedundancyFactor,
		CurrentRedundancyFactor: cluster.RedundancyState.CurrentRedundancyFactor,
		Containers:              containerRows(containers.Entities),
		ContainerCount:          containerCount(containers),
	}, nil
}

// JoinList joins items with ", ". An empty list yields an empty string.
func JoinList(items []string) string {
	return strings.Join(items, listSeparator)
}

// FormatRackableUnit renders one unit as "<model> [S/N <serial>]".
func FormatRackableUnit(unit models.RackableUnit) string {
	if unit.ModelName == nil || unit.Serial == nil {
		return NoneAvailable
	}
	return fmt.Sprintf("%s [S/N %s]", *unit.ModelName, *unit.Serial)
}

func requiredString(field string, value *string) (string, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return "", models.NewMissingFieldError(field)
	}
	return *value, nil
}

func externalIP(ip *string) string {
	if ip == nil || strings.TrimSpace(*ip) == "" {
		return NotSet
	}
	return *ip
}

func hypervisorList(codes []string) (string, error) {
	names := make([]string, 0, len(codes))
	for _, code := range codes {
		name, err := HypervisorName(code)
		if err != nil {
			return "", err
		}
		names = append(names, name)
	}
	return JoinList(names), nil
}

func rackableUnits(units []models.RackableUnit) string {
	rendered := make([]string, 0, len(units))
	for _, unit := range units {
		rendered = append(rendered, FormatRackableUnit(unit))
	}
	return JoinList(rendered)
}

// containerCount prefers the server-side total and falls back to the entity
// count when the metadata block was absent.
func containerCount(containers models.ContainerCollection) int {
	if containers.Metadata.GrandTotalEntities > 0 {
		return containers.Metadata.GrandTotalEntities
	}
	return len(containers.Entities)
}

func containerRows(entities []models.StorageContainer) []ContainerRow {
	rows := make([]ContainerRow, 0, len(entities))
	for _, entity := range entities {
		rows = append(rows, ContainerRow{
			Name:               entity.Name,
			ReplicationFactor:  strconv.Itoa(entity.ReplicationFactor),
			CompressionEnabled: strconv.FormatBool(entity.CompressionEnabled),
			OnDiskDedup:        entity.OnDiskDedup,
		})
	}
	return rows
}
