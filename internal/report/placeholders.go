package report

import (
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/Orkogithub/nutanix-cluster-info/pkg/inventory"
)

// Date and time layouts used in the report header and file name.
const (
	DayLayout  = "02-Jan-2006"
	TimeLayout = "150405"
)

// Meta describes a report run rather than the cluster.
type Meta struct {
	GeneratedAt time.Time

	// GeneratedBy is the name the operator entered.
	GeneratedBy string

	// LocalUser is the operating system account running the tool.
	LocalUser string

	RunID string
}

// Values returns the display string for every placeholder except
// container_rows. Values are not escaped.
func Values(meta Meta, fields *inventory.Fields) map[string]string {
	return map[string]string{
		"day":             meta.GeneratedAt.Format(DayLayout),
		"now":             meta.GeneratedAt.Format(TimeLayout),
		"name":            meta.GeneratedBy,
		"username":        meta.LocalUser,
		"run_id":          meta.RunID,
		"cluster_name":    fields.ClusterName,
		"cluster_uuid":    fields.ClusterUUID,
		"cluster_ip":      fields.ExternalIP,
		"nodes":           strconv.Itoa(fields.NumNodes),
		"nos":             fields.Version,
		"full_version":    fields.FullVersion,
		"hypervisors":     fields.Hypervisors,
		"models":          fields.Models,
		"timezone":        fields.Timezone,
		"ntp_servers":     fields.NTPServers,
		"name_servers":    fields.NameServers,
		"desired_rf":      strconv.Itoa(fields.DesiredRedundancyFactor),
		"actual_rf":       strconv.Itoa(fields.CurrentRedundancyFactor),
		"container_count": strconv.Itoa(fields.ContainerCount),
	}
}

// Placeholders returns HTML-escaped Values plus the container_rows table markup.
func Placeholders(meta Meta, fields *inventory.Fields) map[string]string {
	values := Values(meta, fields)
	for k, v := range values {
		values[k] = html.EscapeString(v)
	}
	values["container_rows"] = containerRowsHTML(fields.Containers)
	return values
}

func containerRowsHTML(rows []inventory.ContainerRow) string {
	if len(rows) == 0 {
		return `<tr><td colspan="4">No storage containers</td></tr>`
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString("<tr>")
		for _, cell := range []string{row.Name, row.ReplicationFactor, row.CompressionEnabled, row.OnDiskDedup} {
			b.WriteString("<td>")
			b.WriteString(html.EscapeString(cell))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>\n")
	}
	return b.String()
}
