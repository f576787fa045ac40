package inventory

import "github.com/Orkogithub/nutanix-cluster-info/models"

// hypervisorNames maps Prism hypervisor codes to display names.
var hypervisorNames = map[string]string{
	"kKvm":    "AHV",
	"kVMware": "ESXi",
	"kHyperv": "Hyper-V",
	"kXen":    "Xen Server",
}

// HypervisorName returns the display name for a Prism hypervisor code.
// Unmapped codes return a KindUnknownEnum error.
func HypervisorName(code string) (string, error) {
	name, ok := hypervisorNames[code]
	if !ok {
		return "", models.NewUnknownEnumError("hypervisor_types", code)
	}
	return name, nil
}
