// Package inventory flattens Prism API documents into display-ready report fields.
//
// Normalize is a pure function: it takes the cluster descriptor and the storage
// container collection and returns a Fields value, or a *models.Error. It does
// no I/O and keeps no state.
//
// # Transformation rules
//
// List fields (NTP servers, name servers) are joined with ", ". An empty list
// yields an empty string.
//
// Hypervisor codes are mapped through a fixed table:
//
//	kKvm    -> AHV
//	kVMware -> ESXi
//	kHyperv -> Hyper-V
//	kXen    -> Xen Server
//
// Any other code fails the whole normalization with KindUnknownEnum.
//
// Each rackable unit renders as "<model> [S/N <serial>]". A unit whose model
// or serial is absent renders as "None available"; its siblings are unaffected.
//
// A missing or empty external IP renders as "Not set".
//
// Storage containers become ContainerRow values of plain strings. Markup is the
// renderer's job.
//
// # Failure
//
// A missing name, version or redundancy state fails with KindMissingField and
// no Fields value is returned.
package inventory
