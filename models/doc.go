// Package models provides the data structures shared by the API client,
// the normalizer and the CLI.
//
// The models in this package represent:
//   - ClusterDescriptor: the Prism v2.0 cluster summary record
//   - ContainerCollection: the storage container list with its metadata
//   - Error: the classified failure returned by every stage of a report run
//
// The API types decode only the keys the report consumes. Fields that must be
// checked for presence are pointers; everything else decodes to its zero value
// when absent.
package models
