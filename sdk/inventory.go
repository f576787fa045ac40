package sdk

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Orkogithub/nutanix-cluster-info/models"
)

// Inventory holds the two documents a report is built from.
type Inventory struct {
	Cluster    *models.ClusterDescriptor
	Containers *models.ContainerCollection
}

// FetchInventory fetches the cluster descriptor and the storage containers concurrently.
// Both documents are required: the first failure cancels the other request and is returned.
func (c *Client) FetchInventory(ctx context.Context) (*Inventory, error) {
	var inv Inventory
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		cluster, err := c.GetCluster(gctx)
		if err != nil {
			return err
		}
		inv.Cluster = cluster
		return nil
	})

	g.Go(func() error {
		containers, err := c.GetStorageContainers(gctx)
		if err != nil {
			return err
		}
		inv.Containers = containers
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &inv, nil
}
