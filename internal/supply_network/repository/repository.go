// Package repository stores supply networks for their owners. Every
// operation is scoped to an owner: a network owned by someone else yields
// domain.ErrAccessDenied, a missing one domain.ErrNetworkNotFound.
package repository

import (
	"context"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
)

type Repository interface {
	// Create stores n as a new network and returns it with its id and timestamps.
	Create(ctx context.Context, owner string, n domain.Network) (domain.Network, error)
	// Update replaces name, description and graph of an existing network.
	Update(ctx context.Context, owner, id string, n domain.Network) error
	Get(ctx context.Context, owner, id string) (domain.Network, error)
	// List returns the owner's networks, most recently updated first.
	List(ctx context.Context, owner string) ([]domain.Summary, error)
	Delete(ctx context.Context, owner, id string) error
	Rename(ctx context.Context, owner, id, name string) error
	Ping(ctx context.Context) error
}
