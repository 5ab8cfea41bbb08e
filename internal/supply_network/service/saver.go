package service

import (
	"context"
	"time"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/metrics"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/repository"
)

// ownerRepo scopes a repository to one owner and times every call.
type ownerRepo struct {
	repo    repository.Repository
	owner   string
	metrics *metrics.Registry
}

func (o ownerRepo) observe(op string, start time.Time, err error) {
	if o.metrics != nil {
		o.metrics.RecordRepositoryCall(op, time.Since(start), err)
	}
}

// Create and Update satisfy autosave.Saver.
func (o ownerRepo) Create(ctx context.Context, n domain.Network) (string, error) {
	out, err := o.create(ctx, n)
	return out.ID, err
}

func (o ownerRepo) Update(ctx context.Context, id string, n domain.Network) error {
	start := time.Now()
	err := o.repo.Update(ctx, o.owner, id, n)
	o.observe("update", start, err)
	return err
}

func (o ownerRepo) create(ctx context.Context, n domain.Network) (domain.Network, error) {
	start := time.Now()
	out, err := o.repo.Create(ctx, o.owner, n)
	o.observe("create", start, err)
	return out, err
}

func (o ownerRepo) get(ctx context.Context, id string) (domain.Network, error) {
	start := time.Now()
	n, err := o.repo.Get(ctx, o.owner, id)
	o.observe("get", start, err)
	return n, err
}

func (o ownerRepo) list(ctx context.Context) ([]domain.Summary, error) {
	start := time.Now()
	out, err := o.repo.List(ctx, o.owner)
	o.observe("list", start, err)
	return out, err
}

func (o ownerRepo) delete(ctx context.Context, id string) error {
	start := time.Now()
	err := o.repo.Delete(ctx, o.owner, id)
	o.observe("delete", start, err)
	return err
}

func (o ownerRepo) rename(ctx context.Context, id, name string) error {
	start := time.Now()
	err := o.repo.Rename(ctx, o.owner, id, name)
	o.observe("rename", start, err)
	return err
}
