package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/logging"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
)

// ListNetworks returns the owner's stored networks, most recent first.
func (w *Workspace) ListNetworks(ctx context.Context) ([]domain.Summary, error) {
	return w.repo.list(ctx)
}

// LoadNetwork replaces the workspace with a stored network. Pending changes
// to the current network are saved first; if that fails nothing changes.
func (w *Workspace) LoadNetwork(ctx context.Context, id string) (View, error) {
	w.lock()
	defer w.mu.Unlock()
	log := logging.New(ctx)

	if err := w.saver.Flush(ctx); err != nil {
		return View{}, fmt.Errorf("save current network: %w", err)
	}
	n, err := w.repo.get(ctx, id)
	if err != nil {
		log.Error("workspace.load", err)
		return View{}, err
	}

	w.store.Reset(n.Graph)
	w.saver.Reset(n.ID, domain.StatusSaved)
	w.name = n.Name
	w.description = n.Description
	w.lastResult = nil
	w.publishLocked()
	log.Infof("workspace.load", "owner=%s network_id=%s nodes=%d", w.owner, n.ID, len(n.Nodes))
	return w.viewLocked(), nil
}

// NewNetwork clears the workspace after saving pending changes.
func (w *Workspace) NewNetwork(ctx context.Context) (View, error) {
	w.lock()
	defer w.mu.Unlock()
	if err := w.saver.Flush(ctx); err != nil {
		return View{}, fmt.Errorf("save current network: %w", err)
	}
	w.clearLocked()
	return w.viewLocked(), nil
}

func (w *Workspace) clearLocked() {
	w.store.Reset(domain.Graph{})
	w.saver.Reset("", domain.StatusUnsaved)
	w.name = domain.DefaultNetworkName
	w.description = ""
	w.lastResult = nil
	w.publishLocked()
}

// DeleteNetwork removes a stored network. Deleting the open one also clears
// the workspace.
func (w *Workspace) DeleteNetwork(ctx context.Context, id string) (View, error) {
	w.lock()
	defer w.mu.Unlock()
	if err := w.repo.delete(ctx, id); err != nil {
		logging.New(ctx).Error("workspace.delete", err)
		return View{}, err
	}
	if id == w.saver.ID() {
		w.clearLocked()
	}
	return w.viewLocked(), nil
}

// RenameNetwork renames a stored network, or the open one when id is empty
// or matches it. An open network that was never saved is renamed locally and
// picked up by the next autosave.
func (w *Workspace) RenameNetwork(ctx context.Context, id, name string) (View, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return View{}, ErrNameRequired
	}
	w.lock()
	defer w.mu.Unlock()

	current := w.saver.ID()
	if id == "" || id == current {
		if current == "" {
			w.name = name
			w.changedLocked()
			return w.viewLocked(), nil
		}
		id = current
	}
	if err := w.repo.rename(ctx, id, name); err != nil {
		logging.New(ctx).Error("workspace.rename", err)
		return View{}, err
	}
	if id == current {
		w.name = name
		w.publishLocked()
	}
	return w.viewLocked(), nil
}

// SaveAsNew stores a copy of the open network under a new identity. The
// workspace keeps editing the original.
func (w *Workspace) SaveAsNew(ctx context.Context, name string) (domain.Summary, error) {
	w.lock()
	defer w.mu.Unlock()
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Copy of " + w.name
	}
	out, err := w.repo.create(ctx, domain.Network{
		Name:        name,
		Description: w.description,
		Graph:       w.store.Snapshot(),
	})
	if err != nil {
		logging.New(ctx).Error("workspace.save_as_new", err)
		return domain.Summary{}, err
	}
	return out.Summary(), nil
}
