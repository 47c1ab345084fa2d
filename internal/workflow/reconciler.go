package workflow

import (
	"context"
	"errors"

	"github.com/user/vexo-checker/internal/logger"
	"github.com/user/vexo-checker/internal/subscription"
)

// IPUpdater reports a new public IP to the panel.
type IPUpdater interface {
	UpdateIP(ctx context.Context, apiURL, subURL, ip string) error
}

// Reconciler compares the public IP with the one the panel last saw.
type Reconciler struct {
	updater IPUpdater
}

// NewReconciler creates a reconciler.
func NewReconciler(updater IPUpdater) *Reconciler {
	return &Reconciler{updater: updater}
}

// Reconcile classifies the public IP against fetched.Record.LastIP, posting
// an update when they differ. On a successful update the record's LastIP
// is set to the new address. It never fails.
func (r *Reconciler) Reconcile(ctx context.Context, subURL string, fetched *subscription.FetchResult, publicIP string, ok bool) *IPStatus {
	if !ok || publicIP == "" {
		return &IPStatus{Kind: IPNotFound}
	}

	rec := fetched.Record
	if publicIP == rec.LastIP {
		return &IPStatus{Kind: IPNoChange, NewIP: publicIP}
	}

	log := logger.WithComponent("reconciler")
	err := r.updater.UpdateIP(ctx, fetched.APIURL, subURL, publicIP)
	switch {
	case err == nil:
		log.Infof("IP updated on panel: %q -> %s", rec.LastIP, publicIP)
		status := &IPStatus{Kind: IPChanged, OldIP: rec.LastIP, NewIP: publicIP}
		rec.LastIP = publicIP
		return status
	case errors.Is(err, subscription.ErrIPConflict):
		log.Warnf("IP %s conflicts with another subscription", publicIP)
		return &IPStatus{Kind: IPConflict}
	default:
		log.Warnf("IP update failed: %v", err)
		return &IPStatus{Kind: IPUpdateFailed}
	}
}
