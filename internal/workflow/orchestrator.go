package workflow

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/user/vexo-checker/internal/i18n"
	"github.com/user/vexo-checker/internal/logger"
	"github.com/user/vexo-checker/internal/subscription"
)

// Fetcher loads the subscription record.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*subscription.FetchResult, error)
}

// IPResolver discovers the public IP.
type IPResolver interface {
	PublicIP(ctx context.Context) (string, bool)
}

// Orchestrator runs one check end to end.
type Orchestrator struct {
	fetcher    Fetcher
	resolver   IPResolver
	reconciler *Reconciler
}

// NewOrchestrator creates an orchestrator.
func NewOrchestrator(fetcher Fetcher, resolver IPResolver, updater IPUpdater) *Orchestrator {
	return &Orchestrator{
		fetcher:    fetcher,
		resolver:   resolver,
		reconciler: NewReconciler(updater),
	}
}

// Run fetches the subscription and the public IP concurrently, waits for
// both, then reconciles. Error messages are rendered in lang.
func (o *Orchestrator) Run(ctx context.Context, subURL, lang string) Result {
	var (
		g        errgroup.Group
		fetched  *subscription.FetchResult
		publicIP string
		ipFound  bool
	)

	// A lost public IP only degrades the result to not_found.
	g.Go(func() error {
		defer logger.Recover("public-ip")
		publicIP, ipFound = o.resolver.PublicIP(ctx)
		return nil
	})
	g.Go(guard("fetch", func() error {
		var err error
		fetched, err = o.fetcher.Fetch(ctx, subURL)
		return err
	}))

	if err := g.Wait(); err != nil {
		kind := subscription.KindOf(err)
		logger.WithComponent("workflow").Warnf("Check failed: %v", err)
		return Failed(string(kind), i18n.T(lang, errorKey(kind)))
	}

	status := o.reconciler.Reconcile(ctx, subURL, fetched, publicIP, ipFound)
	return Result{Success: true, Record: fetched.Record, IPStatus: status}
}

// guard turns a panic in fn into an error so the join still completes.
func guard(name string, fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("PANIC in %s: %v", name, r)
				err = fmt.Errorf("%s panicked: %v", name, r)
			}
		}()
		return fn()
	}
}
