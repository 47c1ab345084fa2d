// Vexo Checker - subscription status and DNS switcher
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/user/vexo-checker/internal/config"
	"github.com/user/vexo-checker/internal/core"
	"github.com/user/vexo-checker/internal/dns"
	"github.com/user/vexo-checker/internal/elevate"
	"github.com/user/vexo-checker/internal/i18n"
	"github.com/user/vexo-checker/internal/logger"
	"github.com/user/vexo-checker/internal/netif"
	"github.com/user/vexo-checker/internal/procutil"
	"github.com/user/vexo-checker/internal/publicip"
	"github.com/user/vexo-checker/internal/subscription"
	"github.com/user/vexo-checker/internal/ui"
	"github.com/user/vexo-checker/internal/workflow"
)

func main() {
	var (
		url      = flag.String("url", "", "subscription link to store")
		lang     = flag.String("lang", "", "UI language (en, ru, fa, zh)")
		setDNS   = flag.Bool("set-dns", false, "connect DNS on startup")
		unsetDNS = flag.Bool("unset-dns", false, "restore automatic DNS on startup")
		check    = flag.Bool("check", false, "check the subscription once, print the result and exit")
		envFile  = flag.String("env", config.DefaultEnvFile(), "optional .env file")
		verbose  = flag.Bool("v", false, "mirror log lines to stderr")
	)
	flag.Parse()

	opts, err := config.LoadOptions(*envFile)
	if err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	// Changing DNS needs admin/root; a plain check does not.
	if !*check && !elevate.IsAdmin() {
		fmt.Println("Not running as administrator, requesting elevation...")
		if err := elevate.RunAsAdmin(); err != nil {
			log.Fatalf("Failed to elevate privileges: %v\nPlease run as administrator.", err)
		}
		return
	}

	// A headless check reports on the terminal, so stderr is not captured.
	initLog := logger.Init
	if *check {
		initLog = logger.InitFile
	}
	if err := initLog(); err != nil {
		log.Printf("File logging unavailable: %v", err)
	}
	log.SetOutput(logger.Console())
	if err := logger.SetLevel(opts.LogLevel); err != nil {
		logger.Warning("Ignoring log level: %v", err)
	}
	if *verbose {
		console := logger.Console()
		logger.AddListener(func(line string) { fmt.Fprintln(console, line) })
	}
	logger.Info("Vexo Checker starting")

	settings := config.NewManager(opts.SettingsPath)
	if err := settings.Load(); err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	client := &http.Client{Timeout: opts.HTTPTimeout}
	orchestrator := workflow.NewOrchestrator(
		subscription.NewFetcher(client, subscription.WithUserAgent(opts.UserAgent)),
		publicip.NewResolver(client),
		subscription.NewUpdater(client),
	)

	runner := procutil.ExecRunner{}
	app := core.New(core.Deps{
		Settings: settings,
		Workflow: orchestrator,
		DNS:      dns.NewConfigurator(runner, dns.DefaultCommands(), netif.Default(runner)),
		Hosts:    publicip.NewHostCache(settings, config.HostIcanhazip, config.HostIdentMe),
		Probe:    dns.Probe,
		Timings: core.Timings{
			Watchdog: opts.Watchdog,
			DNSPoll:  opts.DNSPoll,
		},
	})

	if *url != "" {
		if err := app.SetURL(*url); err != nil {
			log.Fatalf("Invalid subscription link: %v", err)
		}
	}
	if *lang != "" {
		if err := app.SetLanguage(*lang); err != nil {
			log.Fatalf("Unsupported language %q", *lang)
		}
	}

	if *check {
		os.Exit(runCheck(orchestrator, app.URL(), app.Language(), os.Stdout, logger.Console()))
	}

	action := ui.StartRefresh
	switch {
	case *setDNS:
		action = ui.StartConnectDNS
	case *unsetDNS:
		action = ui.StartDisconnectDNS
	}
	ui.Run(app, action)
}

// runCheck performs one check and prints a report. It returns the exit code.
func runCheck(wf core.Workflow, subURL, lang string, stdout, stderr io.Writer) int {
	if subURL == "" {
		fmt.Fprintln(stderr, i18n.T(lang, "warning_add_link_first"))
		return 2
	}

	res := wf.Run(context.Background(), subURL, lang)
	if !res.Success {
		fmt.Fprintln(stderr, res.Err.Message)
		return 1
	}

	rec := res.Record
	volume := i18n.T(lang, "unlimited")
	if !rec.UnlimitedVolume {
		volume = rec.RemainingVolumeText()
	}
	days := i18n.T(lang, "unlimited")
	if !rec.UnlimitedTime {
		days = i18n.T(lang, "time_format", rec.RemainingDays, rec.RemainingHours)
	}

	fmt.Fprintln(stdout, i18n.T(lang, "username_header", rec.Username))
	fmt.Fprintln(stdout, i18n.T(lang, "status_header", rec.StatusKey))
	fmt.Fprintln(stdout, i18n.T(lang, "time_header", days))
	fmt.Fprintln(stdout, i18n.T(lang, "volume_header", volume))
	if rec.HasDNS() {
		fmt.Fprintln(stdout, i18n.T(lang, "dns_header", rec.DNS1))
	}
	if st := res.IPStatus; st != nil {
		fmt.Fprintln(stdout, i18n.T(lang, st.MessageKey(), st.Params()...))
	}
	return 0
}
