package netif

import (
	"context"
	"strings"

	"github.com/user/vexo-checker/internal/procutil"
)

const getNetAdapterScript = "Get-NetAdapter -Physical | Where-Object { $_.Status -eq 'Up' } | ForEach-Object { $_.Name }"

// WindowsStrategies returns the wmic, PowerShell and netsh strategies.
func WindowsStrategies(r procutil.Runner) []Strategy {
	return []Strategy{
		{Name: "wmic", Run: func(ctx context.Context) ([]string, error) {
			out, err := r.Run(ctx, "wmic", "path", "Win32_NetworkAdapter",
				"where", "NetConnectionStatus=2", "get", "NetConnectionID")
			if err != nil {
				return nil, err
			}
			return parseWmic(out), nil
		}},
		{Name: "powershell", Run: func(ctx context.Context) ([]string, error) {
			out, err := r.Run(ctx, "powershell", "-ExecutionPolicy", "Bypass", "-Command", getNetAdapterScript)
			if err != nil {
				return nil, err
			}
			return procutil.Lines(out), nil
		}},
		{Name: "netsh", Run: func(ctx context.Context) ([]string, error) {
			out, err := r.Run(ctx, "netsh", "interface", "ipv4", "show", "interfaces")
			if err != nil {
				return nil, err
			}
			return parseNetshInterfaces(out), nil
		}},
	}
}

// parseWmic drops the NetConnectionID header line.
func parseWmic(out []byte) []string {
	lines := procutil.Lines(out)
	if len(lines) <= 1 {
		return nil
	}
	return lines[1:]
}

// parseNetshInterfaces reads the table printed by
// "netsh interface ipv4 show interfaces":
//
//	Idx     Met         MTU          State                Name
//	---  ----------  ----------  ------------  ---------------------------
//	  1          75  4294967295  connected     Loopback Pseudo-Interface 1
//
// Names may contain spaces, so everything after the State column is the name.
func parseNetshInterfaces(out []byte) []string {
	lines := procutil.Lines(out)
	if len(lines) <= 2 {
		return nil
	}

	var names []string
	for _, line := range lines[2:] {
		fields := strings.Fields(line)
		if len(fields) < 5 || fields[3] != "connected" {
			continue
		}
		names = append(names, strings.Join(fields[4:], " "))
	}
	return names
}
