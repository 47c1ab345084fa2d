package dns

// Command is a program and its arguments.
type Command struct {
	Name string
	Args []string
}

// CommandSet builds the platform commands used by Configurator.
// Flush may be left zero when the platform has no cache to clear.
type CommandSet struct {
	Query        func(iface string) Command
	SetPrimary   func(iface, ip string) Command
	AddSecondary func(iface, primary, secondary string) Command
	Restore      func(iface string) Command
	Flush        Command
}

// NetshCommands drives "netsh interface ipv4".
func NetshCommands() CommandSet {
	netsh := func(args ...string) Command {
		return Command{Name: "netsh", Args: append([]string{"interface", "ipv4"}, args...)}
	}
	return CommandSet{
		Query: func(iface string) Command {
			return netsh("show", "dnsservers", "name="+iface)
		},
		SetPrimary: func(iface, ip string) Command {
			return netsh("set", "dnsservers", "name="+iface, "static", ip, "primary")
		},
		AddSecondary: func(iface, _, secondary string) Command {
			return netsh("add", "dnsservers", "name="+iface, "address="+secondary, "index=2")
		},
		Restore: func(iface string) Command {
			return netsh("set", "dnsservers", "name="+iface, "source=dhcp")
		},
		Flush: Command{Name: "ipconfig", Args: []string{"/flushdns"}},
	}
}

// ResolvectlCommands drives systemd-resolved per-link DNS.
func ResolvectlCommands() CommandSet {
	return CommandSet{
		Query: func(iface string) Command {
			return Command{Name: "resolvectl", Args: []string{"dns", iface}}
		},
		SetPrimary: func(iface, ip string) Command {
			return Command{Name: "resolvectl", Args: []string{"dns", iface, ip}}
		},
		// resolvectl replaces the whole list, so both servers are passed.
		AddSecondary: func(iface, primary, secondary string) Command {
			return Command{Name: "resolvectl", Args: []string{"dns", iface, primary, secondary}}
		},
		Restore: func(iface string) Command {
			return Command{Name: "resolvectl", Args: []string{"revert", iface}}
		},
		Flush: Command{Name: "resolvectl", Args: []string{"flush-caches"}},
	}
}

// NetworksetupCommands drives macOS network services.
func NetworksetupCommands() CommandSet {
	return CommandSet{
		Query: func(service string) Command {
			return Command{Name: "networksetup", Args: []string{"-getdnsservers", service}}
		},
		SetPrimary: func(service, ip string) Command {
			return Command{Name: "networksetup", Args: []string{"-setdnsservers", service, ip}}
		},
		AddSecondary: func(service, primary, secondary string) Command {
			return Command{Name: "networksetup", Args: []string{"-setdnsservers", service, primary, secondary}}
		},
		Restore: func(service string) Command {
			return Command{Name: "networksetup", Args: []string{"-setdnsservers", service, "Empty"}}
		},
		Flush: Command{Name: "dscacheutil", Args: []string{"-flushcache"}},
	}
}
