package types

import "runtime"

// Platform identifies an operating system a Location may map onto.
// It is a closed enumeration; any other GOOS value simply has no
// declared path and the owning category is disabled there.
type Platform string

const (
	PlatformLinux   Platform = "linux"
	PlatformDarwin  Platform = "darwin"
	PlatformWindows Platform = "windows"
)

// CurrentPlatform returns the Platform for the running process
func CurrentPlatform() Platform {
	return Platform(runtime.GOOS)
}

// Location maps one repository-relative path onto its per-OS system
// path templates. Templates may reference environment variables and
// are expanded at resolution time, not construction time. A Location
// may name a single file or a directory; which one it is gets decided
// from the filesystem when the pair set is expanded.
type Location struct {
	// Repo is the path relative to the repository root. Never empty.
	Repo string

	// Per-OS path templates. An empty template means the location is
	// not applicable on that OS.
	Linux   string
	Darwin  string
	Windows string
}

// Template returns the system-side path template for the given
// platform, or "" when the location is not applicable there.
func (l Location) Template(platform Platform) string {
	switch platform {
	case PlatformLinux:
		return l.Linux
	case PlatformDarwin:
		return l.Darwin
	case PlatformWindows:
		return l.Windows
	default:
		return ""
	}
}

// Command is a hook invocation: an ordered, non-empty argv. The first
// element is a logical executable name that gets resolved against the
// PATH when the hook runs; resolution failure is a hard error, never a
// silent no-op.
type Command struct {
	Args []string
}

// NewCommand builds a Command from its argv. Panics on an empty argv,
// which is a programming error in the static category table.
func NewCommand(args ...string) Command {
	if len(args) == 0 {
		panic("types: command requires at least one argument")
	}
	return Command{Args: args}
}

// Descriptor is the declarative definition of one configuration
// category. Descriptors are built once at startup and never mutated.
type Descriptor struct {
	// Prerequisites names categories that must be fully processed
	// before this one. Names must resolve in the registry.
	Prerequisites []string

	// Before runs ahead of the category's locations, in order.
	Before []Command

	// Locations, processed in declaration order.
	Locations []Location

	// After runs once all locations are processed, in order.
	After []Command
}

// Disabled reports whether the category has nothing to do on the
// given platform: every location lacks a path template for it. A
// descriptor with zero locations is disabled everywhere.
func (d Descriptor) Disabled(platform Platform) bool {
	for _, loc := range d.Locations {
		if loc.Template(platform) != "" {
			return false
		}
	}
	return true
}

// PathPair is a resolved (repository-side, system-side) pair of
// absolute paths. Pairs are ephemeral: produced and consumed within a
// single operation.
type PathPair struct {
	Repo   string
	System string
}
