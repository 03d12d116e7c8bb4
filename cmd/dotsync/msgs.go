package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Keep your configuration files in sync with a repository"
	MsgRootLong  = `dotsync keeps configuration files in sync between a repository and the
system. Files are grouped into categories (git, zsh, brew, ...), each with
per-OS destinations and optional hooks; categories are processed in
prerequisite order, and every planned action is printed before it runs.`

	MsgInstallShort = "Install configuration files onto the system"
	MsgInstallLong  = `Install links every category's repository files to their system
locations, running each category's hooks around its files. Categories are
processed in prerequisite order; with no arguments every category is
installed.`

	MsgBackupShort = "Copy system configuration files back into the repository"
	MsgBackupLong  = `Backup copies the current system-side files back into the repository,
so local edits can be reviewed and committed. Hooks run the same way they
do for install.`

	MsgRestoreShort = "Restore configuration files from the repository as copies"
	MsgRestoreLong  = `Restore writes the repository's files to their system locations as
plain copies. Use --symlink to link instead, which makes restore behave
like install.`

	MsgDiffShort = "Show differences between repository and system files"
	MsgDiffLong  = `Diff prints a unified diff between each repository file and its system
counterpart, with zero context lines. Identical pairs and categories with
no differences stay silent; diff never runs hooks and never writes.`

	MsgListShort = "List categories and their locations"
	MsgListLong  = `List shows every category, its prerequisites and the locations it
manages on this platform. Categories without a destination on this
platform are marked disabled.`

	MsgGenConfigShort = "Generate a starter configuration file"
	MsgGenConfigLong  = `Gen-config prints a dotsync.toml with every option commented out at its
default value. With --write the file is created at the repository root
instead.`

	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice     = "\nDRY RUN MODE - No changes were made"
	MsgConfigWritten    = "Wrote %s\n"
	MsgCategoryDisabled = " (disabled on this platform)"
	MsgPrereqsFormat    = "    requires: %s\n"
	MsgLocationFormat   = "    %s -> %s\n"

	// Error messages
	MsgErrInitPaths    = "failed to initialize paths: %w"
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrConfigExists = "refusing to overwrite existing %s"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without executing them"
	MsgFlagRoot    = "Repository root (default: $DOTSYNC_ROOT, then the current directory)"
	MsgFlagCopy    = "Copy files instead of symlinking them"
	MsgFlagSymlink = "Symlink files instead of copying them"
	MsgFlagWrite   = "Write the config file to the repository root instead of stdout"

	// Warnings
	MsgFallbackWarning = "Warning: no --root or DOTSYNC_ROOT given, using current directory: %s\n"
)
