package winget

import (
	"context"
	"fmt"

	"github.com/ajxudir/wingetup/pkg/cmdexec"
	"github.com/ajxudir/wingetup/pkg/policy"
	"github.com/ajxudir/wingetup/pkg/verbose"
)

// Fallback timeouts in seconds, used when the caller passes zero.
// Listing a large machine takes tens of seconds; a single upgrade can
// legitimately run for minutes while an installer works.
const (
	defaultPrimeTimeout   = 15
	defaultListTimeout    = 120
	defaultUpgradeTimeout = 250
)

// Timeouts bounds each kind of winget invocation, in seconds.
// Zero fields fall back to the package defaults.
type Timeouts struct {
	Prime   int
	List    int
	Upgrade int
}

// Client invokes one located winget executable.
//
// All methods go through the cmdexec seam, so tests swap cmdexec.Run
// instead of needing winget installed. Methods are safe to call
// sequentially; winget itself is not safe for concurrent
// self-invocation, so the client never parallelizes.
type Client struct {
	exe            string
	primeTimeout   int
	listTimeout    int
	upgradeTimeout int
}

// NewClient builds a Client for the executable at exe.
//
// Parameters:
//   - exe: Path to the winget executable, from Locate
//   - t: Per-operation timeouts; zero fields use package defaults
//
// Returns:
//   - *Client: Ready-to-use client
func NewClient(exe string, t Timeouts) *Client {
	c := &Client{
		exe:            exe,
		primeTimeout:   t.Prime,
		listTimeout:    t.List,
		upgradeTimeout: t.Upgrade,
	}
	if c.primeTimeout <= 0 {
		c.primeTimeout = defaultPrimeTimeout
	}
	if c.listTimeout <= 0 {
		c.listTimeout = defaultListTimeout
	}
	if c.upgradeTimeout <= 0 {
		c.upgradeTimeout = defaultUpgradeTimeout
	}
	return c
}

// Executable returns the path the client invokes.
func (c *Client) Executable() string {
	return c.exe
}

// PrimeSourceAgreements accepts winget's source agreements.
//
// On a fresh profile the first winget contact blocks on an interactive
// Y/N source-agreement prompt, which would hang every later call.
// Listing a single row with the acceptance flag gets the prompt out of
// the way non-interactively. Output is discarded.
//
// Parameters:
//   - ctx: Context for cancellation
//
// Returns:
//   - error: The invocation error; callers treat it as a warning, since
//     an already-primed profile does not need this call to succeed
func (c *Client) PrimeSourceAgreements(ctx context.Context) error {
	_, err := cmdexec.Run(ctx, c.exe, []string{
		"list",
		"--accept-source-agreements",
		"-n", "1",
	}, c.primeTimeout)
	if err != nil {
		return fmt.Errorf("priming source agreements: %w", err)
	}
	return nil
}

// ListUpgrades returns the packages winget reports as upgradeable.
//
// Runs `winget upgrade` with --include-unknown so rows with an
// unreadable installed version stay visible to the tolerance policy.
// Winget exits non-zero in some benign listing scenarios while still
// printing a usable table, so a non-zero exit is only an error when
// nothing parseable came back.
//
// Parameters:
//   - ctx: Context for cancellation
//
// Returns:
//   - []Package: Parsed rows in listing order; empty when the machine
//     is up to date
//   - error: Spawn failure, timeout, or non-zero exit with no usable
//     table output
func (c *Client) ListUpgrades(ctx context.Context) ([]Package, error) {
	res, err := cmdexec.Run(ctx, c.exe, []string{
		"upgrade",
		"--include-unknown",
		"--accept-source-agreements",
		"--disable-interactivity",
	}, c.listTimeout)
	if err != nil {
		if res == nil || len(res.Stdout) == 0 {
			return nil, fmt.Errorf("listing upgrades: %w", err)
		}
		if pkgs := ParseUpgradeTable(string(res.Stdout)); len(pkgs) > 0 {
			verbose.Infof("Listing exited %d but produced %d usable rows", res.ExitCode, len(pkgs))
			return pkgs, nil
		}
		return nil, fmt.Errorf("listing upgrades: %w", err)
	}
	return ParseUpgradeTable(string(res.Stdout)), nil
}

// ListInstalled returns the installed package inventory.
//
// Runs `winget list`; the Available field of returned rows is populated
// only for packages winget also knows an upgrade for.
//
// Parameters:
//   - ctx: Context for cancellation
//
// Returns:
//   - []Package: Parsed rows in listing order
//   - error: Spawn failure, timeout, or non-zero exit with no usable
//     table output
func (c *Client) ListInstalled(ctx context.Context) ([]Package, error) {
	res, err := cmdexec.Run(ctx, c.exe, []string{
		"list",
		"--accept-source-agreements",
		"--disable-interactivity",
	}, c.listTimeout)
	if err != nil {
		if res == nil || len(res.Stdout) == 0 {
			return nil, fmt.Errorf("listing installed packages: %w", err)
		}
		if pkgs := ParseInstalledTable(string(res.Stdout)); len(pkgs) > 0 {
			verbose.Infof("Listing exited %d but produced %d usable rows", res.ExitCode, len(pkgs))
			return pkgs, nil
		}
		return nil, fmt.Errorf("listing installed packages: %w", err)
	}
	return ParseInstalledTable(string(res.Stdout)), nil
}

// Upgrade upgrades one package by identifier.
//
// The identifier goes into argv behind --exact --id, never through a
// shell, and is validated first so a corrupt listing row cannot turn
// into a surprising invocation. Success is winget's exit status; this
// method does not verify the installed version afterwards.
//
// Parameters:
//   - ctx: Context for cancellation
//   - id: Winget package identifier
//
// Returns:
//   - error: Validation failure or the winget invocation error,
//     carrying the exit code and trailing output
func (c *Client) Upgrade(ctx context.Context, id string) error {
	if !policy.ValidPackageID(id) {
		return fmt.Errorf("refusing to upgrade invalid package id %q", id)
	}
	_, err := cmdexec.Run(ctx, c.exe, []string{
		"upgrade",
		"--silent",
		"--exact",
		"--id", id,
		"--accept-package-agreements",
		"--accept-source-agreements",
		"--disable-interactivity",
	}, c.upgradeTimeout)
	if err != nil {
		return fmt.Errorf("upgrading %s: %w", id, err)
	}
	return nil
}
