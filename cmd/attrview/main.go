package main

import (
	"fmt"
	"os"

	"github.com/bgrewell/attr-kit"
	"github.com/bgrewell/attr-kit/pkg/consts"
	"github.com/bgrewell/attr-kit/pkg/helpers"
	"github.com/bgrewell/attr-kit/pkg/logging"
	"github.com/bgrewell/attr-kit/pkg/options"
	"github.com/bgrewell/attr-kit/pkg/tristate"
	"github.com/bgrewell/usage"
)

func main() {

	u := usage.NewUsage()
	help := u.AddBooleanOption("h", "help", false, "Show this help message", "optional", nil)
	verbose := u.AddBooleanOption("v", "verbose", false, "Print verbose output", "", nil)
	macos := u.AddBooleanOption("m", "macos", false, "Use the macOS chflags catalog instead of the Linux chattr one", "", nil)
	setMask := u.AddArgument(1, "set-mask", "Mask of bits the rule requires set (e.g. 0x30)", "")
	unsetMask := u.AddArgument(2, "unset-mask", "Mask of bits the rule requires unset (e.g. 0x40)", "")
	parsed := u.Parse()

	if !parsed {
		u.PrintError(fmt.Errorf("failed to parse arguments"))
		os.Exit(1)
	}

	if *help {
		u.PrintUsage()
		os.Exit(0)
	}

	if setMask == nil || unsetMask == nil || *setMask == "" || *unsetMask == "" {
		u.PrintError(fmt.Errorf("both <set-mask> and <unset-mask> must be provided"))
		os.Exit(1)
	}

	bitsSet, err := helpers.ParseMask(*setMask)
	if err != nil {
		u.PrintError(err)
		os.Exit(1)
	}
	bitsUnset, err := helpers.ParseMask(*unsetMask)
	if err != nil {
		u.PrintError(err)
		os.Exit(1)
	}

	platform := consts.PLATFORM_LINUX
	if *macos {
		platform = consts.PLATFORM_DARWIN
	}

	verbosity := logging.LEVEL_INFO
	if *verbose {
		verbosity = logging.LEVEL_TRACE
	}

	rule, err := attr.New(
		options.WithPlatform(platform),
		options.WithLogger(logging.NewConsoleLogger(os.Stderr, verbosity)),
	)
	if err != nil {
		u.PrintError(err)
		os.Exit(1)
	}

	// Masks loaded as-is; a bit claimed by both only fails below, when the
	// affected flag's state is read.
	rule.SetBitsSet(bitsSet)
	rule.SetBitsUnset(bitsUnset)

	fmt.Printf("Platform:   %s\n", platform)
	fmt.Printf("Set mask:   %s\n", helpers.FormatMask(rule.BitsSet()))
	fmt.Printf("Unset mask: %s\n\n", helpers.FormatMask(rule.BitsUnset()))

	conflicts := 0
	for _, cell := range rule.Cells() {
		d := cell.Descriptor()
		state, err := cell.State()
		if err != nil {
			conflicts++
			fmt.Printf("  ! %-10s %-20s %s  CONFLICT: %v\n", d.Identifier, d.Name, helpers.FormatMask(d.Mask), err)
			continue
		}
		glyph := " "
		switch state {
		case tristate.Set:
			glyph = "+"
		case tristate.Unset:
			glyph = "-"
		}
		fmt.Printf("  %s %-10s %-20s %s  %s\n", glyph, d.Identifier, d.Name, helpers.FormatMask(d.Mask), d.Description)
	}

	if conflicts > 0 {
		fmt.Printf("\n%d flag(s) have conflicting raw data\n", conflicts)
		os.Exit(2)
	}
}
