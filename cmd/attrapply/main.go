package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/bgrewell/attr-kit"
	"github.com/bgrewell/attr-kit/internal/fileflags"
	"github.com/bgrewell/attr-kit/pkg/consts"
	"github.com/bgrewell/attr-kit/pkg/helpers"
	"github.com/bgrewell/attr-kit/pkg/logging"
	"github.com/bgrewell/attr-kit/pkg/options"
	"github.com/bgrewell/usage"
)

func main() {

	u := usage.NewUsage()
	help := u.AddBooleanOption("h", "help", false, "Show this help message", "optional", nil)
	verbose := u.AddBooleanOption("v", "verbose", false, "Print verbose output", "", nil)
	dryRun := u.AddBooleanOption("n", "dry-run", false, "Print the resulting flag words without writing them", "", nil)
	setMask := u.AddArgument(1, "set-mask", "Mask of bits to force on", "")
	unsetMask := u.AddArgument(2, "unset-mask", "Mask of bits to force off", "")
	path := u.AddArgument(3, "path", "File or directory whose flags are updated", "")
	parsed := u.Parse()

	if !parsed {
		u.PrintError(fmt.Errorf("failed to parse arguments"))
		os.Exit(1)
	}

	if *help {
		u.PrintUsage()
		os.Exit(0)
	}

	if setMask == nil || unsetMask == nil || path == nil || *path == "" {
		u.PrintError(fmt.Errorf("<set-mask>, <unset-mask> and <path> must all be provided"))
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
	if runtime.GOOS == "darwin" {
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
	rule.SetBitsSet(bitsSet)
	rule.SetBitsUnset(bitsUnset)

	// Reject rules whose raw masks conflict before touching any file.
	for _, cell := range rule.Cells() {
		if _, err := cell.State(); err != nil {
			u.PrintError(err)
			os.Exit(1)
		}
	}

	current, err := fileflags.Read(*path)
	if err != nil {
		u.PrintError(err)
		os.Exit(1)
	}

	updated := rule.Evaluate(current)
	if updated == current {
		fmt.Printf("%s: flags already %s, nothing to do\n", *path, helpers.FormatMask(current))
		return
	}

	if *dryRun {
		fmt.Printf("%s: would change flags %s -> %s (rule %s)\n",
			*path, helpers.FormatMask(current), helpers.FormatMask(updated), rule.Summary())
		return
	}

	if err := fileflags.Write(*path, updated); err != nil {
		u.PrintError(err)
		os.Exit(1)
	}
	fmt.Printf("%s: changed flags %s -> %s\n", *path, helpers.FormatMask(current), helpers.FormatMask(updated))
}
