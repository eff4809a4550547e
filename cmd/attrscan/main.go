package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"time"

	"github.com/bgrewell/attr-kit"
	"github.com/bgrewell/attr-kit/internal/fileflags"
	"github.com/bgrewell/attr-kit/pkg/consts"
	"github.com/bgrewell/attr-kit/pkg/helpers"
	"github.com/bgrewell/attr-kit/pkg/logging"
	"github.com/bgrewell/attr-kit/pkg/options"
	"github.com/theckman/yacspin"
	"golang.org/x/term"
)

var (
	version = "dev"
)

// truncateString truncates the input string to the specified max length.
// If truncation occurs, it prepends "..." to indicate the string has been shortened.
func truncateString(input string, maxLength int) string {
	if len(input) <= maxLength {
		return input
	}
	if maxLength <= 3 {
		return input[len(input)-maxLength:]
	}
	return "..." + input[len(input)-(maxLength-3):]
}

// updateSpinner sets the spinner message to the file currently being
// checked, truncated to the terminal width.
func updateSpinner(spinner *yacspin.Spinner, path string, checked int) {
	if spinner == nil {
		return
	}

	// Fetch terminal width
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width = 80 // Default width
	}

	fixedPart := fmt.Sprintf(" [%d] ", checked)
	availableSpace := width - len(fixedPart) - 6
	if availableSpace < 10 { // Minimum space to display meaningful path
		availableSpace = 10
	}

	spinner.Message(fixedPart + truncateString(path, availableSpace))
}

// InitializeSpinner sets up and starts the yacspin spinner.
func InitializeSpinner() (*yacspin.Spinner, error) {
	settings := yacspin.Config{
		Frequency:         100 * time.Millisecond,
		ShowCursor:        false,
		SpinnerAtEnd:      false,
		CharSet:           yacspin.CharSets[14],
		Colors:            []string{"fgHiCyan"},
		StopColors:        []string{"fgHiGreen"},
		StopFailColors:    []string{"fgHiRed"},
		StopFailCharacter: "✗",
		StopCharacter:     "✓",
	}

	spinner, err := yacspin.New(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create spinner: %w", err)
	}

	if err := spinner.Start(); err != nil {
		return nil, fmt.Errorf("failed to start spinner: %w", err)
	}

	return spinner, nil
}

type mismatch struct {
	path    string
	current uint32
	fixed   uint32
}

func main() {
	// Logging level flags
	debug := flag.Bool("v", false, "Enable verbose (debug) logging")
	trace := flag.Bool("vv", false, "Enable trace logging")

	// Rule masks
	setMask := flag.String("set", "0", "Mask of bits every file must have set")
	unsetMask := flag.String("unset", "0", "Mask of bits every file must have unset")

	// Parse flags
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("attrscan v" + version)
		fmt.Println("Usage: attrscan [options] <path>")
		fmt.Println("  -v               Enable verbose (debug) logging")
		fmt.Println("  -vv              Enable trace logging")
		fmt.Println("  -set <mask>      Mask of bits every file must have set (default 0)")
		fmt.Println("  -unset <mask>    Mask of bits every file must have unset (default 0)")
		os.Exit(1)
	}
	root := flag.Arg(0)

	verbosity := logging.LEVEL_INFO
	if *debug {
		verbosity = logging.LEVEL_DEBUG
	}
	if *trace {
		verbosity = logging.LEVEL_TRACE
	}

	bitsSet, err := helpers.ParseMask(*setMask)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -set mask: %v\n", err)
		os.Exit(1)
	}
	bitsUnset, err := helpers.ParseMask(*unsetMask)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -unset mask: %v\n", err)
		os.Exit(1)
	}

	platform := consts.PLATFORM_LINUX
	if runtime.GOOS == "darwin" {
		platform = consts.PLATFORM_DARWIN
	}

	rule, err := attr.New(
		options.WithPlatform(platform),
		options.WithLogger(logging.NewConsoleLogger(os.Stderr, verbosity)),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build rule: %v\n", err)
		os.Exit(1)
	}
	rule.SetBitsSet(bitsSet)
	rule.SetBitsUnset(bitsUnset)

	spinner, err := InitializeSpinner()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize spinner: %v\n", err)
		fmt.Fprintf(os.Stderr, "Progress updates will be disabled.\n")
	}

	// Restore the cursor on ctrl-c
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		<-interrupts
		if spinner != nil {
			_ = spinner.StopFail()
		}
		os.Exit(130)
	}()

	var checked, unreadable int
	var mismatches []mismatch
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() && !d.IsDir() {
			return nil
		}
		checked++
		updateSpinner(spinner, path, checked)

		current, err := fileflags.Read(path)
		if err != nil {
			unreadable++
			return nil
		}
		if !rule.Matches(current) {
			mismatches = append(mismatches, mismatch{
				path:    path,
				current: current,
				fixed:   rule.Evaluate(current),
			})
		}
		return nil
	})

	if spinner != nil {
		spinner.StopMessage(fmt.Sprintf(" checked %d entries, %d mismatched", checked, len(mismatches)))
		if walkErr != nil {
			_ = spinner.StopFail()
		} else {
			_ = spinner.Stop()
		}
	}

	if walkErr != nil {
		fmt.Fprintf(os.Stderr, "Scan failed: %v\n", walkErr)
		os.Exit(1)
	}

	for _, m := range mismatches {
		fmt.Printf("%s: flags %s, want %s (rule %s)\n",
			m.path, helpers.FormatMask(m.current), helpers.FormatMask(m.fixed), rule.Summary())
	}
	if unreadable > 0 {
		fmt.Fprintf(os.Stderr, "%d entries could not be read\n", unreadable)
	}
	if len(mismatches) > 0 {
		os.Exit(2)
	}
}
