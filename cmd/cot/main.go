package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/config"
	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/enhance"
	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/intent"
	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/pattern"
	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/report"
	"github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/tui"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		typeFlag     = flag.String("type", "", "prompt type (auto-detected if not set)")
		profileFlag  = flag.String("profile", "", "template profile: reasoning or improver")
		aiFlag       = flag.Bool("ai", false, "use the generative enhancer, falling back to rules")
		formatFlag   = flag.String("format", "text", "output format: text or json")
		outputFlag   = flag.String("output", "", "write results to a file")
		compareFlag  = flag.Bool("compare", false, "show before/after comparison")
		patternsFlag = flag.Bool("patterns", false, "list all enhancement patterns")
		examplesFlag = flag.Bool("examples", false, "show example prompts per type")
		versionFlag  = flag.Bool("version", false, "print version")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Println("cot " + version)
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if *profileFlag != "" {
		profile, err := pattern.ParseProfile(*profileFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		cfg.Profile = string(profile)
	}

	if *patternsFlag {
		lib := pattern.NewLibrary(pattern.Profile(cfg.Profile))
		fmt.Print(report.Patterns(lib))
		return 0
	}

	if *examplesFlag {
		fmt.Print(report.Examples())
		return 0
	}

	prompt := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if prompt == "" {
		// Interactive mode
		app := tui.NewApp(cfg)
		if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	var explicit intent.Type
	if *typeFlag != "" {
		explicit, err = intent.ParseType(*typeFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	ctx := context.Background()

	if *aiFlag && cfg.AI != nil {
		cfg.AI.Enabled = true
	}
	enhancer, note := enhance.New(ctx, cfg, *aiFlag)
	if note != "" {
		fmt.Fprintln(os.Stderr, note)
	}

	res, err := enhancer.Enhance(ctx, prompt, explicit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var out string
	switch *formatFlag {
	case "json":
		out, err = report.JSON(res)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	case "text":
		out = report.Text(res, *compareFlag)
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid format %q (valid: text, json)\n", *formatFlag)
		return 1
	}

	if *outputFlag != "" {
		if err := report.Write(*outputFlag, out); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Printf("Results saved to: %s\n", *outputFlag)
		return 0
	}

	fmt.Println(out)
	return 0
}
