package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/pricedex/internal/exporter"
	"github.com/nikbrunner/pricedex/internal/importer"
	"github.com/nikbrunner/pricedex/internal/labels"
	"github.com/nikbrunner/pricedex/internal/linkcheck"
	"github.com/nikbrunner/pricedex/internal/model"
	"github.com/nikbrunner/pricedex/internal/picker"
	"github.com/nikbrunner/pricedex/internal/search"
	"github.com/nikbrunner/pricedex/internal/storage"
	"github.com/nikbrunner/pricedex/internal/tui"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "import":
			if len(os.Args) < 4 {
				fmt.Fprintf(os.Stderr, "Usage: pricedex import <source> <file.html>\n")
				os.Exit(1)
			}
			runImport(os.Args[2], os.Args[3])
			return
		case "export":
			var outputPath, query string
			if len(os.Args) >= 3 {
				outputPath = os.Args[2]
			}
			if len(os.Args) >= 4 {
				query = strings.Join(os.Args[3:], " ")
			}
			runExport(outputPath, query)
			return
		case "check":
			runCheck()
			return
		default:
			// Treat as search query (join all remaining args)
			query := strings.Join(os.Args[1:], " ")
			runQuickSearch(query)
			return
		}
	}

	// No args - run full TUI
	runTUI()
}

func printHelp() {
	help := `pricedex - product catalog search

Usage:
  pricedex                       Open interactive TUI
  pricedex <query>               Quick search → select → open listing
  pricedex import <source> <f>   Import scraped products from HTML
  pricedex export [path] [q...]  Export the catalog (or a query) to HTML
  pricedex check                 Probe listing URLs for dead links
  pricedex help                  Show this help

TUI Keybindings:
  Navigation:
    j/k         Move down/up
    h/l         Focus categories/results pane
    gg/G        Jump to top/bottom

  Query:
    /           Edit query text
    c           Focus categories
    p           Set max price
    Enter       Run the search
    x           Clear all filters

  Actions:
    o           Open listing in browser
    Y           Copy listing URL
    e           Export results to HTML

  Other:
    ?           Show help overlay
    q           Quit

Data Storage:
  ~/.config/pricedex/catalog.json (or catalog.db)
  ~/.config/pricedex/config.toml
`
	fmt.Print(help)
}

// loadEnvironment loads config, labels and the product catalog.
func loadEnvironment() (*storage.Config, *labels.Table, storage.Storage, *model.Catalog) {
	configPath, err := storage.DefaultConfigFilePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config path: %v\n", err)
		os.Exit(1)
	}

	config, err := storage.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	table := labels.Default()
	if config.LabelsPath != "" {
		table, err = labels.Load(config.LabelsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading labels from %s: %v\n", config.LabelsPath, err)
			os.Exit(1)
		}
	}

	store, err := storage.OpenStorage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening catalog storage: %v\n", err)
		os.Exit(1)
	}

	entries, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	catalog := model.NewCatalog(entries)
	for _, inv := range catalog.Invalid() {
		fmt.Fprintf(os.Stderr, "Warning: skipped %s\n", inv)
	}

	return config, table, store, catalog
}

// newSession creates a query session honoring the configured initial state.
func newSession(config *storage.Config, catalog *model.Catalog) *search.Session {
	initial := search.InitialAll
	if config.InitialResults == storage.InitialResultsEmpty {
		initial = search.InitialEmpty
	}
	return search.NewSession(catalog, search.Options{
		Initial: initial,
		Live:    config.LiveSearch,
	})
}

// runTUI runs the full interactive TUI.
func runTUI() {
	config, table, _, catalog := loadEnvironment()

	app := tui.NewApp(tui.AppParams{
		Session: newSession(config, catalog),
		Labels:  table,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}

// runQuickSearch searches the catalog and opens the selected listing.
func runQuickSearch(query string) {
	config, table, _, catalog := loadEnvironment()

	session := newSession(config, catalog)
	session.SetQueryText(query)
	results := session.Commit()

	if len(results) == 0 {
		fmt.Printf("%s\n", table.Get(labels.ProductNotFound))
		os.Exit(0)
	}

	var selected *model.Product

	if len(results) == 1 {
		// Single result - select it directly
		selected = &results[0]
		fmt.Printf("Opening: %s\n", selected.Name)
	} else {
		// Multiple results - show picker
		p := picker.New(results, query, table)
		program := tea.NewProgram(p)
		finalModel, err := program.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
			os.Exit(1)
		}

		finalPicker := finalModel.(picker.Picker)
		if finalPicker.Cancelled() {
			os.Exit(0)
		}
		selected = finalPicker.SelectedProduct()
	}

	if selected == nil {
		os.Exit(0)
	}

	openURL(selected.URL)
}

// openURL opens a URL in the default browser.
func openURL(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	}
	if cmd != nil {
		_ = cmd.Start()
	}
}

// runImport handles the import subcommand.
func runImport(source, filePath string) {
	_, _, store, catalog := loadEnvironment()

	file, err := os.Open(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	scraped, err := importer.Parse(file, source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing HTML: %v\n", err)
		os.Exit(1)
	}

	if len(scraped) == 0 {
		fmt.Println("No products found in page")
		return
	}

	// Append to the stored feed; existing entries keep priority when
	// the merged feed is validated (first occurrence of an ID wins).
	combined := append(catalog.Entries(), scraped...)
	merged := model.NewCatalog(combined)

	if err := store.Save(merged.Entries()); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving catalog: %v\n", err)
		os.Exit(1)
	}

	added := merged.Len() - catalog.Len()
	fmt.Printf("Imported %d products from %s", added, source)
	if skipped := len(scraped) - added; skipped > 0 {
		fmt.Printf(" (%d skipped)", skipped)
	}
	fmt.Println()
}

// runExport handles the export subcommand. An optional query narrows
// the exported set with the same engine the TUI commits through.
func runExport(outputPath, query string) {
	if outputPath == "" {
		var err error
		outputPath, err = exporter.DefaultExportPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting default export path: %v\n", err)
			os.Exit(1)
		}
	}

	_, table, _, catalog := loadEnvironment()

	products := catalog.Products()
	if query != "" {
		products = search.Search(catalog, search.Query{Text: query})
	}

	if err := exporter.WriteExport(outputPath, products, table); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d products to %s\n", len(products), outputPath)
}

// runCheck handles the check subcommand.
func runCheck() {
	config, _, _, catalog := loadEnvironment()

	products := catalog.Products()
	if len(products) == 0 {
		fmt.Println("Catalog is empty")
		return
	}

	fmt.Printf("Checking %d listing URLs...\n", len(products))

	results := linkcheck.CheckURLs(
		products,
		config.LinkCheck.Concurrency,
		time.Duration(config.LinkCheck.TimeoutSeconds)*time.Second,
		config.LinkCheck.SkipDomains,
		func(completed, total int) {
			fmt.Fprintf(os.Stderr, "\r%d/%d", completed, total)
		},
	)
	fmt.Fprintln(os.Stderr)

	var dead, unreachable int
	for _, r := range results {
		switch r.Status {
		case linkcheck.Dead:
			dead++
			fmt.Printf("DEAD        %-30s %s (%d)\n", r.Product.Name, r.Product.URL, r.StatusCode)
		case linkcheck.Unreachable:
			unreachable++
			fmt.Printf("UNREACHABLE %-30s %s (%s)\n", r.Product.Name, r.Product.URL, r.Error)
		}
	}

	healthy := len(results) - dead - unreachable
	fmt.Printf("\n%d healthy, %d dead, %d unreachable\n", healthy, dead, unreachable)
}
