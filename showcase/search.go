package main

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/rudder/pkg/controller"
	"github.com/go-drift/rudder/pkg/core"
	"github.com/go-drift/rudder/pkg/screen"
)

const searchDelay = 300 * time.Millisecond

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	resultStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	hintStyle = lipgloss.NewStyle().
			Faint(true)
)

// catalog is the fake dataset the search demo queries.
var catalog = []string{
	"anchor", "ballast", "capstan", "forecastle", "galley",
	"halyard", "keel", "mainsail", "porthole", "rudder",
	"spinnaker", "tiller", "windlass",
}

// searchController owns the search demo's state: the debounced query, the
// fetched results, and a visit counter shared through an observable.
type searchController struct {
	controller.ScreenController

	mu      sync.Mutex
	query   string
	results []string
	visits  int
}

// visitCount is a process-wide observable the controller watches, to show
// cross-screen state flowing into a controller subscription.
var visitCount = core.NewObservable(0)

func (c *searchController) OnInit() {
	controller.Observe(c, visitCount, func(n int) {
		c.mu.Lock()
		c.visits = n
		c.mu.Unlock()
		c.NotifyListeners()
	})
	visitCount.Update(func(n int) int { return n + 1 })
}

// SetQuery updates the pending query and debounces the fetch, so one search
// runs per pause in typing rather than one per keystroke.
func (c *searchController) SetQuery(q string) {
	c.mu.Lock()
	c.query = q
	c.mu.Unlock()
	c.NotifyListeners()
	c.Debounce(searchDelay, c.startSearch, "search")
}

// Retry clears the error state and reruns the current query.
func (c *searchController) Retry() {
	c.ClearError()
	c.startSearch()
}

func (c *searchController) startSearch() {
	go c.AsyncRun(c.fetch)
}

// fetch simulates a remote lookup. A query of "fail" errors, to exercise the
// error view.
func (c *searchController) fetch() error {
	c.mu.Lock()
	q := c.query
	c.mu.Unlock()

	time.Sleep(400 * time.Millisecond)
	if q == "fail" {
		return fmt.Errorf("search backend unavailable")
	}

	var matches []string
	for _, item := range catalog {
		if strings.Contains(item, strings.ToLower(q)) {
			matches = append(matches, item)
		}
	}

	c.mu.Lock()
	c.results = matches
	c.mu.Unlock()
	c.NotifyListeners()
	return nil
}

func (c *searchController) snapshot() (string, []string, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query, c.results, c.visits
}

// searchScreen renders the search demo.
type searchScreen struct {
	ctrl *searchController
}

func (s *searchScreen) CreateController() controller.Controller {
	s.ctrl = &searchController{}
	return s.ctrl
}

func (s *searchScreen) BuildView() string {
	query, results, visits := s.ctrl.snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Rudder search demo"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Search: %s█\n\n", query)

	if len(results) == 0 {
		b.WriteString(hintStyle.Render("  no matches"))
	} else {
		for _, r := range results {
			b.WriteString(resultStyle.Render("• " + r))
			b.WriteByte('\n')
		}
	}

	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render(fmt.Sprintf(
		"session %d · type to search · \"fail\" errors · ctrl+c quits", visits)))
	return b.String()
}

var _ screen.Screen[string] = (*searchScreen)(nil)
