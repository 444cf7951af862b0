// Package projects holds the project cards and the category filter.
package projects

// All is the filter value that shows every project.
const All = "all"

type Project struct {
	Title    string
	Category string
	Summary  string
}

var Default = []Project{
	{Title: "Portfolio Site", Category: "web", Summary: "Personal site with animated hero"},
	{Title: "Sales Dashboard", Category: "data", Summary: "Interactive charts over retail data"},
	{Title: "Brand Kit", Category: "design", Summary: "Logo, palette and type system"},
	{Title: "Weather App", Category: "web", Summary: "Forecasts from a public API"},
	{Title: "Churn Model", Category: "data", Summary: "Customer churn prediction notebook"},
}

// Catalog remembers the active filter like the page's filter buttons do.
type Catalog struct {
	projects []Project
	active   string
}

func NewCatalog(ps []Project) *Catalog {
	return &Catalog{projects: ps, active: All}
}

// Categories returns All followed by each category in first-seen order.
func (c *Catalog) Categories() []string {
	out := []string{All}
	seen := map[string]bool{All: true}
	for _, p := range c.projects {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// Filter returns the projects shown for category. Unknown categories show
// nothing.
func (c *Catalog) Filter(category string) []Project {
	if category == All {
		return append([]Project(nil), c.projects...)
	}
	var out []Project
	for _, p := range c.projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) Select(category string) { c.active = category }

func (c *Catalog) Active() string { return c.active }

func (c *Catalog) Visible() []Project { return c.Filter(c.active) }
