package spotrac

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pmurley/dynasty-cap-bot/internal/models"
)

type SearchResult struct {
	Type          string // none, single or multiple
	PlayerResults []PlayerSearchResult
	ErrorMessage  string
}

type PlayerSearchResult struct {
	Name     string
	Team     string
	Position string
	URL      string
	ID       string
}

type ContractInfo struct {
	PlayerName    string
	Team          string
	Position      string
	ContractTerms string
	AverageSalary string
	FreeAgent     string
	ContractYears []ContractYear
}

type ContractYear struct {
	Year   int
	Age    int
	Status string
	Salary string // Cap hit when the table has one, otherwise base or cash salary
}

func ParseSearchResults(body io.Reader) (*SearchResult, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var results []PlayerSearchResult
	doc.Find("div.list-group a.list-group-item").Each(func(i int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || !strings.Contains(href, "/player/") {
			return
		}

		name := strings.TrimSpace(s.Find("span.text-danger").Text())
		if name == "" {
			return
		}

		results = append(results, PlayerSearchResult{
			Name:     name,
			Team:     parenthesized(s.Find("span").First().Text()),
			Position: strings.TrimSpace(s.Find("span.badge").Text()),
			URL:      href,
			ID:       playerIDFromURL(href),
		})
	})

	result := &SearchResult{PlayerResults: results}
	switch len(results) {
	case 0:
		result.Type = "none"
		result.ErrorMessage = "No players found on Spotrac"
	case 1:
		result.Type = "single"
	default:
		result.Type = "multiple"
	}
	return result, nil
}

func ParseContractInfo(body io.Reader) (*ContractInfo, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	info := &ContractInfo{}

	title := doc.Find("title").Text()
	if idx := strings.Index(title, "|"); idx > 0 {
		info.PlayerName = strings.TrimSpace(title[:idx])
	} else {
		info.PlayerName = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	info.Team = strings.TrimSpace(doc.Find("meta[name='team']").AttrOr("content", ""))
	info.Position = strings.TrimSpace(doc.Find("meta[name='position']").AttrOr("content", ""))

	// The first contract block is the current deal
	doc.Find("div.contract-wrapper").First().Find("div.contract-details div.cell").Each(func(i int, s *goquery.Selection) {
		label := strings.TrimSpace(s.Find("div.label").Text())
		value := strings.TrimSpace(s.Find("div.value").Text())

		switch label {
		case "Contract Terms:":
			info.ContractTerms = value
		case "Average Salary:":
			info.AverageSalary = value
		case "Free Agent:":
			info.FreeAgent = value
		}
	})

	doc.Find("table").EachWithBreak(func(i int, table *goquery.Selection) bool {
		years := parseContractTable(table)
		if len(years) == 0 {
			return true
		}
		info.ContractYears = years
		return false
	})

	return info, nil
}

// parseContractTable reads a year-by-year salary table. Tables without both a
// year column and a salary column yield nothing.
func parseContractTable(table *goquery.Selection) []ContractYear {
	yearCol, ageCol, statusCol, salaryCol := -1, -1, -1, -1
	salaryRank := 0

	table.Find("thead th").Each(func(i int, s *goquery.Selection) {
		h := strings.ToLower(strings.TrimSpace(s.Text()))
		switch {
		case h == "year" || h == "season":
			if yearCol == -1 {
				yearCol = i
			}
		case h == "age":
			ageCol = i
		case strings.Contains(h, "status"):
			statusCol = i
		}

		// Prefer cap hit, then base salary, then cash or payroll
		rank := 0
		switch {
		case strings.Contains(h, "cap hit"):
			rank = 3
		case strings.Contains(h, "base salary"):
			rank = 2
		case strings.Contains(h, "cash") || strings.Contains(h, "payroll"):
			rank = 1
		}
		if rank > salaryRank {
			salaryRank = rank
			salaryCol = i
		}
	})

	if yearCol < 0 || salaryCol < 0 {
		return nil
	}

	var years []ContractYear
	table.Find("tbody tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		text := func(col int) string {
			if col < 0 || col >= cells.Length() {
				return ""
			}
			return strings.TrimSpace(cells.Eq(col).Text())
		}

		year, err := strconv.Atoi(text(yearCol))
		if err != nil || year <= 0 {
			return
		}

		cy := ContractYear{
			Year:   year,
			Status: text(statusCol),
			Salary: text(salaryCol),
		}
		if age, err := strconv.Atoi(text(ageCol)); err == nil {
			cy.Age = age
		}
		years = append(years, cy)
	})

	return years
}

// CapPlayer converts the contract into the cap view of a player. The salary
// is the first season at or after currentSeason with a dollar amount, and
// contract years count consecutive paid seasons from there.
func (c *ContractInfo) CapPlayer(currentSeason int) models.Player {
	p := models.Player{
		Name:     c.PlayerName,
		Position: c.Position,
		Status:   "ROSTER",
	}

	started := false
	for _, cy := range c.ContractYears {
		if cy.Year < currentSeason {
			continue
		}
		amount, ok := models.ParseAmount(cy.Salary)
		if !ok || amount <= 0 {
			if started {
				break
			}
			continue
		}
		if !started {
			p.Salary = amount
			started = true
		}
		p.ContractYears++
	}

	return p
}

func parenthesized(text string) string {
	start := strings.LastIndex(text, "(")
	end := strings.LastIndex(text, ")")
	if start == -1 || end <= start {
		return ""
	}
	return strings.TrimSpace(text[start+1 : end])
}

func playerIDFromURL(href string) string {
	parts := strings.Split(href, "/")
	for i, part := range parts {
		if part == "id" && i+1 < len(parts) {
			return strings.SplitN(parts[i+1], "?", 2)[0]
		}
	}
	return ""
}
