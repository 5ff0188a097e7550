package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Passenger is a single row of the manifest. Age, Fare and Embarked may be
// absent in the source data; the Has* flags and the empty string mark that.
type Passenger struct {
	ID       int
	Survived int
	Pclass   int
	Name     string
	Sex      string
	Age      float64
	HasAge   bool
	SibSp    int
	Parch    int
	Ticket   string
	Fare     float64
	HasFare  bool
	Cabin    string
	Embarked string
}

// Table holds the full manifest in memory.
type Table struct {
	Passengers []Passenger
}

// columns the loader insists on finding in the header.
var required = []string{
	"PassengerId", "Survived", "Pclass", "Name", "Sex", "Age",
	"SibSp", "Parch", "Ticket", "Fare", "Cabin", "Embarked",
}

// Load reads the manifest CSV at path. The header row is mapped by name, so
// column order in the file does not matter. A malformed required field fails
// the whole load with the offending row number; empty Age/Fare/Cabin/Embarked
// fields are recorded as missing.
func Load(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("manifest %s has no data rows", path)
	}

	col := map[string]int{}
	for i, h := range records[0] {
		col[strings.TrimSpace(h)] = i
	}
	for _, name := range required {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("manifest missing column %q", name)
		}
	}

	t := &Table{Passengers: make([]Passenger, 0, len(records)-1)}
	for i, rec := range records[1:] {
		p, err := parseRow(rec, col)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		t.Passengers = append(t.Passengers, p)
	}
	return t, nil
}

func parseRow(rec []string, col map[string]int) (Passenger, error) {
	var p Passenger
	var err error

	if p.ID, err = strconv.Atoi(rec[col["PassengerId"]]); err != nil {
		return p, fmt.Errorf("bad PassengerId %q", rec[col["PassengerId"]])
	}
	if p.Survived, err = strconv.Atoi(rec[col["Survived"]]); err != nil {
		return p, fmt.Errorf("bad Survived %q", rec[col["Survived"]])
	}
	if p.Survived != 0 && p.Survived != 1 {
		return p, fmt.Errorf("Survived must be 0 or 1, got %d", p.Survived)
	}
	if p.Pclass, err = strconv.Atoi(rec[col["Pclass"]]); err != nil {
		return p, fmt.Errorf("bad Pclass %q", rec[col["Pclass"]])
	}
	if p.SibSp, err = strconv.Atoi(rec[col["SibSp"]]); err != nil {
		return p, fmt.Errorf("bad SibSp %q", rec[col["SibSp"]])
	}
	if p.Parch, err = strconv.Atoi(rec[col["Parch"]]); err != nil {
		return p, fmt.Errorf("bad Parch %q", rec[col["Parch"]])
	}

	p.Name = rec[col["Name"]]
	p.Sex = strings.ToLower(strings.TrimSpace(rec[col["Sex"]]))
	if p.Sex != "male" && p.Sex != "female" {
		return p, fmt.Errorf("bad Sex %q", rec[col["Sex"]])
	}
	p.Ticket = rec[col["Ticket"]]
	p.Cabin = rec[col["Cabin"]]
	p.Embarked = strings.TrimSpace(rec[col["Embarked"]])

	if s := rec[col["Age"]]; s != "" {
		if p.Age, err = strconv.ParseFloat(s, 64); err != nil {
			return p, fmt.Errorf("bad Age %q", s)
		}
		p.HasAge = true
	}
	if s := rec[col["Fare"]]; s != "" {
		if p.Fare, err = strconv.ParseFloat(s, 64); err != nil {
			return p, fmt.Errorf("bad Fare %q", s)
		}
		p.HasFare = true
	}
	return p, nil
}

// Len returns the number of passengers.
func (t *Table) Len() int { return len(t.Passengers) }

// Ages returns the observed (non-missing) ages.
func (t *Table) Ages() []float64 {
	var out []float64
	for _, p := range t.Passengers {
		if p.HasAge {
			out = append(out, p.Age)
		}
	}
	return out
}

// Fares returns the observed fares, optionally restricted to one class
// (pclass 0 means all classes).
func (t *Table) Fares(pclass int) []float64 {
	var out []float64
	for _, p := range t.Passengers {
		if p.HasFare && (pclass == 0 || p.Pclass == pclass) {
			out = append(out, p.Fare)
		}
	}
	return out
}

// Labels returns the Survived column as float64 targets.
func (t *Table) Labels() []float64 {
	out := make([]float64, len(t.Passengers))
	for i, p := range t.Passengers {
		out[i] = float64(p.Survived)
	}
	return out
}

// SurvivalCounts tabulates survived/died counts keyed by the given grouping
// function, e.g. by sex or by class.
func (t *Table) SurvivalCounts(groupBy func(Passenger) string) map[string][2]int {
	out := map[string][2]int{}
	for _, p := range t.Passengers {
		c := out[groupBy(p)]
		c[p.Survived]++
		out[groupBy(p)] = c
	}
	return out
}
