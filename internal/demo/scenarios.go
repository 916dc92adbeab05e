// Package demo walks through the optional and stream APIs over the sample
// domain. Each scenario builds its own pipelines and reports a textual
// outcome that is checked against the expected one.
package demo

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/kabu1204/go-stream/collector"
	"github.com/kabu1204/go-stream/internal/model"
	"github.com/kabu1204/go-stream/optional"
	"github.com/kabu1204/go-stream/stream"
	"github.com/kabu1204/go-stream/types"
)

const (
	Default = "Default"
	Email   = "example@email.com"
)

type Scenario struct {
	Name   string
	Expect string
	Run    func() (string, error)
}

var errInvalidUser = errors.New("invalid user")

func sampleAddress() *model.Address {
	return model.NewAddress(model.NewCountry("Polska"))
}

// CountryOf resolves the country name of u, or Default.
func CountryOf(u *model.User) string {
	address := optional.FlatMap(optional.OfNullable(u), (*model.User).Address)
	country := optional.FlatMap(address, (*model.Address).Country)
	return optional.Map(country, (*model.Country).Name).OrElse(Default)
}

func sumFloat64(a, b float64) float64 { return a + b }

func employeeNames(emps []*model.Employee) stream.Stream[string] {
	return stream.Map(stream.FromSlice(emps), (*model.Employee).Name)
}

// Scenarios lists every scenario in a stable order.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:   "optional-chaining",
			Expect: "Polska,Default,Default",
			Run: func() (string, error) {
				full := model.NewUser("Bulbek", model.WithAddress(sampleAddress()), model.WithEmail(Email))
				bare := model.NewUser("Adam")
				filtered := optional.FlatMap(optional.OfNullable(full), (*model.User).Address)
				country := optional.Map(optional.FlatMap(filtered, (*model.Address).Country), (*model.Country).Name).
					Filter(func(name string) bool { return name == "USA" }).
					OrElse(Default)
				return strings.Join([]string{CountryOf(full), CountryOf(bare), country}, ","), nil
			},
		},
		{
			Name:   "or-else-versus-or-else-get",
			Expect: "Bulbek Bulbek created=1",
			Run: func() (string, error) {
				created := 0
				createNewUser := func() *model.User {
					created++
					return model.NewUser("Adam", model.WithAddress(sampleAddress()))
				}
				present := optional.OfNullable(model.NewUser("Bulbek"))
				a := present.OrElse(createNewUser())
				b := present.OrElseGet(createNewUser)
				return fmt.Sprintf("%s %s created=%d", a.Name(), b.Name(), created), nil
			},
		},
		{
			Name:   "or-else-throw",
			Expect: "rejected: invalid user",
			Run: func() (string, error) {
				var u *model.User
				_, err := optional.OfNullable(u).OrElseThrow(func() error { return errInvalidUser })
				if !errors.Is(err, errInvalidUser) {
					return "", fmt.Errorf("unexpected error: %v", err)
				}
				return "rejected: " + err.Error(), nil
			},
		},
		{
			Name:   "of-nil",
			Expect: "of=value is nil ofNullable=Optional.empty",
			Run: func() (string, error) {
				var u *model.User
				_, err := optional.Of(u)
				if !errors.Is(err, optional.ErrNullValue) {
					return "", fmt.Errorf("expected %v, got %v", optional.ErrNullValue, err)
				}
				return fmt.Sprintf("of=%v ofNullable=%v", optional.ErrNullValue, optional.OfNullable(u)), nil
			},
		},
		{
			Name:   "or-supplier",
			Expect: "Default",
			Run: func() (string, error) {
				u, err := optional.Empty[*model.User]().
					Or(func() optional.Optional[*model.User] { return optional.MustOf(model.NewUser(Default)) }).
					Get()
				if err != nil {
					return "", err
				}
				return u.Name(), nil
			},
		},
		{
			Name:   "if-present-or-else",
			Expect: "User name is: Bulbek|User is nil",
			Run: func() (string, error) {
				var out []string
				describe := func(o optional.Optional[*model.User]) {
					o.IfPresentOrElse(
						func(u *model.User) { out = append(out, "User name is: "+u.Name()) },
						func() { out = append(out, "User is nil") },
					)
				}
				describe(optional.OfNullable(model.NewUser("Bulbek")))
				describe(optional.Empty[*model.User]())
				return strings.Join(out, "|"), nil
			},
		},
		{
			Name:   "optional-stream-emails",
			Expect: "[example@email.com]",
			Run: func() (string, error) {
				u := model.NewUser("Bulbek", model.WithAddress(sampleAddress()), model.WithEmail(Email))
				valid := stream.FromOptional(optional.OfNullable(u)).
					Filter(func(u *model.User) bool {
						return u.Email().Filter(func(e string) bool { return strings.Contains(e, "@") }).IsPresent()
					})
				emails, err := stream.Collect(
					stream.Map(valid, func(u *model.User) string { return u.Email().OrElse("") }),
					collector.ToList[string](),
				)
				if err != nil {
					return "", err
				}
				return fmt.Sprint(emails), nil
			},
		},
		{
			Name:   "stream-sources",
			Expect: "3,3,3,3",
			Run: func() (string, error) {
				emps := model.Employees()
				builder := stream.NewBuilder[*model.Employee]()
				for _, e := range emps {
					builder.Add(e)
				}
				sources := []stream.Stream[*model.Employee]{
					stream.FromSlice(emps),
					stream.Of(emps[0], emps[1], emps[2]),
					builder.Build(),
					stream.Concat(stream.Of(emps[0]), stream.Of(emps[1:]...)),
				}
				counts := make([]string, 0, len(sources))
				for _, s := range sources {
					n, err := s.Count()
					if err != nil {
						return "", err
					}
					counts = append(counts, fmt.Sprint(n))
				}
				return strings.Join(counts, ","), nil
			},
		},
		{
			Name:   "salary-total",
			Expect: "60000.0",
			Run: func() (string, error) {
				total, err := stream.Map(stream.FromSlice(model.Employees()), (*model.Employee).Salary).
					ReduceFrom(0, sumFloat64)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("%.1f", total), nil
			},
		},
		{
			Name:   "salary-statistics",
			Expect: "count=3 sum=60000.0 min=10000.0 max=30000.0 average=20000.0",
			Run: func() (string, error) {
				stats, err := stream.Collect(stream.FromSlice(model.Employees()),
					collector.SummarizingFloat64((*model.Employee).Salary))
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("count=%d sum=%.1f min=%.1f max=%.1f average=%.1f",
					stats.Count(), stats.Sum(), stats.Min(), stats.Max(), stats.Average()), nil
			},
		},
		{
			Name:   "group-by-initial",
			Expect: "{B=[Bulbek], A=[Adam], E=[Ewa]}",
			Run: func() (string, error) {
				groups, err := stream.Collect(employeeNames(model.Employees()),
					collector.GroupingBy(func(name string) string { return name[:1] }))
				if err != nil {
					return "", err
				}
				return groups.String(), nil
			},
		},
		{
			Name:   "partition-by-salary",
			Expect: "true=Adam,Ewa false=Bulbek",
			Run: func() (string, error) {
				parts, err := stream.Collect(stream.FromSlice(model.Employees()),
					collector.PartitioningByWith(
						func(e *model.Employee) bool { return e.Salary() > 15000 },
						collector.Mapping((*model.Employee).Name, collector.Joining(",")),
					))
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("true=%s false=%s", parts[true], parts[false]), nil
			},
		},
		{
			Name:   "top-earners",
			Expect: "Ewa,Adam",
			Run: func() (string, error) {
				bySalary := types.Comparing((*model.Employee).Salary)
				top := stream.FromSlice(model.Employees()).Sorted(bySalary.Reversed()).Limit(2)
				return stream.Collect(stream.Map(top, (*model.Employee).Name), collector.Joining(","))
			},
		},
		{
			Name:   "salary-increment",
			Expect: "Ewa 33000.0",
			Run: func() (string, error) {
				emps := model.Employees()
				if err := stream.FromSlice(emps).ForEach(func(e *model.Employee) { e.SalaryIncrement(10) }); err != nil {
					return "", err
				}
				best, err := stream.FromSlice(emps).Max(types.Comparing((*model.Employee).Salary))
				if err != nil {
					return "", err
				}
				e, err := best.Get()
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("%s %.1f", e.Name(), e.Salary()), nil
			},
		},
		{
			Name:   "first-power-of-two-above-100",
			Expect: "128",
			Run: func() (string, error) {
				first, err := stream.Iterate(1, func(x int) int { return x * 2 }).
					Filter(func(x int) bool { return x > 100 }).
					FindFirst()
				if err != nil {
					return "", err
				}
				return fmt.Sprint(first.OrElse(-1)), nil
			},
		},
		{
			Name:   "unbounded-sort-rejected",
			Expect: "sorted=illegal stream state limited=[1 2 4 8 16]",
			Run: func() (string, error) {
				doubling := func(x int) int { return x * 2 }
				_, err := stream.SortedNatural(stream.Iterate(1, doubling)).ToSlice()
				if !errors.Is(err, stream.ErrIllegalState) {
					return "", fmt.Errorf("expected %v, got %v", stream.ErrIllegalState, err)
				}
				limited, err := stream.SortedNatural(stream.Iterate(1, doubling).Limit(5)).ToSlice()
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("sorted=%v limited=%v", stream.ErrIllegalState, limited), nil
			},
		},
		{
			Name:   "consumed-twice",
			Expect: "first=3 second=stream has already been operated upon or closed",
			Run: func() (string, error) {
				s := employeeNames(model.Employees())
				n, err := s.Count()
				if err != nil {
					return "", err
				}
				_, err = s.Count()
				if !errors.Is(err, stream.ErrPipelineConsumed) {
					return "", fmt.Errorf("expected %v, got %v", stream.ErrPipelineConsumed, err)
				}
				return fmt.Sprintf("first=%d second=%v", n, stream.ErrPipelineConsumed), nil
			},
		},
	}
}

// Select returns the scenarios with the given names, in the given order, or
// every scenario when names is empty.
func Select(names []string) ([]Scenario, error) {
	all := Scenarios()
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]Scenario, len(all))
	for _, s := range all {
		byName[s.Name] = s
	}
	selected := make([]Scenario, 0, len(names))
	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			known := make([]string, 0, len(all))
			for k := range byName {
				known = append(known, k)
			}
			sort.Strings(known)
			return nil, fmt.Errorf("unknown scenario %q, known: %s", name, strings.Join(known, ", "))
		}
		selected = append(selected, s)
	}
	return selected, nil
}
