package main

import (
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/selection"

	"github.com/henderiw/timeset/pkg/calendar"
	"github.com/henderiw/timeset/pkg/timespan"
	"github.com/henderiw/timeset/pkg/timetable"
)

var slots = []struct {
	from   int
	to     int
	labels map[string]string
}{
	{from: 9, to: 10, labels: map[string]string{"team": "blue", "kind": "standup"}},
	{from: 10, to: 11, labels: map[string]string{"team": "blue", "kind": "review"}},
	{from: 13, to: 15, labels: map[string]string{"team": "red", "kind": "planning"}},
}

func main() {
	day := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	hour := func(h int) time.Time { return day.Add(time.Duration(h) * time.Hour) }
	workday := timespan.New(hour(9), hour(17))

	tbl, err := timetable.New(workday, nil, nil)
	if err != nil {
		panic(err)
	}
	for _, s := range slots {
		if err := tbl.Claim(timespan.New(hour(s.from), hour(s.to)), s.labels); err != nil {
			panic(err)
		}
	}

	fmt.Println("claimed", tbl.Claimed())
	fmt.Println("free", tbl.Free())

	in, err := tbl.ClaimFree(90*time.Minute, map[string]string{"team": "red", "kind": "sync"})
	if err != nil {
		panic(err)
	}
	fmt.Println("claimed free slot", in)

	ls, err := GetLabelSelector(map[string]string{"team": "blue"})
	if err != nil {
		panic(err)
	}
	for _, e := range tbl.GetByLabel(ls) {
		fmt.Println("entry by label", e.String())
	}

	week := timespan.New(day, day.AddDate(0, 0, 7))
	for _, d := range calendar.Days(week, time.UTC) {
		fmt.Println("day", d)
	}

	busy := tbl.Claimed()
	other := timespan.NewSet(timespan.New(hour(10), hour(14)))
	fmt.Println("overlap with 10-14", busy.Intersect(other))
}

func GetLabelSelector(l map[string]string) (labels.Selector, error) {
	fullselector := labels.NewSelector()
	for k, v := range l {
		req, err := labels.NewRequirement(k, selection.Equals, []string{v})
		if err != nil {
			return nil, err
		}
		fullselector = fullselector.Add(*req)
	}
	return fullselector, nil
}
