package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"gopkg.in/yaml.v3"

	"github.com/sublee/kindgen"
)

//go:generate go run github.com/sublee/kindgen/cmd/kindgen .

// Event is a change in the life of a job.
//
//kindgen:kind EventKind derive(json, yaml, values, method)
type Event interface{ isEvent() }

type Created struct {
	Name string `json:"name"`
}

type Started struct{}

type Retried int

type Finished struct {
	Err string `json:"err,omitempty"`
}

func (Created) isEvent()  {}
func (Started) isEvent()  {}
func (*Retried) isEvent() {}
func (Finished) isEvent() {}

var _ kindgen.ToKind[EventKind] = Started{}

// record is an event tagged with its kind.
type record struct {
	Kind  EventKind `json:"kind" yaml:"kind"`
	Event Event     `json:"event" yaml:"event"`
}

func records(events []Event, filter *EventKind) []record {
	var rs []record
	for _, ev := range events {
		kind := EventKindOf(ev)
		if filter != nil && kind != *filter {
			continue
		}
		rs = append(rs, record{Kind: kind, Event: ev})
	}
	return rs
}

func main() {
	addr := flag.String("addr", "", "serve the events over HTTP at the address")
	flag.Parse()

	retries := Retried(2)
	events := []Event{
		Created{Name: "build"},
		Started{},
		&retries,
		Finished{},
	}

	if *addr == "" {
		// Output:
		// - kind: Created
		//   event:
		//     name: build
		// ...
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(records(events, nil)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	e := echo.New()
	e.HideBanner = true

	e.GET("/kinds", func(c echo.Context) error {
		return c.JSON(http.StatusOK, EventKindValues())
	})

	e.GET("/events", func(c echo.Context) error {
		var filter *EventKind
		if q := c.QueryParam("kind"); q != "" {
			kind, err := ParseEventKind(q)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			filter = &kind
		}
		return c.JSON(http.StatusOK, records(events, filter))
	})

	e.Logger.Fatal(e.Start(*addr))
}
