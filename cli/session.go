package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"bikeshare/aggregator"
	"bikeshare/domain/entities/criteria"
	"bikeshare/domain/entities/trip"
	"bikeshare/filter"
	"bikeshare/presenter"
)

const sessionStr = "session"

// sessionState tags each step of the interactive loop
type sessionState int

const (
	statePromptCity sessionState = iota
	statePromptMonth
	statePromptDay
	stateRunQuery
	stateAskRawData
	stateAskRestart
	stateDone
)

// DatasetLoader loads the trips of one city into memory
type DatasetLoader interface {
	LoadDataset(city string) (*trip.Dataset, error)
}

// Session runs the interactive query loop as an explicit finite-state
// machine: PromptCity -> PromptMonth -> PromptDay -> RunQuery -> AskRawData
// -> AskRestart. Invalid input keeps the machine in the same state
type Session struct {
	reader    *bufio.Scanner
	writer    io.Writer
	loader    DatasetLoader
	presenter *presenter.Presenter

	criteria criteria.Criteria
	filtered *trip.Dataset
}

func NewSession(input io.Reader, writer io.Writer, loader DatasetLoader, resultPresenter *presenter.Presenter) *Session {
	return &Session{
		reader:    bufio.NewScanner(input),
		writer:    writer,
		loader:    loader,
		presenter: resultPresenter,
	}
}

// Run drives the state machine until the user declines a restart or the
// input stream ends
func (s *Session) Run() {
	state := statePromptCity
	for state != stateDone {
		switch state {
		case statePromptCity:
			state = s.promptCity()
		case statePromptMonth:
			state = s.promptMonth()
		case statePromptDay:
			state = s.promptDay()
		case stateRunQuery:
			state = s.runQuery()
		case stateAskRawData:
			state = s.askRawData()
		case stateAskRestart:
			state = s.askRestart()
		}
	}
	fmt.Fprintln(s.writer, "Program End")
}

func (s *Session) promptCity() sessionState {
	input, ok := s.prompt("Please choose a city [chicago, new york city, washington] > ")
	if !ok {
		return stateDone
	}

	city, err := criteria.ParseCity(input)
	if err != nil {
		fmt.Fprintf(s.writer, "Unknown city %q, please try again.\n", strings.TrimSpace(input))
		return statePromptCity
	}

	s.criteria = criteria.Criteria{City: city}
	return statePromptMonth
}

func (s *Session) promptMonth() sessionState {
	input, ok := s.prompt("Filter by month(s)? [january..june, comma separated, or all] > ")
	if !ok {
		return stateDone
	}

	months, err := criteria.ParseMonths(input)
	if err != nil {
		fmt.Fprintf(s.writer, "Invalid month selection %q, please try again.\n", strings.TrimSpace(input))
		return statePromptMonth
	}

	s.criteria.Months = months
	return statePromptDay
}

func (s *Session) promptDay() sessionState {
	input, ok := s.prompt("Filter by day(s)? [sunday..saturday, comma separated, or all] > ")
	if !ok {
		return stateDone
	}

	days, err := criteria.ParseDays(input)
	if err != nil {
		fmt.Fprintf(s.writer, "Invalid day selection %q, please try again.\n", strings.TrimSpace(input))
		return statePromptDay
	}

	s.criteria.Days = days
	return stateRunQuery
}

// runQuery loads the dataset fresh, filters it and prints the statistics.
// A load failure aborts the query and jumps to the restart prompt
func (s *Session) runQuery() sessionState {
	dataset, err := s.loader.LoadDataset(s.criteria.City)
	if err != nil {
		log.Errorf("[stage: %s][city: %s][status: error] error loading dataset: %s", sessionStr, s.criteria.City, err.Error())
		fmt.Fprintf(s.writer, "Could not load data for %s: %s\n", s.criteria.City, err.Error())
		return stateAskRestart
	}

	s.filtered = filter.Apply(dataset, s.criteria)
	summary := aggregator.Aggregate(s.filtered)
	s.presenter.PrintSummary(summary, s.criteria)

	return stateAskRawData
}

func (s *Session) askRawData() sessionState {
	if s.filtered.IsEmpty() {
		return stateAskRestart
	}

	if !s.confirm("Would you like to view raw data [y/n]? ") {
		return stateAskRestart
	}

	offset := 0
	for {
		printed := s.presenter.PrintRawPage(s.filtered, offset)
		if printed == 0 {
			break
		}
		offset += printed

		if offset >= s.filtered.Len() {
			break
		}
		if !s.confirm("\nWould you like to view the next rows [y/n]? ") {
			break
		}
	}

	return stateAskRestart
}

func (s *Session) askRestart() sessionState {
	s.filtered = nil
	if s.confirm("Restart program [y/n]? ") {
		return statePromptCity
	}
	return stateDone
}

// prompt writes the question and reads one line. ok is false when the input
// stream is exhausted, which ends the session
func (s *Session) prompt(question string) (string, bool) {
	fmt.Fprint(s.writer, question)
	if !s.reader.Scan() {
		fmt.Fprintln(s.writer)
		return "", false
	}
	return s.reader.Text(), true
}

func (s *Session) confirm(question string) bool {
	input, ok := s.prompt(question)
	if !ok {
		return false
	}
	return strings.ToLower(strings.TrimSpace(input)) == "y"
}
