package gamesheet

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/preston-bernstein/gamesheet-schedule/internal/domain/teams"
)

// RecordKind is the discriminator of an included record.
type RecordKind string

const (
	// KindIgnored covers every record type we do not consume.
	KindIgnored       RecordKind = ""
	KindTeam          RecordKind = "teams"
	KindScheduledGame RecordKind = "scheduled-games"
)

// TeamRecord is a team-kind record.
type TeamRecord struct {
	ID    string
	Title string
}

// GameRecord is a scheduled-game record before team resolution.
// HomeTeamID and VisitorTeamID are empty when the relationship is null or absent.
type GameRecord struct {
	ID                 string
	ScheduledStartTime string
	Location           string
	HomeTeamID         string
	VisitorTeamID      string
}

// Record is one entry of the response's included collection.
// Exactly one of Team or Game is meaningful, selected by Kind.
type Record struct {
	Kind RecordKind
	// Type is the raw discriminator, kept for ignored records.
	Type string
	Team TeamRecord
	Game GameRecord
}

// Document is a decoded schedule response.
type Document struct {
	Records []Record
}

// DecodeError reports a recognized record with a missing or malformed required field.
type DecodeError struct {
	Index int
	Type  string
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("gamesheet: included[%d] (%s)", e.Index, e.Type)
	if e.Field != "" {
		msg += ": field " + e.Field
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AsDecodeError attempts to unwrap an error into a DecodeError.
func AsDecodeError(err error) (*DecodeError, bool) {
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return decodeErr, true
	}
	return nil, false
}

var (
	errMissingField    = errors.New("required field missing")
	errMissingIncluded = errors.New("gamesheet: response has no included collection")
)

// DecodeDocument parses a schedule response body.
// Unknown record types decode as KindIgnored; a recognized record with a bad
// required field fails the whole document.
func DecodeDocument(r io.Reader) (Document, error) {
	var payload scheduleResponse
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return Document{}, fmt.Errorf("gamesheet: decode response: %w", err)
	}
	if payload.Included == nil {
		return Document{}, errMissingIncluded
	}

	raw := *payload.Included
	doc := Document{Records: make([]Record, 0, len(raw))}
	for i, item := range raw {
		rec, err := decodeRecord(i, item)
		if err != nil {
			return Document{}, err
		}
		doc.Records = append(doc.Records, rec)
	}
	return doc, nil
}

func decodeRecord(index int, raw json.RawMessage) (Record, error) {
	var head recordHead
	if err := json.Unmarshal(raw, &head); err != nil {
		// Not even an object with a string type: nothing we consume.
		return Record{Kind: KindIgnored}, nil
	}

	switch RecordKind(head.Type) {
	case KindTeam:
		team, err := decodeTeam(raw)
		if err != nil {
			err.Index, err.Type = index, head.Type
			return Record{}, err
		}
		return Record{Kind: KindTeam, Type: head.Type, Team: team}, nil
	case KindScheduledGame:
		game, err := decodeGame(raw)
		if err != nil {
			err.Index, err.Type = index, head.Type
			return Record{}, err
		}
		return Record{Kind: KindScheduledGame, Type: head.Type, Game: game}, nil
	default:
		return Record{Kind: KindIgnored, Type: head.Type}, nil
	}
}

func decodeTeam(raw json.RawMessage) (TeamRecord, *DecodeError) {
	var w teamWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return TeamRecord{}, &DecodeError{Err: err}
	}
	if w.ID == nil {
		return TeamRecord{}, &DecodeError{Field: "id", Err: errMissingField}
	}
	if w.Attributes == nil || w.Attributes.Title == nil {
		return TeamRecord{}, &DecodeError{Field: "attributes.title", Err: errMissingField}
	}
	return TeamRecord{ID: *w.ID, Title: *w.Attributes.Title}, nil
}

func decodeGame(raw json.RawMessage) (GameRecord, *DecodeError) {
	var w gameWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return GameRecord{}, &DecodeError{Err: err}
	}
	if w.ID == nil {
		return GameRecord{}, &DecodeError{Field: "id", Err: errMissingField}
	}
	if w.Attributes == nil || w.Attributes.ScheduledStartTime == nil {
		return GameRecord{}, &DecodeError{Field: "attributes.scheduled_start_time", Err: errMissingField}
	}
	if w.Attributes.Location == nil {
		return GameRecord{}, &DecodeError{Field: "attributes.location", Err: errMissingField}
	}

	rec := GameRecord{
		ID:                 *w.ID,
		ScheduledStartTime: *w.Attributes.ScheduledStartTime,
		Location:           *w.Attributes.Location,
	}
	if w.Relationships != nil {
		rec.HomeTeamID = w.Relationships.HomeTeam.id()
		rec.VisitorTeamID = w.Relationships.VisitorTeam.id()
	}
	return rec, nil
}

// TeamNames builds the id -> name lookup. A duplicated id keeps its last title.
func (d Document) TeamNames() teams.Lookup {
	lookup := make(teams.Lookup)
	for _, r := range d.Records {
		if r.Kind == KindTeam {
			lookup[r.Team.ID] = r.Team.Title
		}
	}
	return lookup
}

// Games returns every scheduled-game record in document order.
func (d Document) Games() []GameRecord {
	out := make([]GameRecord, 0)
	for _, r := range d.Records {
		if r.Kind == KindScheduledGame {
			out = append(out, r.Game)
		}
	}
	return out
}

// Count returns how many records of kind the document holds.
func (d Document) Count(kind RecordKind) int {
	n := 0
	for _, r := range d.Records {
		if r.Kind == kind {
			n++
		}
	}
	return n
}
